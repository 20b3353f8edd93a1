package main

import (
	"context"
	"errors"
	"time"

	"koperasi-portal/internal/config"
	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
	"koperasi-portal/pkg/database"
	"koperasi-portal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	demoMemberNumber = "MB001234"
	demoPin          = "123456"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Database setup failed")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Database migration failed")
	}

	if err := seedDemoData(context.Background(), db, log); err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}
}

func strPtr(s string) *string { return &s }

// seedDemoData creates one demo member with savings, loans, history and notifications,
// plus a small product catalog. It does nothing when the demo member already exists.
func seedDemoData(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	memberRepo := repository.NewMemberRepo(db)

	_, err := memberRepo.FindByMemberNumber(ctx, demoMemberNumber)
	if err == nil {
		log.WithField("member_number", demoMemberNumber).Info("Demo member already exists, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		members := repository.NewMemberRepo(tx)
		savings := repository.NewSavingsRepo(tx)
		loans := repository.NewLoanRepo(tx)
		transactions := repository.NewTransactionRepo(tx)
		notifications := repository.NewNotificationRepo(tx)
		products := repository.NewProductRepo(tx)

		member := &model.Member{
			MemberNumber: demoMemberNumber,
			Name:         "Budi Santoso",
			Phone:        strPtr("+62812345678"),
			Email:        strPtr("budi@example.com"),
		}
		if err := member.SetPin(demoPin); err != nil {
			return err
		}
		if err := members.Create(ctx, member); err != nil {
			return err
		}

		for _, s := range []model.Savings{
			{MemberID: member.ID, Type: model.SimpananPokok, Amount: model.MustAmount("5000000.00")},
			{MemberID: member.ID, Type: model.SimpananWajib, Amount: model.MustAmount("2000000.00")},
			{MemberID: member.ID, Type: model.SimpananWajib, Amount: model.MustAmount("1500000.00")},
			{MemberID: member.ID, Type: model.SimpananSukarela, Amount: model.MustAmount("3000000.00")},
		} {
			if err := savings.Create(ctx, &s); err != nil {
				return err
			}
		}

		for _, l := range []model.Loan{
			{MemberID: member.ID, Name: "Pinjaman TV", Amount: model.MustAmount("6000000.00"), RemainingAmount: model.MustAmount("4500000.00"), MonthlyPayment: model.MustAmount("500000.00"), Status: model.LoanActive},
			{MemberID: member.ID, Name: "Pinjaman Kulkas", Amount: model.MustAmount("4000000.00"), RemainingAmount: model.MustAmount("3000000.00"), MonthlyPayment: model.MustAmount("300000.00"), Status: model.LoanActive},
		} {
			if err := loans.Create(ctx, &l); err != nil {
				return err
			}
		}

		now := time.Now()
		history := []model.Transaction{
			{Type: model.TxIncome, Category: model.CategoryLoanDisbursement, Title: "Pencairan Pinjaman", Subtitle: strPtr("Pinjaman TV"), Amount: model.MustAmount("6000000.00")},
			{Type: model.TxExpense, Category: model.CategoryLoanPayment, Title: "Angsuran Pinjaman", Subtitle: strPtr("TV LED 42\""), Amount: model.MustAmount("500000.00")},
			{Type: model.TxIncome, Category: model.CategorySavingsDeposit, Title: "Setoran Simpanan", Subtitle: strPtr("Simpanan Wajib"), Amount: model.MustAmount("1500000.00")},
			{Type: model.TxExpense, Category: model.CategoryWithdrawal, Title: "Penarikan Simpanan", Subtitle: strPtr("Simpanan Sukarela"), Amount: model.MustAmount("250000.00")},
		}
		for i := range history {
			history[i].MemberID = member.ID
			history[i].CreatedAt = now.Add(time.Duration(i-len(history)) * time.Hour)
			if err := transactions.Create(ctx, &history[i]); err != nil {
				return err
			}
		}

		for _, n := range []model.Notification{
			{MemberID: member.ID, Title: "Pengingat Angsuran", Message: "Angsuran pinjaman Anda jatuh tempo minggu ini", IsRead: false},
			{MemberID: member.ID, Title: "Pembaruan Akun", Message: "Data akun Anda telah diperbarui", IsRead: true},
			{MemberID: member.ID, Title: "Promo Baru", Message: "Cek produk promo terbaru koperasi", IsRead: false},
		} {
			if err := notifications.Create(ctx, &n); err != nil {
				return err
			}
		}

		for _, p := range []model.Product{
			{Name: "Beras Premium 5kg", Price: model.MustAmount("75000.00"), Status: model.ProductPromo, Description: strPtr("Harga khusus anggota")},
			{Name: "Minyak Goreng 2L", Price: model.MustAmount("34000.00"), Status: model.ProductPromo},
			{Name: "Kompor Gas 2 Tungku", Price: model.MustAmount("450000.00"), Status: model.ProductBaru},
			{Name: "Gula Pasir 1kg", Price: model.MustAmount("17500.00"), Status: model.ProductRegular},
		} {
			if err := products.Create(ctx, &p); err != nil {
				return err
			}
		}

		log.WithFields(logrus.Fields{
			"member_number": demoMemberNumber,
			"pin":           demoPin,
		}).Info("Demo data created")
		return nil
	})
}
