package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"koperasi-portal/internal/model"
)

type dashboardFixture struct {
	members       *fakeMemberRepo
	savings       *fakeSavingsRepo
	loans         *fakeLoanRepo
	transactions  *fakeTransactionRepo
	notifications *fakeNotificationRepo
}

func newDashboardFixture() *dashboardFixture {
	return &dashboardFixture{
		members: &fakeMemberRepo{members: map[int]*model.Member{
			1: {BaseModel: model.BaseModel{ID: 1}, MemberNumber: "MB001234", Name: "Test Member"},
			2: {BaseModel: model.BaseModel{ID: 2}, MemberNumber: "MB009999", Name: "Other Member"},
		}},
		savings:       &fakeSavingsRepo{},
		loans:         &fakeLoanRepo{},
		transactions:  &fakeTransactionRepo{},
		notifications: &fakeNotificationRepo{},
	}
}

func (f *dashboardFixture) service() DashboardService {
	return NewDashboardService(f.members, f.savings, f.loans, f.transactions, f.notifications)
}

func TestGetMemberDashboardAggregates(t *testing.T) {
	f := newDashboardFixture()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	f.savings.rows = []model.Savings{
		{MemberID: 1, Type: model.SimpananPokok, Amount: model.MustAmount("5000000.00")},
		{MemberID: 1, Type: model.SimpananWajib, Amount: model.MustAmount("2000000.00")},
		{MemberID: 1, Type: model.SimpananWajib, Amount: model.MustAmount("1500000.00")},
		{MemberID: 1, Type: model.SimpananSukarela, Amount: model.MustAmount("3000000.00")},
		{MemberID: 2, Type: model.SimpananPokok, Amount: model.MustAmount("999.00")},
	}
	f.loans.loans = []model.Loan{
		{BaseModel: model.BaseModel{ID: 1, CreatedAt: base}, MemberID: 1, Name: "Pinjaman Kulkas",
			Amount: model.MustAmount("4000000.00"), RemainingAmount: model.MustAmount("3000000.00"), MonthlyPayment: model.MustAmount("300000.00"), Status: model.LoanActive},
		{BaseModel: model.BaseModel{ID: 2, CreatedAt: base.Add(time.Hour)}, MemberID: 1, Name: "Pinjaman TV",
			Amount: model.MustAmount("6000000.00"), RemainingAmount: model.MustAmount("4500000.00"), MonthlyPayment: model.MustAmount("500000.00"), Status: model.LoanActive},
		{BaseModel: model.BaseModel{ID: 3, CreatedAt: base}, MemberID: 2, Name: "Bukan milik member 1",
			Amount: model.MustAmount("100.00"), RemainingAmount: model.MustAmount("100.00"), MonthlyPayment: model.MustAmount("10.00"), Status: model.LoanActive},
	}
	f.transactions.txs = []model.Transaction{
		{ID: 1, MemberID: 1, Type: model.TxExpense, Category: model.CategoryLoanPayment, Title: "Angsuran Pinjaman", Amount: model.MustAmount("500000.00"), CreatedAt: base},
		{ID: 2, MemberID: 1, Type: model.TxIncome, Category: model.CategorySavingsDeposit, Title: "Setoran Simpanan", Amount: model.MustAmount("1500000.00"), CreatedAt: base.Add(time.Minute)},
	}
	f.notifications.items = []model.Notification{
		{ID: 1, MemberID: 1, Title: "Payment Reminder", IsRead: false},
		{ID: 2, MemberID: 1, Title: "Account Update", IsRead: true},
		{ID: 3, MemberID: 1, Title: "New Promotion", IsRead: false},
		{ID: 4, MemberID: 2, Title: "Other", IsRead: false},
	}

	d, err := f.service().GetMemberDashboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Member.ID != 1 || d.Member.MemberNumber != "MB001234" {
		t.Fatalf("wrong member: %+v", d.Member)
	}
	if !d.TotalSavings.Equal(model.AmountFromInt(11500000)) {
		t.Fatalf("expected total savings 11500000 got %s", d.TotalSavings)
	}
	if len(d.SavingsBreakdown) != 3 {
		t.Fatalf("expected 3 savings groups got %d", len(d.SavingsBreakdown))
	}
	want := map[model.SavingsType]int64{
		model.SimpananPokok:    5000000,
		model.SimpananWajib:    3500000,
		model.SimpananSukarela: 3000000,
	}
	for _, b := range d.SavingsBreakdown {
		if !b.Amount.Equal(model.AmountFromInt(want[b.Type])) {
			t.Fatalf("%s: expected %d got %s", b.Type, want[b.Type], b.Amount)
		}
	}
	if !d.TotalLoans.Equal(model.AmountFromInt(7500000)) {
		t.Fatalf("expected total loans 7500000 got %s", d.TotalLoans)
	}
	if len(d.Loans) != 2 || d.Loans[0].Name != "Pinjaman TV" {
		t.Fatalf("expected 2 loans newest first, got %+v", d.Loans)
	}
	if len(d.RecentTransactions) != 2 || d.RecentTransactions[0].Title != "Setoran Simpanan" {
		t.Fatalf("expected newest transaction first, got %+v", d.RecentTransactions)
	}
	if d.UnreadNotifications != 2 {
		t.Fatalf("expected 2 unread got %d", d.UnreadNotifications)
	}
}

func TestDashboardTotalsMatchDetailArrays(t *testing.T) {
	cases := []struct {
		name    string
		savings []string
		loans   []string
	}{
		{"two rows", []string{"100.10", "200.20"}, []string{"50.05"}},
		{"three rows", []string{"0.10", "0.20", "1000000.99"}, []string{"1.01", "2.02", "3.03"}},
		{"no loans", []string{"42.00"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDashboardFixture()
			raw := model.SumAmounts()
			for i, s := range tc.savings {
				typ := model.SimpananWajib
				if i%2 == 1 {
					typ = model.SimpananSukarela
				}
				f.savings.rows = append(f.savings.rows, model.Savings{MemberID: 1, Type: typ, Amount: model.MustAmount(s)})
				raw = raw.Add(model.MustAmount(s))
			}
			for i, l := range tc.loans {
				f.loans.loans = append(f.loans.loans, model.Loan{
					BaseModel: model.BaseModel{ID: i + 1}, MemberID: 1,
					Amount: model.MustAmount("9999999.00"), RemainingAmount: model.MustAmount(l),
				})
			}

			d, err := f.service().GetMemberDashboard(context.Background(), 1)
			if err != nil {
				t.Fatal(err)
			}

			breakdownSum := model.SumAmounts()
			for _, b := range d.SavingsBreakdown {
				if b.Type == model.SimpananPokok {
					t.Fatalf("absent category must be omitted, got %+v", b)
				}
				breakdownSum = breakdownSum.Add(b.Amount)
			}
			if !d.TotalSavings.Equal(breakdownSum) || !d.TotalSavings.Equal(raw) {
				t.Fatalf("totalSavings %s, breakdown sum %s, raw sum %s", d.TotalSavings, breakdownSum, raw)
			}

			loanSum := model.SumAmounts()
			for _, l := range d.Loans {
				loanSum = loanSum.Add(l.RemainingAmount)
			}
			if !d.TotalLoans.Equal(loanSum) || len(d.Loans) != len(tc.loans) {
				t.Fatalf("totalLoans %s vs sum %s (loans %d/%d)", d.TotalLoans, loanSum, len(d.Loans), len(tc.loans))
			}
		})
	}
}

func TestRecentTransactionsCappedAtFive(t *testing.T) {
	f := newDashboardFixture()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		f.transactions.txs = append(f.transactions.txs, model.Transaction{
			ID: i + 1, MemberID: 1, Type: model.TxIncome, Category: model.CategorySavingsDeposit,
			Title: "tx", Amount: model.AmountFromInt(int64(i + 1)), CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	d, err := f.service().GetMemberDashboard(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if f.transactions.lastPage.Limit != 5 || f.transactions.lastPage.Offset != 0 {
		t.Fatalf("expected page {5 0}, got %+v", f.transactions.lastPage)
	}
	if len(d.RecentTransactions) != 5 {
		t.Fatalf("expected 5 recent transactions got %d", len(d.RecentTransactions))
	}
	for i := 1; i < len(d.RecentTransactions); i++ {
		if d.RecentTransactions[i].CreatedAt.After(d.RecentTransactions[i-1].CreatedAt) {
			t.Fatalf("transactions not newest first at %d", i)
		}
	}
	if d.RecentTransactions[0].ID != 8 {
		t.Fatalf("expected newest transaction id 8 first, got %d", d.RecentTransactions[0].ID)
	}
}

func TestGetMemberDashboardEmptyMember(t *testing.T) {
	d, err := newDashboardFixture().service().GetMemberDashboard(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !d.TotalSavings.IsZero() || !d.TotalLoans.IsZero() {
		t.Fatalf("expected zero totals, got %s / %s", d.TotalSavings, d.TotalLoans)
	}
	if len(d.SavingsBreakdown) != 0 || len(d.Loans) != 0 || len(d.RecentTransactions) != 0 || d.UnreadNotifications != 0 {
		t.Fatalf("expected empty dashboard, got %+v", d)
	}
	if d.SavingsBreakdown == nil || d.Loans == nil || d.RecentTransactions == nil {
		t.Fatalf("empty lists must be non-nil so they encode as []")
	}
}

func TestGetMemberDashboardNotFound(t *testing.T) {
	_, err := newDashboardFixture().service().GetMemberDashboard(context.Background(), 99999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 99999 {
		t.Fatalf("expected NotFoundError for 99999, got %#v", err)
	}
	if !strings.Contains(err.Error(), "99999") {
		t.Fatalf("message should name the id: %q", err.Error())
	}
}

func TestGetMemberDashboardPropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset by peer")

	cases := map[string]func(f *dashboardFixture){
		"member":        func(f *dashboardFixture) { f.members.err = storeErr },
		"savings":       func(f *dashboardFixture) { f.savings.err = storeErr },
		"loans":         func(f *dashboardFixture) { f.loans.err = storeErr },
		"transactions":  func(f *dashboardFixture) { f.transactions.err = storeErr },
		"notifications": func(f *dashboardFixture) { f.notifications.err = storeErr },
	}
	for name, breakIt := range cases {
		t.Run(name, func(t *testing.T) {
			f := newDashboardFixture()
			breakIt(f)
			d, err := f.service().GetMemberDashboard(context.Background(), 1)
			if err != storeErr {
				t.Fatalf("expected the store error unchanged, got %v", err)
			}
			if d != nil {
				t.Fatalf("expected no dashboard on failure")
			}
			if errors.Is(err, ErrNotFound) {
				t.Fatalf("store failure must not look like NotFound")
			}
		})
	}
}
