package service

import (
	"context"
	"errors"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"

	"gorm.io/gorm"
)

const recentTransactionLimit = 5

type DashboardService interface {
	GetMemberDashboard(ctx context.Context, memberID int) (*model.Dashboard, error)
}

type dashboardService struct {
	memberRepo       repository.MemberRepository
	savingsRepo      repository.SavingsRepository
	loanRepo         repository.LoanRepository
	txRepo           repository.TransactionRepository
	notificationRepo repository.NotificationRepository
}

func NewDashboardService(
	memberRepo repository.MemberRepository,
	savingsRepo repository.SavingsRepository,
	loanRepo repository.LoanRepository,
	txRepo repository.TransactionRepository,
	notificationRepo repository.NotificationRepository,
) DashboardService {
	return &dashboardService{
		memberRepo:       memberRepo,
		savingsRepo:      savingsRepo,
		loanRepo:         loanRepo,
		txRepo:           txRepo,
		notificationRepo: notificationRepo,
	}
}

// GetMemberDashboard runs the member-scoped reads one after another and stops at the first
// store error. Totals are summed from the returned rows so they always match the detail arrays.
func (s *dashboardService) GetMemberDashboard(ctx context.Context, memberID int) (*model.Dashboard, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Member", ID: memberID}
		}
		return nil, err
	}

	breakdown, err := s.savingsRepo.SumByType(ctx, memberID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRepo.FindByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	recent, err := s.txRepo.FindByMember(ctx, memberID, repository.Page{Limit: recentTransactionLimit})
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		Member:              *member,
		TotalSavings:        totalSavings(breakdown),
		SavingsBreakdown:    breakdown,
		TotalLoans:          totalRemaining(loans),
		Loans:               loans,
		RecentTransactions:  recent,
		UnreadNotifications: unread,
	}, nil
}

func totalSavings(breakdown []model.SavingsBreakdown) model.Amount {
	amounts := make([]model.Amount, len(breakdown))
	for i, b := range breakdown {
		amounts[i] = b.Amount
	}
	return model.SumAmounts(amounts...)
}

func totalRemaining(loans []model.Loan) model.Amount {
	amounts := make([]model.Amount, len(loans))
	for i, l := range loans {
		amounts[i] = l.RemainingAmount
	}
	return model.SumAmounts(amounts...)
}
