package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type LoanRepository interface {
	FindByMember(ctx context.Context, memberID int) ([]model.Loan, error)
	Create(ctx context.Context, loan *model.Loan) error
}

type loanRepo struct {
	db *gorm.DB
}

func NewLoanRepo(db *gorm.DB) LoanRepository {
	return &loanRepo{db}
}

func (r *loanRepo) FindByMember(ctx context.Context, memberID int) ([]model.Loan, error) {
	loans := make([]model.Loan, 0)
	err := r.db.WithContext(ctx).
		Scopes(newestFirst).
		Where("member_id = ?", memberID).
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *loanRepo) Create(ctx context.Context, loan *model.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}
