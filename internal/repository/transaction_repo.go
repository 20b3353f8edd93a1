package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindByMember(ctx context.Context, memberID int, page Page) ([]model.Transaction, error)
	Create(ctx context.Context, tx *model.Transaction) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindByMember(ctx context.Context, memberID int, page Page) ([]model.Transaction, error) {
	transactions := make([]model.Transaction, 0)
	err := r.db.WithContext(ctx).
		Scopes(paginate(page)).
		Where("member_id = ?", memberID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}
