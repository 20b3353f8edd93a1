package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type SavingsRepository interface {
	SumByType(ctx context.Context, memberID int) ([]model.SavingsBreakdown, error)
	Create(ctx context.Context, savings *model.Savings) error
}

type savingsRepo struct {
	db *gorm.DB
}

func NewSavingsRepo(db *gorm.DB) SavingsRepository {
	return &savingsRepo{db}
}

// SumByType groups a member's savings by type. Types without rows are absent, not zero.
func (r *savingsRepo) SumByType(ctx context.Context, memberID int) ([]model.SavingsBreakdown, error) {
	breakdown := make([]model.SavingsBreakdown, 0, 3)
	err := r.db.WithContext(ctx).Model(&model.Savings{}).
		Select("type, COALESCE(SUM(amount), 0) AS amount").
		Where("member_id = ?", memberID).
		Group("type").
		Order("type ASC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (r *savingsRepo) Create(ctx context.Context, savings *model.Savings) error {
	return r.db.WithContext(ctx).Create(savings).Error
}
