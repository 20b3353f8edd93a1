package repository

import (
	"context"

	"koperasi-portal/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll(ctx context.Context, status *model.ProductStatus, page Page) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll(ctx context.Context, status *model.ProductStatus, page Page) ([]model.Product, error) {
	products := make([]model.Product, 0)
	query := r.db.WithContext(ctx).Scopes(paginate(page))
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}
