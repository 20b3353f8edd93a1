package service

import (
	"context"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
)

type ProductService interface {
	GetProducts(ctx context.Context, status *model.ProductStatus, page repository.Page) ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// GetProducts lists the catalog newest first; a nil status returns every product.
func (s *productService) GetProducts(ctx context.Context, status *model.ProductStatus, page repository.Page) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx, status, page)
}
