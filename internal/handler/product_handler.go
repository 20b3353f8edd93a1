package handler

import (
	"context"

	"koperasi-portal/internal/service"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists the catalog, optionally only one status
// GET /trpc/getProducts?input={"status":"promo"}
func (h *ProductHandler) GetProducts(ctx context.Context, in *GetProductsInput) (interface{}, error) {
	products, err := h.service.GetProducts(ctx, in.Status, in.page())
	if err != nil {
		return nil, err
	}
	return products, nil
}
