package handler

import (
	"context"

	"koperasi-portal/internal/service"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// GetTransactions returns one page of the member's history, newest first
// GET /trpc/getTransactions?input={"memberId":1,"limit":10,"offset":0}
func (h *TransactionHandler) GetTransactions(ctx context.Context, in *GetTransactionsInput) (interface{}, error) {
	transactions, err := h.service.GetTransactions(ctx, in.MemberID, in.page())
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
