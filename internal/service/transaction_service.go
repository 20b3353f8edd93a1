package service

import (
	"context"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"
)

type TransactionService interface {
	GetTransactions(ctx context.Context, memberID int, page repository.Page) ([]model.Transaction, error)
}

type transactionService struct {
	txRepo repository.TransactionRepository
}

func NewTransactionService(txRepo repository.TransactionRepository) TransactionService {
	return &transactionService{txRepo: txRepo}
}

func (s *transactionService) GetTransactions(ctx context.Context, memberID int, page repository.Page) ([]model.Transaction, error) {
	return s.txRepo.FindByMember(ctx, memberID, page)
}
