package services

import (
	"context"
	"errors"
	"fmt"

	"wallet-service/internal/models"
	"wallet-service/internal/repositories"

	"github.com/google/uuid"
)

// TransactionQueryService answers one-off filtered reads without a session
type TransactionQueryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionQueryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryServiceInterface {
	return &TransactionQueryService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// ListTransactions resolves the effective query for filters and defaults and returns
// the matching page, the total match count and the query that was run.
func (s *TransactionQueryService) ListTransactions(
	ctx context.Context,
	userID uuid.UUID,
	filters models.FilterState,
	defaults models.FilterDefaults,
) ([]models.Transaction, int64, models.TransactionQuery, error) {
	query := models.ResolveTransactionQuery(filters, defaults)

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, userID, query)
	if err != nil {
		status := "failed"
		if errors.Is(err, repositories.ErrInvalidDateFilter) {
			status = "invalid_filter"
		}
		s.metrics.IncrementCounter("transactions.listed", map[string]string{"status": status})
		return nil, 0, query, fmt.Errorf("failed to list transactions: %w", err)
	}

	s.metrics.IncrementCounter("transactions.listed", map[string]string{"status": "success"})
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, total, query, nil
}

// GetTransaction returns one of the user's transactions
func (s *TransactionQueryService) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListCategoryTree returns root categories with their children
func (s *TransactionQueryService) ListCategoryTree(ctx context.Context) ([]models.CategoryNode, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return models.BuildCategoryTree(categories), nil
}
