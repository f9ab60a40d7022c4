package repositories

import (
	"context"

	"wallet-service/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)

	// GetWithFilters returns one page of the user's transactions matching the query,
	// newest first, together with the total number of matches.
	GetWithFilters(ctx context.Context, userID uuid.UUID, query models.TransactionQuery) ([]models.Transaction, int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]models.Category, error)
}
