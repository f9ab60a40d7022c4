package services

import (
	"context"
	"errors"
	"fmt"

	"wallet-service/internal/models"
	"wallet-service/internal/repositories"

	"github.com/google/uuid"
)

// TransactionPageFetcher loads wallet pages from the transaction repository
type TransactionPageFetcher struct {
	transactionRepo repositories.TransactionRepositoryInterface
	circuitBreaker  CircuitBreakerInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionPageFetcher(
	transactionRepo repositories.TransactionRepositoryInterface,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
) PageFetcherInterface {
	return &TransactionPageFetcher{
		transactionRepo: transactionRepo,
		circuitBreaker:  circuitBreaker,
		metrics:         metrics,
	}
}

// FetchPage returns the records of one page. A malformed filter is reported
// without counting against the circuit breaker.
func (f *TransactionPageFetcher) FetchPage(ctx context.Context, userID uuid.UUID, query models.TransactionQuery) ([]models.Transaction, error) {
	if f.circuitBreaker.IsOpen() {
		f.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": "database",
		})
		f.metrics.IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "circuit_open"})
		return nil, ErrCircuitBreakerOpen
	}

	page, _, err := f.transactionRepo.GetWithFilters(ctx, userID, query)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidDateFilter) {
			f.metrics.IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "invalid_filter"})
			return nil, err
		}
		f.circuitBreaker.RecordFailure()
		f.metrics.IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "repository"})
		if f.circuitBreaker.GetState() == models.CircuitBreakerOpen {
			f.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
				"service": "database",
			})
		}
		return nil, fmt.Errorf("failed to fetch transaction page: %w", err)
	}

	f.circuitBreaker.RecordSuccess()
	if page == nil {
		page = []models.Transaction{}
	}
	return page, nil
}
