package services

import (
	"context"
	"time"

	"wallet-service/internal/models"

	"github.com/google/uuid"
)

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	GetFailureCount() int
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PageFetcherInterface loads one page of transactions for the pagination coordinator
type PageFetcherInterface interface {
	FetchPage(ctx context.Context, userID uuid.UUID, query models.TransactionQuery) ([]models.Transaction, error)
}

// WalletSessionServiceInterface owns the filter state of open wallet views
type WalletSessionServiceInterface interface {
	CreateSession(ctx context.Context, userID uuid.UUID, defaults models.FilterDefaults, fetchAll bool) (*models.WalletSnapshot, error)
	Dispatch(ctx context.Context, sessionID, userID uuid.UUID, action models.FilterAction) (*models.WalletSnapshot, error)
	LoadMore(ctx context.Context, sessionID, userID uuid.UUID) (*models.WalletSnapshot, error)
	Snapshot(ctx context.Context, sessionID, userID uuid.UUID) (*models.WalletSnapshot, error)
	CloseSession(ctx context.Context, sessionID, userID uuid.UUID) error
	ActiveSessions() int
	StartSweeper(ctx context.Context)
	Shutdown()
}

// TransactionQueryServiceInterface serves stateless transaction and category reads
type TransactionQueryServiceInterface interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filters models.FilterState, defaults models.FilterDefaults) ([]models.Transaction, int64, models.TransactionQuery, error)
	GetTransaction(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	ListCategoryTree(ctx context.Context) ([]models.CategoryNode, error)
}

// TransactionGeneratorInterface generates realistic wallet data for development
type TransactionGeneratorInterface interface {
	GenerateWallet(userID uuid.UUID, startDate, endDate time.Time, count int) []models.Transaction
	GenerateMonthlySalary(userID uuid.UUID, startDate, endDate time.Time) []models.Transaction
}

type WalletLoggerInterface interface {
	LogSessionCreated(ctx context.Context, sessionID, userID uuid.UUID, fetchAll bool)
	LogSessionClosed(ctx context.Context, sessionID uuid.UUID, reason string)
	LogActionDispatched(ctx context.Context, sessionID uuid.UUID, action string, criteriaChanged bool)
	LogRefetchScheduled(ctx context.Context, sessionID uuid.UUID, delay time.Duration)
	LogFetchCompleted(ctx context.Context, sessionID uuid.UUID, kind string, records int, durationMs int64)
	LogFetchFailed(ctx context.Context, sessionID uuid.UUID, kind string, errorMsg string)
	LogStaleResultDiscarded(ctx context.Context, sessionID uuid.UUID, kind string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
