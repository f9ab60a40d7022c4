package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wallet-service/internal/models"
	"wallet-service/internal/repositories"
	"wallet-service/internal/repositories/repository_mocks"
	"wallet-service/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionPageFetcherTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockTransactionRepositoryInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	breaker CircuitBreakerInterface
	fetcher PageFetcherInterface
	ctx     context.Context
	userID  uuid.UUID
	query   models.TransactionQuery
}

func TestTransactionPageFetcherSuite(t *testing.T) {
	suite.Run(t, new(TransactionPageFetcherTestSuite))
}

func (s *TransactionPageFetcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1})
	s.fetcher = NewTransactionPageFetcher(s.repo, s.breaker, s.metrics)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.query = models.ResolveTransactionQuery(models.DefaultFilterState(), models.FilterDefaults{})
}

func (s *TransactionPageFetcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionPageFetcherTestSuite) TestFetchPage_Success() {
	page := walletFixture(s.userID, 3)
	s.repo.EXPECT().GetWithFilters(s.ctx, s.userID, s.query).Return(page, int64(3), nil)

	result, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)

	s.NoError(err)
	s.Equal(page, result)
	s.Equal(models.CircuitBreakerClosed, s.breaker.GetState())
}

func (s *TransactionPageFetcherTestSuite) TestFetchPage_NilPageBecomesEmpty() {
	s.repo.EXPECT().GetWithFilters(s.ctx, s.userID, s.query).Return(nil, int64(0), nil)

	result, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)

	s.NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *TransactionPageFetcherTestSuite) TestFetchPage_RepositoryErrorCountsAsFailure() {
	s.repo.EXPECT().GetWithFilters(s.ctx, s.userID, s.query).Return(nil, int64(0), errors.New("connection refused"))
	s.metrics.EXPECT().IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "repository"})

	result, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)

	s.Error(err)
	s.Nil(result)
	s.Equal(1, s.breaker.GetFailureCount())
}

func (s *TransactionPageFetcherTestSuite) TestFetchPage_InvalidFilterDoesNotTripBreaker() {
	invalid := fmt.Errorf("%w: from %q", repositories.ErrInvalidDateFilter, "yesterday")
	s.repo.EXPECT().GetWithFilters(s.ctx, s.userID, s.query).Return(nil, int64(0), invalid).Times(3)
	s.metrics.EXPECT().IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "invalid_filter"}).Times(3)

	for i := 0; i < 3; i++ {
		_, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)
		s.ErrorIs(err, repositories.ErrInvalidDateFilter)
	}

	s.Equal(0, s.breaker.GetFailureCount())
	s.False(s.breaker.IsOpen())
}

func (s *TransactionPageFetcherTestSuite) TestFetchPage_OpenBreakerRejectsWithoutQuerying() {
	s.repo.EXPECT().GetWithFilters(s.ctx, s.userID, s.query).Return(nil, int64(0), errors.New("timeout")).Times(2)
	s.metrics.EXPECT().IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "repository"}).Times(2)
	s.metrics.EXPECT().IncrementCounter("circuit_breaker.open", map[string]string{"service": "database"}).Times(2)
	s.metrics.EXPECT().IncrementCounter("wallet.fetch.failed", map[string]string{"reason": "circuit_open"})

	for i := 0; i < 2; i++ {
		_, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)
		s.Error(err)
	}

	_, err := s.fetcher.FetchPage(s.ctx, s.userID, s.query)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}
