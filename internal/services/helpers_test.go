package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func newTestLogger() WalletLoggerInterface {
	return NewWalletLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

// walletFixture returns n transactions for userID, newest first
func walletFixture(userID uuid.UUID, n int) []models.Transaction {
	base := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Transaction{
			ID:              uuid.New(),
			UserID:          userID,
			Title:           fmt.Sprintf("Purchase %d", i),
			Amount:          decimal.NewFromInt(int64(10 + i)),
			TransactionType: models.TransactionTypeExpense,
			CategoryID:      "groceries",
			OccurredOn:      base.AddDate(0, 0, -i),
		})
	}
	return out
}

// stubFetcher serves pages out of an in-memory wallet and records every query
type stubFetcher struct {
	mu      sync.Mutex
	records []models.Transaction
	calls   []models.TransactionQuery
	err     error
	nilPage bool

	// when gate is set, fetches signal started and then block until gate is closed
	gate    chan struct{}
	started chan struct{}
}

func newStubFetcher(records []models.Transaction) *stubFetcher {
	return &stubFetcher{records: records}
}

func (f *stubFetcher) FetchPage(ctx context.Context, userID uuid.UUID, query models.TransactionQuery) ([]models.Transaction, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	err := f.err
	nilPage := f.nilPage
	gate := f.gate
	started := f.started
	records := f.records
	f.mu.Unlock()

	if gate != nil {
		if started != nil {
			started <- struct{}{}
		}
		<-gate
	}

	if err != nil {
		return nil, err
	}
	if nilPage {
		return nil, nil
	}

	matched := make([]models.Transaction, 0, len(records))
	for _, tx := range records {
		if query.Title != "" && !strings.Contains(strings.ToLower(tx.Title), strings.ToLower(query.Title)) {
			continue
		}
		matched = append(matched, tx)
	}

	if query.Skip >= len(matched) {
		return []models.Transaction{}, nil
	}
	end := len(matched)
	if query.Take > 0 && query.Skip+query.Take < end {
		end = query.Skip + query.Take
	}
	return matched[query.Skip:end], nil
}

func (f *stubFetcher) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *stubFetcher) setGate(gate chan struct{}, started chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = gate
	f.started = started
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *stubFetcher) lastCall() models.TransactionQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *stubFetcher) callsSnapshot() []models.TransactionQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.TransactionQuery, len(f.calls))
	copy(out, f.calls)
	return out
}
