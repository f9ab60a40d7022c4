package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wallet-service/internal/models"

	"github.com/google/uuid"
)

var ErrMalformedPage = errors.New("malformed page result")

// LoadOutcome describes what a load-more attempt did
type LoadOutcome int

const (
	// LoadSkipped means a guard rejected the request and nothing was fetched
	LoadSkipped LoadOutcome = iota
	// LoadAppended means a full page was merged and more may follow
	LoadAppended
	// LoadEnded means the source is exhausted; a short page may have been merged
	LoadEnded
	// LoadFailed means the fetch failed and state is unchanged
	LoadFailed
	// LoadStale means the result arrived after a reset and was discarded
	LoadStale
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadSkipped:
		return "skipped"
	case LoadAppended:
		return "appended"
	case LoadEnded:
		return "ended"
	case LoadFailed:
		return "failed"
	case LoadStale:
		return "stale"
	default:
		return "unknown"
	}
}

// LoadResult reports a load-more attempt. Advanced is true when the offset moved.
type LoadResult struct {
	Outcome    LoadOutcome
	Merged     int
	Advanced   bool
	Generation uint64
	Err        error
}

// CoordinatorSnapshot is a copy of the coordinator's observable state
type CoordinatorSnapshot struct {
	Data       []models.Transaction
	State      string
	Skip       int
	Loading    bool
	EndReached bool
	FetchAll   bool
	Failed     bool
	Generation uint64
}

// PaginationCoordinator accumulates pages of one wallet view.
// It moves between idle, fetching_more and end_reached; a refetch returns it to idle.
type PaginationCoordinator struct {
	mu         sync.Mutex
	fetcher    PageFetcherInterface
	logger     WalletLoggerInterface
	metrics    MetricsRecorderInterface
	sessionID  uuid.UUID
	userID     uuid.UUID
	pageSize   int
	fetchAll   bool
	state      string
	skip       int
	loading    bool
	failed     bool
	data       []models.Transaction
	generation uint64
}

// NewPaginationCoordinator creates an idle coordinator with no data
func NewPaginationCoordinator(
	sessionID, userID uuid.UUID,
	pageSize int,
	fetchAll bool,
	fetcher PageFetcherInterface,
	logger WalletLoggerInterface,
	metrics MetricsRecorderInterface,
) *PaginationCoordinator {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return &PaginationCoordinator{
		fetcher:   fetcher,
		logger:    logger,
		metrics:   metrics,
		sessionID: sessionID,
		userID:    userID,
		pageSize:  pageSize,
		fetchAll:  fetchAll,
		state:     models.PaginationIdle,
		data:      []models.Transaction{},
	}
}

// Invalidate resets the cursor and makes every in-flight fetch stale.
// Accumulated data is kept until the next successful refetch.
func (pc *PaginationCoordinator) Invalidate() uint64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.generation++
	pc.state = models.PaginationIdle
	pc.skip = 0
	pc.loading = false
	return pc.generation
}

// Refetch resets the coordinator and loads the first page for query.
// On failure the list is cleared so it never shows records from stale criteria,
// and load-more stays disabled until a refetch succeeds.
func (pc *PaginationCoordinator) Refetch(ctx context.Context, query models.TransactionQuery) error {
	pc.mu.Lock()
	pc.generation++
	gen := pc.generation
	pc.state = models.PaginationIdle
	pc.skip = 0
	pc.loading = true
	pc.failed = false
	pc.mu.Unlock()

	query.Skip = 0
	query.Take = pc.pageSize
	if pc.fetchAll {
		query.Take = 0
	}

	start := time.Now()
	page, err := pc.fetcher.FetchPage(ctx, pc.userID, query)
	if err == nil && page == nil {
		err = ErrMalformedPage
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if gen != pc.generation {
		pc.logger.LogStaleResultDiscarded(ctx, pc.sessionID, "refetch")
		pc.metrics.IncrementCounter("wallet.refetch", map[string]string{"status": "stale"})
		return nil
	}

	pc.loading = false

	if err != nil {
		pc.data = []models.Transaction{}
		pc.failed = true
		pc.logger.LogFetchFailed(ctx, pc.sessionID, "refetch", err.Error())
		pc.metrics.IncrementCounter("wallet.refetch", map[string]string{"status": "failed"})
		return err
	}

	pc.data = MergeByID(nil, page)
	if !pc.fetchAll && len(page) < pc.pageSize {
		pc.state = models.PaginationEndReached
	}

	duration := time.Since(start)
	pc.logger.LogFetchCompleted(ctx, pc.sessionID, "refetch", len(page), duration.Milliseconds())
	pc.metrics.IncrementCounter("wallet.refetch", map[string]string{"status": "success"})
	pc.metrics.RecordProcessingTime("wallet.fetch", duration)
	return nil
}

// OnEndReached requests the page after the current offset.
// It is a no-op while fetching, after the end was reached, or in fetch-all mode.
func (pc *PaginationCoordinator) OnEndReached(ctx context.Context, query models.TransactionQuery) LoadResult {
	pc.mu.Lock()
	if pc.fetchAll || pc.loading || pc.failed || pc.state != models.PaginationIdle {
		gen := pc.generation
		pc.mu.Unlock()
		pc.metrics.IncrementCounter("wallet.load_more", map[string]string{"outcome": LoadSkipped.String()})
		return LoadResult{Outcome: LoadSkipped, Generation: gen}
	}
	pc.state = models.PaginationFetchingMore
	gen := pc.generation
	nextSkip := pc.skip + pc.pageSize
	pc.mu.Unlock()

	query.Skip = nextSkip
	query.Take = pc.pageSize

	start := time.Now()
	page, err := pc.fetcher.FetchPage(ctx, pc.userID, query)

	result := pc.completeLoad(ctx, gen, nextSkip, page, err)
	if result.Outcome != LoadStale && result.Outcome != LoadFailed {
		pc.metrics.RecordProcessingTime("wallet.fetch", time.Since(start))
		pc.logger.LogFetchCompleted(ctx, pc.sessionID, "load_more", result.Merged, time.Since(start).Milliseconds())
	}
	pc.metrics.IncrementCounter("wallet.load_more", map[string]string{"outcome": result.Outcome.String()})
	return result
}

func (pc *PaginationCoordinator) completeLoad(ctx context.Context, gen uint64, nextSkip int, page []models.Transaction, err error) LoadResult {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if gen != pc.generation {
		pc.logger.LogStaleResultDiscarded(ctx, pc.sessionID, "load_more")
		return LoadResult{Outcome: LoadStale, Generation: gen}
	}

	if err != nil {
		pc.state = models.PaginationIdle
		pc.logger.LogFetchFailed(ctx, pc.sessionID, "load_more", err.Error())
		return LoadResult{Outcome: LoadFailed, Generation: gen, Err: err}
	}

	if len(page) == 0 {
		pc.state = models.PaginationEndReached
		return LoadResult{Outcome: LoadEnded, Generation: gen}
	}

	pc.data = MergeByID(pc.data, page)
	pc.skip = nextSkip

	if len(page) < pc.pageSize {
		pc.state = models.PaginationEndReached
		return LoadResult{Outcome: LoadEnded, Merged: len(page), Advanced: true, Generation: gen}
	}

	pc.state = models.PaginationIdle
	return LoadResult{Outcome: LoadAppended, Merged: len(page), Advanced: true, Generation: gen}
}

// Snapshot returns a copy of the coordinator state
func (pc *PaginationCoordinator) Snapshot() CoordinatorSnapshot {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	data := make([]models.Transaction, len(pc.data))
	copy(data, pc.data)

	return CoordinatorSnapshot{
		Data:       data,
		State:      pc.state,
		Skip:       pc.skip,
		Loading:    pc.loading || pc.state == models.PaginationFetchingMore,
		EndReached: pc.state == models.PaginationEndReached,
		FetchAll:   pc.fetchAll,
		Failed:     pc.failed,
		Generation: pc.generation,
	}
}

// NeedsRefetch reports whether the last refetch failed
func (pc *PaginationCoordinator) NeedsRefetch() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.failed
}

// Generation returns the current reset generation
func (pc *PaginationCoordinator) Generation() uint64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.generation
}

// MergeByID appends incoming records to existing ones, keyed by id.
// A duplicate id keeps its existing position and takes the incoming value.
func MergeByID(existing, incoming []models.Transaction) []models.Transaction {
	merged := make([]models.Transaction, 0, len(existing)+len(incoming))
	index := make(map[uuid.UUID]int, len(existing)+len(incoming))

	for _, tx := range existing {
		if i, ok := index[tx.ID]; ok {
			merged[i] = tx
			continue
		}
		index[tx.ID] = len(merged)
		merged = append(merged, tx)
	}

	for _, tx := range incoming {
		if i, ok := index[tx.ID]; ok {
			merged[i] = tx
			continue
		}
		index[tx.ID] = len(merged)
		merged = append(merged, tx)
	}

	return merged
}
