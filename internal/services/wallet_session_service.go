package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound       = errors.New("wallet session not found")
	ErrSessionForbidden      = errors.New("wallet session belongs to another user")
	ErrTooManySessions       = errors.New("too many open wallet sessions")
	ErrActionNotDispatchable = errors.New("pagination advances through load-more only")
)

// WalletSessionConfig tunes session behaviour
type WalletSessionConfig struct {
	PageSize           int
	DebounceDelay      time.Duration
	SessionTTL         time.Duration
	SweepInterval      time.Duration
	MaxSessionsPerUser int
	FetchTimeout       time.Duration
}

func DefaultWalletSessionConfig() WalletSessionConfig {
	return WalletSessionConfig{
		PageSize:           models.DefaultPageSize,
		DebounceDelay:      time.Second,
		SessionTTL:         30 * time.Minute,
		SweepInterval:      time.Minute,
		MaxSessionsPerUser: 10,
		FetchTimeout:       10 * time.Second,
	}
}

// WalletSessionConfigFrom converts environment configuration, keeping defaults for unset values
func WalletSessionConfigFrom(cfg config.WalletConfig) WalletSessionConfig {
	out := DefaultWalletSessionConfig()
	if cfg.PageSize > 0 {
		out.PageSize = cfg.PageSize
	}
	if cfg.DebounceDelay >= 0 {
		out.DebounceDelay = cfg.DebounceDelay
	}
	if cfg.SessionTTL > 0 {
		out.SessionTTL = cfg.SessionTTL
	}
	if cfg.SweepInterval > 0 {
		out.SweepInterval = cfg.SweepInterval
	}
	if cfg.MaxSessionsPerUser > 0 {
		out.MaxSessionsPerUser = cfg.MaxSessionsPerUser
	}
	return out
}

// walletSession is the filter state of one open wallet view.
// mu serializes actions; the coordinator guards its own data.
type walletSession struct {
	mu             sync.Mutex
	id             uuid.UUID
	userID         uuid.UUID
	filters        models.FilterState
	defaults       models.FilterDefaults
	fetchAll       bool
	refetchPending bool
	closed         bool
	lastAccess     time.Time
	coordinator    *PaginationCoordinator
	debouncer      *Debouncer
}

type WalletSessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*walletSession
	fetcher  PageFetcherInterface
	logger   WalletLoggerInterface
	metrics  MetricsRecorderInterface
	config   WalletSessionConfig
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

func NewWalletSessionService(
	fetcher PageFetcherInterface,
	logger WalletLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg WalletSessionConfig,
) WalletSessionServiceInterface {
	return newWalletSessionService(fetcher, logger, metrics, cfg)
}

func newWalletSessionService(
	fetcher PageFetcherInterface,
	logger WalletLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg WalletSessionConfig,
) *WalletSessionService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = models.DefaultPageSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultWalletSessionConfig().FetchTimeout
	}
	return &WalletSessionService{
		sessions: make(map[uuid.UUID]*walletSession),
		fetcher:  fetcher,
		logger:   logger,
		metrics:  metrics,
		config:   cfg,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// CreateSession opens a wallet view with default filters and loads its first page.
// A failed first load still opens the session; the next load-more retries it.
func (s *WalletSessionService) CreateSession(ctx context.Context, userID uuid.UUID, defaults models.FilterDefaults, fetchAll bool) (*models.WalletSnapshot, error) {
	sess := &walletSession{
		id:         uuid.New(),
		userID:     userID,
		filters:    models.NewFilterState(s.config.PageSize),
		defaults:   defaults,
		fetchAll:   fetchAll,
		lastAccess: s.now(),
		debouncer:  NewDebouncer(s.config.DebounceDelay),
	}
	sess.coordinator = NewPaginationCoordinator(sess.id, userID, s.config.PageSize, fetchAll, s.fetcher, s.logger, s.metrics)

	if err := s.register(sess); err != nil {
		return nil, err
	}

	s.logger.LogSessionCreated(ctx, sess.id, userID, fetchAll)
	s.metrics.IncrementCounter("wallet.session.created", nil)

	query := models.ResolveTransactionQuery(sess.filters, sess.defaults)
	_ = sess.coordinator.Refetch(ctx, query)

	return s.snapshot(sess), nil
}

func (s *WalletSessionService) register(sess *walletSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.MaxSessionsPerUser > 0 {
		open := 0
		for _, existing := range s.sessions {
			if existing.userID == sess.userID {
				open++
			}
		}
		if open >= s.config.MaxSessionsPerUser {
			return ErrTooManySessions
		}
	}

	s.sessions[sess.id] = sess
	s.metrics.RecordGauge("wallet.sessions.active", float64(len(s.sessions)), nil)
	return nil
}

// Dispatch applies a filter action. When the selected records change the
// pagination offset rewinds and a refetch is scheduled after the debounce delay.
func (s *WalletSessionService) Dispatch(ctx context.Context, sessionID, userID uuid.UUID, action models.FilterAction) (*models.WalletSnapshot, error) {
	if _, ok := action.(models.AdvancePage); ok {
		return nil, ErrActionNotDispatchable
	}

	sess, err := s.lookup(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	next, changed := models.ApplyFilterAction(sess.filters, action)
	sess.filters = next
	sess.lastAccess = s.now()
	if changed {
		sess.refetchPending = true
		sess.debouncer.Trigger(func() { s.runRefetch(sess) })
	}
	sess.mu.Unlock()

	name := "unknown"
	if action != nil {
		name = action.ActionName()
	}
	s.logger.LogActionDispatched(ctx, sessionID, name, changed)
	s.metrics.IncrementCounter("wallet.action", map[string]string{
		"action":           name,
		"criteria_changed": boolLabel(changed),
	})
	if changed {
		s.logger.LogRefetchScheduled(ctx, sessionID, s.config.DebounceDelay)
	}

	return s.snapshot(sess), nil
}

// runRefetch reads the filters current at fire time and reloads the first page
func (s *WalletSessionService) runRefetch(sess *walletSession) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.FetchTimeout)
	defer cancel()

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return
	}
	query := models.ResolveTransactionQuery(sess.filters, sess.defaults)
	sess.refetchPending = false
	sess.mu.Unlock()

	_ = sess.coordinator.Refetch(ctx, query)
}

// LoadMore requests the next page. It does nothing while a refetch is pending
// and retries the first page when the last refetch failed.
func (s *WalletSessionService) LoadMore(ctx context.Context, sessionID, userID uuid.UUID) (*models.WalletSnapshot, error) {
	sess, err := s.lookup(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.lastAccess = s.now()
	if sess.refetchPending {
		sess.mu.Unlock()
		s.metrics.IncrementCounter("wallet.load_more", map[string]string{"outcome": LoadSkipped.String()})
		return s.snapshot(sess), nil
	}
	query := models.ResolveTransactionQuery(sess.filters, sess.defaults)
	retry := sess.coordinator.NeedsRefetch()
	sess.mu.Unlock()

	if retry {
		_ = sess.coordinator.Refetch(ctx, query)
		return s.snapshot(sess), nil
	}

	result := sess.coordinator.OnEndReached(ctx, query)
	if result.Advanced {
		sess.mu.Lock()
		if !sess.refetchPending && sess.coordinator.Generation() == result.Generation {
			sess.filters = models.ReduceFilterState(sess.filters, models.AdvancePage{})
		}
		sess.mu.Unlock()
	}

	return s.snapshot(sess), nil
}

func (s *WalletSessionService) Snapshot(ctx context.Context, sessionID, userID uuid.UUID) (*models.WalletSnapshot, error) {
	sess, err := s.lookup(sessionID, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.lastAccess = s.now()
	sess.mu.Unlock()

	return s.snapshot(sess), nil
}

// CloseSession cancels any pending refetch and forgets the session
func (s *WalletSessionService) CloseSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	if _, err := s.lookup(sessionID, userID); err != nil {
		return err
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	active := len(s.sessions)
	s.mu.Unlock()

	s.teardown(sess)
	s.logger.LogSessionClosed(ctx, sessionID, "closed")
	s.metrics.IncrementCounter("wallet.session.closed", nil)
	s.metrics.RecordGauge("wallet.sessions.active", float64(active), nil)
	return nil
}

func (s *WalletSessionService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper expires idle sessions every sweep interval until ctx is done or Shutdown is called
func (s *WalletSessionService) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.config.SweepInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				s.sweepExpired(ctx)
			}
		}
	}()
}

func (s *WalletSessionService) sweepExpired(ctx context.Context) int {
	cutoff := s.now().Add(-s.config.SessionTTL)

	s.mu.Lock()
	var expired []*walletSession
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastAccess.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		s.teardown(sess)
		s.logger.LogSessionClosed(ctx, sess.id, "expired")
		s.metrics.IncrementCounter("wallet.session.expired", nil)
	}
	if len(expired) > 0 {
		s.metrics.RecordGauge("wallet.sessions.active", float64(active), nil)
	}
	return len(expired)
}

// Shutdown stops the sweeper and closes every session
func (s *WalletSessionService) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*walletSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		s.teardown(sess)
		s.logger.LogSessionClosed(context.Background(), sess.id, "shutdown")
	}
	s.metrics.RecordGauge("wallet.sessions.active", 0, nil)
}

func (s *WalletSessionService) teardown(sess *walletSession) {
	sess.mu.Lock()
	sess.closed = true
	sess.refetchPending = false
	sess.mu.Unlock()

	sess.debouncer.Stop()
	sess.coordinator.Invalidate()
}

func (s *WalletSessionService) lookup(sessionID, userID uuid.UUID) (*walletSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.userID != userID {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

func (s *WalletSessionService) snapshot(sess *walletSession) *models.WalletSnapshot {
	sess.mu.Lock()
	filters := sess.filters.Clone()
	defaults := sess.defaults
	pending := sess.refetchPending
	sess.mu.Unlock()

	page := sess.coordinator.Snapshot()

	return &models.WalletSnapshot{
		SessionID:      sess.id,
		Filters:        filters,
		Defaults:       defaults,
		Query:          models.ResolveTransactionQuery(filters, defaults),
		Data:           page.Data,
		Loading:        page.Loading,
		EndReached:     page.EndReached,
		State:          page.State,
		FetchAll:       page.FetchAll,
		RefetchPending: pending,
		FetchFailed:    page.Failed,
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
