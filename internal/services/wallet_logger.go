package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey carries the request trace id through context.Context
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying the request trace id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WalletLogger provides structured logging for wallet session operations
type WalletLogger struct {
	logger *slog.Logger
}

// NewWalletLogger creates a new wallet logger
func NewWalletLogger(logger *slog.Logger) WalletLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &WalletLogger{
		logger: logger,
	}
}

func (wl *WalletLogger) LogSessionCreated(ctx context.Context, sessionID, userID uuid.UUID, fetchAll bool) {
	wl.logger.InfoContext(ctx, "wallet session created",
		slog.String("event_type", "wallet_session_created"),
		slog.String("session_id", sessionID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("fetch_all", fetchAll),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogSessionClosed(ctx context.Context, sessionID uuid.UUID, reason string) {
	wl.logger.InfoContext(ctx, "wallet session closed",
		slog.String("event_type", "wallet_session_closed"),
		slog.String("session_id", sessionID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogActionDispatched logs a filter action. The action payload is not logged since
// search text may contain personal data.
func (wl *WalletLogger) LogActionDispatched(ctx context.Context, sessionID uuid.UUID, action string, criteriaChanged bool) {
	wl.logger.DebugContext(ctx, "wallet filter action dispatched",
		slog.String("event_type", "wallet_action_dispatched"),
		slog.String("session_id", sessionID.String()),
		slog.String("action", action),
		slog.Bool("criteria_changed", criteriaChanged),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogRefetchScheduled(ctx context.Context, sessionID uuid.UUID, delay time.Duration) {
	wl.logger.DebugContext(ctx, "wallet refetch scheduled",
		slog.String("event_type", "wallet_refetch_scheduled"),
		slog.String("session_id", sessionID.String()),
		slog.Int64("delay_ms", delay.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogFetchCompleted(ctx context.Context, sessionID uuid.UUID, kind string, records int, durationMs int64) {
	wl.logger.InfoContext(ctx, "wallet page fetched",
		slog.String("event_type", "wallet_fetch_completed"),
		slog.String("session_id", sessionID.String()),
		slog.String("kind", kind),
		slog.Int("records", records),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogFetchFailed(ctx context.Context, sessionID uuid.UUID, kind string, errorMsg string) {
	wl.logger.WarnContext(ctx, "wallet page fetch failed",
		slog.String("event_type", "wallet_fetch_failed"),
		slog.String("session_id", sessionID.String()),
		slog.String("kind", kind),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogStaleResultDiscarded(ctx context.Context, sessionID uuid.UUID, kind string) {
	wl.logger.DebugContext(ctx, "stale wallet page discarded",
		slog.String("event_type", "wallet_stale_result_discarded"),
		slog.String("session_id", sessionID.String()),
		slog.String("kind", kind),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (wl *WalletLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	wl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
