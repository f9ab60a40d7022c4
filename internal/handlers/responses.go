package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"wallet-service/internal/dto"
	"wallet-service/internal/errors"
	"wallet-service/internal/repositories"
	"wallet-service/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures with SendError for catalogued client errors and
// SendSystemError for anything that must not leak internal details.
// echo.NewHTTPError and raw c.JSON error bodies are not used.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse wraps successful payloads
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a catalogued error response with the request trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind a generic SYSTEM_001 response and logs it
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.Error("request failed",
		"event_type", "system_error",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendWalletError maps service and repository errors onto catalogue codes
func sendWalletError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrSessionNotFound):
		return SendError(c, errors.WalletSessionNotFound)
	case stderrors.Is(err, services.ErrSessionForbidden):
		return SendError(c, errors.WalletSessionForbidden)
	case stderrors.Is(err, services.ErrTooManySessions):
		return SendError(c, errors.WalletTooManySessions)
	case stderrors.Is(err, services.ErrActionNotDispatchable):
		return SendError(c, errors.WalletInvalidAction,
			errors.WithDetails("advance_page is driven by load-more"))
	case stderrors.Is(err, dto.ErrUnknownAction), stderrors.Is(err, dto.ErrMissingCategory):
		return SendError(c, errors.WalletInvalidAction, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, repositories.ErrInvalidDateFilter):
		return SendError(c, errors.TransactionInvalidFilter, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, errors.SystemServiceUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
