package handlers

import (
	"net/http"
	"time"

	"wallet-service/internal/errors"
	"wallet-service/internal/models"
	"wallet-service/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	sessions services.WalletSessionServiceInterface
	breaker  services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(
	db *gorm.DB,
	sessions services.WalletSessionServiceInterface,
	breaker services.CircuitBreakerInterface,
) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, sessions: sessions, breaker: breaker}
}

// HealthCheck reports API and database status
// @Summary Health check
// @Description Check API and database connectivity status. The status is degraded while the
// @Description transaction store circuit breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,activeSessions=int,circuitBreaker=object{state=string,failures=int}} "Service is healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	activeSessions := 0
	if h.sessions != nil {
		activeSessions = h.sessions.ActiveSessions()
	}

	body := map[string]interface{}{
		"status":         "healthy",
		"time":           time.Now().UTC().Format(time.RFC3339),
		"activeSessions": activeSessions,
	}
	if h.breaker != nil {
		state := h.breaker.GetState()
		if state == models.CircuitBreakerOpen {
			body["status"] = "degraded"
		}
		body["circuitBreaker"] = map[string]interface{}{
			"state":    state.String(),
			"failures": h.breaker.GetFailureCount(),
		}
	}

	return c.JSON(http.StatusOK, body)
}
