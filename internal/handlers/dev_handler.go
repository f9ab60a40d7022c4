package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"wallet-service/internal/dto"
	"wallet-service/internal/errors"
	"wallet-service/internal/repositories"
	"wallet-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths = 3
	defaultSeedCount  = 150
)

// DevHandler handles development-only endpoints.
// Routes are registered only when the server runs in development.
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	tokenService    services.TokenServiceInterface
	metrics         services.MetricsRecorderInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
	tokenService services.TokenServiceInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		tokenService:    tokenService,
		metrics:         metrics,
		now:             time.Now,
	}
}

// SeedWallet fills the caller's wallet with generated transactions
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Body:
//   - months: history length in months (default: 3, max: 24)
//   - count: number of non-salary transactions (default: 150, max: 5000)
//   - replace: delete the caller's existing transactions first
//
// Success Response: 201 Created with dto.SeedWalletResponse
func (h *DevHandler) SeedWallet(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SeedWalletRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	if req.Months == 0 {
		req.Months = defaultSeedMonths
	}
	if req.Count == 0 {
		req.Count = defaultSeedCount
	}

	ctx := c.Request().Context()
	response := dto.SeedWalletResponse{}

	if req.Replace {
		deleted, err := h.transactionRepo.DeleteByUserID(ctx, userID)
		if err != nil {
			return SendSystemError(c, err)
		}
		response.Deleted = deleted
	}

	end := h.now().UTC()
	start := end.AddDate(0, -req.Months, 0)
	transactions := h.generator.GenerateWallet(userID, start, end, req.Count)
	transactions = append(transactions, h.generator.GenerateMonthlySalary(userID, start, end)...)

	if err := h.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return SendSystemError(c, err)
	}
	response.Inserted = len(transactions)

	h.metrics.RecordGauge("transactions.seeded", float64(len(transactions)), nil)
	slog.Info("wallet seeded",
		"event_type", "dev_wallet_seeded",
		"user_id", userID.String(),
		"inserted", response.Inserted,
		"deleted", response.Deleted,
		"client_ip", getClientIP(c),
	)

	return c.JSON(http.StatusCreated, response)
}

// IssueToken returns an access token for a local user
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Body:
//   - userId: UUID to sign for (default: a new random UUID)
//   - email: optional email claim
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, req.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "dev_token_issued"})

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userID,
	})
}
