package handlers

import (
	"net/http"

	"wallet-service/internal/dto"
	"wallet-service/internal/errors"
	"wallet-service/internal/services"

	"github.com/labstack/echo/v4"
)

// WalletHandler exposes wallet sessions over HTTP
type WalletHandler struct {
	sessionService services.WalletSessionServiceInterface
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(sessionService services.WalletSessionServiceInterface) *WalletHandler {
	return &WalletHandler{sessionService: sessionService}
}

// CreateSession opens a wallet view and fetches its first page
// @Summary Create wallet session
// @Description Open a wallet view with optional caller defaults. The first page is fetched before responding.
// @Tags Wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest false "Session options"
// @Success 201 {object} dto.WalletSessionResponse "Session created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid defaults"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 429 {object} errors.ErrorResponse "WALLET_004 - Too many open sessions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /wallet/sessions [post]
func (h *WalletHandler) CreateSession(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	snapshot, err := h.sessionService.CreateSession(c.Request().Context(), userID, req.Defaults.ToModel(), req.FetchAll)
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToWalletSessionResponse(snapshot))
}

// GetSession returns the current state of a wallet session
// @Summary Get wallet session
// @Tags Wallet
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} dto.WalletSessionResponse
// @Failure 403 {object} errors.ErrorResponse "WALLET_003 - Session belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "WALLET_001 - Session not found"
// @Router /wallet/sessions/{id} [get]
func (h *WalletHandler) GetSession(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	sessionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	snapshot, err := h.sessionService.Snapshot(c.Request().Context(), sessionID, userID)
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToWalletSessionResponse(snapshot))
}

// DispatchAction applies one filter action to a session
// @Summary Dispatch filter action
// @Description Apply a filter action. A change of filter criteria rewinds pagination and schedules a debounced refetch.
// @Tags Wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body dto.FilterActionRequest true "Filter action"
// @Success 200 {object} dto.WalletSessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or WALLET_002 - Invalid action"
// @Failure 403 {object} errors.ErrorResponse "WALLET_003 - Session belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "WALLET_001 - Session not found"
// @Router /wallet/sessions/{id}/actions [post]
func (h *WalletHandler) DispatchAction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	sessionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.FilterActionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	action, err := req.ToAction()
	if err != nil {
		return sendWalletError(c, err)
	}

	snapshot, err := h.sessionService.Dispatch(c.Request().Context(), sessionID, userID, action)
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToWalletSessionResponse(snapshot))
}

// LoadMore requests the next page of a session
// @Summary Load next page
// @Description Signal that the end of the list was reached. No-op while a fetch is running or the end was reached.
// @Tags Wallet
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} dto.WalletSessionResponse
// @Failure 404 {object} errors.ErrorResponse "WALLET_001 - Session not found"
// @Router /wallet/sessions/{id}/load-more [post]
func (h *WalletHandler) LoadMore(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	sessionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	snapshot, err := h.sessionService.LoadMore(c.Request().Context(), sessionID, userID)
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToWalletSessionResponse(snapshot))
}

// CloseSession drops a wallet session
// @Summary Close wallet session
// @Tags Wallet
// @Security BearerAuth
// @Param id path string true "Session ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "WALLET_001 - Session not found"
// @Router /wallet/sessions/{id} [delete]
func (h *WalletHandler) CloseSession(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	sessionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	if err := h.sessionService.CloseSession(c.Request().Context(), sessionID, userID); err != nil {
		return sendWalletError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
