package handlers

import (
	"net/http"

	"wallet-service/internal/dto"
	"wallet-service/internal/errors"
	"wallet-service/internal/models"
	"wallet-service/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves stateless transaction listings
type TransactionHandler struct {
	queryService    services.TransactionQueryServiceInterface
	defaultPageSize int
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(queryService services.TransactionQueryServiceInterface, defaultPageSize int) *TransactionHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = models.DefaultPageSize
	}
	return &TransactionHandler{
		queryService:    queryService,
		defaultPageSize: defaultPageSize,
	}
}

// ListTransactions retrieves one filtered page of the caller's transactions
// @Summary List transactions
// @Description Filter transactions with the same derivation used by wallet sessions, using offset pagination
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param query query string false "Case-insensitive title substring"
// @Param amountMin query string false "Minimum amount (inclusive)"
// @Param amountMax query string false "Maximum amount (inclusive)"
// @Param dateFrom query string false "Start date (YYYY-MM-DD)"
// @Param dateTo query string false "End date (YYYY-MM-DD)"
// @Param category query []string false "Category ids" collectionFormat(multi)
// @Param type query string false "Transaction type" Enums(income, expense, refunded)
// @Param isExactCategoryMatch query bool false "Disable parent category matching"
// @Param offset query int false "Records to skip" default(0)
// @Param pageSize query int false "Page size (max 500)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or TRANSACTION_001 - Invalid filter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	filters := req.ToFilterState(h.defaultPageSize)
	transactions, total, query, err := h.queryService.ListTransactions(c.Request().Context(), userID, filters, models.FilterDefaults{})
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		Query:        query,
		Pagination: dto.PaginationInfo{
			Offset:   filters.PaginationOffset,
			PageSize: filters.PageSize,
			Total:    total,
			HasMore:  int64(filters.PaginationOffset+len(transactions)) < total,
		},
	})
}

// GetTransaction returns a single transaction of the caller
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_004 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	transactionID, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.queryService.GetTransaction(c.Request().Context(), transactionID, userID)
	if err != nil {
		return sendWalletError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToTransactionResponse(*transaction))
}

// ListCategories returns the category tree
// @Summary List categories
// @Description Root categories with their children, used by category filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *TransactionHandler) ListCategories(c echo.Context) error {
	tree, err := h.queryService.ListCategoryTree(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToCategoryTreeResponse(tree))
}
