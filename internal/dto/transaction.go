package dto

import (
	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListTransactionsRequest holds the query parameters of a stateless listing
type ListTransactionsRequest struct {
	Query                string   `query:"query"`
	AmountMin            string   `query:"amountMin" validate:"omitempty,numeric"`
	AmountMax            string   `query:"amountMax" validate:"omitempty,numeric"`
	DateFrom             string   `query:"dateFrom" validate:"omitempty,iso_date"`
	DateTo               string   `query:"dateTo" validate:"omitempty,iso_date"`
	Categories           []string `query:"category" validate:"omitempty,dive,category_id"`
	TransactionType      string   `query:"type" validate:"omitempty,transaction_type"`
	IsExactCategoryMatch bool     `query:"isExactCategoryMatch"`
	Offset               int      `query:"offset" validate:"min=0"`
	PageSize             int      `query:"pageSize" validate:"omitempty,min=1,max=500"`
}

// ToFilterState overlays the request on the default filter state
func (r ListTransactionsRequest) ToFilterState(defaultPageSize int) models.FilterState {
	pageSize := defaultPageSize
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}

	state := models.NewFilterState(pageSize)
	state.Query = r.Query
	if amount, err := decimal.NewFromString(r.AmountMin); err == nil {
		state.AmountRange.Min = amount
	}
	if amount, err := decimal.NewFromString(r.AmountMax); err == nil {
		state.AmountRange.Max = amount
	}
	state.DateRange = models.DateRange{From: r.DateFrom, To: r.DateTo}
	state = models.ReduceFilterState(state, models.SetCategories{Categories: r.Categories})
	if r.TransactionType != "" {
		t := r.TransactionType
		state.TransactionType = &t
	}
	state.IsExactCategoryMatch = r.IsExactCategoryMatch
	state.PaginationOffset = r.Offset
	return state
}

// TransactionResponse is the API shape of a wallet transaction
type TransactionResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Amount   string    `json:"amount"`
	Type     string    `json:"type"`
	Category string    `json:"category,omitempty"`
	Note     string    `json:"note,omitempty"`
	Date     string    `json:"date"`
}

func ToTransactionResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       tx.ID,
		Title:    tx.Title,
		Amount:   tx.Amount.StringFixed(2),
		Type:     tx.TransactionType,
		Category: tx.CategoryID,
		Note:     tx.Note,
		Date:     tx.OccurredOn.UTC().Format(models.DateLayout),
	}
}

func ToTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, ToTransactionResponse(tx))
	}
	return out
}

// PaginationInfo describes the returned window of a listing
type PaginationInfo struct {
	Offset   int   `json:"offset"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
	HasMore  bool  `json:"hasMore"`
}

// ListTransactionsResponse is the response of GET /transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse   `json:"transactions"`
	Query        models.TransactionQuery `json:"query"`
	Pagination   PaginationInfo          `json:"pagination"`
}
