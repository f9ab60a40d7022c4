package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownAction   = errors.New("unknown filter action")
	ErrMissingCategory = errors.New("category is required for toggle_category")
)

// FilterDefaultsRequest carries caller defaults for a wallet session.
// Absent fields fall back to the global defaults.
type FilterDefaultsRequest struct {
	Query                *string          `json:"query"`
	AmountMin            *decimal.Decimal `json:"amountMin"`
	AmountMax            *decimal.Decimal `json:"amountMax"`
	DateFrom             *string          `json:"dateFrom" validate:"omitempty,iso_date"`
	DateTo               *string          `json:"dateTo" validate:"omitempty,iso_date"`
	Categories           []string         `json:"categories" validate:"omitempty,dive,category_id"`
	TransactionType      *string          `json:"transactionType" validate:"omitempty,transaction_type"`
	IsExactCategoryMatch *bool            `json:"isExactCategoryMatch"`
}

func (r FilterDefaultsRequest) ToModel() models.FilterDefaults {
	defaults := models.FilterDefaults{
		Query:                r.Query,
		AmountMin:            r.AmountMin,
		AmountMax:            r.AmountMax,
		DateFrom:             r.DateFrom,
		DateTo:               r.DateTo,
		TransactionType:      r.TransactionType,
		IsExactCategoryMatch: r.IsExactCategoryMatch,
	}
	if r.Categories != nil {
		defaults.Categories = append([]string{}, r.Categories...)
	}
	return defaults
}

// CreateSessionRequest opens a wallet view
type CreateSessionRequest struct {
	Defaults FilterDefaultsRequest `json:"defaults"`
	FetchAll bool                  `json:"fetchAll"`
}

// FilterActionRequest is a single filter action. Only the fields used by Type are read.
type FilterActionRequest struct {
	Type            string          `json:"type" validate:"required,filter_action"`
	Query           string          `json:"query"`
	Amount          json.RawMessage `json:"amount" swaggertype:"string"`
	Date            string          `json:"date" validate:"omitempty,iso_date"`
	Categories      []string        `json:"categories" validate:"omitempty,dive,category_id"`
	Category        string          `json:"category" validate:"omitempty,category_id"`
	TransactionType *string         `json:"transactionType" validate:"omitempty,transaction_type"`
	Delta           *int            `json:"delta"`
	Exact           bool            `json:"exact"`
}

// ToAction converts the request into a filter action
func (r FilterActionRequest) ToAction() (models.FilterAction, error) {
	switch r.Type {
	case models.ActionSetQuery:
		return models.SetQuery{Query: r.Query}, nil
	case models.ActionSetAmountMin:
		return models.SetAmountMin{Amount: CoerceAmount(r.Amount)}, nil
	case models.ActionSetAmountMax:
		return models.SetAmountMax{Amount: CoerceAmount(r.Amount)}, nil
	case models.ActionSetDateMin:
		return models.SetDateMin{Date: r.Date}, nil
	case models.ActionSetDateMax:
		return models.SetDateMax{Date: r.Date}, nil
	case models.ActionSetCategories:
		categories := r.Categories
		if categories == nil {
			categories = []string{}
		}
		return models.SetCategories{Categories: categories}, nil
	case models.ActionToggleCategory:
		if r.Category == "" {
			return nil, ErrMissingCategory
		}
		return models.ToggleCategory{Category: r.Category}, nil
	case models.ActionSetTransactionType:
		var txType *string
		if r.TransactionType != nil && *r.TransactionType != "" {
			t := *r.TransactionType
			txType = &t
		}
		return models.SetTransactionType{Type: txType}, nil
	case models.ActionAdvancePage:
		return models.AdvancePage{Delta: r.Delta}, nil
	case models.ActionReset:
		return models.ResetFilters{}, nil
	case models.ActionSetExactCategoryMatch:
		return models.SetExactCategoryMatch{Exact: r.Exact}, nil
	default:
		return nil, ErrUnknownAction
	}
}

// CoerceAmount reads a JSON number or numeric string. Anything else,
// including a missing value, becomes zero.
func CoerceAmount(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if err := json.Unmarshal(raw, &amount); err != nil {
		return decimal.Zero
	}
	return amount
}

// WalletSessionResponse is the observable state of a wallet session
type WalletSessionResponse struct {
	SessionID      uuid.UUID               `json:"sessionId"`
	Filters        models.FilterState      `json:"filters"`
	Query          models.TransactionQuery `json:"query"`
	Transactions   []TransactionResponse   `json:"transactions"`
	Loading        bool                    `json:"loading"`
	EndReached     bool                    `json:"endReached"`
	State          string                  `json:"state"`
	FetchAll       bool                    `json:"fetchAll"`
	RefetchPending bool                    `json:"refetchPending"`
	FetchFailed    bool                    `json:"fetchFailed"`
}

func ToWalletSessionResponse(snapshot *models.WalletSnapshot) WalletSessionResponse {
	return WalletSessionResponse{
		SessionID:      snapshot.SessionID,
		Filters:        snapshot.Filters,
		Query:          snapshot.Query,
		Transactions:   ToTransactionResponses(snapshot.Data),
		Loading:        snapshot.Loading,
		EndReached:     snapshot.EndReached,
		State:          snapshot.State,
		FetchAll:       snapshot.FetchAll,
		RefetchPending: snapshot.RefetchPending,
		FetchFailed:    snapshot.FetchFailed,
	}
}
