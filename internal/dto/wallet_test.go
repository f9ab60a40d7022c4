package dto

import (
	"encoding/json"
	"testing"
	"time"

	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceAmount(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{`42.5`, "42.5"},
		{`"17.25"`, "17.25"},
		{`"abc"`, "0"},
		{`""`, "0"},
		{`null`, "0"},
		{``, "0"},
		{`true`, "0"},
		{`{"value":1}`, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got := CoerceAmount(json.RawMessage(tc.raw))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)), "got %s", got)
		})
	}
}

func TestFilterActionRequest_ToAction(t *testing.T) {
	income := models.TransactionTypeIncome
	empty := ""
	delta := 5

	testCases := []struct {
		name     string
		request  FilterActionRequest
		expected models.FilterAction
	}{
		{"query", FilterActionRequest{Type: "set_query", Query: "  rent "}, models.SetQuery{Query: "  rent "}},
		{"amount min", FilterActionRequest{Type: "set_amount_min", Amount: json.RawMessage(`"12.50"`)}, models.SetAmountMin{Amount: decimal.RequireFromString("12.50")}},
		{"date max cleared", FilterActionRequest{Type: "set_date_max"}, models.SetDateMax{Date: ""}},
		{"categories nil", FilterActionRequest{Type: "set_categories"}, models.SetCategories{Categories: []string{}}},
		{"toggle", FilterActionRequest{Type: "toggle_category", Category: "food"}, models.ToggleCategory{Category: "food"}},
		{"type", FilterActionRequest{Type: "set_transaction_type", TransactionType: &income}, models.SetTransactionType{Type: &income}},
		{"type cleared", FilterActionRequest{Type: "set_transaction_type", TransactionType: &empty}, models.SetTransactionType{}},
		{"advance", FilterActionRequest{Type: "advance_page", Delta: &delta}, models.AdvancePage{Delta: &delta}},
		{"reset", FilterActionRequest{Type: "reset"}, models.ResetFilters{}},
		{"exact", FilterActionRequest{Type: "set_exact_category_match", Exact: true}, models.SetExactCategoryMatch{Exact: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := tc.request.ToAction()
			require.NoError(t, err)
			assert.Equal(t, tc.expected.ActionName(), action.ActionName())

			if amount, ok := tc.expected.(models.SetAmountMin); ok {
				assert.True(t, amount.Amount.Equal(action.(models.SetAmountMin).Amount))
				return
			}
			assert.Equal(t, tc.expected, action)
		})
	}
}

func TestFilterActionRequest_Errors(t *testing.T) {
	_, err := FilterActionRequest{Type: "toggle_category"}.ToAction()
	assert.ErrorIs(t, err, ErrMissingCategory)

	_, err = FilterActionRequest{Type: "frobnicate"}.ToAction()
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestFilterDefaultsRequest_ToModelCopiesCategories(t *testing.T) {
	req := FilterDefaultsRequest{Categories: []string{"food"}}

	defaults := req.ToModel()
	req.Categories[0] = "changed"

	assert.Equal(t, []string{"food"}, defaults.Categories)
	assert.Nil(t, FilterDefaultsRequest{}.ToModel().Categories)
}

func TestListTransactionsRequest_ToFilterState(t *testing.T) {
	req := ListTransactionsRequest{
		Query:           "coffee",
		AmountMin:       "5",
		AmountMax:       "not-a-number",
		DateFrom:        "2024-01-01",
		Categories:      []string{"dining", "dining", "groceries"},
		TransactionType: "expense",
		Offset:          40,
	}

	state := req.ToFilterState(20)

	assert.Equal(t, "coffee", state.Query)
	assert.True(t, state.AmountRange.Min.Equal(decimal.NewFromInt(5)))
	assert.True(t, state.AmountRange.Max.Equal(models.DefaultAmountMax))
	assert.Equal(t, "2024-01-01", state.DateRange.From)
	assert.Equal(t, []string{"dining", "groceries"}, state.Categories)
	require.NotNil(t, state.TransactionType)
	assert.Equal(t, "expense", *state.TransactionType)
	assert.Equal(t, 40, state.PaginationOffset)
	assert.Equal(t, 20, state.PageSize)

	assert.Equal(t, 50, ListTransactionsRequest{PageSize: 50}.ToFilterState(20).PageSize)
}

func TestToWalletSessionResponse(t *testing.T) {
	tx := models.Transaction{
		ID:              uuid.New(),
		Title:           "Rent",
		Amount:          decimal.NewFromInt(900),
		TransactionType: models.TransactionTypeExpense,
		CategoryID:      "rent",
		OccurredOn:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	snapshot := &models.WalletSnapshot{
		SessionID:  uuid.New(),
		Filters:    models.DefaultFilterState(),
		Data:       []models.Transaction{tx},
		State:      models.PaginationEndReached,
		EndReached: true,
	}

	response := ToWalletSessionResponse(snapshot)

	assert.Equal(t, snapshot.SessionID, response.SessionID)
	require.Len(t, response.Transactions, 1)
	assert.Equal(t, "900.00", response.Transactions[0].Amount)
	assert.Equal(t, "2024-03-01", response.Transactions[0].Date)
	assert.Equal(t, "rent", response.Transactions[0].Category)
	assert.True(t, response.EndReached)
}
