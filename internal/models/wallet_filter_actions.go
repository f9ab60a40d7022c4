package models

import (
	"github.com/shopspring/decimal"
)

// Filter action names as accepted by the HTTP API
const (
	ActionSetQuery              = "set_query"
	ActionSetAmountMin          = "set_amount_min"
	ActionSetAmountMax          = "set_amount_max"
	ActionSetDateMin            = "set_date_min"
	ActionSetDateMax            = "set_date_max"
	ActionSetCategories         = "set_categories"
	ActionToggleCategory        = "toggle_category"
	ActionSetTransactionType    = "set_transaction_type"
	ActionAdvancePage           = "advance_page"
	ActionReset                 = "reset"
	ActionSetExactCategoryMatch = "set_exact_category_match"
)

// FilterAction is a transition request for a FilterState
type FilterAction interface {
	ActionName() string
}

type SetQuery struct{ Query string }

type SetAmountMin struct{ Amount decimal.Decimal }

type SetAmountMax struct{ Amount decimal.Decimal }

type SetDateMin struct{ Date string }

type SetDateMax struct{ Date string }

type SetCategories struct{ Categories []string }

type ToggleCategory struct{ Category string }

// SetTransactionType replaces the type filter; a nil Type selects all types.
type SetTransactionType struct{ Type *string }

// AdvancePage moves the pagination offset forward by one page plus Delta.
type AdvancePage struct{ Delta *int }

type ResetFilters struct{}

type SetExactCategoryMatch struct{ Exact bool }

func (SetQuery) ActionName() string              { return ActionSetQuery }
func (SetAmountMin) ActionName() string          { return ActionSetAmountMin }
func (SetAmountMax) ActionName() string          { return ActionSetAmountMax }
func (SetDateMin) ActionName() string            { return ActionSetDateMin }
func (SetDateMax) ActionName() string            { return ActionSetDateMax }
func (SetCategories) ActionName() string         { return ActionSetCategories }
func (ToggleCategory) ActionName() string        { return ActionToggleCategory }
func (SetTransactionType) ActionName() string    { return ActionSetTransactionType }
func (AdvancePage) ActionName() string           { return ActionAdvancePage }
func (ResetFilters) ActionName() string          { return ActionReset }
func (SetExactCategoryMatch) ActionName() string { return ActionSetExactCategoryMatch }

// ReduceFilterState applies an action to a state and returns the resulting state.
// The input is never modified; unknown actions return an unchanged copy.
func ReduceFilterState(state FilterState, action FilterAction) FilterState {
	next := state.Clone()

	switch a := action.(type) {
	case SetQuery:
		next.Query = a.Query
	case SetAmountMin:
		next.AmountRange.Min = a.Amount
	case SetAmountMax:
		next.AmountRange.Max = a.Amount
	case SetDateMin:
		next.DateRange.From = a.Date
	case SetDateMax:
		next.DateRange.To = a.Date
	case SetCategories:
		next.Categories = uniqueCategories(a.Categories)
	case ToggleCategory:
		next.Categories = toggleCategory(next.Categories, a.Category)
	case SetTransactionType:
		next.TransactionType = nil
		if a.Type != nil {
			t := *a.Type
			next.TransactionType = &t
		}
	case AdvancePage:
		delta := 0
		if a.Delta != nil {
			delta = *a.Delta
		}
		next.PaginationOffset += next.PageSize + delta
		if next.PaginationOffset < 0 {
			next.PaginationOffset = 0
		}
	case ResetFilters:
		return NewFilterState(state.PageSize)
	case SetExactCategoryMatch:
		next.IsExactCategoryMatch = a.Exact
	}

	return next
}

// ApplyFilterAction reduces the state and rewinds pagination to the first page
// whenever the selected records change. It reports whether the loaded pages
// must be fetched again, which is also the case when a reset rewinds the
// offset under unchanged criteria.
func ApplyFilterAction(state FilterState, action FilterAction) (FilterState, bool) {
	next := ReduceFilterState(state, action)
	if next.SameCriteria(state) {
		if _, paging := action.(AdvancePage); !paging && next.PaginationOffset != state.PaginationOffset {
			return next, true
		}
		return next, false
	}
	next.PaginationOffset = 0
	return next, true
}

func toggleCategory(categories []string, category string) []string {
	out := make([]string, 0, len(categories)+1)
	removed := false
	for _, c := range categories {
		if c == category {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		out = append(out, category)
	}
	return out
}
