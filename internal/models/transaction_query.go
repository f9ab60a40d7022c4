package models

import (
	"github.com/shopspring/decimal"
)

// AmountBounds is the inclusive amount window of a transaction query
type AmountBounds struct {
	From decimal.Decimal `json:"from"`
	To   decimal.Decimal `json:"to"`
}

// DateBounds is the inclusive date window of a transaction query
type DateBounds struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TransactionQuery is the flat set of variables handed to the transaction data source
type TransactionQuery struct {
	Title           string       `json:"title"`
	Amount          AmountBounds `json:"amount"`
	Date            DateBounds   `json:"date"`
	Category        []string     `json:"category"`
	Type            *string      `json:"type,omitempty"`
	IsExactCategory *bool        `json:"isExactCategory,omitempty"`
	Skip            int          `json:"skip"`
	Take            int          `json:"take"`
}

// FilterDefaults are per-view baseline filters. A nil field is not supplied.
type FilterDefaults struct {
	Query                *string          `json:"query,omitempty"`
	AmountMin            *decimal.Decimal `json:"amountMin,omitempty"`
	AmountMax            *decimal.Decimal `json:"amountMax,omitempty"`
	DateFrom             *string          `json:"dateFrom,omitempty"`
	DateTo               *string          `json:"dateTo,omitempty"`
	Categories           []string         `json:"categories,omitempty"`
	TransactionType      *string          `json:"transactionType,omitempty"`
	IsExactCategoryMatch *bool            `json:"isExactCategoryMatch,omitempty"`
}

// ResolveTransactionQuery merges the live filter state with caller defaults.
// For every field the live value wins when it differs from the global default,
// then the caller default applies when supplied, then the global default.
func ResolveTransactionQuery(live FilterState, defaults FilterDefaults) TransactionQuery {
	global := NewFilterState(live.PageSize)

	query := TransactionQuery{
		Title: pickString(live.Query, global.Query, defaults.Query),
		Amount: AmountBounds{
			From: pickDecimal(live.AmountRange.Min, global.AmountRange.Min, defaults.AmountMin),
			To:   pickDecimal(live.AmountRange.Max, global.AmountRange.Max, defaults.AmountMax),
		},
		Date: DateBounds{
			From: pickString(live.DateRange.From, global.DateRange.From, defaults.DateFrom),
			To:   pickString(live.DateRange.To, global.DateRange.To, defaults.DateTo),
		},
		Skip: live.PaginationOffset,
		Take: live.PageSize,
	}

	switch {
	case len(live.Categories) > 0:
		query.Category = append([]string{}, live.Categories...)
	case defaults.Categories != nil:
		query.Category = uniqueCategories(defaults.Categories)
	default:
		query.Category = []string{}
	}

	switch {
	case live.TransactionType != nil:
		t := *live.TransactionType
		query.Type = &t
	case defaults.TransactionType != nil:
		t := *defaults.TransactionType
		query.Type = &t
	}

	switch {
	case live.IsExactCategoryMatch != global.IsExactCategoryMatch:
		exact := live.IsExactCategoryMatch
		query.IsExactCategory = &exact
	case defaults.IsExactCategoryMatch != nil:
		exact := *defaults.IsExactCategoryMatch
		query.IsExactCategory = &exact
	}

	return query
}

// ExactCategory reports whether category filtering should skip parent matching
func (q TransactionQuery) ExactCategory() bool {
	return q.IsExactCategory != nil && *q.IsExactCategory
}

// Unbounded reports whether the query requests every matching record
func (q TransactionQuery) Unbounded() bool {
	return q.Take <= 0
}

func pickString(live, global string, fallback *string) string {
	if live != global {
		return live
	}
	if fallback != nil {
		return *fallback
	}
	return global
}

func pickDecimal(live, global decimal.Decimal, fallback *decimal.Decimal) decimal.Decimal {
	if !live.Equal(global) {
		return live
	}
	if fallback != nil {
		return *fallback
	}
	return global
}
