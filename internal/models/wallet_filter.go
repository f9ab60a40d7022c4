package models

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultPageSize is the number of transactions fetched per page
	DefaultPageSize = 20

	// DateLayout is the calendar date format used by filter date bounds
	DateLayout = "2006-01-02"
)

var (
	// DefaultAmountMin is the lower amount bound of an unfiltered wallet view
	DefaultAmountMin = decimal.Zero
	// DefaultAmountMax is the sentinel upper bound of an unfiltered wallet view
	DefaultAmountMax = decimal.NewFromInt(999999999)
)

// AmountRange holds inclusive amount bounds. Min <= Max is not enforced.
type AmountRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// DateRange holds inclusive YYYY-MM-DD bounds; an empty side is unbounded.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FilterState is the filter and pagination state of a single wallet view.
// Values are treated as immutable: every transition produces a new FilterState.
type FilterState struct {
	Query                string      `json:"query"`
	AmountRange          AmountRange `json:"amountRange"`
	DateRange            DateRange   `json:"dateRange"`
	Categories           []string    `json:"categories"`
	TransactionType      *string     `json:"transactionType,omitempty"`
	IsExactCategoryMatch bool        `json:"isExactCategoryMatch"`
	PaginationOffset     int         `json:"paginationOffset"`
	PageSize             int         `json:"pageSize"`
}

// DefaultFilterState returns the state of a freshly opened wallet view
func DefaultFilterState() FilterState {
	return NewFilterState(DefaultPageSize)
}

// NewFilterState returns the default state with the given page size
func NewFilterState(pageSize int) FilterState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return FilterState{
		AmountRange: AmountRange{
			Min: DefaultAmountMin,
			Max: DefaultAmountMax,
		},
		Categories: []string{},
		PageSize:   pageSize,
	}
}

// Clone returns a deep copy that shares no slices or pointers with s
func (s FilterState) Clone() FilterState {
	out := s
	out.Categories = make([]string, len(s.Categories))
	copy(out.Categories, s.Categories)
	if s.TransactionType != nil {
		t := *s.TransactionType
		out.TransactionType = &t
	}
	return out
}

// HasCategory reports whether the category is part of the filter set
func (s FilterState) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Equal compares two states structurally. Categories are compared as sets.
func (s FilterState) Equal(other FilterState) bool {
	return s.SameCriteria(other) &&
		s.PaginationOffset == other.PaginationOffset &&
		s.PageSize == other.PageSize
}

// SameCriteria reports whether both states select the same records,
// ignoring pagination.
func (s FilterState) SameCriteria(other FilterState) bool {
	if s.Query != other.Query ||
		s.DateRange != other.DateRange ||
		s.IsExactCategoryMatch != other.IsExactCategoryMatch {
		return false
	}
	if !s.AmountRange.Min.Equal(other.AmountRange.Min) || !s.AmountRange.Max.Equal(other.AmountRange.Max) {
		return false
	}
	if !equalTypePtr(s.TransactionType, other.TransactionType) {
		return false
	}
	return sameCategorySet(s.Categories, other.Categories)
}

func equalTypePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameCategorySet(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, c := range a {
		setA[c] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, c := range b {
		setB[c] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for c := range setA {
		if _, ok := setB[c]; !ok {
			return false
		}
	}
	return true
}

// uniqueCategories drops repeated identifiers, keeping first occurrences in order
func uniqueCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
