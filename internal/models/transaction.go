package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeRefunded = "refunded"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrTitleRequired          = errors.New("transaction title is required")
	ErrTitleTooLong           = errors.New("transaction title too long")
	ErrUserIDRequired         = errors.New("user ID is required")
	ErrOccurredOnRequired     = errors.New("transaction date is required")
)

// Transaction is a single wallet entry owned by a user
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20);not null;index" json:"type"`
	CategoryID      string          `gorm:"type:varchar(50);index" json:"category,omitempty"`
	Note            string          `gorm:"type:text" json:"note,omitempty"`
	OccurredOn      time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.OccurredOn = CalendarDay(t.OccurredOn)
	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.OccurredOn = CalendarDay(t.OccurredOn)
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Title == "" {
		return ErrTitleRequired
	}

	if len(t.Title) > 255 {
		return ErrTitleTooLong
	}

	if t.CategoryID != "" && !IsValidCategoryID(t.CategoryID) {
		return ErrInvalidCategoryID
	}

	if t.OccurredOn.IsZero() {
		return ErrOccurredOnRequired
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// CalendarDay truncates a timestamp to midnight UTC of its own calendar date
func CalendarDay(ts time.Time) time.Time {
	if ts.IsZero() {
		return ts
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeRefunded:
		return true
	default:
		return false
	}
}

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []string {
	return []string{TransactionTypeIncome, TransactionTypeExpense, TransactionTypeRefunded}
}

// Common transaction titles for sample data
var SampleTransactionTitles = []string{
	"Weekly groceries",
	"Coffee with friends",
	"Monthly salary",
	"Bus ticket",
	"Electricity bill",
	"Movie night",
	"Pharmacy",
	"New headphones",
	"Taxi home",
	"Rent",
	"Streaming subscription",
	"Returned jacket",
}
