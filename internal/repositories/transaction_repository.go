package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDateFilter   = errors.New("invalid date filter")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction owned by the user
func (r *transactionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetWithFilters retrieves a filtered page of transactions
func (r *transactionRepository) GetWithFilters(ctx context.Context, userID uuid.UUID, q models.TransactionQuery) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	db := r.db.WithContext(ctx)
	query, err := r.applyFilters(db, db.Model(&models.Transaction{}), userID, q)
	if err != nil {
		return nil, 0, err
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	page := query.Order("occurred_on DESC").Order("id DESC").Offset(q.Skip)
	if !q.Unbounded() {
		page = page.Limit(q.Take)
	}

	if err := page.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// DeleteByUserID removes every transaction of the user
func (r *transactionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyFilters narrows query to the user's matching rows. db is the context-scoped
// session used to build subqueries.
func (r *transactionRepository) applyFilters(db, query *gorm.DB, userID uuid.UUID, q models.TransactionQuery) (*gorm.DB, error) {
	query = query.Where("user_id = ?", userID)

	if q.Title != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q.Title)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	query = query.Where("amount >= ? AND amount <= ?", q.Amount.From, q.Amount.To)

	if q.Date.From != "" {
		from, err := time.Parse(models.DateLayout, q.Date.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from %q", ErrInvalidDateFilter, q.Date.From)
		}
		query = query.Where("occurred_on >= ?", from)
	}
	if q.Date.To != "" {
		to, err := time.Parse(models.DateLayout, q.Date.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to %q", ErrInvalidDateFilter, q.Date.To)
		}
		// inclusive of the whole end day
		query = query.Where("occurred_on < ?", to.AddDate(0, 0, 1))
	}

	if len(q.Category) > 0 {
		if q.ExactCategory() {
			query = query.Where("category_id IN ?", q.Category)
		} else {
			children := db.Model(&models.Category{}).Select("id").Where("parent_id IN ?", q.Category)
			query = query.Where("category_id IN ? OR category_id IN (?)", q.Category, children)
		}
	}

	if q.Type != nil {
		query = query.Where("transaction_type = ?", *q.Type)
	}

	return query, nil
}
