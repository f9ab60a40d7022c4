package database

import (
	"fmt"
	"testing"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the wallet schema and default categories
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// :memory: is per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.SeedCategories(); err != nil {
		t.Fatalf("failed to seed test categories: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a transaction on the given calendar day
func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, title string, amount float64, txType, category, day string) *models.Transaction {
	t.Helper()

	occurredOn, err := time.Parse(models.DateLayout, day)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", day, err)
	}

	tx := &models.Transaction{
		UserID:          userID,
		Title:           title,
		Amount:          decimal.NewFromFloat(amount),
		TransactionType: txType,
		CategoryID:      category,
		OccurredOn:      occurredOn,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
