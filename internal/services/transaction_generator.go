package services

import (
	"sort"
	"time"

	"wallet-service/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// payee is a named counterparty that books into one category
type payee struct {
	Name     string
	Category string
	Type     string
}

type transactionGenerator struct {
	payees []payee
}

const (
	salaryDayOfMonth = 25
	refundRate       = 0.04
)

// NewTransactionGenerator creates a generator backed by gofakeit
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		payees: initializePayeePool(),
	}
}

func initializePayeePool() []payee {
	expense := models.TransactionTypeExpense
	income := models.TransactionTypeIncome

	return []payee{
		{"Weekly groceries", "groceries", expense},
		{"Farmers market", "groceries", expense},
		{"Supermarket run", "groceries", expense},
		{"Coffee with friends", "dining", expense},
		{"Lunch downtown", "dining", expense},
		{"Pizza delivery", "dining", expense},
		{"Fuel top-up", "fuel", expense},
		{"Taxi home", "taxi", expense},
		{"Airport transfer", "taxi", expense},
		{"Bus ticket", "public_transport", expense},
		{"Monthly metro pass", "public_transport", expense},
		{"Rent", "rent", expense},
		{"Electricity bill", "utilities", expense},
		{"Water bill", "utilities", expense},
		{"Internet", "utilities", expense},
		{"Movie night", models.CategoryEntertainment, expense},
		{"Concert tickets", models.CategoryEntertainment, expense},
		{"Streaming subscription", "streaming", expense},
		{"Music subscription", "streaming", expense},
		{"Pharmacy", "pharmacy", expense},
		{"Dentist", models.CategoryHealth, expense},
		{"New jacket", "clothing", expense},
		{"Running shoes", "clothing", expense},
		{"New headphones", "electronics", expense},
		{"Phone case", "electronics", expense},
		{"Gift", models.CategoryOther, expense},
		{"Freelance invoice", models.CategoryOther, income},
		{"Sold old bike", models.CategoryOther, income},
	}
}

// GenerateWallet creates count random transactions dated within [startDate, endDate], newest first
func (g *transactionGenerator) GenerateWallet(userID uuid.UUID, startDate, endDate time.Time, count int) []models.Transaction {
	if count <= 0 || endDate.Before(startDate) {
		return []models.Transaction{}
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		p := g.payees[gofakeit.IntRange(0, len(g.payees)-1)]
		txType := p.Type
		if txType == models.TransactionTypeExpense && gofakeit.Float64Range(0, 1) < refundRate {
			txType = models.TransactionTypeRefunded
		}

		transactions = append(transactions, models.Transaction{
			ID:              uuid.New(),
			UserID:          userID,
			Title:           p.Name,
			Amount:          g.GenerateAmount(p.Category),
			TransactionType: txType,
			CategoryID:      p.Category,
			Note:            g.generateNote(),
			OccurredOn:      models.CalendarDay(gofakeit.DateRange(startDate, endDate)),
		})
	}

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateMonthlySalary creates one salary deposit per month within the range
func (g *transactionGenerator) GenerateMonthlySalary(userID uuid.UUID, startDate, endDate time.Time) []models.Transaction {
	transactions := []models.Transaction{}
	base := gofakeit.Float64Range(2500, 6000)

	payday := time.Date(startDate.Year(), startDate.Month(), salaryDayOfMonth, 0, 0, 0, 0, time.UTC)
	if payday.Before(models.CalendarDay(startDate)) {
		payday = payday.AddDate(0, 1, 0)
	}

	for !payday.After(endDate) {
		transactions = append(transactions, models.Transaction{
			ID:              uuid.New(),
			UserID:          userID,
			Title:           "Monthly salary",
			Amount:          decimal.NewFromFloat(base).Round(2),
			TransactionType: models.TransactionTypeIncome,
			CategoryID:      models.CategorySalary,
			OccurredOn:      payday,
		})
		payday = payday.AddDate(0, 1, 0)
	}

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateAmount returns a positive two-decimal amount typical for the category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minAmount, maxAmount := amountRange(category)
	return decimal.NewFromFloat(gofakeit.Price(minAmount, maxAmount)).Round(2)
}

func amountRange(category string) (float64, float64) {
	switch category {
	case "rent":
		return 600, 2200
	case "groceries":
		return 15, 180
	case "dining":
		return 4, 70
	case "fuel":
		return 30, 90
	case "taxi":
		return 8, 60
	case "public_transport":
		return 2, 90
	case "utilities":
		return 25, 160
	case "streaming":
		return 5, 20
	case "electronics":
		return 20, 900
	case "clothing":
		return 15, 250
	case models.CategorySalary:
		return 2500, 6000
	default:
		return 5, 300
	}
}

func (g *transactionGenerator) generateNote() string {
	if gofakeit.Bool() {
		return ""
	}
	return gofakeit.Sentence(5)
}

func sortTransactionsByDate(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].OccurredOn.After(transactions[j].OccurredOn)
	})
}
