package repositories

import (
	"context"
	"testing"

	"wallet-service/internal/database"
	"wallet-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	userID uuid.UUID
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.userID = uuid.New()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) seedWallet() {
	t := s.T()
	database.CreateTestTransaction(t, s.db, s.userID, "Weekly groceries", 54.20, models.TransactionTypeExpense, "groceries", "2024-03-01")
	database.CreateTestTransaction(t, s.db, s.userID, "Dinner at Luigi's", 38.00, models.TransactionTypeExpense, "dining", "2024-03-02")
	database.CreateTestTransaction(t, s.db, s.userID, "Food market", 12.00, models.TransactionTypeExpense, "food", "2024-03-03")
	database.CreateTestTransaction(t, s.db, s.userID, "Taxi home", 18.50, models.TransactionTypeExpense, "taxi", "2024-03-04")
	database.CreateTestTransaction(t, s.db, s.userID, "March salary", 3200.00, models.TransactionTypeIncome, "salary", "2024-03-05")
	database.CreateTestTransaction(t, s.db, s.userID, "Returned groceries", 9.99, models.TransactionTypeRefunded, "groceries", "2024-03-06")
	// another user's data never leaks
	database.CreateTestTransaction(t, s.db, uuid.New(), "Groceries elsewhere", 20.00, models.TransactionTypeExpense, "groceries", "2024-03-03")
}

func (s *TransactionRepositorySuite) query(mutate func(*models.TransactionQuery)) models.TransactionQuery {
	q := models.ResolveTransactionQuery(models.DefaultFilterState(), models.FilterDefaults{})
	if mutate != nil {
		mutate(&q)
	}
	return q
}

func titles(transactions []models.Transaction) []string {
	out := make([]string, len(transactions))
	for i, tx := range transactions {
		out[i] = tx.Title
	}
	return out
}

func (s *TransactionRepositorySuite) TestGetByID() {
	batch := []models.Transaction{{
		UserID:          s.userID,
		Title:           "Coffee",
		Amount:          decimal.NewFromFloat(3.40),
		TransactionType: models.TransactionTypeExpense,
		CategoryID:      "dining",
		OccurredOn:      models.CalendarDay(timeMustParse("2024-01-15")),
	}}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, batch))
	tx := batch[0]
	s.NotEqual(uuid.Nil, tx.ID)

	found, err := s.repo.GetByID(s.ctx, tx.ID, s.userID)
	s.Require().NoError(err)
	s.Equal("Coffee", found.Title)
	s.True(found.Amount.Equal(decimal.NewFromFloat(3.40)))

	_, err = s.repo.GetByID(s.ctx, tx.ID, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestCreateBatchRejectsInvalid() {
	err := s.repo.CreateBatch(s.ctx, []models.Transaction{
		{UserID: s.userID, Title: "ok", Amount: decimal.NewFromInt(1), TransactionType: models.TransactionTypeIncome, CategoryID: "salary", OccurredOn: timeMustParse("2024-01-02")},
		{UserID: s.userID, Title: "x", TransactionType: "bogus"},
	})
	s.Error(err)

	_, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(nil))
	s.Require().NoError(err)
	s.Equal(int64(0), total, "a rejected batch stores nothing")
}

func (s *TransactionRepositorySuite) TestGetWithFilters_DefaultOrderNewestFirst() {
	s.seedWallet()

	page, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(nil))

	s.Require().NoError(err)
	s.Equal(int64(6), total)
	s.Equal([]string{
		"Returned groceries", "March salary", "Taxi home",
		"Food market", "Dinner at Luigi's", "Weekly groceries",
	}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_TitleIsCaseInsensitiveSubstring() {
	s.seedWallet()

	page, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Title = "GROCER"
	}))

	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.ElementsMatch([]string{"Weekly groceries", "Returned groceries"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_TitleWildcardsMatchLiterally() {
	t := s.T()
	database.CreateTestTransaction(t, s.db, s.userID, "50% off sale", 10.00, models.TransactionTypeExpense, "clothing", "2024-03-01")
	database.CreateTestTransaction(t, s.db, s.userID, "500 club", 10.00, models.TransactionTypeExpense, "other", "2024-03-02")
	database.CreateTestTransaction(t, s.db, s.userID, "a_b transfer", 10.00, models.TransactionTypeIncome, "other", "2024-03-03")
	database.CreateTestTransaction(t, s.db, s.userID, "axb transfer", 10.00, models.TransactionTypeIncome, "other", "2024-03-04")
	database.CreateTestTransaction(t, s.db, s.userID, `C:\backup`, 10.00, models.TransactionTypeExpense, "electronics", "2024-03-05")

	testCases := []struct {
		title    string
		expected []string
	}{
		{"50%", []string{"50% off sale"}},
		{"a_b", []string{"a_b transfer"}},
		{`:\`, []string{`C:\backup`}},
		{"%", []string{"50% off sale"}},
	}

	for _, tc := range testCases {
		s.Run(tc.title, func() {
			page, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
				q.Title = tc.title
			}))

			s.Require().NoError(err)
			s.Equal(int64(len(tc.expected)), total)
			s.ElementsMatch(tc.expected, titles(page))
		})
	}
}

func (s *TransactionRepositorySuite) TestGetWithFilters_AmountIsInclusive() {
	s.seedWallet()

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Amount.From = decimal.NewFromInt(12)
		q.Amount.To = decimal.NewFromInt(38)
	}))

	s.Require().NoError(err)
	s.ElementsMatch([]string{"Food market", "Dinner at Luigi's", "Taxi home"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_InvertedAmountRangeMatchesNothing() {
	s.seedWallet()

	page, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Amount.From = decimal.NewFromInt(100)
		q.Amount.To = decimal.NewFromInt(10)
	}))

	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(page)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_DateRangeIncludesBothEnds() {
	s.seedWallet()

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Date = models.DateBounds{From: "2024-03-02", To: "2024-03-04"}
	}))

	s.Require().NoError(err)
	s.Equal([]string{"Taxi home", "Food market", "Dinner at Luigi's"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_OpenEndedDates() {
	s.seedWallet()

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Date.From = "2024-03-05"
	}))
	s.Require().NoError(err)
	s.Equal([]string{"Returned groceries", "March salary"}, titles(page))

	page, _, err = s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Date.To = "2024-03-01"
	}))
	s.Require().NoError(err)
	s.Equal([]string{"Weekly groceries"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_InvalidDate() {
	_, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Date.From = "03/01/2024"
	}))

	s.ErrorIs(err, ErrInvalidDateFilter)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_HierarchicalCategoryMatch() {
	s.seedWallet()

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Category = []string{"food"}
	}))

	s.Require().NoError(err)
	s.ElementsMatch([]string{"Weekly groceries", "Dinner at Luigi's", "Food market", "Returned groceries"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_HierarchicalCategoryHonoursContext() {
	s.seedWallet()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, _, err := s.repo.GetWithFilters(ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Category = []string{"food"}
	}))

	s.ErrorIs(err, context.Canceled)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_ExactCategoryMatch() {
	s.seedWallet()
	exact := true

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Category = []string{"food", "taxi"}
		q.IsExactCategory = &exact
	}))

	s.Require().NoError(err)
	s.ElementsMatch([]string{"Food market", "Taxi home"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Type() {
	s.seedWallet()
	income := models.TransactionTypeIncome

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Type = &income
	}))

	s.Require().NoError(err)
	s.Equal([]string{"March salary"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_SkipAndTake() {
	s.seedWallet()

	page, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Skip = 2
		q.Take = 3
	}))

	s.Require().NoError(err)
	s.Equal(int64(6), total)
	s.Equal([]string{"Taxi home", "Food market", "Dinner at Luigi's"}, titles(page))
}

func (s *TransactionRepositorySuite) TestGetWithFilters_TakeZeroIsUnbounded() {
	s.seedWallet()

	page, _, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(func(q *models.TransactionQuery) {
		q.Take = 0
		q.Skip = 1
	}))

	s.Require().NoError(err)
	s.Len(page, 5)
}

func (s *TransactionRepositorySuite) TestCreateBatchAndDeleteByUserID() {
	batch := make([]models.Transaction, 0, 5)
	for i := 0; i < 5; i++ {
		batch = append(batch, models.Transaction{
			UserID:          s.userID,
			Title:           "Bus ticket",
			Amount:          decimal.NewFromFloat(2.80),
			TransactionType: models.TransactionTypeExpense,
			CategoryID:      "public_transport",
			OccurredOn:      timeMustParse("2024-02-01"),
		})
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, batch))
	s.Require().NoError(s.repo.CreateBatch(s.ctx, nil))

	deleted, err := s.repo.DeleteByUserID(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(int64(5), deleted)

	_, total, err := s.repo.GetWithFilters(s.ctx, s.userID, s.query(nil))
	s.Require().NoError(err)
	s.Zero(total)
}
