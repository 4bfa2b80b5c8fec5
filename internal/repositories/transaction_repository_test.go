package repositories

import (
	"testing"
	"time"

	"budget-backend/internal/database"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	user     *models.User
	food     *models.Category
	salary   *models.Category
	transit  *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner")
	s.food = database.CreateTestCategory(s.T(), s.db, s.user, "Food", models.EntryTypeExpense)
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user, "Salary", models.EntryTypeIncome)
	s.transit = database.CreateTestCategory(s.T(), s.db, s.user, "Transport", models.EntryTypeExpense)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) date(day int) time.Time {
	return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TestList_OrderedByDateDescending() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(1))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "20.00", s.date(20))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "30.00", s.date(10))

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal("2024-05-20", transactions[0].Date.Format("2006-01-02"))
	s.Equal("2024-05-10", transactions[1].Date.Format("2006-01-02"))
	s.Equal("2024-05-01", transactions[2].Date.Format("2006-01-02"))
}

func (s *TransactionRepositorySuite) TestList_PreloadsCategory() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(1))

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal("Food", transactions[0].Category.Name)
}

func (s *TransactionRepositorySuite) TestList_ScopedToOwner() {
	other := database.CreateTestUser(s.T(), s.db, "other")
	otherCat := database.CreateTestCategory(s.T(), s.db, other, "Food", models.EntryTypeExpense)
	database.CreateTestTransaction(s.T(), s.db, other, otherCat, "99.00", s.date(1))

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{})
	s.NoError(err)
	s.Empty(transactions)
}

func (s *TransactionRepositorySuite) TestList_FiltersCombineConjunctively() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(5))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "50.00", s.date(15))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.transit, "50.00", s.date(15))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "200.00", s.date(25))

	start := s.date(10)
	end := s.date(20)
	min := decimal.RequireFromString("20")
	max := decimal.RequireFromString("100")

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{
		CategoryID: s.food.ID,
		StartDate:  &start,
		EndDate:    &end,
		MinAmount:  &min,
		MaxAmount:  &max,
		Type:       models.EntryTypeExpense,
	})
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(s.food.ID, transactions[0].CategoryID)
	s.True(transactions[0].Amount.Equal(decimal.RequireFromString("50.00")))
}

func (s *TransactionRepositorySuite) TestList_DateBoundsAreInclusive() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(10))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "20.00", s.date(20))

	start := s.date(10)
	end := s.date(20)

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestList_TypeFilter() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(1))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, "1000.00", s.date(1))

	transactions, err := s.repo.List(s.user.ID, models.TransactionFilters{Type: models.EntryTypeIncome})
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(models.EntryTypeIncome, transactions[0].Type)
}

func (s *TransactionRepositorySuite) TestGetByID_ScopedToOwner() {
	tx := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "10.00", s.date(1))

	other := database.CreateTestUser(s.T(), s.db, "other")
	_, err := s.repo.GetByID(other.ID, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.user.ID, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestSumForMonth() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, "1000.00", s.date(1))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "200.00", s.date(10))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "100.00", s.date(20))
	// outside the month
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "999.00",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	income, err := s.repo.SumForMonth(s.user.ID, 5, 2024, models.EntryTypeIncome)
	s.NoError(err)
	s.True(income.Equal(decimal.RequireFromString("1000.00")), "got %s", income)

	expense, err := s.repo.SumForMonth(s.user.ID, 5, 2024, models.EntryTypeExpense)
	s.NoError(err)
	s.True(expense.Equal(decimal.RequireFromString("300.00")), "got %s", expense)
}

func (s *TransactionRepositorySuite) TestSumForMonth_EmptyMonthIsZero() {
	total, err := s.repo.SumForMonth(s.user.ID, 1, 2020, models.EntryTypeExpense)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *TransactionRepositorySuite) TestCategoryTotalsForMonth() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "200.00", s.date(10))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, "100.00", s.date(12))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.transit, "50.00", s.date(15))

	totals, err := s.repo.CategoryTotalsForMonth(s.user.ID, 5, 2024, models.EntryTypeExpense)
	s.Require().NoError(err)
	s.Require().Len(totals, 2)

	// ordered by total descending
	s.Equal("Food", totals[0].CategoryName)
	s.True(totals[0].Total.Equal(decimal.RequireFromString("300.00")))
	s.Equal("Transport", totals[1].CategoryName)
	s.True(totals[1].Total.Equal(decimal.RequireFromString("50.00")))
}

func (s *TransactionRepositorySuite) TestCategoryTotalsForMonth_ExcludesOtherTypes() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, "1000.00", s.date(1))

	totals, err := s.repo.CategoryTotalsForMonth(s.user.ID, 5, 2024, models.EntryTypeExpense)
	s.NoError(err)
	s.Empty(totals)
}
