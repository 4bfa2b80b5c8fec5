package repositories

import (
	"testing"

	"budget-backend/internal/database"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BudgetRepositoryInterface
	user *models.User
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner")
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) TestCreate() {
	budget := &models.Budget{
		UserID: s.user.ID,
		Month:  5,
		Year:   2024,
		Amount: decimal.RequireFromString("1500.00"),
	}

	s.NoError(s.repo.Create(budget))
	s.NotEqual(uuid.Nil, budget.ID)
}

func (s *BudgetRepositorySuite) TestCreate_DuplicatePeriodConflicts() {
	database.CreateTestBudget(s.T(), s.db, s.user, 5, 2024, "1500.00")

	dup := &models.Budget{
		UserID: s.user.ID,
		Month:  5,
		Year:   2024,
		Amount: decimal.RequireFromString("2000.00"),
	}
	s.ErrorIs(s.repo.Create(dup), ErrBudgetAlreadyExists)
}

func (s *BudgetRepositorySuite) TestCreate_SamePeriodDifferentOwners() {
	other := database.CreateTestUser(s.T(), s.db, "other")

	database.CreateTestBudget(s.T(), s.db, s.user, 5, 2024, "1500.00")
	database.CreateTestBudget(s.T(), s.db, other, 5, 2024, "900.00")
}

func (s *BudgetRepositorySuite) TestCreate_SameMonthDifferentYears() {
	database.CreateTestBudget(s.T(), s.db, s.user, 5, 2023, "1000.00")
	database.CreateTestBudget(s.T(), s.db, s.user, 5, 2024, "1500.00")
}

func (s *BudgetRepositorySuite) TestGetByPeriod() {
	budget := database.CreateTestBudget(s.T(), s.db, s.user, 5, 2024, "1500.00")

	found, err := s.repo.GetByPeriod(s.user.ID, 5, 2024)
	s.NoError(err)
	s.Equal(budget.ID, found.ID)

	_, err = s.repo.GetByPeriod(s.user.ID, 6, 2024)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestGetByID_ScopedToOwner() {
	other := database.CreateTestUser(s.T(), s.db, "other")
	budget := database.CreateTestBudget(s.T(), s.db, other, 5, 2024, "1500.00")

	_, err := s.repo.GetByID(s.user.ID, budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestUpdate_MoveToTakenPeriodConflicts() {
	database.CreateTestBudget(s.T(), s.db, s.user, 4, 2024, "1000.00")
	budget := database.CreateTestBudget(s.T(), s.db, s.user, 5, 2024, "1500.00")

	budget.Month = 4
	s.ErrorIs(s.repo.Update(budget), ErrBudgetAlreadyExists)
}

func (s *BudgetRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(s.user.ID, uuid.New()), ErrBudgetNotFound)
}
