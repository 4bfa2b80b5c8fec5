package repositories

import (
	"testing"

	"budget-backend/internal/database"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestCreate_DuplicateUsername() {
	s.NoError(s.repo.Create(&models.User{Username: "alice", PasswordHash: "x"}))

	err := s.repo.Create(&models.User{Username: "alice", PasswordHash: "y"})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestGetByUsername() {
	user := database.CreateTestUser(s.T(), s.db, "alice")

	found, err := s.repo.GetByUsername("alice")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByUsername("bob")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "alice")

	found, err := s.repo.GetByEmail("alice@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestDelete_CascadesToOwnedRows() {
	user := database.CreateTestUser(s.T(), s.db, "alice")
	category := database.CreateTestCategory(s.T(), s.db, user, "Food", models.EntryTypeExpense)
	database.CreateTestBudget(s.T(), s.db, user, 5, 2024, "1000.00")

	s.NoError(s.repo.Delete(user.ID))

	var count int64
	s.NoError(s.db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error)
	s.Zero(count)

	s.NoError(s.db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error)
	s.Zero(count)
}
