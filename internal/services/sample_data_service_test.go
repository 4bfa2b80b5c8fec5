package services

import (
	"log/slog"
	"testing"
	"time"

	"budget-backend/internal/config"
	"budget-backend/internal/database"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/stretchr/testify/suite"
)

func TestSampleDataService(t *testing.T) {
	suite.Run(t, new(SampleDataServiceSuite))
}

// SampleDataServiceSuite runs the seeder against real repositories so the
// generated rows pass the same constraints as production data.
type SampleDataServiceSuite struct {
	suite.Suite
	db      *database.DB
	service SampleDataServiceInterface
}

func (s *SampleDataServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	passwordService := NewPasswordService(&config.Config{
		Security: config.SecurityConfig{
			BCryptCost:        4,
			PasswordMinLength: 6,
		},
	})

	s.service = NewSampleDataService(
		repositories.NewUserRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewBudgetRepository(s.db.DB),
		passwordService,
		slog.Default(),
	)
}

func (s *SampleDataServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SampleDataServiceSuite) TestSeedDemoUser() {
	user, err := s.service.SeedDemoUser("demo", "demo-password", 3)
	s.Require().NoError(err)
	s.Equal("demo", user.Username)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("demo-password", user.PasswordHash)

	var categories []models.Category
	s.Require().NoError(s.db.Where("user_id = ?", user.ID).Find(&categories).Error)
	s.Len(categories, len(seedCategories))

	var budgetCount int64
	s.Require().NoError(s.db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&budgetCount).Error)
	s.EqualValues(3, budgetCount)

	var txCount int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount).Error)
	s.Positive(txCount)
}

func (s *SampleDataServiceSuite) TestSeedDemoUser_Idempotent() {
	first, err := s.service.SeedDemoUser("demo", "demo-password", 2)
	s.Require().NoError(err)

	var txCountBefore int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Where("user_id = ?", first.ID).Count(&txCountBefore).Error)

	second, err := s.service.SeedDemoUser("demo", "demo-password", 2)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	var txCountAfter int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Where("user_id = ?", first.ID).Count(&txCountAfter).Error)
	s.Equal(txCountBefore, txCountAfter)
}

func (s *SampleDataServiceSuite) TestSeedDemoUser_NoFutureTransactions() {
	user, err := s.service.SeedDemoUser("demo", "demo-password", 1)
	s.Require().NoError(err)

	var transactions []models.Transaction
	s.Require().NoError(s.db.Where("user_id = ?", user.ID).Find(&transactions).Error)

	now := time.Now().UTC()
	for _, tx := range transactions {
		s.False(tx.Date.After(now), "transaction dated %s is in the future", tx.Date)
	}
}

func (s *SampleDataServiceSuite) TestSeedDemoUser_RowsPassValidation() {
	user, err := s.service.SeedDemoUser("demo", "demo-password", 2)
	s.Require().NoError(err)

	var transactions []models.Transaction
	s.Require().NoError(s.db.Where("user_id = ?", user.ID).Find(&transactions).Error)
	s.NotEmpty(transactions)

	for _, tx := range transactions {
		s.NoError(tx.Validate())
	}
}
