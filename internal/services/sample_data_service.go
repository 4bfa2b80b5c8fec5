package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// seedCategory pairs a category name with its entry type and the spending
// range demo transactions draw from.
type seedCategory struct {
	name      string
	entryType string
	minAmount float64
	maxAmount float64
	perMonth  int
}

var seedCategories = []seedCategory{
	{"Salary", models.EntryTypeIncome, 2800, 4200, 1},
	{"Freelance", models.EntryTypeIncome, 150, 900, 2},
	{"Groceries", models.EntryTypeExpense, 15, 120, 8},
	{"Rent", models.EntryTypeExpense, 900, 1400, 1},
	{"Transport", models.EntryTypeExpense, 5, 60, 6},
	{"Dining", models.EntryTypeExpense, 8, 85, 5},
	{"Entertainment", models.EntryTypeExpense, 10, 70, 3},
	{"Utilities", models.EntryTypeExpense, 40, 180, 2},
}

// SampleDataService seeds demo accounts with realistic history for
// development environments.
type SampleDataService struct {
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	passwordService PasswordServiceInterface
	faker           *gofakeit.Faker
	rng             *rand.Rand
	logger          *slog.Logger
}

func NewSampleDataService(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	seed := time.Now().UnixNano()
	return &SampleDataService{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		passwordService: passwordService,
		faker:           gofakeit.New(uint64(seed)),
		rng:             rand.New(rand.NewSource(seed)),
		logger:          logger,
	}
}

// SeedDemoUser creates a user with categories, monthly budgets and
// transaction history covering the given number of months back from now.
// It is idempotent per username: an existing user is returned untouched.
func (s *SampleDataService) SeedDemoUser(username, password string, months int) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil {
		s.logger.Info("demo user already seeded", "username", username)
		return existing, nil
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        s.faker.Email(),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	categories := make(map[string]*models.Category, len(seedCategories))
	for _, sc := range seedCategories {
		category := &models.Category{
			UserID: user.ID,
			Name:   sc.name,
			Type:   sc.entryType,
		}
		if err := s.categoryRepo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to create demo category %q: %w", sc.name, err)
		}
		categories[sc.name] = category
	}

	if months < 1 {
		months = 1
	}

	now := time.Now().UTC()
	for back := 0; back < months; back++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)

		if err := s.seedBudget(user, monthStart); err != nil {
			return nil, err
		}
		if err := s.seedMonth(user, categories, monthStart, now); err != nil {
			return nil, err
		}
	}

	s.logger.Info("demo user seeded",
		"username", username,
		"user_id", user.ID,
		"months", months)

	return user, nil
}

func (s *SampleDataService) seedBudget(user *models.User, monthStart time.Time) error {
	budget := &models.Budget{
		UserID: user.ID,
		Month:  int(monthStart.Month()),
		Year:   monthStart.Year(),
		Amount: decimal.NewFromInt(int64(2200 + s.rng.Intn(9)*100)),
	}
	if err := s.budgetRepo.Create(budget); err != nil {
		return fmt.Errorf("failed to create demo budget for %s: %w", monthStart.Format("2006-01"), err)
	}
	return nil
}

func (s *SampleDataService) seedMonth(user *models.User, categories map[string]*models.Category, monthStart, now time.Time) error {
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	for _, sc := range seedCategories {
		for i := 0; i < sc.perMonth; i++ {
			day := 1 + s.rng.Intn(daysInMonth)
			date := monthStart.AddDate(0, 0, day-1)
			if date.After(now) {
				continue
			}

			amount := decimal.NewFromFloat(s.faker.Float64Range(sc.minAmount, sc.maxAmount)).Round(2)
			tx := &models.Transaction{
				UserID:      user.ID,
				CategoryID:  categories[sc.name].ID,
				Type:        sc.entryType,
				Amount:      amount,
				Description: s.describe(sc),
				Date:        date,
			}
			if err := s.transactionRepo.Create(tx); err != nil {
				return fmt.Errorf("failed to create demo transaction: %w", err)
			}
		}
	}
	return nil
}

func (s *SampleDataService) describe(sc seedCategory) string {
	switch sc.name {
	case "Salary":
		return fmt.Sprintf("Monthly salary from %s", s.faker.Company())
	case "Freelance":
		return fmt.Sprintf("Invoice for %s", s.faker.JobTitle())
	case "Rent":
		return "Monthly rent"
	case "Utilities":
		return fmt.Sprintf("%s bill", s.faker.RandomString([]string{"Electricity", "Water", "Internet", "Gas"}))
	default:
		return fmt.Sprintf("%s at %s", sc.name, s.faker.Company())
	}
}
