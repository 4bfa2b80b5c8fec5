package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("invalid month or year")

// DashboardService assembles the monthly spending summary
type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	logger          *slog.Logger
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		logger:          logger,
	}
}

// MonthlySummary computes income, expense, balance, budget figures and
// per-category breakdowns for one calendar month.
func (s *DashboardService) MonthlySummary(userID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, ErrInvalidPeriod
	}

	totalIncome, err := s.transactionRepo.SumForMonth(userID, month, year, models.EntryTypeIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	totalExpense, err := s.transactionRepo.SumForMonth(userID, month, year, models.EntryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	// budget_remaining stays at zero when no budget is set for the period
	budgetAmount := decimal.Zero
	budgetRemaining := decimal.Zero
	budget, err := s.budgetRepo.GetByPeriod(userID, month, year)
	switch {
	case err == nil:
		budgetAmount = budget.Amount
		budgetRemaining = budget.Amount.Sub(totalExpense)
	case errors.Is(err, repositories.ErrBudgetNotFound):
		// no budget for this month
	default:
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	categoryExpenses, err := s.transactionRepo.CategoryTotalsForMonth(userID, month, year, models.EntryTypeExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}

	categoryIncome, err := s.transactionRepo.CategoryTotalsForMonth(userID, month, year, models.EntryTypeIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to group income by category: %w", err)
	}

	return &models.MonthlySummary{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		Budget:           budgetAmount,
		BudgetRemaining:  budgetRemaining,
		CategoryExpenses: categoryExpenses,
		CategoryIncome:   categoryIncome,
		Month:            month,
		Year:             year,
	}, nil
}
