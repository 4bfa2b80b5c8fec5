package repositories

import (
	"errors"
	"fmt"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget already exists for this month")
)

// BudgetRepository handles database operations for budgets.
// Every query is scoped to the owning user.
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// Create creates a new budget for its owner. At most one budget may
// exist per (owner, month, year); the unique index enforces this even
// under concurrent creation.
func (r *BudgetRepository) Create(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// GetByID retrieves one of the user's budgets by ID
func (r *BudgetRepository) GetByID(userID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &budget, nil
}

// GetByPeriod retrieves the user's budget for the given month and year
func (r *BudgetRepository) GetByPeriod(userID uuid.UUID, month, year int) (*models.Budget, error) {
	var budget models.Budget

	if err := r.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget for period: %w", err)
	}

	return &budget, nil
}

// List retrieves all budgets belonging to the user
func (r *BudgetRepository) List(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	if err := r.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

// Update persists changes to a budget
func (r *BudgetRepository) Update(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Save(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to update budget: %w", err)
	}

	return nil
}

// Delete removes one of the user's budgets
func (r *BudgetRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Budget{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}
