package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository handles database operations for transactions.
// Every query is scoped to the owning user.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{
		db: db,
	}
}

// Create creates a new transaction for its owner
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetByID retrieves one of the user's transactions by ID
func (r *TransactionRepository) GetByID(userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction

	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

// List retrieves the user's transactions, narrowed by the given filters.
// Filters combine with logical AND; absent filters impose no constraint.
// Results are ordered by date descending, then creation time descending.
func (r *TransactionRepository) List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Preload("Category").Where("user_id = ?", userID)

	if filters.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	if err := query.Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// Update persists changes to a transaction
func (r *TransactionRepository) Update(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// Delete removes one of the user's transactions
func (r *TransactionRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// SumForMonth returns the sum of the user's transaction amounts of the
// given type dated within the calendar month, or zero when none exist.
func (r *TransactionRepository) SumForMonth(userID uuid.UUID, month, year int, entryType string) (decimal.Decimal, error) {
	start, end := monthBounds(month, year)

	var result struct {
		Total decimal.Decimal
	}

	err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, entryType, start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return result.Total, nil
}

// CategoryTotalsForMonth returns per-category amount sums for the user's
// transactions of the given type dated within the calendar month,
// grouped by category name.
func (r *TransactionRepository) CategoryTotalsForMonth(userID uuid.UUID, month, year int, entryType string) ([]models.CategoryTotal, error) {
	start, end := monthBounds(month, year)

	var totals []models.CategoryTotal

	query := `
		SELECT
			c.name AS category__name,
			SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?
			AND t.type = ?
			AND t.date >= ?
			AND t.date < ?
		GROUP BY c.name
		ORDER BY total DESC
	`

	if err := r.db.Raw(query, userID, entryType, start, end).
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	return totals, nil
}

// monthBounds returns the half-open UTC interval [start, end) covering
// the calendar month.
func monthBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
