package repositories

import (
	"errors"
	"fmt"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository handles database operations for categories.
// Every query is scoped to the owning user.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// Create creates a new category for its owner
func (r *CategoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves one of the user's categories by ID
func (r *CategoryRepository) GetByID(userID, id uuid.UUID) (*models.Category, error) {
	var category models.Category

	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// List retrieves all categories belonging to the user
func (r *CategoryRepository) List(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Update persists changes to a category
func (r *CategoryRepository) Update(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Save(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// Delete removes one of the user's categories. Transactions referencing
// it are removed by the store's cascade rules.
func (r *CategoryRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Category{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
