package repositories

import (
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(userID, id uuid.UUID) (*models.Category, error)
	List(userID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(userID, id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(userID, id uuid.UUID) (*models.Transaction, error)
	List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(userID, id uuid.UUID) error

	// Dashboard aggregations
	SumForMonth(userID uuid.UUID, month, year int, entryType string) (decimal.Decimal, error)
	CategoryTotalsForMonth(userID uuid.UUID, month, year int, entryType string) ([]models.CategoryTotal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(userID, id uuid.UUID) (*models.Budget, error)
	GetByPeriod(userID uuid.UUID, month, year int) (*models.Budget, error)
	List(userID uuid.UUID) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(userID, id uuid.UUID) error
}

// RefreshTokenRepositoryInterface defines the contract for refresh token repository operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
