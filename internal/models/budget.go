package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidYear         = errors.New("year is required")
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
)

// Budget is a user's spending cap for one calendar month.
// At most one budget exists per user per (month, year).
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_period" json:"-"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period" json:"month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period" json:"year"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	b.UpdatedAt = time.Now()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("owner is required")
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}

	if b.Year == 0 {
		return ErrInvalidYear
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}
