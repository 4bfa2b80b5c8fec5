package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrAmountPrecision        = errors.New("transaction amount must have at most 2 decimal places")
	ErrTransactionNoCategory  = errors.New("category is required")
	ErrTransactionNoDate      = errors.New("transaction date is required")
	ErrTransactionTypeInvalid = ErrInvalidEntryType
)

// Transaction is one dated money movement belonging to one category and one user.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	return t.Validate()
}

// BeforeSave normalizes the date to UTC so that day-boundary comparisons
// behave the same regardless of the server timezone.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if !t.Date.IsZero() {
		t.Date = t.Date.In(time.UTC)
	}
	return nil
}

func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("owner is required")
	}

	if t.CategoryID == uuid.Nil {
		return ErrTransactionNoCategory
	}

	if !IsValidEntryType(t.Type) {
		return ErrInvalidEntryType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	// Amount precision is fixed at 2 decimal places
	if !t.Amount.Equal(t.Amount.Round(2)) {
		return ErrAmountPrecision
	}

	if t.Date.IsZero() {
		return ErrTransactionNoDate
	}

	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.Type == EntryTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == EntryTypeExpense
}

func (t *Transaction) TableName() string {
	return "transactions"
}
