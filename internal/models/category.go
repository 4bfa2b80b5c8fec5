package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry types shared by categories and transactions
const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

var ErrInvalidEntryType = errors.New("type must be either income or expense")

// Category is a user-defined label for grouping transactions.
// Names are unique per owner, not globally.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_name" json:"-"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_owner_name" json:"name"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User         User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("owner is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	if len(c.Name) > 100 {
		return errors.New("category name too long")
	}

	if !IsValidEntryType(c.Type) {
		return ErrInvalidEntryType
	}

	return nil
}

func (c *Category) TableName() string {
	return "categories"
}

// IsValidEntryType checks whether a string is a valid entry type
func IsValidEntryType(entryType string) bool {
	switch entryType {
	case EntryTypeIncome, EntryTypeExpense:
		return true
	default:
		return false
	}
}
