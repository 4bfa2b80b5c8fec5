package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]{1,150}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);index" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`

	Categories        []Category         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions      []Transaction      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Budgets           []Budget           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RefreshTokens     []RefreshToken     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BlacklistedTokens []BlacklistedToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty User struct, skip validation for those
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if !usernameRegex.MatchString(u.Username) {
		return errors.New("invalid username format")
	}

	if u.Email != "" && !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (u *User) TableName() string {
	return "users"
}
