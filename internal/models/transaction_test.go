package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		Type:       EntryTypeExpense,
		Amount:     decimal.RequireFromString("42.50"),
		Date:       time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	t.Run("valid transaction", func(t *testing.T) {
		assert.NoError(t, validTransaction().Validate())
	})

	t.Run("rejects invalid entry type", func(t *testing.T) {
		tx := validTransaction()
		tx.Type = "transfer"
		assert.ErrorIs(t, tx.Validate(), ErrInvalidEntryType)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		tx := validTransaction()
		tx.Amount = decimal.Zero
		assert.ErrorIs(t, tx.Validate(), ErrInvalidAmount)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		tx := validTransaction()
		tx.Amount = decimal.RequireFromString("-5.00")
		assert.ErrorIs(t, tx.Validate(), ErrInvalidAmount)
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		tx := validTransaction()
		tx.Amount = decimal.RequireFromString("10.001")
		assert.ErrorIs(t, tx.Validate(), ErrAmountPrecision)
	})

	t.Run("accepts exactly two decimal places", func(t *testing.T) {
		tx := validTransaction()
		tx.Amount = decimal.RequireFromString("0.01")
		assert.NoError(t, tx.Validate())
	})

	t.Run("rejects missing category", func(t *testing.T) {
		tx := validTransaction()
		tx.CategoryID = uuid.Nil
		assert.ErrorIs(t, tx.Validate(), ErrTransactionNoCategory)
	})

	t.Run("rejects missing date", func(t *testing.T) {
		tx := validTransaction()
		tx.Date = time.Time{}
		assert.ErrorIs(t, tx.Validate(), ErrTransactionNoDate)
	})
}

func TestTransactionEntryTypeHelpers(t *testing.T) {
	tx := validTransaction()
	assert.True(t, tx.IsExpense())
	assert.False(t, tx.IsIncome())

	tx.Type = EntryTypeIncome
	assert.True(t, tx.IsIncome())
	assert.False(t, tx.IsExpense())
}

func TestIsValidEntryType(t *testing.T) {
	assert.True(t, IsValidEntryType(EntryTypeIncome))
	assert.True(t, IsValidEntryType(EntryTypeExpense))
	assert.False(t, IsValidEntryType(""))
	assert.False(t, IsValidEntryType("Income"))
	assert.False(t, IsValidEntryType("transfer"))
}
