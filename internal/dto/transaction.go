package dto

import (
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

type CreateTransactionRequest struct {
	CategoryID  uuid.UUID       `json:"category" validate:"required"`
	Type        string          `json:"type" validate:"required,entry_type"`
	Amount      decimal.Decimal `json:"amount" validate:"required,money"`
	Description string          `json:"description" validate:"max=255"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest allows partial updates. Absent fields keep
// their stored values.
type UpdateTransactionRequest struct {
	CategoryID  *uuid.UUID       `json:"category" validate:"omitempty"`
	Type        *string          `json:"type" validate:"omitempty,entry_type"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,money"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type TransactionResponse struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   uuid.UUID       `json:"category"`
	CategoryName string          `json:"category_name,omitempty"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewTransactionResponse(tx *models.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:          tx.ID,
		CategoryID:  tx.CategoryID,
		Type:        tx.Type,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date.Format(DateLayout),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
	if tx.Category.ID != uuid.Nil {
		resp.CategoryName = tx.Category.Name
	}
	return resp
}

func NewTransactionListResponse(transactions []models.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, NewTransactionResponse(&transactions[i]))
	}
	return out
}

// ParseDate converts a wire-format date into a UTC timestamp at midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
