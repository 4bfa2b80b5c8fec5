package dto

import (
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBudgetRequest struct {
	Month  int             `json:"month" validate:"required,min=1,max=12"`
	Year   int             `json:"year" validate:"required,min=1900,max=2200"`
	Amount decimal.Decimal `json:"amount" validate:"required,money"`
}

// UpdateBudgetRequest allows partial updates. Absent fields keep
// their stored values.
type UpdateBudgetRequest struct {
	Month  *int             `json:"month" validate:"omitempty,min=1,max=12"`
	Year   *int             `json:"year" validate:"omitempty,min=1900,max=2200"`
	Amount *decimal.Decimal `json:"amount" validate:"omitempty,money"`
}

type BudgetResponse struct {
	ID        uuid.UUID       `json:"id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewBudgetResponse(budget *models.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:        budget.ID,
		Month:     budget.Month,
		Year:      budget.Year,
		Amount:    budget.Amount,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

func NewBudgetListResponse(budgets []models.Budget) []*BudgetResponse {
	out := make([]*BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, NewBudgetResponse(&budgets[i]))
	}
	return out
}
