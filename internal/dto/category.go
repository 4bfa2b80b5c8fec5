package dto

import (
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,entry_type"`
}

// UpdateCategoryRequest allows partial updates. Absent fields keep
// their stored values.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
	Type *string `json:"type" validate:"omitempty,entry_type"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func NewCategoryListResponse(categories []models.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}
