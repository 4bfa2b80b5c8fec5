package handlers

import (
	"errors"
	"net/http"

	"budget-backend/internal/dto"
	apierrors "budget-backend/internal/errors"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category CRUD endpoints. All operations are
// scoped to the authenticated user.
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
	}
}

// List returns all categories owned by the authenticated user
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryRepo.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// Get returns a single category by ID
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	category, err := h.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Create adds a new category for the authenticated user
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
	}

	if err := h.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return SendError(c, apierrors.CategoryAlreadyExists)
		}
		if errors.Is(err, models.ErrInvalidEntryType) {
			return SendError(c, apierrors.CategoryInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Update modifies an existing category
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = *req.Type
	}
	if category.Name == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Category name cannot be blank"))
	}

	if err := h.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return SendError(c, apierrors.CategoryAlreadyExists)
		}
		if errors.Is(err, models.ErrInvalidEntryType) {
			return SendError(c, apierrors.CategoryInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete removes a category and, via the cascade, its transactions
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	if err := h.categoryRepo.Delete(userID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
