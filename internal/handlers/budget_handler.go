package handlers

import (
	"errors"
	"net/http"
	"time"

	"budget-backend/internal/dto"
	apierrors "budget-backend/internal/errors"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles monthly budget endpoints
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo: budgetRepo,
	}
}

// List returns all budgets owned by the authenticated user
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgets, err := h.budgetRepo.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetListResponse(budgets))
}

// Get returns a single budget by ID
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.BudgetNotFound)
	}

	budget, err := h.budgetRepo.GetByID(userID, budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// CurrentMonth returns the budget for the requested month and year,
// defaulting to the current calendar month, or a not found error when
// none is set.
func (h *BudgetHandler) CurrentMonth(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	now := time.Now().UTC()
	month := getIntParam(c, "month", int(now.Month()))
	year := getIntParam(c, "year", now.Year())

	budget, err := h.budgetRepo.GetByPeriod(userID, month, year)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// Create adds a budget for one month. Only one budget may exist per
// user and month.
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget := &models.Budget{
		UserID: userID,
		Month:  req.Month,
		Year:   req.Year,
		Amount: req.Amount,
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			return SendError(c, apierrors.BudgetAlreadyExists)
		}
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.BudgetInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBudgetResponse(budget))
}

// Update modifies an existing budget
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.BudgetNotFound)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetRepo.GetByID(userID, budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Month != nil {
		budget.Month = *req.Month
	}
	if req.Year != nil {
		budget.Year = *req.Year
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}

	if err := h.budgetRepo.Update(budget); err != nil {
		if errors.Is(err, repositories.ErrBudgetAlreadyExists) {
			return SendError(c, apierrors.BudgetAlreadyExists)
		}
		if errors.Is(err, models.ErrInvalidMonth) {
			return SendError(c, apierrors.BudgetInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// Delete removes a budget
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.BudgetNotFound)
	}

	if err := h.budgetRepo.Delete(userID, budgetID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
