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
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction CRUD and filtered listing
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// List returns the user's transactions, newest first. Query parameters
// category, start_date, end_date, min_amount, max_amount and type narrow
// the result; all supplied filters apply together.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionRepo.List(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// Get returns a single transaction by ID
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	transaction, err := h.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Create records a new transaction. The referenced category must belong
// to the authenticated user.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryRepo.GetByID(userID, req.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.TransactionBadCategory)
		}
		return SendSystemError(c, err)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		if errors.Is(err, models.ErrInvalidEntryType) {
			return SendError(c, apierrors.TransactionInvalidType)
		}
		return SendSystemError(c, err)
	}

	transaction.Category = *category
	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// Update modifies an existing transaction
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.CategoryID != nil {
		transaction.CategoryID = *req.CategoryID
	}

	// The category is re-checked even when unchanged so the response can
	// carry its name.
	category, err := h.categoryRepo.GetByID(userID, transaction.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.TransactionBadCategory)
		}
		return SendSystemError(c, err)
	}

	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate)
		}
		transaction.Date = date
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		if errors.Is(err, models.ErrInvalidEntryType) {
			return SendError(c, apierrors.TransactionInvalidType)
		}
		return SendSystemError(c, err)
	}

	transaction.Category = *category
	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Delete removes a transaction
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	if err := h.transactionRepo.Delete(userID, transactionID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return filters, errors.New("category must be a valid ID")
		}
		filters.CategoryID = categoryID
	}

	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := dto.ParseDate(raw)
		if err != nil {
			return filters, errors.New("start_date must be in YYYY-MM-DD format")
		}
		filters.StartDate = &start
	}

	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := dto.ParseDate(raw)
		if err != nil {
			return filters, errors.New("end_date must be in YYYY-MM-DD format")
		}
		filters.EndDate = &end
	}

	if raw := c.QueryParam("min_amount"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("min_amount must be a number")
		}
		filters.MinAmount = &min
	}

	if raw := c.QueryParam("max_amount"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, errors.New("max_amount must be a number")
		}
		filters.MaxAmount = &max
	}

	if raw := c.QueryParam("type"); raw != "" {
		if !models.IsValidEntryType(raw) {
			return filters, errors.New("type must be income or expense")
		}
		filters.Type = raw
	}

	return filters, nil
}
