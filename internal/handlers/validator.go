package handlers

import (
	"budget-backend/internal/validation"

	"github.com/labstack/echo/v4"
)

// NewValidator creates the echo.Validator used for request binding.
// Validation failures bubble up to the custom HTTP error handler which
// renders them as a standardized validation error response.
func NewValidator() echo.Validator {
	return validation.New()
}
