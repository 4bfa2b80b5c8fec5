package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "budget-backend/internal/errors"
	"budget-backend/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the monthly aggregation endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary returns income, expense, balance, budget and per-category
// totals for one month. The month and year query parameters default to
// the current calendar month.
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	now := time.Now().UTC()
	month := getIntParam(c, "month", int(now.Month()))
	year := getIntParam(c, "year", now.Year())

	summary, err := h.dashboardService.MonthlySummary(userID, month, year)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return SendError(c, apierrors.BudgetInvalidPeriod, apierrors.WithDetails("month must be 1-12 and year positive"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
