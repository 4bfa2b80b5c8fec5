package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-backend/internal/models"
	"budget-backend/internal/services"
	"budget-backend/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

type DashboardHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	dashboardService *service_mocks.MockDashboardServiceInterface
	handler          *DashboardHandler
	e                *echo.Echo
	userID           uuid.UUID
}

func (s *DashboardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.dashboardService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.dashboardService)
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *DashboardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerSuite) newContext(target string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *DashboardHandlerSuite) TestSummary() {
	summary := &models.MonthlySummary{
		TotalIncome:     decimal.RequireFromString("1000.00"),
		TotalExpense:    decimal.RequireFromString("300.00"),
		Balance:         decimal.RequireFromString("700.00"),
		Budget:          decimal.RequireFromString("2500.00"),
		BudgetRemaining: decimal.RequireFromString("2200.00"),
		CategoryExpenses: []models.CategoryTotal{
			{CategoryName: "Food", Total: decimal.RequireFromString("300.00")},
		},
		CategoryIncome: []models.CategoryTotal{
			{CategoryName: "Salary", Total: decimal.RequireFromString("1000.00")},
		},
		Month: 5,
		Year:  2024,
	}

	s.dashboardService.EXPECT().
		MonthlySummary(s.userID, 5, 2024).
		Return(summary, nil).
		Times(1)

	rec, c := s.newContext("/api/v1/dashboard?month=5&year=2024")

	err := s.handler.Summary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Contains(body, `"total_income":"1000"`)
	s.Contains(body, `"balance":"700"`)
	s.Contains(body, `"category__name":"Food"`)
	s.Contains(body, `"category__name":"Salary"`)
	s.Contains(body, `"budget_remaining":"2200"`)
}

func (s *DashboardHandlerSuite) TestSummary_DefaultsToCurrentMonth() {
	now := time.Now().UTC()

	s.dashboardService.EXPECT().
		MonthlySummary(s.userID, int(now.Month()), now.Year()).
		Return(&models.MonthlySummary{Month: int(now.Month()), Year: now.Year()}, nil).
		Times(1)

	rec, c := s.newContext("/api/v1/dashboard")

	err := s.handler.Summary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DashboardHandlerSuite) TestSummary_InvalidPeriod() {
	s.dashboardService.EXPECT().
		MonthlySummary(s.userID, 13, 2024).
		Return(nil, services.ErrInvalidPeriod).
		Times(1)

	rec, c := s.newContext("/api/v1/dashboard?month=13&year=2024")

	err := s.handler.Summary(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *DashboardHandlerSuite) TestSummary_IgnoresGarbageParams() {
	now := time.Now().UTC()

	// unparseable query values fall back to the current period
	s.dashboardService.EXPECT().
		MonthlySummary(s.userID, int(now.Month()), now.Year()).
		Return(&models.MonthlySummary{Month: int(now.Month()), Year: now.Year()}, nil).
		Times(1)

	rec, c := s.newContext("/api/v1/dashboard?month=abc&year=xyz")

	err := s.handler.Summary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
