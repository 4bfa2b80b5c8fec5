package models

import "github.com/shopspring/decimal"

// CategoryTotal is one row of the dashboard's per-category breakdown.
// The category__name key is part of the wire format and must not change.
type CategoryTotal struct {
	CategoryName string          `gorm:"column:category__name" json:"category__name"`
	Total        decimal.Decimal `gorm:"column:total" json:"total"`
}

// MonthlySummary aggregates one month of activity for one user.
// budget_remaining is 0, not null, when no budget row exists for the period.
type MonthlySummary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	Budget           decimal.Decimal `json:"budget"`
	BudgetRemaining  decimal.Decimal `json:"budget_remaining"`
	CategoryExpenses []CategoryTotal `json:"category_expenses"`
	CategoryIncome   []CategoryTotal `json:"category_income"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
}
