package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries.
// All filters are optional and combine with logical AND; a nil or zero
// filter imposes no constraint.
type TransactionFilters struct {
	CategoryID uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Type       string
}
