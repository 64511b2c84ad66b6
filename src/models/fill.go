package models

import (
	"time"

	"github.com/google/uuid"
)

// Execution describes a single trade execution reported by the gateway.
type Execution struct {
	OrderID int
	Time    time.Time
	Shares  float64
	Price   float64
	Side    OrderAction
}

type CommissionReport struct {
	Commission float64
	Currency   string
}

// Fill ties one (possibly partial) execution and its commission to an order.
// Multiple fills may accumulate against the same order; no consistency is
// enforced between a fill's execution and the order it references.
type Fill struct {
	ID               uuid.UUID
	Order            OrderInstruction
	Execution        Execution
	CommissionReport CommissionReport
	Time             time.Time
}

func NewFill(order OrderInstruction, execution Execution, commissionReport CommissionReport, t time.Time) *Fill {
	return &Fill{
		ID:               uuid.New(),
		Order:            order,
		Execution:        execution,
		CommissionReport: commissionReport,
		Time:             t,
	}
}
