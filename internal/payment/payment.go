package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound               = errors.New("payment not found")
	ErrInvalidStatus          = errors.New("invalid payment status")
	ErrInvalidTransition      = errors.New("invalid payment status transition")
	ErrInvalidAmount          = errors.New("payment amount must be positive")
	ErrMaintenanceNotFinished = errors.New("maintenance is not finished")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSettled   Status = "settled"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSettled, StatusCancelled:
		return true
	}

	return false
}

// CanTransition: pending and settled swap freely, either may be cancelled, cancelled is terminal.
func (s Status) CanTransition(to Status) bool {
	if s == to || !to.Valid() {
		return false
	}

	switch s {
	case StatusPending, StatusSettled:
		return true
	}

	return false
}

// Payment is an amount owed for a finished maintenance. Its currency is the cost center's.
type Payment struct {
	ID            uuid.UUID
	MaintenanceID uuid.UUID
	CostCenterID  uuid.UUID
	InvoiceNumber string
	Condition     string
	Amount        decimal.Decimal
	Status        Status
	DueDate       time.Time
	SettledDate   *time.Time
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
}
