package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/currency"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid catalog entry")
)

// Equipment is a refrigeration unit identified by its fleet number.
type Equipment struct {
	ID        uuid.UUID
	Fleet     string
	Model     string
	Brand     string
	Year      int
	CreatedAt time.Time
}

// Label is the name shown in reports.
func (e Equipment) Label() string {
	if e.Model == "" {
		return e.Fleet
	}

	return e.Fleet + " - " + e.Model
}

type ProblemGroup struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CostCenter scopes payments to a currency.
type CostCenter struct {
	ID        uuid.UUID
	Name      string
	Currency  currency.Code
	CreatedAt time.Time
}

type Workshop struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}
