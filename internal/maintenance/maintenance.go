package maintenance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("maintenance not found")
	ErrInvalidStatus     = errors.New("invalid maintenance status")
	ErrInvalidTransition = errors.New("invalid maintenance status transition")
	ErrIncomplete        = errors.New("maintenance needs equipment and problem group to finish")
)

// Status is the lifecycle stage of a maintenance.
type Status string

const (
	StatusInTreatment    Status = "in_treatment"
	StatusSentToWorkshop Status = "sent_to_workshop"
	StatusInMaintenance  Status = "in_maintenance"
	StatusFinished       Status = "finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInTreatment, StatusSentToWorkshop, StatusInMaintenance, StatusFinished:
		return true
	}

	return false
}

// InProgress reports whether s is one of the stages before finished.
func (s Status) InProgress() bool {
	return s.Valid() && s != StatusFinished
}

// CanTransition allows free movement between in-progress stages. Finished is terminal.
func (s Status) CanTransition(to Status) bool {
	return s.InProgress() && to.Valid()
}

type Maintenance struct {
	ID             uuid.UUID
	EquipmentID    *uuid.UUID
	ProblemGroupID *uuid.UUID
	WorkshopID     *uuid.UUID
	Trailer        string
	Observation    string
	Status         Status
	ProblemDate    time.Time
	CreatedBy      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Complete reports whether m carries everything a finished maintenance needs.
func (m *Maintenance) Complete() bool {
	return m.EquipmentID != nil && m.ProblemGroupID != nil
}
