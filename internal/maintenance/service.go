package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/event"
)

const entity = "maintenance"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=maintenance
type Repository interface {
	CreateMaintenance(ctx context.Context, m *Maintenance) error
	GetMaintenance(ctx context.Context, id uuid.UUID) (*Maintenance, error)
	ListMaintenances(ctx context.Context, filter ListFilter) ([]*Maintenance, error)
	UpdateMaintenance(ctx context.Context, m *Maintenance) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteMaintenance(ctx context.Context, id uuid.UUID) error
}

// Suggester proposes a problem group from free text.
type Suggester interface {
	Suggest(ctx context.Context, observation string) (uuid.UUID, bool, error)
}

type Service struct {
	repo      Repository
	suggester Suggester
	events    event.Publisher
}

func NewService(repo Repository, suggester Suggester, events event.Publisher) *Service {
	if events == nil {
		events = event.Nop{}
	}

	return &Service{repo: repo, suggester: suggester, events: events}
}

type CreateParams struct {
	EquipmentID    *uuid.UUID
	ProblemGroupID *uuid.UUID
	WorkshopID     *uuid.UUID
	Trailer        string
	Observation    string
	Status         Status
	ProblemDate    time.Time
	CreatedBy      *uuid.UUID
}

type UpdateParams struct {
	EquipmentID    *uuid.UUID
	ProblemGroupID *uuid.UUID
	WorkshopID     *uuid.UUID
	Trailer        string
	Observation    string
	ProblemDate    time.Time
}

type ListFilter struct {
	Status      *Status
	EquipmentID *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Maintenance, error) {
	status := params.Status
	if status == "" {
		status = StatusInTreatment
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	m := &Maintenance{
		EquipmentID:    params.EquipmentID,
		ProblemGroupID: params.ProblemGroupID,
		WorkshopID:     params.WorkshopID,
		Trailer:        params.Trailer,
		Observation:    params.Observation,
		Status:         status,
		ProblemDate:    params.ProblemDate,
		CreatedBy:      params.CreatedBy,
	}

	if m.ProblemDate.IsZero() {
		m.ProblemDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	if m.ProblemGroupID == nil {
		m.ProblemGroupID = s.suggest(ctx, m.Observation)
	}

	if status == StatusFinished && !m.Complete() {
		return nil, ErrIncomplete
	}

	if err := s.repo.CreateMaintenance(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ActionInsert, m.ID)

	return m, nil
}

func (s *Service) suggest(ctx context.Context, observation string) *uuid.UUID {
	if s.suggester == nil || observation == "" {
		return nil
	}

	id, ok, err := s.suggester.Suggest(ctx, observation)
	if err != nil {
		slog.Warn("failed to suggest problem group", "error", err)
		return nil
	}

	if !ok {
		return nil
	}

	return &id
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Maintenance, error) {
	return s.repo.GetMaintenance(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Maintenance, error) {
	return s.repo.ListMaintenances(ctx, filter)
}

// Update replaces the descriptive fields. A finished maintenance must stay complete.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Maintenance, error) {
	m, err := s.repo.GetMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}

	m.EquipmentID = params.EquipmentID
	m.ProblemGroupID = params.ProblemGroupID
	m.WorkshopID = params.WorkshopID
	m.Trailer = params.Trailer
	m.Observation = params.Observation

	if !params.ProblemDate.IsZero() {
		m.ProblemDate = params.ProblemDate
	}

	if m.Status == StatusFinished && !m.Complete() {
		return nil, ErrIncomplete
	}

	if err := s.repo.UpdateMaintenance(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ActionUpdate, m.ID)

	return m, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	m, err := s.repo.GetMaintenance(ctx, id)
	if err != nil {
		return err
	}

	if !m.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, status)
	}

	if status == StatusFinished && !m.Complete() {
		return ErrIncomplete
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.publish(ctx, event.ActionUpdate, id)

	return nil
}

// Complete moves a maintenance to finished.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	return s.UpdateStatus(ctx, id, StatusFinished)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMaintenance(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, event.ActionDelete, id)

	return nil
}

func (s *Service) publish(ctx context.Context, action event.Action, id uuid.UUID) {
	s.events.Publish(ctx, event.Change{Entity: entity, Action: action, ID: id})
}
