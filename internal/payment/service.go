package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/event"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/metrics"
)

const entity = "payment"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, settledDate *time.Time) error
	DeletePayment(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

type ImportTx interface {
	CreatePayments(ctx context.Context, payments []*Payment) error
	Commit() error
	Rollback() error
}

type MaintenanceLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*maintenance.Maintenance, error)
}

type CostCenterLookup interface {
	GetCostCenter(ctx context.Context, id uuid.UUID) (*catalog.CostCenter, error)
	ListCostCenters(ctx context.Context) ([]*catalog.CostCenter, error)
}

type Service struct {
	repo         Repository
	maintenances MaintenanceLookup
	costCenters  CostCenterLookup
	events       event.Publisher
	now          func() time.Time
}

func NewService(repo Repository, maintenances MaintenanceLookup, costCenters CostCenterLookup, events event.Publisher) *Service {
	if events == nil {
		events = event.Nop{}
	}

	return &Service{
		repo:         repo,
		maintenances: maintenances,
		costCenters:  costCenters,
		events:       events,
		now:          time.Now,
	}
}

type CreateParams struct {
	MaintenanceID uuid.UUID
	CostCenterID  uuid.UUID
	InvoiceNumber string
	Condition     string
	Amount        decimal.Decimal
	DueDate       time.Time
	CreatedBy     *uuid.UUID
}

type ListFilter struct {
	Status        *Status
	MaintenanceID *uuid.UUID
	CostCenterID  *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Payment, error) {
	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if err := s.checkMaintenance(ctx, params.MaintenanceID); err != nil {
		return nil, err
	}

	if _, err := s.costCenters.GetCostCenter(ctx, params.CostCenterID); err != nil {
		return nil, fmt.Errorf("cost center %s: %w", params.CostCenterID, err)
	}

	p := newPayment(params)
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ActionInsert, p.ID)

	return p, nil
}

func newPayment(params CreateParams) *Payment {
	return &Payment{
		MaintenanceID: params.MaintenanceID,
		CostCenterID:  params.CostCenterID,
		InvoiceNumber: strings.TrimSpace(params.InvoiceNumber),
		Condition:     params.Condition,
		Amount:        params.Amount,
		Status:        StatusPending,
		DueDate:       params.DueDate,
		CreatedBy:     params.CreatedBy,
	}
}

func (s *Service) checkMaintenance(ctx context.Context, id uuid.UUID) error {
	m, err := s.maintenances.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("maintenance %s: %w", id, err)
	}

	if m.Status != maintenance.StatusFinished {
		return fmt.Errorf("%w: %s is %s", ErrMaintenanceNotFinished, id, m.Status)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

// UpdateStatus stamps the settled date when settling and clears it otherwise.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Payment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, status)
	}

	var settled *time.Time
	if status == StatusSettled {
		settled = new(s.now().UTC())
	}

	if err := s.repo.UpdateStatus(ctx, id, status, settled); err != nil {
		return nil, err
	}

	p.Status = status
	p.SettledDate = settled

	s.publish(ctx, event.ActionUpdate, id)

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePayment(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, event.ActionDelete, id)

	return nil
}

// ImportRow is one parsed line of a payment spreadsheet.
type ImportRow struct {
	Line           int
	MaintenanceID  uuid.UUID
	CostCenterName string
	InvoiceNumber  string
	Amount         decimal.Decimal
	DueDate        time.Time
}

type Rejection struct {
	Line   int
	Reason string
}

type ImportResult struct {
	Imported []*Payment
	Rejected []Rejection
}

// ImportBatch validates every row, then stores the accepted ones in a single transaction.
func (s *Service) ImportBatch(ctx context.Context, rows []ImportRow, createdBy *uuid.UUID) (*ImportResult, error) {
	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	centers, err := s.costCenters.ListCostCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}

	byName := make(map[string]uuid.UUID, len(centers))
	for _, c := range centers {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	result := &ImportResult{}

	var accepted []*Payment

	for _, row := range rows {
		centerID, ok := byName[strings.ToLower(strings.TrimSpace(row.CostCenterName))]
		if !ok {
			result.Rejected = append(result.Rejected, Rejection{Line: row.Line, Reason: fmt.Sprintf("unknown cost center %q", row.CostCenterName)})
			continue
		}

		if !row.Amount.IsPositive() {
			result.Rejected = append(result.Rejected, Rejection{Line: row.Line, Reason: ErrInvalidAmount.Error()})
			continue
		}

		if err := s.checkMaintenance(ctx, row.MaintenanceID); err != nil {
			if !errors.Is(err, ErrMaintenanceNotFinished) && !errors.Is(err, maintenance.ErrNotFound) {
				return nil, err
			}

			result.Rejected = append(result.Rejected, Rejection{Line: row.Line, Reason: err.Error()})

			continue
		}

		accepted = append(accepted, newPayment(CreateParams{
			MaintenanceID: row.MaintenanceID,
			CostCenterID:  centerID,
			InvoiceNumber: row.InvoiceNumber,
			Amount:        row.Amount,
			DueDate:       row.DueDate,
			CreatedBy:     createdBy,
		}))
	}

	metrics.AddImportedPayments(false, len(result.Rejected))

	if len(accepted) == 0 {
		return result, nil
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	if err := itx.CreatePayments(ctx, accepted); err != nil {
		return nil, fmt.Errorf("create payments: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	metrics.AddImportedPayments(true, len(accepted))

	for _, p := range accepted {
		s.publish(ctx, event.ActionInsert, p.ID)
	}

	result.Imported = accepted

	return result, nil
}

func (s *Service) publish(ctx context.Context, action event.Action, id uuid.UUID) {
	s.events.Publish(ctx, event.Change{Entity: entity, Action: action, ID: id})
}
