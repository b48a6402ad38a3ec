package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/currency"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateEquipment(ctx context.Context, e *Equipment) error
	GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error)
	ListEquipment(ctx context.Context) ([]*Equipment, error)

	CreateProblemGroup(ctx context.Context, g *ProblemGroup) error
	GetProblemGroup(ctx context.Context, id uuid.UUID) (*ProblemGroup, error)
	ListProblemGroups(ctx context.Context) ([]*ProblemGroup, error)

	CreateCostCenter(ctx context.Context, c *CostCenter) error
	GetCostCenter(ctx context.Context, id uuid.UUID) (*CostCenter, error)
	ListCostCenters(ctx context.Context) ([]*CostCenter, error)

	CreateWorkshop(ctx context.Context, w *Workshop) error
	ListWorkshops(ctx context.Context) ([]*Workshop, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EquipmentParams struct {
	Fleet string
	Model string
	Brand string
	Year  int
}

func (s *Service) CreateEquipment(ctx context.Context, params EquipmentParams) (*Equipment, error) {
	fleet := strings.TrimSpace(params.Fleet)
	if fleet == "" {
		return nil, fmt.Errorf("%w: fleet is required", ErrInvalid)
	}

	if params.Year < 0 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalid, params.Year)
	}

	e := &Equipment{
		Fleet: fleet,
		Model: strings.TrimSpace(params.Model),
		Brand: strings.TrimSpace(params.Brand),
		Year:  params.Year,
	}
	if err := s.repo.CreateEquipment(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return s.repo.GetEquipment(ctx, id)
}

func (s *Service) ListEquipment(ctx context.Context) ([]*Equipment, error) {
	return s.repo.ListEquipment(ctx)
}

func (s *Service) CreateProblemGroup(ctx context.Context, name string) (*ProblemGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	g := &ProblemGroup{Name: name}
	if err := s.repo.CreateProblemGroup(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) GetProblemGroup(ctx context.Context, id uuid.UUID) (*ProblemGroup, error) {
	return s.repo.GetProblemGroup(ctx, id)
}

func (s *Service) ListProblemGroups(ctx context.Context) ([]*ProblemGroup, error) {
	return s.repo.ListProblemGroups(ctx)
}

// CreateCostCenter validates and upper-cases the currency code before storing it.
func (s *Service) CreateCostCenter(ctx context.Context, name, code string) (*CostCenter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	cur, err := currency.ParseCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	c := &CostCenter{Name: name, Currency: cur}
	if err := s.repo.CreateCostCenter(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) GetCostCenter(ctx context.Context, id uuid.UUID) (*CostCenter, error) {
	return s.repo.GetCostCenter(ctx, id)
}

func (s *Service) ListCostCenters(ctx context.Context) ([]*CostCenter, error) {
	return s.repo.ListCostCenters(ctx)
}

type WorkshopParams struct {
	Name    string
	Address string
	Phone   string
}

func (s *Service) CreateWorkshop(ctx context.Context, params WorkshopParams) (*Workshop, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	w := &Workshop{Name: name, Address: params.Address, Phone: params.Phone}
	if err := s.repo.CreateWorkshop(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) ListWorkshops(ctx context.Context) ([]*Workshop, error) {
	return s.repo.ListWorkshops(ctx)
}
