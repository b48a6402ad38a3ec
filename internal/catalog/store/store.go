package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.ErrNotFound
	}

	return err
}

func (s *Store) CreateEquipment(ctx context.Context, e *catalog.Equipment) error {
	query := `
		INSERT INTO equipment (fleet, model, brand, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, e.Fleet, e.Model, e.Brand, e.Year).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("creating equipment: %w", err)
	}

	return nil
}

const selectEquipment = `SELECT id, fleet, model, brand, year, created_at FROM equipment`

func scanEquipment(s scanner) (*catalog.Equipment, error) {
	var e catalog.Equipment
	if err := s.Scan(&e.ID, &e.Fleet, &e.Model, &e.Brand, &e.Year, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) GetEquipment(ctx context.Context, id uuid.UUID) (*catalog.Equipment, error) {
	e, err := scanEquipment(s.db.QueryRowContext(ctx, selectEquipment+` WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("getting equipment: %w", notFound(err))
	}

	return e, nil
}

func (s *Store) ListEquipment(ctx context.Context) ([]*catalog.Equipment, error) {
	return list(ctx, s.db, selectEquipment+` ORDER BY fleet ASC`, "equipment", scanEquipment)
}

func (s *Store) CreateProblemGroup(ctx context.Context, g *catalog.ProblemGroup) error {
	query := `INSERT INTO problem_groups (name) VALUES ($1) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, g.Name).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("creating problem group: %w", err)
	}

	return nil
}

const selectProblemGroup = `SELECT id, name, created_at FROM problem_groups`

func scanProblemGroup(s scanner) (*catalog.ProblemGroup, error) {
	var g catalog.ProblemGroup
	if err := s.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *Store) GetProblemGroup(ctx context.Context, id uuid.UUID) (*catalog.ProblemGroup, error) {
	g, err := scanProblemGroup(s.db.QueryRowContext(ctx, selectProblemGroup+` WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("getting problem group: %w", notFound(err))
	}

	return g, nil
}

func (s *Store) ListProblemGroups(ctx context.Context) ([]*catalog.ProblemGroup, error) {
	return list(ctx, s.db, selectProblemGroup+` ORDER BY name ASC`, "problem groups", scanProblemGroup)
}

func (s *Store) CreateCostCenter(ctx context.Context, c *catalog.CostCenter) error {
	query := `INSERT INTO cost_centers (name, currency_code) VALUES ($1, $2) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, c.Name, c.Currency).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating cost center: %w", err)
	}

	return nil
}

const selectCostCenter = `SELECT id, name, currency_code, created_at FROM cost_centers`

func scanCostCenter(s scanner) (*catalog.CostCenter, error) {
	var (
		c    catalog.CostCenter
		code string
	)

	if err := s.Scan(&c.ID, &c.Name, &code, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Currency = currency.Code(code)

	return &c, nil
}

func (s *Store) GetCostCenter(ctx context.Context, id uuid.UUID) (*catalog.CostCenter, error) {
	c, err := scanCostCenter(s.db.QueryRowContext(ctx, selectCostCenter+` WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("getting cost center: %w", notFound(err))
	}

	return c, nil
}

func (s *Store) ListCostCenters(ctx context.Context) ([]*catalog.CostCenter, error) {
	return list(ctx, s.db, selectCostCenter+` ORDER BY name ASC`, "cost centers", scanCostCenter)
}

func (s *Store) CreateWorkshop(ctx context.Context, w *catalog.Workshop) error {
	query := `INSERT INTO workshops (name, address, phone) VALUES ($1, $2, $3) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, w.Name, w.Address, w.Phone).Scan(&w.ID, &w.CreatedAt); err != nil {
		return fmt.Errorf("creating workshop: %w", err)
	}

	return nil
}

func (s *Store) ListWorkshops(ctx context.Context) ([]*catalog.Workshop, error) {
	query := `SELECT id, name, address, phone, created_at FROM workshops ORDER BY name ASC`

	return list(ctx, s.db, query, "workshops", func(s scanner) (*catalog.Workshop, error) {
		var w catalog.Workshop
		if err := s.Scan(&w.ID, &w.Name, &w.Address, &w.Phone, &w.CreatedAt); err != nil {
			return nil, err
		}

		return &w, nil
	})
}

func list[T any](ctx context.Context, db *sql.DB, query, what string, scan func(scanner) (*T, error)) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}
	defer rows.Close()

	var out []*T

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", what, err)
		}

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", what, err)
	}

	return out, nil
}
