package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
)

// Store reads whole tables for report computation. Each list is a single query.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) ListPayments(ctx context.Context) ([]*payment.Payment, error) {
	query := `
		SELECT id, maintenance_id, cost_center_id, amount, status, due_date, settled_date
		FROM payments
		ORDER BY created_at ASC, id ASC
	`

	return list(ctx, s.db, query, "payments", func(sc scanner) (*payment.Payment, error) {
		var (
			p      payment.Payment
			status string
		)

		if err := sc.Scan(&p.ID, &p.MaintenanceID, &p.CostCenterID, &p.Amount, &status, &p.DueDate, &p.SettledDate); err != nil {
			return nil, err
		}

		p.Status = payment.Status(status)

		return &p, nil
	})
}

func (s *Store) ListMaintenances(ctx context.Context) ([]*maintenance.Maintenance, error) {
	query := `
		SELECT id, equipment_id, problem_group_id, status, problem_date
		FROM maintenances
		ORDER BY problem_date ASC, id ASC
	`

	return list(ctx, s.db, query, "maintenances", func(sc scanner) (*maintenance.Maintenance, error) {
		var (
			m      maintenance.Maintenance
			status string
		)

		if err := sc.Scan(&m.ID, &m.EquipmentID, &m.ProblemGroupID, &status, &m.ProblemDate); err != nil {
			return nil, err
		}

		m.Status = maintenance.Status(status)

		return &m, nil
	})
}

func (s *Store) ListCostCenters(ctx context.Context) ([]*catalog.CostCenter, error) {
	query := `SELECT id, name, currency_code FROM cost_centers`

	return list(ctx, s.db, query, "cost centers", func(sc scanner) (*catalog.CostCenter, error) {
		var (
			c    catalog.CostCenter
			code string
		)

		if err := sc.Scan(&c.ID, &c.Name, &code); err != nil {
			return nil, err
		}

		c.Currency = currency.Code(code)

		return &c, nil
	})
}

func (s *Store) ListEquipment(ctx context.Context) ([]*catalog.Equipment, error) {
	query := `SELECT id, fleet, model FROM equipment`

	return list(ctx, s.db, query, "equipment", func(sc scanner) (*catalog.Equipment, error) {
		var e catalog.Equipment
		if err := sc.Scan(&e.ID, &e.Fleet, &e.Model); err != nil {
			return nil, err
		}

		return &e, nil
	})
}

func (s *Store) ListProblemGroups(ctx context.Context) ([]*catalog.ProblemGroup, error) {
	query := `SELECT id, name FROM problem_groups`

	return list(ctx, s.db, query, "problem groups", func(sc scanner) (*catalog.ProblemGroup, error) {
		var g catalog.ProblemGroup
		if err := sc.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}

		return &g, nil
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
