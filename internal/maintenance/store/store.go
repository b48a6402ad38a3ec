package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/maintenance"
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

// Expected column order: id, equipment_id, problem_group_id, workshop_id, trailer, observation, status,
// problem_date, created_by, created_at, updated_at
func scanMaintenance(s scanner) (*maintenance.Maintenance, error) {
	var (
		m      maintenance.Maintenance
		status string
	)

	if err := s.Scan(
		&m.ID, &m.EquipmentID, &m.ProblemGroupID, &m.WorkshopID, &m.Trailer, &m.Observation, &status,
		&m.ProblemDate, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.Status = maintenance.Status(status)

	return &m, nil
}

const selectMaintenanceColumns = `
	id, equipment_id, problem_group_id, workshop_id, trailer, observation, status,
	problem_date, created_by, created_at, updated_at
`

func (s *Store) CreateMaintenance(ctx context.Context, m *maintenance.Maintenance) error {
	query := `
		INSERT INTO maintenances (equipment_id, problem_group_id, workshop_id, trailer, observation, status, problem_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.EquipmentID,
		m.ProblemGroupID,
		m.WorkshopID,
		m.Trailer,
		m.Observation,
		m.Status,
		m.ProblemDate,
		m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating maintenance: %w", err)
	}

	return nil
}

func (s *Store) GetMaintenance(ctx context.Context, id uuid.UUID) (*maintenance.Maintenance, error) {
	query := `SELECT ` + selectMaintenanceColumns + ` FROM maintenances WHERE id = $1`

	m, err := scanMaintenance(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, maintenance.ErrNotFound
		}

		return nil, fmt.Errorf("getting maintenance: %w", err)
	}

	return m, nil
}

func (s *Store) ListMaintenances(ctx context.Context, filter maintenance.ListFilter) ([]*maintenance.Maintenance, error) {
	query := `SELECT ` + selectMaintenanceColumns + ` FROM maintenances WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.EquipmentID != nil {
		query += fmt.Sprintf(" AND equipment_id = $%d", argIdx)

		args = append(args, *filter.EquipmentID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND problem_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND problem_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY problem_date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing maintenances: %w", err)
	}
	defer rows.Close()

	var out []*maintenance.Maintenance

	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning maintenance: %w", err)
		}

		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating maintenances: %w", err)
	}

	return out, nil
}

func (s *Store) UpdateMaintenance(ctx context.Context, m *maintenance.Maintenance) error {
	query := `
		UPDATE maintenances
		SET equipment_id = $1, problem_group_id = $2, workshop_id = $3, trailer = $4, observation = $5,
			problem_date = $6, updated_at = NOW()
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		m.EquipmentID,
		m.ProblemGroupID,
		m.WorkshopID,
		m.Trailer,
		m.Observation,
		m.ProblemDate,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating maintenance: %w", err)
	}

	return expectOne(res)
}

// UpdateStatus never touches a finished maintenance.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status maintenance.Status) error {
	query := `
		UPDATE maintenances
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status <> $3
	`

	res, err := s.db.ExecContext(ctx, query, status, id, maintenance.StatusFinished)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	if err := expectOne(res); err != nil {
		return maintenance.ErrInvalidTransition
	}

	return nil
}

func (s *Store) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting maintenance: %w", err)
	}

	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return maintenance.ErrNotFound
	}

	return nil
}
