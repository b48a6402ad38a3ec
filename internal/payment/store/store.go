package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frostguard/frostguard/internal/payment"
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

// Expected column order: id, maintenance_id, cost_center_id, invoice_number, condition, amount, status,
// due_date, settled_date, created_by, created_at
func scanPayment(s scanner) (*payment.Payment, error) {
	var (
		p      payment.Payment
		status string
	)

	if err := s.Scan(
		&p.ID, &p.MaintenanceID, &p.CostCenterID, &p.InvoiceNumber, &p.Condition, &p.Amount, &status,
		&p.DueDate, &p.SettledDate, &p.CreatedBy, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = payment.Status(status)

	return &p, nil
}

const selectPaymentColumns = `
	id, maintenance_id, cost_center_id, invoice_number, condition, amount, status,
	due_date, settled_date, created_by, created_at
`

const insertPayment = `
	INSERT INTO payments (maintenance_id, cost_center_id, invoice_number, condition, amount, status, due_date, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	RETURNING id, created_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q queryRower, p *payment.Payment) error {
	err := q.QueryRowContext(ctx, insertPayment,
		p.MaintenanceID,
		p.CostCenterID,
		p.InvoiceNumber,
		p.Condition,
		p.Amount,
		p.Status,
		p.DueDate,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	return insert(ctx, s.db, p)
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.MaintenanceID != nil {
		query += fmt.Sprintf(" AND maintenance_id = $%d", argIdx)

		args = append(args, *filter.MaintenanceID)
		argIdx++
	}

	if filter.CostCenterID != nil {
		query += fmt.Sprintf(" AND cost_center_id = $%d", argIdx)

		args = append(args, *filter.CostCenterID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND due_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND due_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY due_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var out []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return out, nil
}

// UpdateStatus leaves cancelled payments untouched.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, settledDate *time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, settled_date = $2
		WHERE id = $3 AND status <> $4
	`

	res, err := s.db.ExecContext(ctx, query, status, settledDate, id, payment.StatusCancelled)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return payment.ErrInvalidTransition
	}

	return nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return payment.ErrNotFound
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

// BeginImport serializes concurrent imports with an advisory lock.
func (s *Store) BeginImport(ctx context.Context) (payment.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

const importLockKey int64 = 0x66726f7374

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) CreatePayments(ctx context.Context, payments []*payment.Payment) error {
	for _, p := range payments {
		if err := insert(ctx, itx.tx, p); err != nil {
			return err
		}
	}

	return nil
}
