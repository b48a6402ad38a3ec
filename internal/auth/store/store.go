package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/frostguard/frostguard/internal/auth"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

const selectUser = `SELECT id, email, password_hash, created_at FROM users`

func (s *Store) scanUser(row *sql.Row) (*auth.User, error) {
	var u auth.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
}

func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return auth.ErrNotFound
	}

	return nil
}

func (s *Store) CreateReset(ctx context.Context, r *auth.Reset) error {
	query := `INSERT INTO password_resets (token, user_id, expires_at) VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, r.Token, r.UserID, r.ExpiresAt); err != nil {
		return fmt.Errorf("creating password reset: %w", err)
	}

	return nil
}

func (s *Store) ConsumeReset(ctx context.Context, token string, now time.Time) (uuid.UUID, error) {
	query := `
		UPDATE password_resets SET used_at = $2
		WHERE token = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING user_id
	`

	var id uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, token, now).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, auth.ErrInvalidToken
		}

		return uuid.Nil, fmt.Errorf("consuming password reset: %w", err)
	}

	return id, nil
}
