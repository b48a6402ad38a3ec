package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatch picks the longest pattern contained in the observation, newest first on ties.
func (s *Store) FindMatch(ctx context.Context, observation string) (uuid.UUID, bool, error) {
	query := `
		SELECT problem_group_id
		FROM description_mappings
		WHERE strpos(lower($1), lower(raw_pattern)) > 0
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, query, observation).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("finding match: %w", err)
	}

	return id, true, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern string, problemGroupID uuid.UUID) error {
	query := `
		INSERT INTO description_mappings (raw_pattern, problem_group_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, problemGroupID)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
