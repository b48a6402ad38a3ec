package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyPattern = errors.New("pattern is empty")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindMatch(ctx context.Context, observation string) (uuid.UUID, bool, error)
	CreateMapping(ctx context.Context, rawPattern string, problemGroupID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the problem group whose learned pattern best matches the observation text.
// The bool is false when nothing matches.
func (s *Service) Suggest(ctx context.Context, observation string) (uuid.UUID, bool, error) {
	observation = strings.TrimSpace(observation)
	if observation == "" {
		return uuid.Nil, false, nil
	}

	return s.repo.FindMatch(ctx, observation)
}

// Learn remembers that observations containing rawPattern belong to problemGroupID.
func (s *Service) Learn(ctx context.Context, rawPattern string, problemGroupID uuid.UUID) error {
	rawPattern = strings.TrimSpace(rawPattern)
	if rawPattern == "" {
		return ErrEmptyPattern
	}

	if err := s.repo.CreateMapping(ctx, rawPattern, problemGroupID); err != nil {
		return fmt.Errorf("learn mapping: %w", err)
	}

	return nil
}
