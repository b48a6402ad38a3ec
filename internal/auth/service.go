package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	CreateReset(ctx context.Context, r *Reset) error
	// ConsumeReset marks an unused, unexpired token as used and returns its user.
	ConsumeReset(ctx context.Context, token string, now time.Time) (uuid.UUID, error)
}

type Service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
	cost     int
	now      func() time.Time
}

type Option func(*Service)

// WithBcryptCost lowers the hashing cost, for tests.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, secret string, tokenTTL, resetTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return email, nil
}

func (s *Service) hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	u := &User{Email: email, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return u, nil
}

// Login returns a signed token for valid credentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return signToken(s.secret, u, s.now(), s.tokenTTL)
}

func (s *Service) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	return parseToken(s.secret, token, s.now())
}

// ForgotPassword issues a reset token. Unknown emails yield an empty token and no error.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}

		return "", fmt.Errorf("loading user: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}

	reset := &Reset{
		Token:     hex.EncodeToString(buf),
		UserID:    u.ID,
		ExpiresAt: s.now().Add(s.resetTTL),
	}

	if err := s.repo.CreateReset(ctx, reset); err != nil {
		return "", fmt.Errorf("storing reset token: %w", err)
	}

	// No mailer yet; operators hand the token over.
	slog.Info("password reset requested", "user_id", u.ID, "token", reset.Token, "expires_at", reset.ExpiresAt)

	return reset.Token, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	userID, err := s.repo.ConsumeReset(ctx, token, s.now())
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}
