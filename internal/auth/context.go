package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const contextKeyUser contextKey = "auth.user_id"

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKeyUser, id)
}

// UserID returns the authenticated user, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKeyUser).(uuid.UUID)
	return id, ok
}

// UserIDPtr is UserID shaped for createdBy columns.
func UserIDPtr(ctx context.Context) *uuid.UUID {
	if id, ok := UserID(ctx); ok {
		return &id
	}

	return nil
}
