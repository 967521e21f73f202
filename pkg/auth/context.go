package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// ErrPrincipalNotFound is returned when no principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrPrincipalNotFound = errors.New("principal not found in context")

// PrincipalFromCtx extracts the authenticated calling principal from the
// request context. Every registry operation resolves its caller through this
// function — caller identity is always explicit, never ambient.
// Returns uuid.Nil and ErrPrincipalNotFound if no principal is set.
func PrincipalFromCtx(ctx context.Context) (uuid.UUID, error) {
	p, ok := ctx.Value(principalKey).(uuid.UUID)
	if !ok || p == uuid.Nil {
		return uuid.Nil, ErrPrincipalNotFound
	}
	return p, nil
}

// WithPrincipal returns a new context with the given principal attached.
// Used by authentication middleware after validating the session.
func WithPrincipal(ctx context.Context, p uuid.UUID) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
