package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// RoleAdmin may create, modify and delete catalog items.
const RoleAdmin = "admin"

// Principal is the authenticated member behind a request.
type Principal struct {
	MemberID int64
	Role     string
}

// IsAdmin reports whether the principal may mutate the catalog.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ErrPrincipalNotFound is returned when no Principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrPrincipalNotFound = errors.New("principal not found in context")

// PrincipalFromCtx extracts the authenticated member from the request context.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.MemberID <= 0 {
		return Principal{}, ErrPrincipalNotFound
	}
	return p, nil
}

// WithPrincipal returns a new context with the given Principal attached.
// Used by authentication middleware after validating the session.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
