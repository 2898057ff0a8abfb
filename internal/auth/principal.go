package auth

import (
	"context"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

// Principal is the authenticated identity attached to a request context
// after token verification. An anonymous request carries none.
type Principal struct {
	ID    string
	Email string
	Role  string
}

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal attaches a verified principal to the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom extracts the principal, if any.
func PrincipalFrom(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}

// RequireAuthenticated fails with UNAUTHENTICATED when the context
// carries no principal.
func RequireAuthenticated(ctx context.Context) (*Principal, error) {
	p := PrincipalFrom(ctx)
	if p == nil {
		return nil, gqlerr.Unauthenticated("")
	}
	return p, nil
}

// RequireAdmin requires authentication first, then the admin role.
func RequireAdmin(ctx context.Context) (*Principal, error) {
	p, err := RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if p.Role != models.RoleAdmin {
		return nil, gqlerr.Forbidden("admin role required")
	}
	return p, nil
}
