package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	t.Parallel()

	_, err := RequireAuthenticated(context.Background())
	require.Error(t, err)
	assert.Equal(t, gqlerr.CodeUnauthenticated, gqlerr.CodeOf(err))
}

func TestRequireAuthenticated_WithPrincipal(t *testing.T) {
	t.Parallel()

	ctx := WithPrincipal(context.Background(), &Principal{ID: "u1", Role: models.RoleStudent})
	p, err := RequireAuthenticated(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	// Anonymous fails with UNAUTHENTICATED, not FORBIDDEN.
	_, err := RequireAdmin(context.Background())
	assert.Equal(t, gqlerr.CodeUnauthenticated, gqlerr.CodeOf(err))

	// A student principal is authenticated but not authorized.
	ctx := WithPrincipal(context.Background(), &Principal{ID: "u1", Role: models.RoleStudent})
	_, err = RequireAdmin(ctx)
	assert.Equal(t, gqlerr.CodeForbidden, gqlerr.CodeOf(err))

	ctx = WithPrincipal(context.Background(), &Principal{ID: "u2", Role: models.RoleAdmin})
	p, err := RequireAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", p.ID)
}
