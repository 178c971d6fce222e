package gatekit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrincipalContext tests principal storage and retrieval
func TestPrincipalContext(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), Principal{UserID: 7, OrgID: 42})

		p := GetPrincipal(ctx)
		assert.Equal(t, int64(7), p.UserID)
		assert.Equal(t, int64(42), p.OrgID)
		assert.True(t, HasPrincipal(ctx))
	})

	t.Run("Unset defaults to anonymous", func(t *testing.T) {
		p := GetPrincipal(context.Background())
		assert.True(t, p.IsAnonymous())
		assert.False(t, HasPrincipal(context.Background()))
	})

	t.Run("Explicit anonymous is still set", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), Anonymous())
		assert.True(t, HasPrincipal(ctx))
		assert.True(t, GetPrincipal(ctx).IsAnonymous())
	})
}

// TestCheckerContext tests checker storage and retrieval
func TestCheckerContext(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		checker := NewChecker(Principal{UserID: 7}, newFakeStores().service())
		ctx := WithChecker(context.Background(), checker)

		assert.Same(t, checker, GetChecker(ctx))
		assert.Same(t, checker, FromContext(ctx))
	})

	t.Run("Unset returns nil", func(t *testing.T) {
		assert.Nil(t, GetChecker(context.Background()))
		assert.Nil(t, FromContext(context.Background()))
	})
}

// TestPrincipalIsAnonymous tests the anonymous sentinel
func TestPrincipalIsAnonymous(t *testing.T) {
	assert.True(t, Anonymous().IsAnonymous())
	assert.True(t, Principal{}.IsAnonymous())
	assert.False(t, Principal{UserID: 1}.IsAnonymous())
}
