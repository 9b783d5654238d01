package identity_test

import (
	"agenda/shared/constant"
	"agenda/shared/identity"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	_, ok := identity.FromContext(context.Background())
	assert.False(t, ok)

	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: "u1", Role: constant.RoleOwner})

	id, ok := identity.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id.UserID)
	assert.True(t, id.HasRole(constant.RoleOwner, constant.RoleAdmin))
	assert.False(t, id.HasRole(constant.RoleClient))
}

func TestFromContext_ZeroIdentity(t *testing.T) {
	ctx := identity.WithIdentity(context.Background(), identity.Identity{})

	_, ok := identity.FromContext(ctx)
	assert.False(t, ok)
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ContextGuest, identity.Identity{}.Actor())
	assert.Equal(t, "u1", identity.Identity{UserID: "u1"}.Actor())
}
