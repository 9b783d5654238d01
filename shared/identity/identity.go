// Package identity carries the authenticated caller through request contexts.
package identity

import (
	"agenda/shared/constant"
	"context"
	"slices"
)

type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func (i Identity) HasRole(roles ...string) bool {
	return slices.Contains(roles, i.Role)
}

// Actor is the value written to created_by and modified_by columns.
func (i Identity) Actor() string {
	if i.IsZero() {
		return constant.ContextGuest
	}

	return i.UserID
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, constant.ContextKeyIdentity, id)
}

// FromContext returns the caller stored by the auth middleware. The boolean is false for
// anonymous requests.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(constant.ContextKeyIdentity).(Identity)
	if !ok || id.IsZero() {
		return Identity{}, false
	}

	return id, true
}
