package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)

	search := data.FindPermissions("/v1/companies", http.MethodGet)
	assert.True(t, search.Skip)

	status := data.FindPermissions("/v1/bookings/{id}/status", http.MethodPatch)
	assert.False(t, status.Skip)
	assert.ElementsMatch(t, []string{"owner", "admin"}, status.Permissions)

	intake := data.FindPermissions("/v1/bookings", http.MethodPost)
	assert.Contains(t, intake.Permissions, "client")

	unknown := data.FindPermissions("/v1/nowhere", http.MethodGet)
	assert.Empty(t, unknown.Path)
	assert.False(t, unknown.Skip)
}
