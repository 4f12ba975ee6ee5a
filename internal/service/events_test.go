package service_test

import (
	"context"
	"testing"

	"event_manager/internal/domain"
	"event_manager/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEventCRUD(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	id, err := h.events.Create(ctx, admin, service.EventInput{Name: "Conf", Date: "2025-01-01", Description: strPtr("desc")})
	require.NoError(t, err)

	events, err := h.events.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "desc", *events[0].Description)

	// The list above is now cached; an update must invalidate it
	require.NoError(t, h.events.Update(ctx, admin, id, service.EventInput{Name: "Conf II", Date: "2025-01-02", Description: strPtr(" ")}))
	events, err = h.events.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Conf II", events[0].Name)
	assert.Nil(t, events[0].Description, "blank description is stored as NULL")

	require.NoError(t, h.events.Delete(ctx, admin, id))
	events, err = h.events.List(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventValidation(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	tests := []struct {
		name string
		in   service.EventInput
	}{
		{"missing name", service.EventInput{Date: "2025-01-01"}},
		{"missing date", service.EventInput{Name: "Conf"}},
		{"bad date", service.EventInput{Name: "Conf", Date: "01/01/2025"}},
		{"impossible date", service.EventInput{Name: "Conf", Date: "2025-02-30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.events.Create(ctx, admin, tt.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventNotFound(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	err := h.events.Update(ctx, admin, 404, service.EventInput{Name: "x", Date: "2025-01-01"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, h.events.Delete(ctx, admin, 404), domain.ErrNotFound)
	_, err = h.events.Get(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
