package service_test

import (
	"context"
	"testing"

	"event_manager/internal/domain"
	"event_manager/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRegistrationValidation(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	id, err := h.events.Create(ctx, admin, service.EventInput{Name: "Conf", Date: "2025-01-01"})
	require.NoError(t, err)

	for _, in := range []service.RegistrationInput{
		{Name: "", Email: "bob@x.com"},
		{Name: "Bob", Email: ""},
		{Name: "  ", Email: "bob@x.com"},
	} {
		_, err := h.registrations.Submit(ctx, id, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	n, err := h.regStore.CountByEvent(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n, "no row is inserted on validation failure")
}

func TestSubmitRegistrationUnknownEvent(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.registrations.Submit(context.Background(), 12345, service.RegistrationInput{Name: "Bob", Email: "bob@x.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetEventForRegistrationForm(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	id, err := h.events.Create(ctx, admin, service.EventInput{Name: "Conf", Date: "2025-01-01"})
	require.NoError(t, err)

	ev, err := h.registrations.GetEvent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Conf", ev.Name)

	_, err = h.registrations.GetEvent(ctx, id+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEndToEndRegistration(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	e1, err := h.events.Create(ctx, admin, service.EventInput{Name: "Conf", Date: "2025-01-01", Description: strPtr("desc")})
	require.NoError(t, err)

	_, err = h.registrations.Submit(ctx, e1, service.RegistrationInput{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	list, err := h.registrations.List(ctx, admin, e1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Registrant{{Name: "Bob", Email: "bob@x.com"}}, list)

	// Cached list is invalidated by a new submission
	_, err = h.registrations.Submit(ctx, e1, service.RegistrationInput{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	list, err = h.registrations.List(ctx, admin, e1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDeleteEventCascadePolicy(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	admin := h.login(t, "alice", domain.RoleAdmin)

	e1, err := h.events.Create(ctx, admin, service.EventInput{Name: "Conf", Date: "2025-01-01"})
	require.NoError(t, err)
	_, err = h.registrations.Submit(ctx, e1, service.RegistrationInput{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	// Prime the registrant cache so deletion has to clear it
	_, err = h.registrations.List(ctx, admin, e1)
	require.NoError(t, err)

	require.NoError(t, h.events.Delete(ctx, admin, e1))

	_, err = h.registrations.List(ctx, admin, e1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := h.regStore.CountByEvent(ctx, e1)
	require.NoError(t, err)
	assert.Zero(t, n, "registrations are deleted with their event")
}
