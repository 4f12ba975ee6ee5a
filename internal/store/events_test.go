package store_test

import (
	"context"
	"testing"

	"event_manager/internal/domain"
	"event_manager/internal/store"
	"event_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	events := store.NewEventStore(testutil.NewDB(t))

	list, err := events.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := &domain.Event{Name: "Conf", Date: "2025-01-01", Description: strPtr("desc")}
	require.NoError(t, events.Create(ctx, first))
	second := &domain.Event{Name: "Conf", Date: "2025-02-01"}
	require.NoError(t, events.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID, "events may share a name")

	list, err = events.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Nil(t, list[1].Description)

	err = events.Update(ctx, &domain.Event{ID: first.ID, Name: "Conf 2025", Date: "2025-01-02"})
	require.NoError(t, err)

	got, err := events.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Conf 2025", got.Name)
	assert.Equal(t, "2025-01-02", got.Date)
	assert.Nil(t, got.Description, "update replaces all mutable fields")

	require.NoError(t, events.Delete(ctx, first.ID))
	_, err = events.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventUpdateUnchangedValues(t *testing.T) {
	ctx := context.Background()
	events := store.NewEventStore(testutil.NewDB(t))

	ev := &domain.Event{Name: "Same", Date: "2025-03-03"}
	require.NoError(t, events.Create(ctx, ev))

	assert.NoError(t, events.Update(ctx, &domain.Event{ID: ev.ID, Name: "Same", Date: "2025-03-03"}))
}

func TestEventMissingID(t *testing.T) {
	ctx := context.Background()
	events := store.NewEventStore(testutil.NewDB(t))

	_, err := events.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, events.Update(ctx, &domain.Event{ID: 42, Name: "x", Date: "2025-01-01"}), domain.ErrNotFound)
	assert.ErrorIs(t, events.Delete(ctx, 42), domain.ErrNotFound)
}
