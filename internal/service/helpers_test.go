package service_test

import (
	"context"
	"testing"
	"time"

	"event_manager/internal/cache"
	"event_manager/internal/domain"
	"event_manager/internal/service"
	"event_manager/internal/session"
	"event_manager/internal/store"
	"event_manager/internal/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type harness struct {
	accounts      *service.Accounts
	events        *service.Events
	registrations *service.Registrations
	regStore      *store.RegistrationStore
}

func newHarness(t *testing.T, allowAdminSignup bool) *harness {
	t.Helper()
	db := testutil.NewDB(t)
	_, rdb := testutil.NewRedis(t)

	eventStore := store.NewEventStore(db)
	regStore := store.NewRegistrationStore(db)
	c := cache.New(rdb, time.Minute)

	return &harness{
		accounts: service.NewAccounts(
			store.NewAccountStore(db, bcrypt.MinCost),
			session.NewManager(rdb, "test-secret", time.Hour),
			allowAdminSignup,
		),
		events:        service.NewEvents(eventStore, c),
		registrations: service.NewRegistrations(regStore, eventStore, c),
		regStore:      regStore,
	}
}

// login registers username with role and returns the logged-in session
func (h *harness) login(t *testing.T, username string, role domain.Role) *domain.Session {
	t.Helper()
	ctx := context.Background()
	_, err := h.accounts.Register(ctx, service.NewAccount{Username: username, Password: "pw", Role: role})
	require.NoError(t, err)
	_, sess, err := h.accounts.Login(ctx, service.Credentials{Username: username, Password: "pw", Role: role}, "")
	require.NoError(t, err)
	return sess
}

func strPtr(s string) *string { return &s }
