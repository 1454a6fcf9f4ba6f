// Package storetest is the behaviour suite every store driver must pass.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run exercises a fresh, migrated store returned by newStore.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("catalog", func(t *testing.T) { testCatalog(t, newStore(t)) })
	t.Run("clients", func(t *testing.T) { testClients(t, newStore(t)) })
	t.Run("references", func(t *testing.T) { testReferences(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
	t.Run("writes beside a transaction", func(t *testing.T) { testWritesBesideTx(t, newStore(t)) })
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := domain.User{ID: idx.NewPrefixed(idx.PrefixUser), Email: "admin@pandda.com", PasswordHash: "h", Role: domain.RoleMaster}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	dup := u
	dup.ID = idx.NewPrefixed(idx.PrefixUser)
	dup.Email = "ADMIN@pandda.com"
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Users().GetUserByEmail(ctx, "Admin@Pandda.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleMaster, got.Role)
	require.False(t, got.CreatedAt.IsZero())

	_, err = s.Users().GetUserByID(ctx, "u_missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func seedCatalog(t *testing.T, s store.Store) (domain.Server, domain.App, domain.App, domain.Plan) {
	t.Helper()
	ctx := context.Background()

	srv := domain.Server{ID: idx.NewPrefixed(idx.PrefixServer), Name: "Servidor A", Alias: "srv-a"}
	require.NoError(t, s.Servers().CreateServer(ctx, srv))

	multi := domain.App{ID: idx.NewPrefixed(idx.PrefixApp), Name: "App X", AccessCode: "AX1", MultipleAccess: true, ServerID: srv.ID}
	single := domain.App{ID: idx.NewPrefixed(idx.PrefixApp), Name: "App Z", AccessCode: "AZ1", ServerID: srv.ID}
	require.NoError(t, s.Apps().CreateApp(ctx, multi))
	require.NoError(t, s.Apps().CreateApp(ctx, single))

	plan := domain.Plan{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Básico", Screens: 2, ValidityMonths: 1, Price: 29.9}
	require.NoError(t, s.Plans().CreatePlan(ctx, plan))

	return srv, multi, single, plan
}

func testCatalog(t *testing.T, s store.Store) {
	ctx := context.Background()
	srv, multi, single, plan := seedCatalog(t, s)

	apps, err := s.Apps().ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, multi.ID, apps[0].ID)
	require.True(t, apps[0].MultipleAccess)
	require.False(t, apps[1].MultipleAccess)

	single.Name = "App Z2"
	single.MultipleAccess = true
	require.NoError(t, s.Apps().UpdateApp(ctx, single))
	got, err := s.Apps().GetAppByID(ctx, single.ID)
	require.NoError(t, err)
	require.Equal(t, "App Z2", got.Name)
	require.True(t, got.MultipleAccess)

	plan.Notes = "Inclui suporte básico"
	plan.Price = 39.9
	require.NoError(t, s.Plans().UpdatePlan(ctx, plan))
	gotPlan, err := s.Plans().GetPlanByID(ctx, plan.ID)
	require.NoError(t, err)
	require.InDelta(t, 39.9, gotPlan.Price, 1e-9)
	require.Equal(t, "Inclui suporte básico", gotPlan.Notes)

	srv.Alias = "srv-a2"
	require.NoError(t, s.Servers().UpdateServer(ctx, srv))
	servers, err := s.Servers().ListServers(ctx)
	require.NoError(t, err)
	require.Equal(t, "srv-a2", servers[0].Alias)

	require.ErrorIs(t, s.Plans().UpdatePlan(ctx, domain.Plan{ID: "pl_missing", Name: "x", Screens: 1, ValidityMonths: 1}), store.ErrNotFound)
	require.ErrorIs(t, s.Servers().DeleteServer(ctx, "srv_missing"), store.ErrNotFound)

	require.NoError(t, s.Plans().DeletePlan(ctx, plan.ID))
	plans, err := s.Plans().ListPlans(ctx)
	require.NoError(t, err)
	require.Empty(t, plans)
}

func testClients(t *testing.T, s store.Store) {
	ctx := context.Background()
	_, multi, single, plan := seedCatalog(t, s)

	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Client{
		ID:       idx.NewPrefixed(idx.PrefixClient),
		Name:     "João Silva",
		Phone:    "79999-0001",
		Email:    "joao@mail.com",
		DueDate:  due,
		PlanID:   plan.ID,
		Screens:  3,
		Price:    29.9,
		Notified: true,
		AccessPoints: []domain.AccessPoint{
			{ID: idx.NewPrefixed(idx.PrefixAccessPoint), AppID: multi.ID, AppName: multi.Name, Username: "joao", Password: "p1", Connections: 2},
			{ID: idx.NewPrefixed(idx.PrefixAccessPoint), AppID: single.ID, AppName: single.Name, Username: "joao2", Password: "p2", Connections: 1},
		},
	}
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "João Silva", got.Name)
	require.True(t, got.DueDate.Equal(due))
	require.True(t, got.Notified)
	require.Len(t, got.AccessPoints, 2)
	require.Equal(t, multi.ID, got.AccessPoints[0].AppID)
	require.Equal(t, c.ID, got.AccessPoints[0].ClientID)
	require.Equal(t, 3, got.TotalConnections())

	got.AccessPoints = got.AccessPoints[:1]
	got.AccessPoints[0].Connections = 3
	got.Name = "João S."
	require.NoError(t, s.Clients().UpdateClient(ctx, got))

	list, err := s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "João S.", list[0].Name)
	require.Len(t, list[0].AccessPoints, 1)
	require.Equal(t, 3, list[0].AccessPoints[0].Connections)

	list[0].AccessPoints[0].Connections = 99
	again, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 3, again.AccessPoints[0].Connections, "returned records must not alias storage")

	require.NoError(t, s.Clients().DeleteClient(ctx, c.ID))
	_, err = s.Clients().GetClientByID(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Clients().DeleteClient(ctx, c.ID), store.ErrNotFound)
}

func testReferences(t *testing.T, s store.Store) {
	ctx := context.Background()
	srv, multi, _, plan := seedCatalog(t, s)

	require.ErrorIs(t, s.Apps().CreateApp(ctx, domain.App{ID: idx.NewPrefixed(idx.PrefixApp), Name: "Órfão", ServerID: "srv_missing"}), store.ErrNotFound)

	c := domain.Client{
		ID: idx.NewPrefixed(idx.PrefixClient), Name: "Maria", PlanID: plan.ID, Screens: 1,
		AccessPoints: []domain.AccessPoint{{ID: idx.NewPrefixed(idx.PrefixAccessPoint), AppID: multi.ID, Connections: 1}},
	}
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	require.ErrorIs(t, s.Plans().DeletePlan(ctx, plan.ID), store.ErrInUse)
	require.ErrorIs(t, s.Apps().DeleteApp(ctx, multi.ID), store.ErrInUse)
	require.ErrorIs(t, s.Servers().DeleteServer(ctx, srv.ID), store.ErrInUse)

	bad := c
	bad.ID = idx.NewPrefixed(idx.PrefixClient)
	bad.PlanID = "pl_missing"
	bad.AccessPoints = nil
	require.ErrorIs(t, s.Clients().CreateClient(ctx, bad), store.ErrNotFound)
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()

	srv := domain.Server{ID: idx.NewPrefixed(idx.PrefixServer), Name: "Rollback"}
	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Servers().CreateServer(ctx, srv))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Servers().GetServerByID(ctx, srv.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Servers().CreateServer(ctx, srv)
	})
	require.NoError(t, err)

	got, err := s.Servers().GetServerByID(ctx, srv.ID)
	require.NoError(t, err)
	require.Equal(t, "Rollback", got.Name)

	require.NoError(t, s.Ping(ctx))
}

// testWritesBesideTx commits a transaction while a write goes through the
// store itself. The commit must not drop that write.
func testWritesBesideTx(t *testing.T, s store.Store) {
	ctx := context.Background()

	tx, err := s.Tx(ctx)
	require.NoError(t, err)

	outside := domain.Plan{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Fora da transação", Screens: 1, ValidityMonths: 1, Price: 10}
	done := make(chan error, 1)
	go func() { done <- s.Plans().CreatePlan(ctx, outside) }()

	require.NoError(t, tx.Commit())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("write outside the transaction never finished")
	}

	got, err := s.Plans().GetPlanByID(ctx, outside.ID)
	require.NoError(t, err)
	require.Equal(t, outside.Name, got.Name)
}
