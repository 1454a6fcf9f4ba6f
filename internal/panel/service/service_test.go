package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/internal/panel/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   store.Store
	plans   map[string]domain.Plan
	apps    map[string]domain.App
	servers map[string]domain.Server
	clients map[string]domain.Client
}

var fixedNow = time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	st := memory.NewStore()
	seeded, err := (&service.SeedService{Store: st, Now: func() time.Time { return fixedNow }}).Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	f := fixture{
		store:   st,
		plans:   map[string]domain.Plan{},
		apps:    map[string]domain.App{},
		servers: map[string]domain.Server{},
		clients: map[string]domain.Client{},
	}

	plans, err := st.Plans().ListPlans(ctx)
	require.NoError(t, err)
	for _, p := range plans {
		f.plans[p.Name] = p
	}
	apps, err := st.Apps().ListApps(ctx)
	require.NoError(t, err)
	for _, a := range apps {
		f.apps[a.Name] = a
	}
	servers, err := st.Servers().ListServers(ctx)
	require.NoError(t, err)
	for _, s := range servers {
		f.servers[s.Name] = s
	}
	clients, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)
	for _, c := range clients {
		f.clients[c.Name] = c
	}
	return f
}

func requireValidation(t *testing.T, err error, field string) *service.ValidationError {
	t.Helper()
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, field, ve.Field)
	return ve
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.Len(t, f.servers, 2)
	require.Len(t, f.apps, 3)
	require.Len(t, f.plans, 5)
	require.Len(t, f.clients, 3)
	require.False(t, f.apps["App Z"].MultipleAccess)

	for _, c := range f.clients {
		require.Equal(t, c.Screens, c.TotalConnections(), c.Name)
	}
	require.Equal(t, fixedNow.AddDate(0, 0, 2).Format(time.DateOnly), f.clients["João Silva"].DueDate.Format(time.DateOnly))
	require.True(t, f.clients["Maria Souza"].Notified)

	again, err := (&service.SeedService{Store: f.store}).Seed(ctx)
	require.NoError(t, err)
	require.False(t, again)
}

func validClient(f fixture) service.ClientInput {
	return service.ClientInput{
		Name:    "Ana Lima",
		Email:   "ana@mail.com",
		DueDate: fixedNow.AddDate(0, 1, 0),
		PlanID:  f.plans["Básico"].ID,
		Screens: 2,
		Price:   29.90,
		AccessPoints: []service.AccessPointInput{
			{AppID: f.apps["App X"].ID, Username: "ana", Password: "x", Connections: 2},
		},
	}
}

func TestCreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("stores client with access points", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		c, err := svc.CreateClient(ctx, validClient(f))
		require.NoError(t, err)
		require.Contains(t, c.ID, "cli_")
		require.Len(t, c.AccessPoints, 1)
		require.Equal(t, "App X", c.AccessPoints[0].AppName)
		require.Contains(t, c.AccessPoints[0].ID, "ap_")

		all, err := svc.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
	})

	t.Run("single access app is forced to one connection", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		in := validClient(f)
		in.AccessPoints = []service.AccessPointInput{
			{AppID: f.apps["App Z"].ID, Connections: 5},
			{AppID: f.apps["App X"].ID, Connections: 1},
		}
		c, err := svc.CreateClient(ctx, in)
		require.NoError(t, err)
		require.Equal(t, 1, c.AccessPoints[0].Connections)
		require.Equal(t, 2, c.TotalConnections())
	})

	t.Run("empty connections on multi access default to one", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		in := validClient(f)
		in.AccessPoints = []service.AccessPointInput{
			{AppID: f.apps["App X"].ID},
			{AppID: f.apps["App Y"].ID, Connections: -3},
		}
		c, err := svc.CreateClient(ctx, in)
		require.NoError(t, err)
		require.Equal(t, 2, c.TotalConnections())
	})

	t.Run("connection sum must equal screens", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		in := validClient(f)
		in.Screens = 3
		_, err := svc.CreateClient(ctx, in)
		require.ErrorIs(t, err, service.ErrConnectionsMismatch)
		ve := requireValidation(t, err, "access_points")
		require.Equal(t, "A soma de conexões dos pontos precisa ser igual ao número de telas.", ve.Message)

		in.AccessPoints = nil
		_, err = svc.CreateClient(ctx, in)
		require.ErrorIs(t, err, service.ErrConnectionsMismatch)

		all, err := svc.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
	})

	t.Run("field rules", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		tests := []struct {
			name  string
			edit  func(*service.ClientInput)
			field string
		}{
			{"name required", func(in *service.ClientInput) { in.Name = "  " }, "name"},
			{"email format", func(in *service.ClientInput) { in.Email = "not-an-email" }, "email"},
			{"plan required", func(in *service.ClientInput) { in.PlanID = "" }, "plan_id"},
			{"plan must exist", func(in *service.ClientInput) { in.PlanID = "pl_missing" }, "plan_id"},
			{"screens positive", func(in *service.ClientInput) { in.Screens = 0 }, "screens"},
			{"price not negative", func(in *service.ClientInput) { in.Price = -1 }, "price"},
			{"due date required", func(in *service.ClientInput) { in.DueDate = time.Time{} }, "due_date"},
			{"app required", func(in *service.ClientInput) { in.AccessPoints[0].AppID = "" }, "app_id"},
			{"app must exist", func(in *service.ClientInput) { in.AccessPoints[0].AppID = "app_missing" }, "app_id"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validClient(f)
				tt.edit(&in)
				_, err := svc.CreateClient(ctx, in)
				requireValidation(t, err, tt.field)
			})
		}
	})

	t.Run("unknown app message", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		in := validClient(f)
		in.AccessPoints[0].AppID = "app_missing"
		_, err := svc.CreateClient(ctx, in)
		require.ErrorIs(t, err, service.ErrUnknownApp)
		require.EqualError(t, err, "App inválido")
	})
}

func TestUpdateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("nil access points keeps the stored ones", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		maria := f.clients["Maria Souza"]

		c, err := svc.UpdateClient(ctx, maria.ID, service.ClientInput{
			Name:     "Maria S. Souza",
			DueDate:  maria.DueDate,
			Notified: false,
			PlanID:   maria.PlanID,
			Screens:  maria.Screens,
			Price:    maria.Price,
		})
		require.NoError(t, err)
		require.Equal(t, "Maria S. Souza", c.Name)
		require.False(t, c.Notified)
		require.Len(t, c.AccessPoints, 2)
		require.Equal(t, maria.CreatedAt, c.CreatedAt)
	})

	t.Run("changing screens without access points is rejected", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		joao := f.clients["João Silva"]

		_, err := svc.UpdateClient(ctx, joao.ID, service.ClientInput{
			Name: joao.Name, DueDate: joao.DueDate, PlanID: joao.PlanID, Screens: 3, Price: joao.Price,
		})
		require.ErrorIs(t, err, service.ErrConnectionsMismatch)

		got, err := svc.GetClient(ctx, joao.ID)
		require.NoError(t, err)
		require.Equal(t, 2, got.Screens)
	})

	t.Run("replacing access points", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		joao := f.clients["João Silva"]

		c, err := svc.UpdateClient(ctx, joao.ID, service.ClientInput{
			Name: joao.Name, DueDate: joao.DueDate, PlanID: f.plans["Pro"].ID, Screens: 4, Price: 69.90,
			AccessPoints: []service.AccessPointInput{
				{ID: joao.AccessPoints[0].ID, AppID: f.apps["App X"].ID, Connections: 3},
				{AppID: f.apps["App Z"].ID, Connections: 1},
			},
		})
		require.NoError(t, err)
		require.Len(t, c.AccessPoints, 2)
		require.Equal(t, joao.AccessPoints[0].ID, c.AccessPoints[0].ID)
	})

	t.Run("kept access points follow the current app settings", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		apps := &service.AppService{Store: f.store}
		joao := f.clients["João Silva"]
		appX := f.apps["App X"]
		require.Equal(t, 2, joao.AccessPoints[0].Connections)

		no := false
		_, err := apps.UpdateApp(ctx, appX.ID, service.AppInput{Name: appX.Name, MultipleAccess: &no, ServerID: appX.ServerID})
		require.NoError(t, err)

		in := service.ClientInput{Name: joao.Name, DueDate: joao.DueDate, PlanID: joao.PlanID, Screens: joao.Screens, Price: joao.Price}
		_, err = svc.UpdateClient(ctx, joao.ID, in)
		require.ErrorIs(t, err, service.ErrConnectionsMismatch)

		got, err := svc.GetClient(ctx, joao.ID)
		require.NoError(t, err)
		require.Equal(t, 2, got.AccessPoints[0].Connections)

		in.Screens = 1
		c, err := svc.UpdateClient(ctx, joao.ID, in)
		require.NoError(t, err)
		require.Equal(t, 1, c.AccessPoints[0].Connections)
		require.Equal(t, joao.AccessPoints[0].ID, c.AccessPoints[0].ID)
	})

	t.Run("foreign access point ids are replaced", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		joao := f.clients["João Silva"]
		maria := f.clients["Maria Souza"]
		stolen := maria.AccessPoints[0].ID

		c, err := svc.UpdateClient(ctx, joao.ID, service.ClientInput{
			Name: joao.Name, DueDate: joao.DueDate, PlanID: joao.PlanID, Screens: 2, Price: joao.Price,
			AccessPoints: []service.AccessPointInput{
				{ID: stolen, AppID: f.apps["App X"].ID, Connections: 2},
			},
		})
		require.NoError(t, err)
		require.NotEqual(t, stolen, c.AccessPoints[0].ID)
		require.Contains(t, c.AccessPoints[0].ID, "ap_")

		got, err := svc.GetClient(ctx, maria.ID)
		require.NoError(t, err)
		require.Equal(t, maria.AccessPoints, got.AccessPoints)
	})

	t.Run("repeated access point ids are rejected", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}
		joao := f.clients["João Silva"]
		id := joao.AccessPoints[0].ID

		_, err := svc.UpdateClient(ctx, joao.ID, service.ClientInput{
			Name: joao.Name, DueDate: joao.DueDate, PlanID: joao.PlanID, Screens: 2, Price: joao.Price,
			AccessPoints: []service.AccessPointInput{
				{ID: id, AppID: f.apps["App X"].ID, Connections: 1},
				{ID: id, AppID: f.apps["App Y"].ID, Connections: 1},
			},
		})
		ve := requireValidation(t, err, "access_points")
		require.Equal(t, "Ponto de acesso repetido", ve.Message)
	})

	t.Run("missing client", func(t *testing.T) {
		f := newFixture(t)
		svc := &service.ClientService{Store: f.store}

		_, err := svc.UpdateClient(ctx, "cli_missing", validClient(f))
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestBuildAccessPoint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &service.ClientService{Store: f.store}

	ap, notices, err := svc.BuildAccessPoint(ctx, service.AccessPointInput{AppID: f.apps["App Z"].ID, Connections: 3})
	require.NoError(t, err)
	require.Equal(t, 1, ap.Connections)
	require.Equal(t, []string{service.MsgSingleAccess}, notices)

	ap, notices, err = svc.BuildAccessPoint(ctx, service.AccessPointInput{AppID: f.apps["App X"].ID, Connections: 3})
	require.NoError(t, err)
	require.Equal(t, 3, ap.Connections)
	require.Empty(t, notices)
}

func TestDeleteReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	plans := &service.PlanService{Store: f.store}
	servers := &service.ServerService{Store: f.store}
	apps := &service.AppService{Store: f.store}
	clients := &service.ClientService{Store: f.store}

	require.ErrorIs(t, plans.DeletePlan(ctx, f.plans["Básico"].ID), service.ErrInUse)
	require.ErrorIs(t, servers.DeleteServer(ctx, f.servers["Servidor A"].ID), service.ErrInUse)
	require.ErrorIs(t, apps.DeleteApp(ctx, f.apps["App X"].ID), service.ErrInUse)

	require.NoError(t, plans.DeletePlan(ctx, f.plans["Teste Long Note"].ID))
	require.ErrorIs(t, plans.DeletePlan(ctx, f.plans["Teste Long Note"].ID), service.ErrNotFound)

	require.NoError(t, clients.DeleteClient(ctx, f.clients["João Silva"].ID))
	require.NoError(t, clients.DeleteClient(ctx, f.clients["Maria Souza"].ID))
	require.NoError(t, apps.DeleteApp(ctx, f.apps["App X"].ID))
	require.NoError(t, servers.DeleteServer(ctx, f.servers["Servidor A"].ID))
}

func TestPlanService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &service.PlanService{Store: f.store}

	p, err := svc.CreatePlan(ctx, service.PlanInput{Name: " Família ", Screens: 0, ValidityMonths: 24, Price: 39.899, Notes: "  "})
	require.NoError(t, err)
	require.Equal(t, "Família", p.Name)
	require.Equal(t, 1, p.Screens)
	require.Equal(t, 12, p.ValidityMonths)
	require.InDelta(t, 39.90, p.Price, 0.001)
	require.Empty(t, p.Notes)

	p, err = svc.UpdatePlan(ctx, p.ID, service.PlanInput{Name: "Família", Screens: 4, ValidityMonths: 0, Price: 49.9})
	require.NoError(t, err)
	require.Equal(t, 1, p.ValidityMonths)
	require.Equal(t, 4, p.Screens)

	_, err = svc.CreatePlan(ctx, service.PlanInput{Name: ""})
	ve := requireValidation(t, err, "name")
	require.Equal(t, "Nome do plano é obrigatório", ve.Message)

	_, err = svc.CreatePlan(ctx, service.PlanInput{Name: "X", Price: -5})
	requireValidation(t, err, "price")

	_, err = svc.UpdatePlan(ctx, "pl_missing", service.PlanInput{Name: "X"})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestServerService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &service.ServerService{Store: f.store}

	s, err := svc.CreateServer(ctx, service.ServerInput{Name: "Servidor C", Alias: "srv-c"})
	require.NoError(t, err)
	require.Contains(t, s.ID, "srv_")

	s, err = svc.UpdateServer(ctx, s.ID, service.ServerInput{Name: "Servidor C2", Alias: "srv-c"})
	require.NoError(t, err)
	require.Equal(t, "Servidor C2", s.Name)

	_, err = svc.CreateServer(ctx, service.ServerInput{Alias: "x"})
	requireValidation(t, err, "name")

	require.NoError(t, svc.DeleteServer(ctx, s.ID))
}

func TestAppService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &service.AppService{Store: f.store}
	yes := true

	_, err := svc.CreateApp(ctx, service.AppInput{Name: "App W", ServerID: f.servers["Servidor A"].ID})
	ve := requireValidation(t, err, "multiple_access")
	require.Equal(t, "Selecione true ou false para multiplosAcessos.", ve.Message)

	_, err = svc.CreateApp(ctx, service.AppInput{Name: "App W", MultipleAccess: &yes})
	requireValidation(t, err, "server_id")

	_, err = svc.CreateApp(ctx, service.AppInput{Name: "App W", MultipleAccess: &yes, ServerID: "srv_missing"})
	require.ErrorIs(t, err, service.ErrUnknownServer)

	a, err := svc.CreateApp(ctx, service.AppInput{Name: "App W", AccessCode: "AW1", MultipleAccess: &yes, ServerID: f.servers["Servidor A"].ID})
	require.NoError(t, err)
	require.True(t, a.MultipleAccess)

	no := false
	a, err = svc.UpdateApp(ctx, a.ID, service.AppInput{Name: "App W", MultipleAccess: &no, ServerID: f.servers["Servidor B"].ID})
	require.NoError(t, err)
	require.False(t, a.MultipleAccess)
	require.Equal(t, f.servers["Servidor B"].ID, a.ServerID)
}
