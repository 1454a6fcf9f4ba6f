package view_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/internal/panel/store/drivers/memory"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)

var (
	master = view.Viewer{UserID: "usr_1", Email: service.SeedMasterEmail, Name: "Administrador", Role: domain.RoleMaster}
	comum  = view.Viewer{UserID: "usr_2", Email: service.SeedComumEmail, Role: domain.RoleComum}
)

type env struct {
	r       *view.Renderer
	store   store.Store
	plans   map[string]domain.Plan
	apps    map[string]domain.App
	servers map[string]domain.Server
	clients map[string]domain.Client
}

func newEnv(t *testing.T) env {
	t.Helper()
	ctx := context.Background()
	now := func() time.Time { return fixedNow }

	st := memory.NewStore()
	_, err := (&service.SeedService{Store: st, Now: now}).Seed(ctx)
	require.NoError(t, err)

	e := env{
		r: &view.Renderer{
			Clients:  &service.ClientService{Store: st},
			Plans:    &service.PlanService{Store: st},
			Servers:  &service.ServerService{Store: st},
			Apps:     &service.AppService{Store: st},
			Location: time.UTC,
			Now:      now,
		},
		store:   st,
		plans:   map[string]domain.Plan{},
		apps:    map[string]domain.App{},
		servers: map[string]domain.Server{},
		clients: map[string]domain.Client{},
	}

	plans, err := st.Plans().ListPlans(ctx)
	require.NoError(t, err)
	for _, p := range plans {
		e.plans[p.Name] = p
	}
	apps, err := st.Apps().ListApps(ctx)
	require.NoError(t, err)
	for _, a := range apps {
		e.apps[a.Name] = a
	}
	servers, err := st.Servers().ListServers(ctx)
	require.NoError(t, err)
	for _, s := range servers {
		e.servers[s.Name] = s
	}
	clients, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)
	for _, c := range clients {
		e.clients[c.Name] = c
	}
	return e
}

func rowNames(list view.ClientList) []string {
	names := make([]string, 0, len(list.Rows))
	for _, r := range list.Rows {
		names = append(names, r.Name)
	}
	return names
}

func TestClientFilterMatch(t *testing.T) {
	tests := []struct {
		filter view.ClientFilter
		days   int
		want   bool
	}{
		{view.FilterAll, -400, true},
		{view.FilterDueSoon, 0, true},
		{view.FilterDueSoon, 3, true},
		{view.FilterDueSoon, 4, false},
		{view.FilterDueSoon, -1, false},
		{view.FilterOverdue30, -1, true},
		{view.FilterOverdue30, -30, true},
		{view.FilterOverdue30, -31, false},
		{view.FilterOverdue30, 0, false},
		{view.FilterOverdueOver30, -31, true},
		{view.FilterOverdueOver30, -30, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.filter.Match(tt.days), "%s(%d)", tt.filter, tt.days)
	}
}

func TestParseClientFilter(t *testing.T) {
	f, err := view.ParseClientFilter("")
	require.NoError(t, err)
	require.Equal(t, view.FilterAll, f)

	f, err = view.ParseClientFilter("vencidosMais30")
	require.NoError(t, err)
	require.Equal(t, view.FilterOverdueOver30, f)

	_, err = view.ParseClientFilter("amanha")
	require.Error(t, err)
}

func TestClientList(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	t.Run("all for master", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, master, view.ClientQuery{})
		require.NoError(t, err)
		require.Equal(t, "Clientes", list.Title)
		require.ElementsMatch(t, []string{"João Silva", "Maria Souza", "Empresa XYZ"}, rowNames(list))
		require.Empty(t, list.Empty)
		for _, row := range list.Rows {
			require.Equal(t, []view.Action{view.ActionEdit, view.ActionDelete}, row.Actions)
		}
		require.True(t, list.Filters[0].Selected)
	})

	t.Run("comum cannot delete", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, comum, view.ClientQuery{})
		require.NoError(t, err)
		for _, row := range list.Rows {
			require.Equal(t, []view.Action{view.ActionEdit}, row.Actions)
		}
	})

	t.Run("due soon", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, master, view.ClientQuery{Filter: view.FilterDueSoon})
		require.NoError(t, err)
		require.Len(t, list.Rows, 1)

		row := list.Rows[0]
		require.Equal(t, "João Silva", row.Name)
		require.Equal(t, "2025-02-02", row.DueDate)
		require.Equal(t, "02/02/2025 (2d)", row.DueLabel)
		require.Equal(t, 2, row.DaysFromNow)
		require.Equal(t, "Não", row.Notified)
		require.Equal(t, "Básico", row.PlanName)
		require.Equal(t, "R$ 29,90", row.Price)
		require.Equal(t, 2, row.Connections)
	})

	t.Run("overdue windows", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, master, view.ClientQuery{Filter: view.FilterOverdue30})
		require.NoError(t, err)
		require.Equal(t, []string{"Maria Souza"}, rowNames(list))
		require.Equal(t, "Sim", list.Rows[0].Notified)

		list, err = e.r.ClientList(ctx, master, view.ClientQuery{Filter: view.FilterOverdueOver30})
		require.NoError(t, err)
		require.Equal(t, []string{"Empresa XYZ"}, rowNames(list))
		require.Equal(t, -40, list.Rows[0].DaysFromNow)
	})

	t.Run("only notified", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, master, view.ClientQuery{OnlyNotified: true})
		require.NoError(t, err)
		require.Equal(t, []string{"Maria Souza"}, rowNames(list))
		require.True(t, list.OnlyNotified)
	})

	t.Run("empty", func(t *testing.T) {
		list, err := e.r.ClientList(ctx, master, view.ClientQuery{Filter: view.FilterDueSoon, OnlyNotified: true})
		require.NoError(t, err)
		require.Empty(t, list.Rows)
		require.Equal(t, "Nenhum cliente encontrado", list.Empty)
	})
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "curto", view.Truncate("curto", 10))
	require.Equal(t, "abcde", view.Truncate("abcde", 5))
	require.Equal(t, "abcd…", view.Truncate("abcdef", 5))
	require.Equal(t, "ab…", view.Truncate("ab cdef", 4))
	require.Equal(t, "ção…", view.Truncate("çãozinho", 4))
}

func TestPlanList(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	list, err := e.r.PlanList(ctx, comum)
	require.NoError(t, err)
	require.Equal(t, "Novo plano", list.CreateLabel)
	require.Len(t, list.Cards, 5)

	cards := map[string]view.PlanCard{}
	for _, c := range list.Cards {
		cards[c.ID] = c
	}

	basic := cards[e.plans["Básico"].ID]
	require.Equal(t, "2 telas", basic.Screens)
	require.Equal(t, "1 mês", basic.Validity)
	require.Equal(t, "R$ 29,90", basic.Price)
	require.Empty(t, basic.Note)
	require.Equal(t, []view.Action{view.ActionEdit}, basic.Actions)

	require.Equal(t, "3 meses", cards[e.plans["Pro"].ID].Validity)

	long := cards[e.plans["Teste Long Note"].ID]
	require.Equal(t, view.NoteLimit, utf8.RuneCountInString(long.Note))
	require.True(t, strings.HasSuffix(long.Note, "…"))

	corp := cards[e.plans["Corporativo Plus com recursos estendidos"].ID]
	require.Equal(t, "Corporativo Plus com recursos estendidos", corp.Name)
	require.LessOrEqual(t, utf8.RuneCountInString(corp.Note), view.NoteLimit)
}

func TestServerAndAppLists(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	servers, err := e.r.ServerList(ctx, master)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, row := range servers.Rows {
		counts[row.Name] = row.Apps
	}
	require.Equal(t, map[string]int{"Servidor A": 1, "Servidor B": 2}, counts)

	apps, err := e.r.AppList(ctx, master)
	require.NoError(t, err)
	require.Equal(t, "Novo App", apps.CreateLabel)
	for _, row := range apps.Rows {
		if row.Name == "App X" {
			require.Equal(t, "AX1 • servidor: Servidor A", row.Badge)
			require.True(t, row.MultipleAccess)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"":                "U",
		"Administrador":   "AD",
		"Maria Souza":     "MS",
		"user@pandda.com": "US",
		"joao.silva@x.io": "JS",
		"é":               "É",
	}
	for in, want := range tests {
		require.Equal(t, want, view.Initials(in), in)
	}
}

func TestProfileFor(t *testing.T) {
	anon := view.ProfileFor(view.Viewer{})
	require.Equal(t, view.Profile{DisplayName: "Anônimo", RoleLabel: "-", Initials: "AN"}, anon)

	p := view.ProfileFor(master)
	require.Equal(t, "Administrador", p.DisplayName)
	require.Equal(t, "Master", p.RoleLabel)
	require.Equal(t, "AD", p.Initials)

	p = view.ProfileFor(comum)
	require.Equal(t, service.SeedComumEmail, p.DisplayName)
	require.Equal(t, "Comum", p.RoleLabel)
	require.Equal(t, "US", p.Initials)
}

func TestShell(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	t.Run("defaults to dashboard", func(t *testing.T) {
		sh, err := e.r.Shell(ctx, master, "", view.ThemeLight, view.ClientQuery{})
		require.NoError(t, err)
		require.Equal(t, view.ViewDashboard, sh.View)
		require.Equal(t, view.ThemeDark, sh.Topbar.ThemeToggle)
		require.Equal(t, "Sair", sh.Topbar.Logout)
		require.IsType(t, view.Dashboard{}, sh.Content)
		require.True(t, sh.Menu[0].Selected)
	})

	t.Run("clients", func(t *testing.T) {
		sh, err := e.r.Shell(ctx, comum, view.ViewClients, view.ThemeDark, view.ClientQuery{Filter: view.FilterOverdueOver30})
		require.NoError(t, err)
		list, ok := sh.Content.(view.ClientList)
		require.True(t, ok)
		require.Equal(t, []string{"Empresa XYZ"}, rowNames(list))
		require.Equal(t, view.ThemeLight, sh.Topbar.ThemeToggle)
		for _, m := range sh.Menu {
			require.Equal(t, m.View == view.ViewClients, m.Selected, m.View)
		}
	})

	t.Run("unknown view keeps the frame", func(t *testing.T) {
		sh, err := e.r.Shell(ctx, master, "relatorios", view.ThemeLight, view.ClientQuery{})
		require.NoError(t, err)
		require.Equal(t, "View não implementada", sh.Error)
		require.Nil(t, sh.Content)
		require.Len(t, sh.Menu, 5)
		for _, m := range sh.Menu {
			require.False(t, m.Selected)
		}
	})
}

func TestTheme(t *testing.T) {
	require.Equal(t, view.ThemeDark, view.ParseTheme(" Dark "))
	require.Equal(t, view.ThemeLight, view.ParseTheme("sepia"))
	require.Equal(t, view.ThemeLight, view.ThemeDark.Toggle())
}
