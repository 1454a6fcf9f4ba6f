package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/stretchr/testify/require"
)

func fieldState(t *testing.T, st dialog.State, name string) dialog.FieldState {
	t.Helper()
	for _, f := range st.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not in dialog %q", name, st.Title)
	return dialog.FieldState{}
}

func input(t *testing.T, d *dialog.Dialog, field, value string) {
	t.Helper()
	require.NoError(t, d.Dispatch(context.Background(), dialog.Event{Type: dialog.EventInput, Field: field, Value: value}))
}

func trigger(t *testing.T, d *dialog.Dialog, action string) {
	t.Helper()
	require.NoError(t, d.Dispatch(context.Background(), dialog.Event{Type: dialog.EventAction, Field: action}))
}

func TestClientDialogCreate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindClient, "")
	require.NoError(t, err)

	st := d.Snapshot()
	require.Equal(t, "Novo cliente", st.Title)
	require.Equal(t, view.KindClient, st.Kind)
	require.Equal(t, "Cliente", fieldState(t, st, view.FieldName).Section)
	require.Equal(t, "Pontos de Acesso", fieldState(t, st, view.FieldPointApp).Section)
	require.Equal(t, "Selecione um plano", fieldState(t, st, view.FieldPlan).Options[0].Label)
	require.Empty(t, fieldState(t, st, view.FieldPrice).Value)

	input(t, d, view.FieldName, "Carlos Lima")

	t.Run("plan prefills and rolls the due date over", func(t *testing.T) {
		input(t, d, view.FieldPlan, e.plans["Básico"].ID)

		st := d.Snapshot()
		require.Equal(t, "2", fieldState(t, st, view.FieldScreens).Value)
		require.Equal(t, "29,90", fieldState(t, st, view.FieldPrice).Value)
		require.Equal(t, "2025-03-01", fieldState(t, st, view.FieldDueDate).Value)
		require.Contains(t, st.Notices, "A data calculada não existe neste mês. Ajustada para dia 01 do próximo mês.")
	})

	t.Run("price differing from plan warns", func(t *testing.T) {
		input(t, d, view.FieldPrice, "35")
		require.Equal(t, "Valor difere do preço do plano (29,90).", fieldState(t, d.Snapshot(), view.FieldPrice).Feedback)

		input(t, d, view.FieldPrice, "29,90")
		require.Empty(t, fieldState(t, d.Snapshot(), view.FieldPrice).Feedback)

		input(t, d, view.FieldPrice, "35")
	})

	t.Run("save without points is rejected inline", func(t *testing.T) {
		err := d.Save(ctx)
		require.ErrorIs(t, err, service.ErrConnectionsMismatch)
		require.True(t, d.IsOpen())
		require.Equal(t, service.ErrConnectionsMismatch.Error(), d.Snapshot().Error)
	})

	t.Run("remove needs a selection", func(t *testing.T) {
		trigger(t, d, view.ActionRemovePoint)
		require.Equal(t, "Selecione um ponto de acesso", fieldState(t, d.Snapshot(), view.ActionRemovePoint).Feedback)
	})

	t.Run("save point without app", func(t *testing.T) {
		trigger(t, d, view.ActionSavePoint)
		require.Equal(t, "Selecione um app", fieldState(t, d.Snapshot(), view.ActionSavePoint).Feedback)
	})

	t.Run("single access app forces one connection", func(t *testing.T) {
		input(t, d, view.FieldPointApp, e.apps["App Z"].ID)
		input(t, d, view.FieldPointConns, "3")
		trigger(t, d, view.ActionSavePoint)

		st := d.Snapshot()
		require.Empty(t, fieldState(t, st, view.ActionSavePoint).Feedback)
		require.Contains(t, st.Notices, service.MsgSingleAccess)

		items := fieldState(t, st, view.FieldAccessPoints).Items
		require.Len(t, items, 1)
		require.Equal(t, "App: App Z", items[0].Title)
		require.Equal(t, "Conexões: 1 • Usuário: -", items[0].Subtitle)
		require.Empty(t, fieldState(t, st, view.FieldPointConns).Value)
	})

	t.Run("balanced points save", func(t *testing.T) {
		input(t, d, view.FieldPointApp, e.apps["App X"].ID)
		input(t, d, view.FieldPointConns, "1")
		input(t, d, view.FieldPointUser, "carlos")
		trigger(t, d, view.ActionSavePoint)
		require.Len(t, fieldState(t, d.Snapshot(), view.FieldAccessPoints).Items, 2)

		require.NoError(t, d.Save(ctx))
		require.False(t, d.IsOpen())

		c, ok := d.Result().(domain.Client)
		require.True(t, ok)
		require.Equal(t, "Carlos Lima", c.Name)
		require.Equal(t, 35.0, c.Price)
		require.Equal(t, 2, c.Screens)
		require.True(t, c.DueDate.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)), c.DueDate)
		require.Len(t, c.AccessPoints, 2)
		require.Equal(t, c.Screens, c.TotalConnections())
	})
}

func TestClientDialogEdit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	joao := e.clients["João Silva"]

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindClient, joao.ID)
	require.NoError(t, err)

	st := d.Snapshot()
	require.Equal(t, "Editar cliente", st.Title)
	require.Equal(t, joao.ID, st.RecordID)
	require.Equal(t, "João Silva", fieldState(t, st, view.FieldName).Value)
	require.Equal(t, "29,90", fieldState(t, st, view.FieldPrice).Value)
	require.Equal(t, "2025-02-02", fieldState(t, st, view.FieldDueDate).Value)

	items := fieldState(t, st, view.FieldAccessPoints).Items
	require.Len(t, items, 1)

	require.NoError(t, d.Dispatch(ctx, dialog.Event{Type: dialog.EventSelect, Field: view.FieldAccessPoints, Value: items[0].ID}))
	st = d.Snapshot()
	require.Equal(t, e.apps["App X"].ID, fieldState(t, st, view.FieldPointApp).Value)
	require.Equal(t, "2", fieldState(t, st, view.FieldPointConns).Value)
	require.Equal(t, "joao", fieldState(t, st, view.FieldPointUser).Value)

	trigger(t, d, view.ActionRemovePoint)
	require.Empty(t, fieldState(t, d.Snapshot(), view.FieldAccessPoints).Items)

	require.ErrorIs(t, d.Save(ctx), service.ErrConnectionsMismatch)

	d.Cancel()
	require.False(t, d.IsOpen())

	stored, err := e.r.Clients.GetClient(ctx, joao.ID)
	require.NoError(t, err)
	require.Len(t, stored.AccessPoints, 1)
}

func TestClientDialogReplacesSelectedPoint(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	maria := e.clients["Maria Souza"]

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindClient, maria.ID)
	require.NoError(t, err)

	var appX dialog.Item
	for _, it := range fieldState(t, d.Snapshot(), view.FieldAccessPoints).Items {
		if it.Title == "App: App X" {
			appX = it
		}
	}
	require.NotEmpty(t, appX.ID)

	require.NoError(t, d.Dispatch(ctx, dialog.Event{Type: dialog.EventSelect, Field: view.FieldAccessPoints, Value: appX.ID}))
	input(t, d, view.FieldPointConns, "2")
	trigger(t, d, view.ActionSavePoint)
	require.Len(t, fieldState(t, d.Snapshot(), view.FieldAccessPoints).Items, 2)

	input(t, d, view.FieldScreens, "3")
	require.NoError(t, d.Save(ctx))

	c := d.Result().(domain.Client)
	require.Equal(t, 3, c.Screens)
	require.Equal(t, 3, c.TotalConnections())
	require.Len(t, c.AccessPoints, 2)
}

func TestClientDialogRejectsBadPrice(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T, e env) *dialog.Dialog {
		t.Helper()
		d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindClient, "")
		require.NoError(t, err)

		input(t, d, view.FieldName, "Carlos Lima")
		input(t, d, view.FieldScreens, "2")
		input(t, d, view.FieldPointApp, e.apps["App X"].ID)
		input(t, d, view.FieldPointConns, "2")
		trigger(t, d, view.ActionSavePoint)
		require.Len(t, fieldState(t, d.Snapshot(), view.FieldAccessPoints).Items, 1)
		return d
	}

	assertNotSaved := func(t *testing.T, e env, d *dialog.Dialog) {
		t.Helper()
		require.True(t, d.IsOpen())
		list, err := e.r.Clients.ListClients(ctx)
		require.NoError(t, err)
		for _, c := range list {
			require.NotEqual(t, "Carlos Lima", c.Name)
		}
	}

	t.Run("untouched price", func(t *testing.T) {
		e := newEnv(t)
		d := open(t, e)

		err := d.Save(ctx)
		require.EqualError(t, err, "Você precisa clicar e informar o valor do campo Preço antes de salvar.")
		assertNotSaved(t, e, d)
	})

	t.Run("garbage price", func(t *testing.T) {
		e := newEnv(t)
		d := open(t, e)
		input(t, d, view.FieldPlan, e.plans["Básico"].ID)
		input(t, d, view.FieldPrice, "abc")

		err := d.Save(ctx)
		require.EqualError(t, err, "Preço inválido. Informe um valor numérico (ex.: 39,90).")
		require.Equal(t, err.Error(), d.Snapshot().Error)
		assertNotSaved(t, e, d)
	})

	t.Run("cleared price", func(t *testing.T) {
		e := newEnv(t)
		d := open(t, e)
		input(t, d, view.FieldPrice, "35")
		input(t, d, view.FieldPrice, "")

		require.EqualError(t, d.Save(ctx), "Preço inválido. Informe um valor numérico (ex.: 39,90).")
		assertNotSaved(t, e, d)
	})
}

func TestPlanDialog(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindPlan, "")
	require.NoError(t, err)

	st := d.Snapshot()
	require.Equal(t, "Novo plano", st.Title)
	require.Equal(t, "1", fieldState(t, st, view.FieldScreens).Value)
	require.Equal(t, "Clique no campo de preço e informe o valor antes de salvar.", fieldState(t, st, view.FieldPrice).Note)

	input(t, d, view.FieldName, "Família")

	t.Run("price must be touched", func(t *testing.T) {
		err := d.Save(ctx)
		require.EqualError(t, err, "Você precisa clicar e informar o valor do campo Preço antes de salvar.")
		require.True(t, d.IsOpen())
	})

	t.Run("screens over the default limit warn", func(t *testing.T) {
		input(t, d, view.FieldScreens, "5")
		require.Equal(t, "Limite padrão: 3", fieldState(t, d.Snapshot(), view.FieldScreens).Feedback)

		trigger(t, d, view.ActionScreensDec)
		trigger(t, d, view.ActionScreensDec)
		st := d.Snapshot()
		require.Equal(t, "3", fieldState(t, st, view.FieldScreens).Value)
		require.Empty(t, fieldState(t, st, view.FieldScreens).Feedback)

		input(t, d, view.FieldScreens, "0")
		require.Equal(t, "1", fieldState(t, d.Snapshot(), view.FieldScreens).Value)
		input(t, d, view.FieldScreens, "5")
	})

	t.Run("validity stays within a year", func(t *testing.T) {
		trigger(t, d, view.ActionValidityDec)
		require.Equal(t, "1", fieldState(t, d.Snapshot(), view.FieldValidity).Value)

		trigger(t, d, view.ActionValidityInc)
		require.Equal(t, "2", fieldState(t, d.Snapshot(), view.FieldValidity).Value)

		input(t, d, view.FieldValidity, "20")
		require.Equal(t, "12", fieldState(t, d.Snapshot(), view.FieldValidity).Value)
	})

	t.Run("unparseable price", func(t *testing.T) {
		input(t, d, view.FieldPrice, "abc")
		require.EqualError(t, d.Save(ctx), "Preço inválido. Informe um valor numérico (ex.: 39,90).")
	})

	t.Run("saves", func(t *testing.T) {
		input(t, d, view.FieldPrice, "39,9")
		require.NoError(t, d.Save(ctx))

		p := d.Result().(domain.Plan)
		require.Equal(t, "Família", p.Name)
		require.Equal(t, 5, p.Screens)
		require.Equal(t, 12, p.ValidityMonths)
		require.Equal(t, 39.9, p.Price)
	})
}

func TestPlanDialogEdit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	pro := e.plans["Pro"]

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindPlan, pro.ID)
	require.NoError(t, err)
	require.Equal(t, "69,90", fieldState(t, d.Snapshot(), view.FieldPrice).Value)

	input(t, d, view.FieldName, "  ")
	err = d.Save(ctx)
	require.EqualError(t, err, "Nome do plano é obrigatório")

	input(t, d, view.FieldName, "Pro+")
	require.NoError(t, d.Save(ctx))

	stored, err := e.r.Plans.GetPlan(ctx, pro.ID)
	require.NoError(t, err)
	require.Equal(t, "Pro+", stored.Name)
	require.Equal(t, 69.9, stored.Price)
}

func TestAppDialog(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindApp, "")
	require.NoError(t, err)
	require.Equal(t, "Novo App", d.Snapshot().Title)

	input(t, d, view.FieldName, "App W")
	input(t, d, view.FieldAccessCode, "AW1")
	input(t, d, view.FieldServer, e.servers["Servidor B"].ID)

	require.EqualError(t, d.Save(ctx), "Selecione true ou false para multiplosAcessos.")

	input(t, d, view.FieldMultipleAccess, "false")
	require.NoError(t, d.Save(ctx))

	a := d.Result().(domain.App)
	require.Equal(t, "App W", a.Name)
	require.False(t, a.MultipleAccess)
	require.Equal(t, e.servers["Servidor B"].ID, a.ServerID)
}

func TestServerDialogEdit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	srv := e.servers["Servidor A"]

	d, err := e.r.OpenDialog(ctx, dialog.NewManager(), view.KindServer, srv.ID)
	require.NoError(t, err)
	require.Equal(t, "Editar servidor", d.Snapshot().Title)
	require.Equal(t, "srv-a", fieldState(t, d.Snapshot(), view.FieldAlias).Value)

	input(t, d, view.FieldAlias, "srv-alpha")
	require.NoError(t, d.Save(ctx))

	stored, err := e.r.Servers.GetServer(ctx, srv.ID)
	require.NoError(t, err)
	require.Equal(t, "srv-alpha", stored.Alias)
}

func TestDialogConfigErrors(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.r.DialogConfig(ctx, "relatorio", "")
	require.ErrorIs(t, err, view.ErrUnknownView)

	_, err = e.r.DialogConfig(ctx, view.KindClient, "cli_missing")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = e.r.DialogConfig(ctx, view.KindClient, idx.NewPrefixed(idx.PrefixClient))
	require.ErrorIs(t, err, service.ErrNotFound)

	plans, err := e.r.Plans.ListPlans(ctx)
	require.NoError(t, err)
	_, err = e.r.DialogConfig(ctx, view.KindClient, plans[0].ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestOpenDialogReplacesActive(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	m := dialog.NewManager()

	first, err := e.r.OpenDialog(ctx, m, view.KindServer, "")
	require.NoError(t, err)
	second, err := e.r.OpenDialog(ctx, m, view.KindPlan, "")
	require.NoError(t, err)

	require.False(t, first.IsOpen())
	active, err := m.Active()
	require.NoError(t, err)
	require.Equal(t, second.ID(), active.ID())
}
