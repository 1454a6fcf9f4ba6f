package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

const (
	msgDateRolledOver   = "A data calculada não existe neste mês. Ajustada para dia 01 do próximo mês."
	msgPriceDiffers     = "Valor difere do preço do plano (%s)."
	msgSelectPoint      = "Selecione um ponto de acesso"
	msgScreensInvalid   = "Telas inválidas"
	msgDueDateInvalid   = "Data de vencimento inválida"
	msgClientPriceWrong = "Preço inválido. Informe um valor numérico (ex.: 39,90)."
)

// Client dialog field names.
const (
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldPlan          = "plan_id"
	FieldScreens       = "screens"
	FieldPrice         = "price"
	FieldDueDate       = "due_date"
	FieldNotified      = "notified"
	FieldAccessPoints  = "access_points"
	FieldPointApp      = "ap_app_id"
	FieldPointConns    = "ap_connections"
	FieldPointUser     = "ap_username"
	FieldPointPassword = "ap_password"
	ActionSavePoint    = "ap_save"
	ActionRemovePoint  = "ap_remove"
)

// clientForm is the state behind the client dialog. The dialog serialises
// every call into it.
type clientForm struct {
	r        *Renderer
	plans    []domain.Plan
	points   []domain.AccessPoint
	selected string
}

func (r *Renderer) clientDialog(ctx context.Context, id string) (dialog.Config, error) {
	plans, err := r.Plans.ListPlans(ctx)
	if err != nil {
		return dialog.Config{}, err
	}
	apps, err := r.Apps.ListApps(ctx)
	if err != nil {
		return dialog.Config{}, err
	}
	servers, err := r.Servers.ListServers(ctx)
	if err != nil {
		return dialog.Config{}, err
	}
	serverNames := make(map[string]string, len(servers))
	for _, s := range servers {
		serverNames[s.ID] = s.Name
	}

	title := "Novo cliente"
	var initial domain.Client
	if id != "" {
		title = "Editar cliente"
		if initial, err = r.Clients.GetClient(ctx, id); err != nil {
			return dialog.Config{}, err
		}
	}

	form := &clientForm{
		r:      r,
		plans:  plans,
		points: slices.Clone(initial.AccessPoints),
	}

	planOpts := []dialog.Option{{Value: "", Label: "Selecione um plano"}}
	for _, p := range plans {
		planOpts = append(planOpts, dialog.Option{Value: p.ID, Label: p.Name})
	}
	appOpts := []dialog.Option{{Value: "", Label: "-- selecionar app --"}}
	for _, a := range apps {
		appOpts = append(appOpts, dialog.Option{
			Value: a.ID,
			Label: fmt.Sprintf("%s (%s) - servidor: %s", a.Name, a.AccessCode, serverNames[a.ServerID]),
		})
	}

	return dialog.Config{
		Title:       title,
		InitialData: initial,
		ContentBuilder: func(_ context.Context, c *dialog.Container, data any, h dialog.Helpers) error {
			cl, _ := data.(domain.Client)

			h.Section("Cliente")
			h.Input(dialog.Def{Name: FieldName, Label: "Nome", Value: cl.Name, Required: true})
			h.Input(dialog.Def{Name: FieldPhone, Label: "Telefone", Kind: dialog.KindTel, Value: cl.Phone})
			h.Input(dialog.Def{Name: FieldEmail, Label: "Email", Kind: dialog.KindEmail, Value: cl.Email})
			h.Select(dialog.Def{Name: FieldPlan, Label: "Plano", Value: cl.PlanID, Required: true, OnChange: form.onPlanChange}, planOpts)
			h.Input(dialog.Def{Name: FieldScreens, Label: "Telas", Kind: dialog.KindNumber, Value: intOrEmpty(cl.Screens)})
			h.Currency(dialog.Def{Name: FieldPrice, Label: "Preço", Value: priceOrEmpty(cl.Price, cl.ID != ""), RequireTouch: true, OnChange: form.onPriceChange})
			h.Input(dialog.Def{Name: FieldDueDate, Label: "Validade (data)", Kind: dialog.KindDate, Value: datex.Format(cl.DueDate)})
			h.Checkbox(dialog.Def{Name: FieldNotified, Label: "Notificado", Checked: cl.Notified})

			h.Section("Pontos de Acesso")
			h.List(FieldAccessPoints, "Pontos de acesso", form.onSelectPoint)
			h.Select(dialog.Def{Name: FieldPointApp, Label: "App"}, appOpts)
			h.Input(dialog.Def{Name: FieldPointConns, Label: "Conexões", Kind: dialog.KindNumber, Placeholder: "Conexões simultâneas"})
			h.Input(dialog.Def{Name: FieldPointUser, Label: "Usuário", Placeholder: "Usuário"})
			h.Input(dialog.Def{Name: FieldPointPassword, Label: "Senha", Kind: dialog.KindPassword, Placeholder: "Senha"})
			h.Action(ActionSavePoint, "Salvar ponto", form.savePoint)
			h.Action(ActionRemovePoint, "Remover ponto", form.removePoint)

			form.refreshPoints(c)
			c.CollectData = func() (any, error) { return form.collect(c) }
			return nil
		},
		OnSave: func(ctx context.Context, collected any) (any, error) {
			in, ok := collected.(service.ClientInput)
			if !ok {
				return nil, errBadCollected
			}
			if id == "" {
				return r.Clients.CreateClient(ctx, in)
			}
			return r.Clients.UpdateClient(ctx, id, in)
		},
	}, nil
}

func (f *clientForm) plan(id string) (domain.Plan, bool) {
	i := slices.IndexFunc(f.plans, func(p domain.Plan) bool { return p.ID == id })
	if i < 0 {
		return domain.Plan{}, false
	}
	return f.plans[i], true
}

// onPlanChange prefills screens, price and due date from the chosen plan.
func (f *clientForm) onPlanChange(_ context.Context, c *dialog.Container, planID string) {
	p, ok := f.plan(planID)
	if !ok {
		return
	}
	c.SetValue(FieldScreens, strconv.Itoa(p.Screens))
	c.SetValue(FieldPrice, moneyx.Format(p.Price))
	c.SetFeedback(FieldPrice, "")

	due, rolled := datex.AddMonthsClamped(f.r.Today(), p.ValidityMonths)
	c.SetValue(FieldDueDate, datex.Format(due))
	if rolled {
		c.Notify(msgDateRolledOver)
	}
}

// onPriceChange flags a price that differs from the selected plan.
func (f *clientForm) onPriceChange(_ context.Context, c *dialog.Container, _ string) {
	p, ok := f.plan(c.Value(FieldPlan))
	if !ok {
		c.SetFeedback(FieldPrice, "")
		return
	}
	v, ok := c.Currency(FieldPrice).NumericValue()
	if ok && v == moneyx.Round(p.Price) {
		c.SetFeedback(FieldPrice, "")
		return
	}
	c.SetFeedback(FieldPrice, fmt.Sprintf(msgPriceDiffers, moneyx.Format(p.Price)))
}

func (f *clientForm) onSelectPoint(_ context.Context, c *dialog.Container, pointID string) {
	i := slices.IndexFunc(f.points, func(ap domain.AccessPoint) bool { return ap.ID == pointID })
	if i < 0 {
		return
	}
	ap := f.points[i]
	f.selected = ap.ID
	c.SetValue(FieldPointApp, ap.AppID)
	c.SetValue(FieldPointConns, strconv.Itoa(ap.Connections))
	c.SetValue(FieldPointUser, ap.Username)
	c.SetValue(FieldPointPassword, ap.Password)
}

// savePoint adds the typed access point, or replaces the selected one.
func (f *clientForm) savePoint(ctx context.Context, c *dialog.Container) error {
	conns, err := c.Int(FieldPointConns, 0)
	if err != nil {
		conns = 0
	}
	ap, notices, err := f.r.Clients.BuildAccessPoint(ctx, service.AccessPointInput{
		ID:          f.selected,
		AppID:       c.Value(FieldPointApp),
		Username:    c.Value(FieldPointUser),
		Password:    c.Value(FieldPointPassword),
		Connections: conns,
	})
	if err != nil {
		return err
	}
	for _, n := range notices {
		c.Notify(n)
	}

	if i := slices.IndexFunc(f.points, func(p domain.AccessPoint) bool { return p.ID == ap.ID }); i >= 0 {
		f.points[i] = ap
	} else {
		f.points = append(f.points, ap)
	}
	f.clearPointForm(c)
	f.refreshPoints(c)
	return nil
}

func (f *clientForm) removePoint(_ context.Context, c *dialog.Container) error {
	if f.selected == "" {
		return errors.New(msgSelectPoint)
	}
	f.points = slices.DeleteFunc(f.points, func(p domain.AccessPoint) bool { return p.ID == f.selected })
	f.clearPointForm(c)
	f.refreshPoints(c)
	return nil
}

func (f *clientForm) clearPointForm(c *dialog.Container) {
	f.selected = ""
	c.SetValue(FieldPointConns, "")
	c.SetValue(FieldPointUser, "")
	c.SetValue(FieldPointPassword, "")
}

func (f *clientForm) refreshPoints(c *dialog.Container) {
	items := make([]dialog.Item, 0, len(f.points))
	for _, ap := range f.points {
		user := ap.Username
		if user == "" {
			user = "-"
		}
		items = append(items, dialog.Item{
			ID:       ap.ID,
			Title:    "App: " + ap.AppName,
			Subtitle: fmt.Sprintf("Conexões: %d • Usuário: %s", ap.Connections, user),
		})
	}
	c.SetItems(FieldAccessPoints, items)
}

func (f *clientForm) collect(c *dialog.Container) (any, error) {
	screens, err := c.Int(FieldScreens, 0)
	if err != nil {
		return nil, errors.New(msgScreensInvalid)
	}

	price, ok := c.Currency(FieldPrice).NumericValue()
	if !ok {
		return nil, errors.New(msgClientPriceWrong)
	}

	var due time.Time
	if raw := c.Value(FieldDueDate); raw != "" {
		if due, err = datex.Parse(raw, f.r.loc()); err != nil {
			return nil, errors.New(msgDueDateInvalid)
		}
	}

	points := make([]service.AccessPointInput, 0, len(f.points))
	for _, ap := range f.points {
		points = append(points, service.AccessPointInput{
			ID:          ap.ID,
			AppID:       ap.AppID,
			Username:    ap.Username,
			Password:    ap.Password,
			Connections: ap.Connections,
		})
	}

	return service.ClientInput{
		Name:         c.Value(FieldName),
		Phone:        c.Value(FieldPhone),
		Email:        c.Value(FieldEmail),
		DueDate:      due,
		Notified:     c.Checked(FieldNotified),
		PlanID:       c.Value(FieldPlan),
		Screens:      screens,
		Price:        price,
		AccessPoints: points,
	}, nil
}

func intOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func priceOrEmpty(v float64, editing bool) string {
	if !editing {
		return ""
	}
	return moneyx.Format(v)
}
