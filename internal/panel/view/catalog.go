package view

import (
	"context"

	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

type PlanCard struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Screens  string   `json:"screens"`
	Validity string   `json:"validity"`
	Price    string   `json:"price"`
	Note     string   `json:"note,omitempty"`
	Actions  []Action `json:"actions"`
}

type PlanList struct {
	Title       string     `json:"title"`
	CreateLabel string     `json:"create_label"`
	Cards       []PlanCard `json:"cards"`
}

// PlanList renders the plan cards. Long names and notes are cut at
// NoteLimit characters.
func (r *Renderer) PlanList(ctx context.Context, v Viewer) (PlanList, error) {
	plans, err := r.Plans.ListPlans(ctx)
	if err != nil {
		return PlanList{}, err
	}

	list := PlanList{Title: "Planos", CreateLabel: "Novo plano", Cards: []PlanCard{}}
	actions := v.Actions()
	for _, p := range plans {
		list.Cards = append(list.Cards, PlanCard{
			ID:       p.ID,
			Name:     Truncate(p.Name, NoteLimit),
			Screens:  plural(p.Screens, "tela", "telas"),
			Validity: plural(p.ValidityMonths, "mês", "meses"),
			Price:    moneyx.FormatBRL(p.Price),
			Note:     Truncate(p.Notes, NoteLimit),
			Actions:  actions,
		})
	}
	return list, nil
}

type ServerRow struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Alias   string   `json:"alias"`
	Apps    int      `json:"apps"`
	Actions []Action `json:"actions"`
}

type ServerList struct {
	Title       string      `json:"title"`
	CreateLabel string      `json:"create_label"`
	Rows        []ServerRow `json:"rows"`
}

func (r *Renderer) ServerList(ctx context.Context, v Viewer) (ServerList, error) {
	servers, err := r.Servers.ListServers(ctx)
	if err != nil {
		return ServerList{}, err
	}
	apps, err := r.Apps.ListApps(ctx)
	if err != nil {
		return ServerList{}, err
	}
	perServer := make(map[string]int, len(servers))
	for _, a := range apps {
		perServer[a.ServerID]++
	}

	list := ServerList{Title: "Servidores", CreateLabel: "Novo servidor", Rows: []ServerRow{}}
	actions := v.Actions()
	for _, s := range servers {
		list.Rows = append(list.Rows, ServerRow{
			ID:      s.ID,
			Name:    s.Name,
			Alias:   s.Alias,
			Apps:    perServer[s.ID],
			Actions: actions,
		})
	}
	return list, nil
}

type AppRow struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Badge          string   `json:"badge"`
	AccessCode     string   `json:"access_code"`
	ServerID       string   `json:"server_id"`
	ServerName     string   `json:"server_name"`
	MultipleAccess bool     `json:"multiple_access"`
	Actions        []Action `json:"actions"`
}

type AppList struct {
	Title       string   `json:"title"`
	CreateLabel string   `json:"create_label"`
	Rows        []AppRow `json:"rows"`
}

func (r *Renderer) AppList(ctx context.Context, v Viewer) (AppList, error) {
	apps, err := r.Apps.ListApps(ctx)
	if err != nil {
		return AppList{}, err
	}
	servers, err := r.Servers.ListServers(ctx)
	if err != nil {
		return AppList{}, err
	}
	serverNames := make(map[string]string, len(servers))
	for _, s := range servers {
		serverNames[s.ID] = s.Name
	}

	list := AppList{Title: "Apps", CreateLabel: "Novo App", Rows: []AppRow{}}
	actions := v.Actions()
	for _, a := range apps {
		list.Rows = append(list.Rows, AppRow{
			ID:             a.ID,
			Name:           a.Name,
			Badge:          joinNonEmpty(" • ", a.AccessCode, "servidor: "+serverNames[a.ServerID]),
			AccessCode:     a.AccessCode,
			ServerID:       a.ServerID,
			ServerName:     serverNames[a.ServerID],
			MultipleAccess: a.MultipleAccess,
			Actions:        actions,
		})
	}
	return list, nil
}
