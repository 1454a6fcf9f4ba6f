package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

// ClientFilter selects clients by how close their due date is.
type ClientFilter string

const (
	FilterAll           ClientFilter = "all"
	FilterDueSoon       ClientFilter = "vencendo"
	FilterOverdue30     ClientFilter = "vencidos30"
	FilterOverdueOver30 ClientFilter = "vencidosMais30"
)

const (
	dueSoonDays       = 3
	overdueWindowDays = 30
	msgNoClients      = "Nenhum cliente encontrado"
)

// FilterOption is one entry of the due date filter select.
type FilterOption struct {
	Value    ClientFilter `json:"value"`
	Label    string       `json:"label"`
	Selected bool         `json:"selected,omitempty"`
}

var filterLabels = []FilterOption{
	{Value: FilterAll, Label: "Todos"},
	{Value: FilterDueSoon, Label: "Vencendo (<=3 dias)"},
	{Value: FilterOverdue30, Label: "Vencidos <30 dias"},
	{Value: FilterOverdueOver30, Label: "Vencidos >30 dias"},
}

// ParseClientFilter accepts the filter values; empty means FilterAll.
func ParseClientFilter(s string) (ClientFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, o := range filterLabels {
		if string(o.Value) == s {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("view: unknown client filter %q", s)
}

// ClientQuery narrows the clients list.
type ClientQuery struct {
	Filter       ClientFilter
	OnlyNotified bool
}

// Match reports whether a client due in daysFromNow days passes the filter.
func (f ClientFilter) Match(daysFromNow int) bool {
	switch f {
	case FilterDueSoon:
		return daysFromNow >= 0 && daysFromNow <= dueSoonDays
	case FilterOverdue30:
		return daysFromNow < 0 && daysFromNow >= -overdueWindowDays
	case FilterOverdueOver30:
		return daysFromNow < -overdueWindowDays
	default:
		return true
	}
}

// FilterClients keeps the clients that pass q relative to today, in order.
func FilterClients(clients []domain.Client, q ClientQuery, today time.Time) []domain.Client {
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if !q.Filter.Match(datex.DaysBetween(today, c.DueDate)) {
			continue
		}
		if q.OnlyNotified && !c.Notified {
			continue
		}
		out = append(out, c)
	}
	return out
}

type ClientRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DueDate     string   `json:"due_date"`
	DueLabel    string   `json:"due_label"`
	DaysFromNow int      `json:"days_from_now"`
	Screens     int      `json:"screens"`
	Notified    string   `json:"notified"`
	PlanName    string   `json:"plan_name,omitempty"`
	Price       string   `json:"price"`
	Connections int      `json:"connections"`
	Actions     []Action `json:"actions"`
}

type ClientList struct {
	Title        string         `json:"title"`
	CreateLabel  string         `json:"create_label"`
	Filters      []FilterOption `json:"filters"`
	OnlyNotified bool           `json:"only_notified"`
	Columns      []string       `json:"columns"`
	Rows         []ClientRow    `json:"rows"`
	Empty        string         `json:"empty,omitempty"`
}

// ClientList renders the clients table for v.
func (r *Renderer) ClientList(ctx context.Context, v Viewer, q ClientQuery) (ClientList, error) {
	clients, err := r.Clients.ListClients(ctx)
	if err != nil {
		return ClientList{}, err
	}
	plans, err := r.Plans.ListPlans(ctx)
	if err != nil {
		return ClientList{}, err
	}
	planNames := make(map[string]string, len(plans))
	for _, p := range plans {
		planNames[p.ID] = p.Name
	}

	if q.Filter == "" {
		q.Filter = FilterAll
	}
	today := r.Today()

	list := ClientList{
		Title:        "Clientes",
		CreateLabel:  "Novo cliente",
		OnlyNotified: q.OnlyNotified,
		Columns:      []string{"Nome", "Vencimento", "Telas", "Notificado", "Ações"},
		Rows:         []ClientRow{},
	}
	for _, o := range filterLabels {
		o.Selected = o.Value == q.Filter
		list.Filters = append(list.Filters, o)
	}

	actions := v.Actions()
	for _, c := range FilterClients(clients, q, today) {
		days := datex.DaysBetween(today, c.DueDate)
		list.Rows = append(list.Rows, ClientRow{
			ID:          c.ID,
			Name:        c.Name,
			DueDate:     datex.Format(c.DueDate),
			DueLabel:    fmt.Sprintf("%s (%dd)", datex.FormatDisplay(c.DueDate), days),
			DaysFromNow: days,
			Screens:     c.Screens,
			Notified:    yesNo(c.Notified),
			PlanName:    planNames[c.PlanID],
			Price:       moneyx.FormatBRL(c.Price),
			Connections: c.TotalConnections(),
			Actions:     actions,
		})
	}
	if len(list.Rows) == 0 {
		list.Empty = msgNoClients
	}
	return list, nil
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
