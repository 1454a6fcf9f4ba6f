package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const (
	msgNameRequired    = "Nome é obrigatório"
	msgPlanRequired    = "Selecione um plano"
	msgScreensRequired = "Telas deve ser maior que zero"
	msgDueDateRequired = "Informe a data de vencimento"
	msgEmailInvalid    = "Email inválido"
	msgPriceInvalid    = "Preço inválido. Informe um valor numérico (ex.: 39,90)."
	msgAppRequired     = "Selecione um app"
	msgDuplicatePoint  = "Ponto de acesso repetido"

	// MsgSingleAccess warns that a single-access app overrode the typed
	// connection count.
	MsgSingleAccess = "Este app não permite múltiplos acessos. Será definido como 1."
)

// ClientInput is what the operator submits for a client.
type ClientInput struct {
	Name     string
	Phone    string
	Email    string
	DueDate  time.Time
	Notified bool
	PlanID   string
	Screens  int
	Price    float64

	// AccessPoints replaces the client's access points. On update a nil
	// slice keeps the stored ones.
	AccessPoints []AccessPointInput
}

// AccessPointInput is one access point as typed. An ID that is empty or not
// among the client's stored points gets a fresh one.
type AccessPointInput struct {
	ID          string
	AppID       string
	Username    string
	Password    string
	Connections int
}

type ClientService struct {
	Store store.Store
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	return clients, mapStoreErr(err)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	return c, mapStoreErr(err)
}

// CreateClient validates in and stores a new client. The access points must
// add up to the screen count.
func (s *ClientService) CreateClient(ctx context.Context, in ClientInput) (domain.Client, error) {
	log := slogx.FromContext(ctx)

	var created domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := buildClient(ctx, tx, in, nil)
		if err != nil {
			return err
		}
		c.ID = idx.NewPrefixed(idx.PrefixClient)

		if err := tx.Clients().CreateClient(ctx, c); err != nil {
			return mapStoreErr(err)
		}
		created, err = tx.Clients().GetClientByID(ctx, c.ID)
		return mapStoreErr(err)
	})
	if err != nil {
		return domain.Client{}, err
	}

	log.Info("client created", "client_id", created.ID, "screens", created.Screens)
	return created, nil
}

// UpdateClient overwrites the client identified by id. The connection sum is
// checked against the resulting access points, kept or replaced.
func (s *ClientService) UpdateClient(ctx context.Context, id string, in ClientInput) (domain.Client, error) {
	log := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		prev, err := tx.Clients().GetClientByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}

		c, err := buildClient(ctx, tx, in, prev.AccessPoints)
		if err != nil {
			return err
		}
		c.ID = prev.ID

		if err := tx.Clients().UpdateClient(ctx, c); err != nil {
			return mapStoreErr(err)
		}
		updated, err = tx.Clients().GetClientByID(ctx, c.ID)
		return mapStoreErr(err)
	})
	if err != nil {
		return domain.Client{}, err
	}

	log.Info("client updated", "client_id", updated.ID)
	return updated, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.Store.Clients().DeleteClient(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("client deleted", "client_id", id)
	return nil
}

// BuildAccessPoint resolves the app of one access point and normalises its
// connection count. The returned notices are warnings for the operator, not
// errors.
func (s *ClientService) BuildAccessPoint(ctx context.Context, in AccessPointInput) (domain.AccessPoint, []string, error) {
	return buildAccessPoint(ctx, s.Store, in)
}

func buildAccessPoint(ctx context.Context, st store.Store, in AccessPointInput) (domain.AccessPoint, []string, error) {
	appID := strings.TrimSpace(in.AppID)
	if appID == "" {
		return domain.AccessPoint{}, nil, invalid("app_id", msgAppRequired)
	}

	app, err := st.Apps().GetAppByID(ctx, appID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.AccessPoint{}, nil, invalidErr("app_id", ErrUnknownApp)
	}
	if err != nil {
		return domain.AccessPoint{}, nil, err
	}

	var notices []string
	n, forced := app.NormalizeConnections(in.Connections)
	if forced {
		notices = append(notices, MsgSingleAccess)
	}

	id := in.ID
	if id == "" {
		id = idx.NewPrefixed(idx.PrefixAccessPoint)
	}

	return domain.AccessPoint{
		ID:          id,
		AppID:       app.ID,
		AppName:     app.Name,
		Username:    strings.TrimSpace(in.Username),
		Password:    in.Password,
		Connections: n,
	}, notices, nil
}

// buildClient applies the client rules. kept are the stored access points,
// reused when in.AccessPoints is nil and normalised against the current app
// settings either way.
func buildClient(ctx context.Context, st store.Store, in ClientInput, kept []domain.AccessPoint) (domain.Client, error) {
	c := domain.Client{
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
		DueDate:  in.DueDate,
		Notified: in.Notified,
		PlanID:   strings.TrimSpace(in.PlanID),
		Screens:  in.Screens,
		Price:    in.Price,
	}

	if c.Name == "" {
		return c, invalid("name", msgNameRequired)
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return c, invalid("email", msgEmailInvalid)
		}
	}
	if c.PlanID == "" {
		return c, invalid("plan_id", msgPlanRequired)
	}
	if _, err := st.Plans().GetPlanByID(ctx, c.PlanID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c, invalidErr("plan_id", ErrUnknownPlan)
		}
		return c, err
	}
	if c.Screens < 1 {
		return c, invalid("screens", msgScreensRequired)
	}
	if c.Price < 0 {
		return c, invalid("price", msgPriceInvalid)
	}
	if c.DueDate.IsZero() {
		return c, invalid("due_date", msgDueDateRequired)
	}

	points := in.AccessPoints
	if points == nil {
		points = make([]AccessPointInput, 0, len(kept))
		for _, ap := range kept {
			points = append(points, AccessPointInput{
				ID:          ap.ID,
				AppID:       ap.AppID,
				Username:    ap.Username,
				Password:    ap.Password,
				Connections: ap.Connections,
			})
		}
	}

	// Only IDs of the client's stored points survive; anything else is
	// minted fresh.
	owned := make(map[string]bool, len(kept))
	for _, ap := range kept {
		owned[ap.ID] = true
	}
	seen := make(map[string]bool, len(points))

	c.AccessPoints = make([]domain.AccessPoint, 0, len(points))
	for _, apIn := range points {
		if !owned[apIn.ID] {
			apIn.ID = ""
		}
		if apIn.ID != "" {
			if seen[apIn.ID] {
				return c, invalid("access_points", msgDuplicatePoint)
			}
			seen[apIn.ID] = true
		}

		ap, _, err := buildAccessPoint(ctx, st, apIn)
		if err != nil {
			return c, err
		}
		c.AccessPoints = append(c.AccessPoints, ap)
	}

	if c.TotalConnections() != c.Screens {
		return c, invalidErr("access_points", ErrConnectionsMismatch)
	}
	return c, nil
}
