package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/cryptox"
	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

// Demo operators created by Seed. The password equals the role name.
const (
	SeedMasterEmail = "admin@pandda.com"
	SeedComumEmail  = "user@pandda.com"
)

const (
	noteCorporate = "Plano pensado para grandes clientes com necessidades específicas de integração, SLA 24/7, suporte Premium com gerente dedicado e integrações customizadas via API. Observações: faturamento mensal; faturamento anual com desconto mediante contrato."
	noteLongTest  = "Nota longa de teste que precisa ser truncada na listagem para evitar quebra de layout em telas pequenas. Este texto é propositalmente extenso para simular comentários, instruções e observações inseridas pelos usuários do sistema."
)

// SeedService loads the demo data set into an empty store.
type SeedService struct {
	Store store.Store
	Now   func() time.Time
}

// Seed fills the store unless it already has users. It reports whether data
// was written.
func (s *SeedService) Seed(ctx context.Context) (bool, error) {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("service: check seed state: %w", err)
	}
	if !empty {
		log.Debug("store already seeded")
		return false, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := datex.StartOfDay(now())

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		servers := []domain.Server{
			{ID: idx.NewPrefixed(idx.PrefixServer), Name: "Servidor A", Alias: "srv-a"},
			{ID: idx.NewPrefixed(idx.PrefixServer), Name: "Servidor B", Alias: "srv-b"},
		}
		for _, srv := range servers {
			if err := tx.Servers().CreateServer(ctx, srv); err != nil {
				return fmt.Errorf("seed server %s: %w", srv.Name, err)
			}
		}

		apps := []domain.App{
			{ID: idx.NewPrefixed(idx.PrefixApp), Name: "App X", AccessCode: "AX1", DownloaderCode: "D1", NTDownCode: "NT1", MultipleAccess: true, ServerID: servers[0].ID},
			{ID: idx.NewPrefixed(idx.PrefixApp), Name: "App Z", AccessCode: "AZ1", DownloaderCode: "D2", NTDownCode: "NT2", MultipleAccess: false, ServerID: servers[1].ID},
			{ID: idx.NewPrefixed(idx.PrefixApp), Name: "App Y", AccessCode: "AY1", DownloaderCode: "D3", NTDownCode: "NT3", MultipleAccess: true, ServerID: servers[1].ID},
		}
		for _, a := range apps {
			if err := tx.Apps().CreateApp(ctx, a); err != nil {
				return fmt.Errorf("seed app %s: %w", a.Name, err)
			}
		}

		plans := []domain.Plan{
			{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Básico", Screens: 2, ValidityMonths: 1, Price: 29.90},
			{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Pro", Screens: 4, ValidityMonths: 3, Price: 69.90, Notes: "Inclui suporte básico"},
			{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Premium", Screens: 8, ValidityMonths: 12, Price: 199.90, Notes: "Inclui SLA e integrações"},
			{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Corporativo Plus com recursos estendidos", Screens: 20, ValidityMonths: 12, Price: 899.90, Notes: noteCorporate},
			{ID: idx.NewPrefixed(idx.PrefixPlan), Name: "Teste Long Note", Screens: 3, ValidityMonths: 6, Price: 49.90, Notes: noteLongTest},
		}
		for _, p := range plans {
			if err := tx.Plans().CreatePlan(ctx, p); err != nil {
				return fmt.Errorf("seed plan %s: %w", p.Name, err)
			}
		}

		ap := func(a domain.App, user string, conns int) domain.AccessPoint {
			return domain.AccessPoint{
				ID:          idx.NewPrefixed(idx.PrefixAccessPoint),
				AppID:       a.ID,
				AppName:     a.Name,
				Username:    user,
				Password:    user,
				Connections: conns,
			}
		}
		clients := []domain.Client{
			{
				Name: "João Silva", Phone: "79999-0001", Email: "joao@mail.com",
				DueDate: today.AddDate(0, 0, 2), PlanID: plans[0].ID, Screens: 2, Price: plans[0].Price,
				AccessPoints: []domain.AccessPoint{ap(apps[0], "joao", 2)},
			},
			{
				Name: "Maria Souza", Phone: "79999-0002", Email: "maria@mail.com",
				DueDate: today.AddDate(0, 0, -10), Notified: true, PlanID: plans[1].ID, Screens: 4, Price: plans[1].Price,
				AccessPoints: []domain.AccessPoint{ap(apps[0], "maria", 3), ap(apps[1], "maria.z", 1)},
			},
			{
				Name: "Empresa XYZ", Phone: "0800-1234", Email: "contato@xyz.com",
				DueDate: today.AddDate(0, 0, -40), PlanID: plans[2].ID, Screens: 8, Price: plans[2].Price,
				AccessPoints: []domain.AccessPoint{ap(apps[2], "xyz", 8)},
			},
		}
		for _, c := range clients {
			c.ID = idx.NewPrefixed(idx.PrefixClient)
			if err := tx.Clients().CreateClient(ctx, c); err != nil {
				return fmt.Errorf("seed client %s: %w", c.Name, err)
			}
		}

		users := []struct {
			email, name string
			role        domain.Role
		}{
			{SeedMasterEmail, "Administrador", domain.RoleMaster},
			{SeedComumEmail, "", domain.RoleComum},
		}
		for _, u := range users {
			hash, err := cryptox.HashPassword(u.role.String())
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.email, err)
			}
			if err := tx.Users().CreateUser(ctx, domain.User{
				ID:           idx.NewPrefixed(idx.PrefixUser),
				Email:        u.email,
				Name:         u.name,
				PasswordHash: hash,
				Role:         u.role,
			}); err != nil {
				return fmt.Errorf("seed user %s: %w", u.email, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("service: seed: %w", err)
	}

	log.Info("demo data seeded", "users", 2, "clients", 3, "plans", 5)
	return true, nil
}
