package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/moneyx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const msgPlanNameRequired = "Nome do plano é obrigatório"

// PlanInput is what the operator submits for a plan. Screens below 1 and
// validity outside 1..12 are clamped rather than rejected.
type PlanInput struct {
	Name           string
	Screens        int
	ValidityMonths int
	Price          float64
	Notes          string
}

type PlanService struct {
	Store store.Store
}

func (s *PlanService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.Store.Plans().ListPlans(ctx)
	return plans, mapStoreErr(err)
}

func (s *PlanService) GetPlan(ctx context.Context, id string) (domain.Plan, error) {
	p, err := s.Store.Plans().GetPlanByID(ctx, id)
	return p, mapStoreErr(err)
}

func (s *PlanService) CreatePlan(ctx context.Context, in PlanInput) (domain.Plan, error) {
	p, err := buildPlan(in)
	if err != nil {
		return domain.Plan{}, err
	}
	p.ID = idx.NewPrefixed(idx.PrefixPlan)

	if err := s.Store.Plans().CreatePlan(ctx, p); err != nil {
		return domain.Plan{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("plan created", "plan_id", p.ID)
	return s.GetPlan(ctx, p.ID)
}

func (s *PlanService) UpdatePlan(ctx context.Context, id string, in PlanInput) (domain.Plan, error) {
	p, err := buildPlan(in)
	if err != nil {
		return domain.Plan{}, err
	}
	p.ID = id

	if err := s.Store.Plans().UpdatePlan(ctx, p); err != nil {
		return domain.Plan{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("plan updated", "plan_id", p.ID)
	return s.GetPlan(ctx, p.ID)
}

// DeletePlan fails with ErrInUse while any client is on the plan.
func (s *PlanService) DeletePlan(ctx context.Context, id string) error {
	if err := s.Store.Plans().DeletePlan(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("plan deleted", "plan_id", id)
	return nil
}

func buildPlan(in PlanInput) (domain.Plan, error) {
	p := domain.Plan{
		Name:           strings.TrimSpace(in.Name),
		Screens:        max(in.Screens, 1),
		ValidityMonths: domain.ClampValidity(in.ValidityMonths),
		Price:          moneyx.Round(in.Price),
		Notes:          strings.TrimSpace(in.Notes),
	}
	if p.Name == "" {
		return p, invalid("name", msgPlanNameRequired)
	}
	if in.Price < 0 {
		return p, invalid("price", msgPriceInvalid)
	}
	return p, nil
}
