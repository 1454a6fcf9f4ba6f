package view

import (
	"context"
	"errors"
	"strconv"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

const (
	msgPriceTouch     = "Você precisa clicar e informar o valor do campo Preço antes de salvar."
	msgPriceNote      = "Clique no campo de preço e informe o valor antes de salvar."
	msgScreenLimit    = "Limite padrão: 3"
	msgPlanPriceWrong = "Preço inválido. Informe um valor numérico (ex.: 39,90)."
)

// Plan dialog field names. Name, screens and price reuse the client ones.
const (
	FieldValidity     = "validity_months"
	FieldNotes        = "notes"
	ActionScreensDec  = "screens_dec"
	ActionScreensInc  = "screens_inc"
	ActionValidityDec = "validity_dec"
	ActionValidityInc = "validity_inc"
)

func (r *Renderer) planDialog(ctx context.Context, id string) (dialog.Config, error) {
	title := "Novo plano"
	initial := domain.Plan{Screens: 1, ValidityMonths: domain.MinValidityMonths}
	if id != "" {
		title = "Editar plano"
		var err error
		if initial, err = r.Plans.GetPlan(ctx, id); err != nil {
			return dialog.Config{}, err
		}
	}

	return dialog.Config{
		Title:       title,
		InitialData: initial,
		ContentBuilder: func(ctx context.Context, c *dialog.Container, data any, h dialog.Helpers) error {
			p, _ := data.(domain.Plan)

			price := ""
			if id != "" {
				price = moneyx.Format(p.Price)
			}

			h.Input(dialog.Def{Name: FieldName, Label: "Nome", Value: p.Name, Required: true})
			h.Input(dialog.Def{Name: FieldScreens, Label: "Telas", Kind: dialog.KindNumber, Value: strconv.Itoa(p.Screens), OnChange: clampScreens})
			h.Action(ActionScreensDec, "−", stepper(FieldScreens, -1, clampScreens))
			h.Action(ActionScreensInc, "+", stepper(FieldScreens, +1, clampScreens))
			h.Input(dialog.Def{Name: FieldValidity, Label: "Validade em meses", Kind: dialog.KindNumber, Value: strconv.Itoa(p.ValidityMonths), OnChange: clampValidity})
			h.Action(ActionValidityDec, "−", stepper(FieldValidity, -1, clampValidity))
			h.Action(ActionValidityInc, "+", stepper(FieldValidity, +1, clampValidity))
			h.Currency(dialog.Def{
				Name:         FieldPrice,
				Label:        "Preço (R$)",
				Value:        price,
				RequireTouch: true,
				TouchMessage: msgPriceTouch,
				Note:         msgPriceNote,
			})
			h.Input(dialog.Def{
				Name:        FieldNotes,
				Label:       "Observações (opcional)",
				Kind:        dialog.KindTextArea,
				Value:       p.Notes,
				Placeholder: "Observações sobre o plano (opcional)",
			})

			clampScreens(ctx, c, "")
			c.CollectData = func() (any, error) {
				v, ok := c.Currency(FieldPrice).NumericValue()
				if !ok {
					return nil, errors.New(msgPlanPriceWrong)
				}
				screens, _ := c.Int(FieldScreens, 1)
				validity, _ := c.Int(FieldValidity, domain.MinValidityMonths)
				return service.PlanInput{
					Name:           c.Value(FieldName),
					Screens:        max(screens, 1),
					ValidityMonths: domain.ClampValidity(validity),
					Price:          v,
					Notes:          c.Value(FieldNotes),
				}, nil
			}
			return nil
		},
		OnSave: func(ctx context.Context, collected any) (any, error) {
			in, ok := collected.(service.PlanInput)
			if !ok {
				return nil, errBadCollected
			}
			var (
				p   domain.Plan
				err error
			)
			if id == "" {
				p, err = r.Plans.CreatePlan(ctx, in)
			} else {
				p, err = r.Plans.UpdatePlan(ctx, id, in)
			}
			if err != nil {
				return nil, keepValidation(err, msgPlanSaveFailed)
			}
			return p, nil
		},
	}, nil
}

// clampScreens keeps screens at 1 or more and warns past the default limit.
func clampScreens(_ context.Context, c *dialog.Container, _ string) {
	n, err := c.Int(FieldScreens, 1)
	if err != nil || n < 1 {
		n = 1
		c.SetValue(FieldScreens, "1")
	}
	if n > domain.DefaultScreenLimit {
		c.SetFeedback(FieldScreens, msgScreenLimit)
	} else {
		c.SetFeedback(FieldScreens, "")
	}
}

// clampValidity keeps the validity inside 1..12 months.
func clampValidity(_ context.Context, c *dialog.Container, _ string) {
	n, err := c.Int(FieldValidity, domain.MinValidityMonths)
	if err != nil {
		n = domain.MinValidityMonths
	}
	if clamped := domain.ClampValidity(n); clamped != n || err != nil {
		c.SetValue(FieldValidity, strconv.Itoa(clamped))
	}
}

// stepper returns an action adding delta to a number field and re-applying
// its clamp.
func stepper(field string, delta int, clamp dialog.ChangeFunc) dialog.ActionFunc {
	return func(ctx context.Context, c *dialog.Container) error {
		n, err := c.Int(field, 0)
		if err != nil {
			n = 0
		}
		c.SetValue(field, strconv.Itoa(n+delta))
		clamp(ctx, c, "")
		return nil
	}
}
