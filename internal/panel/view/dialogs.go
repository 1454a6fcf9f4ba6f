package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

// Dialog kinds, one per entity.
const (
	KindClient = "client"
	KindPlan   = "plan"
	KindServer = "server"
	KindApp    = "app"
)

var kindPrefix = map[string]string{
	KindClient: idx.PrefixClient,
	KindPlan:   idx.PrefixPlan,
	KindServer: idx.PrefixServer,
	KindApp:    idx.PrefixApp,
}

const msgPlanSaveFailed = "Falha ao salvar o plano: %w"

var errBadCollected = errors.New("Erro ao coletar dados do formulário")

// DialogConfig returns the create dialog for kind, or the edit dialog when id
// is set. Editing a missing record returns service.ErrNotFound.
func (r *Renderer) DialogConfig(ctx context.Context, kind, id string) (dialog.Config, error) {
	if prefix, ok := kindPrefix[kind]; ok && id != "" && !idx.HasPrefix(prefix, id) {
		return dialog.Config{}, fmt.Errorf("%w: %s %q", service.ErrNotFound, kind, id)
	}

	var (
		cfg dialog.Config
		err error
	)
	switch kind {
	case KindClient:
		cfg, err = r.clientDialog(ctx, id)
	case KindPlan:
		cfg, err = r.planDialog(ctx, id)
	case KindServer:
		cfg, err = r.serverDialog(ctx, id)
	case KindApp:
		cfg, err = r.appDialog(ctx, id)
	default:
		return dialog.Config{}, fmt.Errorf("%w: %q", ErrUnknownView, kind)
	}
	if err != nil {
		return dialog.Config{}, err
	}
	cfg.Kind = kind
	cfg.RecordID = id
	cfg.OnDone = func(ctx context.Context, _ any) {
		slogx.FromContext(ctx).Info("dialog saved", "kind", kind, "record_id", id)
	}
	return cfg, nil
}

// OpenDialog builds the dialog for kind and opens it on m, replacing
// whatever dialog m had open.
func (r *Renderer) OpenDialog(ctx context.Context, m *dialog.Manager, kind, id string) (*dialog.Dialog, error) {
	cfg, err := r.DialogConfig(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return m.Open(ctx, cfg), nil
}

// keepValidation returns validation errors untouched and wraps anything else
// with format.
func keepValidation(err error, format string) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return fmt.Errorf(format, err)
}
