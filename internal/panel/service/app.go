package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const (
	msgAppNameRequired       = "Nome do app é obrigatório"
	msgServerRequired        = "Selecione um servidor"
	msgMultipleAccessMissing = "Selecione true ou false para multiplosAcessos."
)

// AppInput is what the operator submits for an app. MultipleAccess is a
// pointer because the operator must choose it explicitly.
type AppInput struct {
	Name           string
	AccessCode     string
	AndroidURL     string
	IOSURL         string
	DownloaderCode string
	NTDownCode     string
	MultipleAccess *bool
	ServerID       string
}

type AppService struct {
	Store store.Store
}

func (s *AppService) ListApps(ctx context.Context) ([]domain.App, error) {
	apps, err := s.Store.Apps().ListApps(ctx)
	return apps, mapStoreErr(err)
}

func (s *AppService) GetApp(ctx context.Context, id string) (domain.App, error) {
	a, err := s.Store.Apps().GetAppByID(ctx, id)
	return a, mapStoreErr(err)
}

func (s *AppService) CreateApp(ctx context.Context, in AppInput) (domain.App, error) {
	a, err := s.buildApp(ctx, in)
	if err != nil {
		return domain.App{}, err
	}
	a.ID = idx.NewPrefixed(idx.PrefixApp)

	if err := s.Store.Apps().CreateApp(ctx, a); err != nil {
		return domain.App{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("app created", "app_id", a.ID, "server_id", a.ServerID)
	return s.GetApp(ctx, a.ID)
}

func (s *AppService) UpdateApp(ctx context.Context, id string, in AppInput) (domain.App, error) {
	a, err := s.buildApp(ctx, in)
	if err != nil {
		return domain.App{}, err
	}
	a.ID = id

	if err := s.Store.Apps().UpdateApp(ctx, a); err != nil {
		return domain.App{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("app updated", "app_id", id)
	return s.GetApp(ctx, id)
}

// DeleteApp fails with ErrInUse while access points use the app.
func (s *AppService) DeleteApp(ctx context.Context, id string) error {
	if err := s.Store.Apps().DeleteApp(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("app deleted", "app_id", id)
	return nil
}

func (s *AppService) buildApp(ctx context.Context, in AppInput) (domain.App, error) {
	a := domain.App{
		Name:           strings.TrimSpace(in.Name),
		AccessCode:     strings.TrimSpace(in.AccessCode),
		AndroidURL:     strings.TrimSpace(in.AndroidURL),
		IOSURL:         strings.TrimSpace(in.IOSURL),
		DownloaderCode: strings.TrimSpace(in.DownloaderCode),
		NTDownCode:     strings.TrimSpace(in.NTDownCode),
		ServerID:       strings.TrimSpace(in.ServerID),
	}
	if a.Name == "" {
		return a, invalid("name", msgAppNameRequired)
	}
	if in.MultipleAccess == nil {
		return a, invalid("multiple_access", msgMultipleAccessMissing)
	}
	a.MultipleAccess = *in.MultipleAccess

	if a.ServerID == "" {
		return a, invalid("server_id", msgServerRequired)
	}
	if _, err := s.Store.Servers().GetServerByID(ctx, a.ServerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a, invalidErr("server_id", ErrUnknownServer)
		}
		return a, err
	}
	return a, nil
}
