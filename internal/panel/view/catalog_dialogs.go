package view

import (
	"context"
	"strconv"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
)

// Server and app dialog field names.
const (
	FieldAlias          = "alias"
	FieldAccessCode     = "access_code"
	FieldAndroidURL     = "android_url"
	FieldIOSURL         = "ios_url"
	FieldDownloaderCode = "downloader_code"
	FieldNTDownCode     = "ntdown_code"
	FieldMultipleAccess = "multiple_access"
	FieldServer         = "server_id"
)

func (r *Renderer) serverDialog(ctx context.Context, id string) (dialog.Config, error) {
	title := "Novo servidor"
	var initial domain.Server
	if id != "" {
		title = "Editar servidor"
		var err error
		if initial, err = r.Servers.GetServer(ctx, id); err != nil {
			return dialog.Config{}, err
		}
	}

	return dialog.Config{
		Title:       title,
		InitialData: initial,
		ContentBuilder: func(_ context.Context, c *dialog.Container, data any, h dialog.Helpers) error {
			s, _ := data.(domain.Server)
			h.Input(dialog.Def{Name: FieldName, Label: "Nome", Value: s.Name, Required: true})
			h.Input(dialog.Def{Name: FieldAlias, Label: "Alias", Value: s.Alias})

			c.CollectData = func() (any, error) {
				return service.ServerInput{Name: c.Value(FieldName), Alias: c.Value(FieldAlias)}, nil
			}
			return nil
		},
		OnSave: func(ctx context.Context, collected any) (any, error) {
			in, ok := collected.(service.ServerInput)
			if !ok {
				return nil, errBadCollected
			}
			if id == "" {
				return r.Servers.CreateServer(ctx, in)
			}
			return r.Servers.UpdateServer(ctx, id, in)
		},
	}, nil
}

func (r *Renderer) appDialog(ctx context.Context, id string) (dialog.Config, error) {
	servers, err := r.Servers.ListServers(ctx)
	if err != nil {
		return dialog.Config{}, err
	}

	title := "Novo App"
	var initial domain.App
	multiple := ""
	if id != "" {
		title = "Editar app"
		if initial, err = r.Apps.GetApp(ctx, id); err != nil {
			return dialog.Config{}, err
		}
		multiple = strconv.FormatBool(initial.MultipleAccess)
	}

	serverOpts := []dialog.Option{{Value: "", Label: "Selecione um servidor"}}
	for _, s := range servers {
		serverOpts = append(serverOpts, dialog.Option{Value: s.ID, Label: s.Name})
	}
	multipleOpts := []dialog.Option{
		{Value: "", Label: "Selecione"},
		{Value: "true", Label: "true"},
		{Value: "false", Label: "false"},
	}

	return dialog.Config{
		Title:       title,
		InitialData: initial,
		ContentBuilder: func(_ context.Context, c *dialog.Container, data any, h dialog.Helpers) error {
			a, _ := data.(domain.App)
			h.Input(dialog.Def{Name: FieldName, Label: "Nome", Value: a.Name, Required: true})
			h.Input(dialog.Def{Name: FieldAccessCode, Label: "Código de Acesso", Value: a.AccessCode})
			h.Input(dialog.Def{Name: FieldAndroidURL, Label: "URL Android", Value: a.AndroidURL})
			h.Input(dialog.Def{Name: FieldIOSURL, Label: "URL iOS", Value: a.IOSURL})
			h.Input(dialog.Def{Name: FieldDownloaderCode, Label: "Código Downloader", Value: a.DownloaderCode})
			h.Input(dialog.Def{Name: FieldNTDownCode, Label: "Código NTDown", Value: a.NTDownCode})
			h.Select(dialog.Def{Name: FieldMultipleAccess, Label: "Múltiplos acessos", Value: multiple, Required: true}, multipleOpts)
			h.Select(dialog.Def{Name: FieldServer, Label: "Servidor", Value: a.ServerID, Required: true}, serverOpts)

			c.CollectData = func() (any, error) {
				in := service.AppInput{
					Name:           c.Value(FieldName),
					AccessCode:     c.Value(FieldAccessCode),
					AndroidURL:     c.Value(FieldAndroidURL),
					IOSURL:         c.Value(FieldIOSURL),
					DownloaderCode: c.Value(FieldDownloaderCode),
					NTDownCode:     c.Value(FieldNTDownCode),
					ServerID:       c.Value(FieldServer),
				}
				if v, err := strconv.ParseBool(c.Value(FieldMultipleAccess)); err == nil {
					in.MultipleAccess = &v
				}
				return in, nil
			}
			return nil
		},
		OnSave: func(ctx context.Context, collected any) (any, error) {
			in, ok := collected.(service.AppInput)
			if !ok {
				return nil, errBadCollected
			}
			if id == "" {
				return r.Apps.CreateApp(ctx, in)
			}
			return r.Apps.UpdateApp(ctx, id, in)
		},
	}, nil
}
