package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const msgServerNameRequired = "Nome do servidor é obrigatório"

type ServerInput struct {
	Name  string
	Alias string
}

type ServerService struct {
	Store store.Store
}

func (s *ServerService) ListServers(ctx context.Context) ([]domain.Server, error) {
	servers, err := s.Store.Servers().ListServers(ctx)
	return servers, mapStoreErr(err)
}

func (s *ServerService) GetServer(ctx context.Context, id string) (domain.Server, error) {
	srv, err := s.Store.Servers().GetServerByID(ctx, id)
	return srv, mapStoreErr(err)
}

func (s *ServerService) CreateServer(ctx context.Context, in ServerInput) (domain.Server, error) {
	srv, err := buildServer(in)
	if err != nil {
		return domain.Server{}, err
	}
	srv.ID = idx.NewPrefixed(idx.PrefixServer)

	if err := s.Store.Servers().CreateServer(ctx, srv); err != nil {
		return domain.Server{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("server created", "server_id", srv.ID)
	return s.GetServer(ctx, srv.ID)
}

func (s *ServerService) UpdateServer(ctx context.Context, id string, in ServerInput) (domain.Server, error) {
	srv, err := buildServer(in)
	if err != nil {
		return domain.Server{}, err
	}
	srv.ID = id

	if err := s.Store.Servers().UpdateServer(ctx, srv); err != nil {
		return domain.Server{}, mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("server updated", "server_id", id)
	return s.GetServer(ctx, id)
}

// DeleteServer fails with ErrInUse while apps point at the server.
func (s *ServerService) DeleteServer(ctx context.Context, id string) error {
	if err := s.Store.Servers().DeleteServer(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("server deleted", "server_id", id)
	return nil
}

func buildServer(in ServerInput) (domain.Server, error) {
	srv := domain.Server{
		Name:  strings.TrimSpace(in.Name),
		Alias: strings.TrimSpace(in.Alias),
	}
	if srv.Name == "" {
		return srv, invalid("name", msgServerNameRequired)
	}
	return srv, nil
}
