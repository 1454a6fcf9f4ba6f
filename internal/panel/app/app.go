package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/pandda/internal/panel/http"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/internal/panel/store"
	"github.com/aussiebroadwan/pandda/internal/panel/store/drivers/memory"
	"github.com/aussiebroadwan/pandda/internal/panel/store/drivers/sqlite"
	"github.com/aussiebroadwan/pandda/internal/panel/view"
	"github.com/aussiebroadwan/pandda/pkg/cryptox"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/jwtx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the panel's store, services and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger
	loc    *time.Location

	// Core dependencies
	db      store.Store
	keys    *jwtx.KeyRing
	dialogs *dialog.Registry

	// Services
	authService         *service.AuthService
	clientService       *service.ClientService
	planService         *service.PlanService
	serverService       *service.ServerService
	appService          *service.AppService
	housekeepingService *service.HousekeepingService
	renderer            *view.Renderer

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. An empty
// store is seeded when cfg.Seed is set.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		loc: loc,
		logger: slogx.New(slogx.Config{
			Service: "pandda",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		dialogs: dialog.NewRegistry(),
	}

	// The memory store keeps no hashes beyond the process, neither does its pepper
	if cfg.Store == StoreMemory {
		cryptox.SetPepperPath("")
	} else {
		cryptox.SetPepperPath(cfg.PepperFile)
	}

	db, err := OpenStore(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	keys, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.keys = keys

	app.initServices()

	if cfg.Seed {
		ctx := slogx.WithContext(context.Background(), app.logger)
		seeded, err := (&service.SeedService{Store: app.db}).Seed(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
		if seeded {
			app.logger.Info("demo data loaded", "master", service.SeedMasterEmail, "comum", service.SeedComumEmail)
		}
	}

	app.initHTTP()
	return app, nil
}

// OpenStore opens the configured store and applies its migrations.
func OpenStore(cfg Config, logger *slog.Logger) (store.Store, error) {
	var db store.Store
	switch cfg.Store {
	case StoreMemory:
		db = memory.NewStore()
		logger.Warn("using in-memory store, records are lost on restart")
	default:
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
		s, err := sqlite.NewStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		db = s
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("store ready", "driver", cfg.Store)
	return db, nil
}

// Handler returns the HTTP handler, for tests that skip the listener.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("pandda panel starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pandda panel...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("pandda panel stopped")
	return nil
}

// Close releases the store without serving; for callers that never ran.
func (app *Application) Close() error {
	return app.db.Close()
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Keys:   app.keys,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.clientService = &service.ClientService{Store: app.db}
	app.planService = &service.PlanService{Store: app.db}
	app.serverService = &service.ServerService{Store: app.db}
	app.appService = &service.AppService{Store: app.db}

	app.renderer = &view.Renderer{
		Clients:  app.clientService,
		Plans:    app.planService,
		Servers:  app.serverService,
		Apps:     app.appService,
		Location: app.loc,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.dialogs,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.DialogIdleTimeout,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Location = app.loc
	router.AuthService = app.authService
	router.ClientService = app.clientService
	router.PlanService = app.planService
	router.ServerService = app.serverService
	router.AppService = app.appService
	router.Renderer = app.renderer
	router.Dialogs = app.dialogs
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
