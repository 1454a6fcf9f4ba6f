package cli

import (
	"github.com/aussiebroadwan/pandda/internal/panel/app"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the panel HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfigFile(a.Config)
			if err != nil {
				return writeErr(cmd, err)
			}
			application, err := app.New(cfg)
			if err != nil {
				return writeErr(cmd, err)
			}
			return application.Run()
		},
	}
}

func newMigrateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply store migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfigFile(a.Config)
			if err != nil {
				return writeErr(cmd, err)
			}
			logger := slogx.New(slogx.Config{
				Service: "pandda",
				Version: app.BuildVersion,
				Env:     cfg.Env,
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Output:  cmd.ErrOrStderr(),
			})
			db, err := app.OpenStore(cfg, logger)
			if err != nil {
				return writeErr(cmd, err)
			}
			return db.Close()
		},
	}
}
