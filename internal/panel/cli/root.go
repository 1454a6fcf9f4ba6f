package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/spf13/cobra"
)

// App holds the persistent flags shared by every command.
type App struct {
	Config  string
	Server  string
	Storage string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pandda",
		Short:        "Pandda reseller panel server and client",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Run the panel
  pandda serve --config pandda.yaml

  # Sign in and browse
  pandda login admin@pandda.com master --role master
  pandda clients list --filter vencidos30
`),
	}

	cmd.PersistentFlags().StringVar(&app.Config, "config", envOr("PANDDA_CONFIG", ""), "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("PANDDA_SERVER", "http://localhost:8080"), "Panel base URL")
	cmd.PersistentFlags().StringVar(&app.Storage, "storage", envOr("PANDDA_STORAGE", ""), "Local storage file (default: <config dir>/pandda/storage.json)")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newMigrateCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newClientsCmd(app))
	cmd.AddCommand(newPlansCmd(app))

	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// adapter opens local storage and binds it to the configured server.
func adapter(app *App) (*panelsdk.AuthAdapter, error) {
	path := app.Storage
	if path == "" {
		p, err := panelsdk.DefaultStoragePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	ls, err := panelsdk.OpenLocalStorage(path)
	if err != nil {
		return nil, err
	}
	return &panelsdk.AuthAdapter{Client: panelsdk.NewClient(app.Server), Storage: ls}, nil
}

func session(app *App) (*panelsdk.Session, error) {
	a, err := adapter(app)
	if err != nil {
		return nil, err
	}
	s, err := a.Session()
	if err != nil {
		return nil, fmt.Errorf("%w (run pandda login first)", err)
	}
	return s, nil
}

func writeOut(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
