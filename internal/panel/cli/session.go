package cli

import (
	"errors"

	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and remember the operator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := adapter(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := a.Login(cmd.Context(), args[0], args[1], role)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, s.User())
		},
	}
	cmd.Flags().StringVar(&role, "role", "master", "Operator role (master|comum)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := adapter(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := a.Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := adapter(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !remote {
				u, err := a.CurrentUser()
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, u)
			}
			s, err := a.Session()
			if err != nil {
				return writeErr(cmd, err)
			}
			me, err := s.Me(cmd.Context())
			if errors.Is(err, panelsdk.ErrInvalidToken) {
				_ = a.Logout()
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, me)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the server instead of local storage")
	return cmd
}

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or change the stored theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := adapter(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			theme := a.Theme()
			if len(args) == 1 {
				switch args[0] {
				case "toggle":
					theme, err = a.ToggleTheme()
				default:
					theme, err = args[0], a.SetTheme(args[0])
				}
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			_, err = cmd.OutOrStdout().Write([]byte(theme + "\n"))
			return err
		},
	}
	return cmd
}
