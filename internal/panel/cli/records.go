package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Browse and remove clients",
	}

	var filter string
	var onlyNotified bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the clients view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			params := url.Values{}
			if filter != "" {
				params.Set("filter", filter)
			}
			if onlyNotified {
				params.Set("only_notified", strconv.FormatBool(true))
			}
			raw, err := s.View(cmd.Context(), "clients", params)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, raw)
		},
	}
	list.Flags().StringVar(&filter, "filter", "", "Due date filter (all|vencendo|vencidos30|vencidosMais30)")
	list.Flags().BoolVar(&onlyNotified, "only-notified", false, "Only clients already notified")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client (master only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.DeleteClient(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse plans",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			plans, err := s.ListPlans(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, plans)
		},
	})
	return cmd
}
