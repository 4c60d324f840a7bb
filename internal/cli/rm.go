package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRemoveCommand creates the rm command: delete an agenda. Logs that
// pointed at it survive untagged.
func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <agenda-id>",
		Short: "Delete an agenda, keeping its logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Agendas.DeleteAgenda(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted agenda %s\n", args[0])
			return nil
		},
	}
}
