package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	agendasvc "github.com/finiate/finiate/internal/service/agenda"
)

// newRenameCommand creates the rename command: change an agenda identifier
// and repoint every referencing log.
func newRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-id> <new-id>",
		Short: "Change an agenda identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			err = app.Agendas.RenameAgenda(ctx, agendasvc.RenameAgendaInput{
				OldID: args[0],
				NewID: args[1],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "renamed agenda %s to %s\n", args[0], args[1])
			return nil
		},
	}
}
