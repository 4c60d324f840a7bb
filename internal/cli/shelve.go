package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
)

// newShelveCommand creates the shelve command: store an agenda with no
// deadline committed yet.
func newShelveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shelve <title>",
		Short: "Store an agenda without a deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAdd(cmd, args[0], domain.AgendaStatusStored, 0)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "shelved agenda %s (%s)\n", a.ID, a.Title)
			return nil
		},
	}
}
