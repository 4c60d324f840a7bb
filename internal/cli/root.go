// Package cli implements the finiate command-line interface on top of the
// agenda and event log services.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the finiate CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "finiate",
		Short:         "finiate - agenda and event log tracker",
		Long:          "Tracks agendas through their lifecycle and keeps an event log of everything that happens to them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newAddCommand())
	cmd.AddCommand(newShelveCommand())
	cmd.AddCommand(newPutOffCommand())
	cmd.AddCommand(newTerminateCommand())
	cmd.AddCommand(newRenameCommand())
	cmd.AddCommand(newRemoveCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newHistoryCommand())
	cmd.AddCommand(newLogCommand())

	return cmd
}

// timeLayouts are the accepted formats for time-valued flags.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeFlag converts a user-supplied timestamp to epoch milliseconds.
func parseTimeFlag(s string) (int64, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q, expected one of %v", s, timeLayouts)
}

func formatMilli(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}
