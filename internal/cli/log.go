package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
	eventlogsvc "github.com/finiate/finiate/internal/service/eventlog"
)

// newLogCommand creates the log command: record a free-form log entry,
// optionally tagged to an agenda, plus the rm subcommand to delete one.
func newLogCommand() *cobra.Command {
	var agendaID string

	cmd := &cobra.Command{
		Use:   "log <content>",
		Short: "Record a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			input := eventlogsvc.RecordLogInput{
				ID:       newEntryID(),
				CreateAt: time.Now().UnixMilli(),
				Content:  args[0],
				Type:     domain.LogTypeCommon,
			}
			if agendaID != "" {
				input.AgendaID = &agendaID
			}

			l, err := app.Logs.RecordLog(ctx, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recorded log %s\n", l.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&agendaID, "agenda", "a", "", "tag the log to this agenda")

	cmd.AddCommand(newLogRemoveCommand())

	return cmd
}

func newLogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <log-id>",
		Short: "Delete a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Logs.DeleteLog(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted log %s\n", args[0])
			return nil
		},
	}
}
