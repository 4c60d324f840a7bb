package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
	agendasvc "github.com/finiate/finiate/internal/service/agenda"
	eventlogsvc "github.com/finiate/finiate/internal/service/eventlog"
)

// newPutOffCommand creates the put-off command: push an agenda deadline
// back and record a put_off log.
func newPutOffCommand() *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "put-off <agenda-id> [content]",
		Short: "Push an agenda deadline back",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deadline, err := parseTimeFlag(until)
			if err != nil {
				return err
			}

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			a, err := app.Agendas.UpdateAgenda(ctx, agendasvc.UpdateAgendaInput{
				ID:     args[0],
				Params: domain.AgendaUpdateParams{TerminateAt: &deadline},
			})
			if err != nil {
				return err
			}

			content := "agenda put off until " + formatMilli(deadline)
			if len(args) == 2 {
				content = args[1]
			}

			_, err = app.Logs.RecordLog(ctx, eventlogsvc.RecordLogInput{
				ID:       newEntryID(),
				CreateAt: time.Now().UnixMilli(),
				Content:  content,
				Type:     domain.LogTypePutOff,
				AgendaID: &a.ID,
			})
			if err != nil {
				return fmt.Errorf("record put-off log: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "put off agenda %s (%s) until %s\n",
				a.ID, a.Title, formatMilli(a.TerminateAt))
			return nil
		},
	}

	cmd.Flags().StringVarP(&until, "until", "u", "", "new deadline (RFC3339, '2006-01-02 15:04' or '2006-01-02')")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}
