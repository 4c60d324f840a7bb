package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
	agendasvc "github.com/finiate/finiate/internal/service/agenda"
	eventlogsvc "github.com/finiate/finiate/internal/service/eventlog"
)

// newTerminateCommand creates the terminate command: close an agenda and
// record a terminate log.
func newTerminateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terminate <agenda-id> [content]",
		Short: "Close an agenda",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			status := domain.AgendaStatusTerminated
			a, err := app.Agendas.UpdateAgenda(ctx, agendasvc.UpdateAgendaInput{
				ID:     args[0],
				Params: domain.AgendaUpdateParams{Status: &status},
			})
			if err != nil {
				return err
			}

			content := "agenda terminated: " + a.Title
			if len(args) == 2 {
				content = args[1]
			}

			_, err = app.Logs.RecordLog(ctx, eventlogsvc.RecordLogInput{
				ID:       newEntryID(),
				CreateAt: time.Now().UnixMilli(),
				Content:  content,
				Type:     domain.LogTypeTerminate,
				AgendaID: &a.ID,
			})
			if err != nil {
				return fmt.Errorf("record terminate log: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "terminated agenda %s (%s)\n", a.ID, a.Title)
			return nil
		},
	}
}
