package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
	agendasvc "github.com/finiate/finiate/internal/service/agenda"
	eventlogsvc "github.com/finiate/finiate/internal/service/eventlog"
)

// newAddCommand creates the add command: start a new ongoing agenda and
// record its activate log.
func newAddCommand() *cobra.Command {
	var terminateAt string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Start a new ongoing agenda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deadline, err := parseTimeFlag(terminateAt)
			if err != nil {
				return err
			}

			a, err := runAdd(cmd, args[0], domain.AgendaStatusOngoing, deadline)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added agenda %s (%s), terminates %s\n",
				a.ID, a.Title, formatMilli(a.TerminateAt))
			return nil
		},
	}

	cmd.Flags().StringVarP(&terminateAt, "terminate-at", "t", "", "deadline (RFC3339, '2006-01-02 15:04' or '2006-01-02')")
	_ = cmd.MarkFlagRequired("terminate-at")

	return cmd
}

// runAdd creates an agenda and records the matching lifecycle log.
func runAdd(cmd *cobra.Command, title string, status domain.AgendaStatus, terminateAt int64) (*domain.Agenda, error) {
	ctx := cmd.Context()

	app, err := newApp(ctx)
	if err != nil {
		return nil, err
	}
	defer app.Close()

	now := time.Now().UnixMilli()
	if terminateAt == 0 {
		terminateAt = now
	}

	a, err := app.Agendas.CreateAgenda(ctx, agendasvc.CreateAgendaInput{
		ID:          newEntryID(),
		Title:       title,
		Status:      status,
		InitiateAt:  now,
		TerminateAt: terminateAt,
	})
	if err != nil {
		return nil, err
	}

	logType := domain.LogTypeActivate
	content := "agenda activated: " + title
	if status == domain.AgendaStatusStored {
		logType = domain.LogTypeCommon
		content = "agenda shelved: " + title
	}

	_, err = app.Logs.RecordLog(ctx, eventlogsvc.RecordLogInput{
		ID:       newEntryID(),
		CreateAt: now,
		Content:  content,
		Type:     logType,
		AgendaID: &a.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("record lifecycle log: %w", err)
	}

	return a, nil
}
