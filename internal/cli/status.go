package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
)

// newStatusCommand creates the status command: list agendas, optionally
// narrowed by status or title.
func newStatusCommand() *cobra.Command {
	var (
		statusFlag string
		titleFlag  string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show agendas in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			filter := domain.AgendaFilter{}
			if statusFlag != "" {
				status := domain.AgendaStatus(statusFlag)
				if !status.IsValid() {
					return fmt.Errorf("unknown status %q", statusFlag)
				}
				filter.Status = &status
			}
			if titleFlag != "" {
				filter.Title = &titleFlag
			}

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tINITIATED\tTERMINATES")

			n := 0
			for a, err := range app.Agendas.ListAgendas(ctx, filter) {
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Title, a.Status, formatMilli(a.InitiateAt), formatMilli(a.TerminateAt))
				n++
				if limit > 0 && n >= limit {
					break
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			statuses := []domain.AgendaStatus{
				domain.AgendaStatusStored,
				domain.AgendaStatusOngoing,
				domain.AgendaStatusTerminated,
			}
			parts := make([]string, 0, len(statuses))
			for _, status := range statuses {
				count, err := app.Agendas.CountAgendas(ctx, &status)
				if err != nil {
					return err
				}
				parts = append(parts, fmt.Sprintf("%s %d", status, count))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))

			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFlag, "status", "s", "", "filter by status (stored|ongoing|terminated)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "filter by exact title")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n agendas (0 = all)")

	return cmd
}
