package cli

import (
	"fmt"
	"iter"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/finiate/finiate/internal/domain"
)

// newHistoryCommand creates the history command: show logs for one agenda
// or all logs in a time window.
func newHistoryCommand() *cobra.Command {
	var (
		agendaID string
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show event logs for an agenda or a time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			var seq iter.Seq2[domain.Log, error]
			switch {
			case agendaID != "":
				seq, err = app.Logs.ListLogsByAgenda(ctx, agendaID)
			default:
				from := int64(0)
				to := time.Now().UnixMilli()
				if fromFlag != "" {
					if from, err = parseTimeFlag(fromFlag); err != nil {
						return err
					}
				}
				if toFlag != "" {
					if to, err = parseTimeFlag(toFlag); err != nil {
						return err
					}
				}
				seq, err = app.Logs.ListLogsByRange(ctx, from, to)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAT\tTYPE\tAGENDA\tCONTENT")

			for l, err := range seq {
				if err != nil {
					return err
				}
				agenda := "-"
				if l.AgendaID != nil {
					agenda = *l.AgendaID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					l.ID, formatMilli(l.CreateAt), l.Type, agenda, l.Content)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&agendaID, "agenda", "a", "", "show logs tagged to this agenda")
	cmd.Flags().StringVar(&fromFlag, "from", "", "window start (inclusive)")
	cmd.Flags().StringVar(&toFlag, "to", "", "window end (inclusive, default now)")

	return cmd
}
