package commands

import (
	"fmt"
	"io"
	"time"

	"planchart/internal/weeks"

	"github.com/spf13/cobra"
)

func newNextWeekCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "next-week",
		Short: "Print the first day of the next reporting week",
		Long: `Prints the Monday after the current week in the configured timezone
(PLANCHART_TIMEZONE), together with the instant that day starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			instant := time.Now()
			if at != "" {
				var err error
				if instant, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
			}
			printNextWeek(cmd.OutOrStdout(), instant, cfg.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "reference instant (RFC 3339) instead of now")
	return cmd
}

func printNextWeek(w io.Writer, instant time.Time, loc *time.Location) {
	next := weeks.FirstDayOfNextWeek(instant, loc)
	fmt.Fprintf(w, "%s\tweek %d\t%s\n",
		next.Format(time.DateOnly),
		weeks.WeekNumber(next),
		weeks.Midnight(next, loc).Format(time.RFC3339))
}
