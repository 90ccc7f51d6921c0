package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWeekCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show who is on call for each day of the week",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.Roster(cmd.Context())
			if err != nil {
				return err
			}

			resolver := a.Resolver(r)
			today := resolver.Today()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tCONTACT\tPHONE\tNOTE")
			for _, as := range resolver.Week() {
				marker := ""
				if as.Day == today.Day {
					marker = "*"
				}

				phone := as.Phone
				if phone == "" {
					phone = "-"
				}

				note := ""
				if as.IsFallback() {
					note = string(as.Fallback)
					if as.ScheduledID != "" {
						note += " (" + as.ScheduledID + ")"
					}
				}

				fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n", as.Weekday, marker, as.ContactID, phone, note)
			}
			return tw.Flush()
		},
	}
}
