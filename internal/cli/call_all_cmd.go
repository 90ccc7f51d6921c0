package cli

import (
	"fmt"
	"io"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newCallAllCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "call-all",
		Short: "Place a test call to every contact in the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.Config.HasProviderCredentials() {
				return fmt.Errorf("%w: set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER", domain.ErrMissingCredentials)
			}

			r, err := a.Roster(cmd.Context())
			if err != nil {
				return err
			}

			caller, err := a.Caller(r)
			if err != nil {
				return err
			}

			report := caller.CallAll(cmd.Context())
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printReport(w io.Writer, report entity.BatchReport) {
	fmt.Fprintf(w, "Batch %s: %d placed, %d failed, %d skipped, %d not attempted\n",
		report.BatchID, len(report.Placed), len(report.Failed), len(report.Skipped), len(report.NotAttempted))

	for _, c := range report.Placed {
		fmt.Fprintf(w, "  placed   %s %s (%s)\n", c.ContactID, c.To, c.CallSid)
	}
	for _, c := range report.Failed {
		fmt.Fprintf(w, "  failed   %s %s: %v\n", c.ContactID, c.To, c.Err)
	}
	for _, id := range report.Skipped {
		fmt.Fprintf(w, "  skipped  %s (no phone number)\n", id)
	}
	for _, id := range report.NotAttempted {
		fmt.Fprintf(w, "  pending  %s (cancelled)\n", id)
	}
}
