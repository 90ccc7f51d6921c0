package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/diegoclair/oncall-router/internal/database"
	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/roster"
	"github.com/spf13/cobra"
)

func newRosterCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and edit the on-call roster",
	}

	cmd.AddCommand(
		newRosterShowCmd(a),
		newRosterAssignCmd(a),
		newRosterClearCmd(a),
		newRosterSeedCmd(a),
	)

	return cmd
}

func newRosterShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the contact directory and weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.Roster(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CONTACT\tPHONE")
			for _, c := range r.Directory().Contacts() {
				phone := c.Phone
				if phone == "" {
					phone = "-"
				}
				if c.ID == r.DefaultContact() {
					phone += "\t(default)"
				}
				fmt.Fprintf(tw, "%s\t%s\n", c.ID, phone)
			}
			fmt.Fprintln(tw)

			fmt.Fprintln(tw, "DAY\tSCHEDULED")
			for day := domain.Monday; day <= domain.Sunday; day++ {
				id, ok := r.ScheduledFor(day)
				if !ok {
					id = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\n", domain.WeekdayNames[day], id)
			}
			return tw.Flush()
		},
	}
}

func newRosterAssignCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <day> <contact>",
		Short: "Assign a contact to a day in the roster database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := roster.ParseDay(args[0])
			if err != nil {
				return err
			}

			dm, closer, err := a.Store()
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := dm.Roster().AssignDay(day, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now on call on %s\n", args[1], domain.WeekdayNames[day])
			return nil
		},
	}
}

func newRosterClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <day>",
		Short: "Remove the assignment for a day so it falls back to the default contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := roster.ParseDay(args[0])
			if err != nil {
				return err
			}

			dm, closer, err := a.Store()
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := dm.Roster().ClearDay(day); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s now uses the default contact\n", domain.WeekdayNames[day])
			return nil
		},
	}
}

func newRosterSeedCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the file or environment roster into the roster database",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := a.Seed()
			if err != nil {
				return err
			}

			dm, closer, err := a.Store()
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := seedStore(cmd.Context(), dm, seed, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d contacts\n", seed.Directory().Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite a database that already has contacts")
	return cmd
}

func seedStore(ctx context.Context, dm contract.DataManager, seed *entity.Roster, force bool) error {
	count, err := dm.Roster().CountContacts()
	if err != nil {
		return err
	}
	if count > 0 && !force {
		return fmt.Errorf("roster database already has %d contacts, use --force to overwrite", count)
	}

	return database.SeedRoster(ctx, dm, seed)
}
