// Package cli implements the oncall operator command.
package cli

import (
	"context"
	"io"

	"github.com/diegoclair/oncall-router/internal/app"
	"github.com/diegoclair/oncall-router/internal/config"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/domain/service"
	"github.com/spf13/cobra"
)

// App holds the factories the commands build their dependencies with.
type App struct {
	Config *config.Config

	// Roster returns the active roster (store-backed when configured).
	Roster func(ctx context.Context) (*entity.Roster, error)
	// Seed returns the roster described by ROSTER_FILE or the environment.
	Seed func() (*entity.Roster, error)
	// Store opens the roster database.
	Store func() (contract.DataManager, io.Closer, error)
	// Caller builds the batch caller for r. It fails when the provider is not configured.
	Caller func(r *entity.Roster) (contract.BatchCaller, error)
	// Resolver builds an assignment resolver for r.
	Resolver func(r *entity.Roster) contract.AssignmentResolver
}

// NewApp wires the production dependencies from cfg.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Roster: func(ctx context.Context) (*entity.Roster, error) {
			return app.LoadRoster(ctx, cfg)
		},
		Seed: func() (*entity.Roster, error) {
			return app.SeedRoster(cfg)
		},
		Store: func() (contract.DataManager, io.Closer, error) {
			store, err := app.OpenStore(cfg)
			if err != nil {
				return nil, nil, err
			}
			return store, store, nil
		},
		Caller: func(r *entity.Roster) (contract.BatchCaller, error) {
			voiceClient, err := app.NewVoiceClient(cfg)
			if err != nil {
				return nil, err
			}
			return service.NewInstance(r, voiceClient, app.ServiceOptions(cfg)).Batch, nil
		},
		Resolver: func(r *entity.Roster) contract.AssignmentResolver {
			return service.NewInstance(r, nil, app.ServiceOptions(cfg)).Resolver
		},
	}
}

// NewRootCmd creates the top-level "oncall" command.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "oncall",
		Short:         "On-call roster and test call tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCallAllCmd(a),
		newWeekCmd(a),
		newRosterCmd(a),
	)

	return root
}
