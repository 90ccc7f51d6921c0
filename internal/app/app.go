// Package app wires configuration, the roster source and the voice provider
// for the binaries under cmd/.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/diegoclair/oncall-router/internal/config"
	"github.com/diegoclair/oncall-router/internal/database"
	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/domain/service"
	"github.com/diegoclair/oncall-router/internal/provider/twilio"
	"github.com/diegoclair/oncall-router/internal/roster"
	"github.com/diegoclair/oncall-router/migrator/sqlite"
)

// Store is an open, migrated roster database.
type Store struct {
	db *database.DB
	contract.DataManager
}

func (s *Store) Close() error {
	return s.db.Close()
}

// OpenStore opens and migrates the SQLite roster store at cfg.DatabasePath.
func OpenStore(cfg *config.Config) (*Store, error) {
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH is not set")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	slog.Debug("running migrations", "path", cfg.DatabasePath)
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, DataManager: database.NewInstance(db)}, nil
}

// SeedRoster reads the roster from ROSTER_FILE or the environment.
func SeedRoster(cfg *config.Config) (*entity.Roster, error) {
	return roster.Load(cfg.RosterFile, os.Getenv)
}

// LoadRoster returns the active roster. With DATABASE_PATH set the roster comes
// from the store, which is seeded from the file or environment on first use.
func LoadRoster(ctx context.Context, cfg *config.Config) (*entity.Roster, error) {
	seed, err := SeedRoster(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	r := seed
	if cfg.DatabasePath != "" {
		store, err := OpenStore(cfg)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		var seeded bool
		r, seeded, err = database.Bootstrap(ctx, store, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster from database: %w", err)
		}
		if seeded {
			slog.Info("seeded roster database", "contacts", r.Directory().Len())
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("roster database %s: %w", cfg.DatabasePath, err)
		}
	}

	for _, id := range r.MissingPhones() {
		slog.Warn("contact has no phone number configured", "contact", id)
	}

	return r, nil
}

// NewVoiceClient builds the Twilio client, or fails with
// domain.ErrMissingCredentials when the account is not configured.
func NewVoiceClient(cfg *config.Config) (contract.VoiceClient, error) {
	if !cfg.HasProviderCredentials() {
		return nil, domain.ErrMissingCredentials
	}
	return twilio.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
}

// ServiceOptions maps configuration onto service.Options.
func ServiceOptions(cfg *config.Config) service.Options {
	return service.Options{
		Location: cfg.Location(),
		Batch: service.BatchOptions{
			From:              cfg.TwilioFromNumber,
			ControlURL:        cfg.CallControlURL,
			StatusCallbackURL: cfg.StatusCallbackURL,
			CallTimeout:       cfg.CallTimeout,
			CallsPerSecond:    cfg.CallsPerSecond,
		},
	}
}
