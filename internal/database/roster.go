package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

// LoadRoster reads the persisted roster into an immutable value.
func LoadRoster(dm contract.DataManager) (*entity.Roster, error) {
	contacts, err := dm.Roster().ListContacts()
	if err != nil {
		return nil, err
	}

	schedule, err := dm.Roster().GetSchedule()
	if err != nil {
		return nil, err
	}

	defaultID, err := dm.Roster().GetDefaultContact()
	if err != nil {
		return nil, err
	}
	if defaultID == "" {
		defaultID = domain.DefaultContactID
	}

	return entity.NewRoster(entity.NewDirectory(contacts...), schedule, defaultID), nil
}

// SeedRoster replaces the persisted roster with r in a single transaction.
// Contacts missing from r are deleted along with their schedule entries.
func SeedRoster(ctx context.Context, dm contract.DataManager, r *entity.Roster) error {
	return dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		contacts := r.Directory().Contacts()

		keep := make([]string, 0, len(contacts))
		for _, c := range contacts {
			keep = append(keep, c.ID)
		}
		if err := tx.Roster().DeleteContactsExcept(keep); err != nil {
			return err
		}

		for i, c := range contacts {
			if err := tx.Roster().UpsertContact(c, i); err != nil {
				return err
			}
		}

		if err := tx.Roster().SetDefaultContact(r.DefaultContact()); err != nil {
			return err
		}

		schedule := r.Schedule()
		for day := domain.Monday; day <= domain.Sunday; day++ {
			id, ok := schedule[day]
			if !ok {
				if err := tx.Roster().ClearDay(day); err != nil {
					return err
				}
				continue
			}
			if err := tx.Roster().AssignDay(day, id); err != nil {
				return fmt.Errorf("failed to seed %s: %w", domain.WeekdayNames[day], err)
			}
		}

		return nil
	})
}

// Bootstrap loads the persisted roster, seeding it from seed first when the
// store has no contacts. It reports whether seeding happened.
func Bootstrap(ctx context.Context, dm contract.DataManager, seed *entity.Roster) (*entity.Roster, bool, error) {
	count, err := dm.Roster().CountContacts()
	if err != nil {
		return nil, false, err
	}

	seeded := false
	if count == 0 {
		if err := SeedRoster(ctx, dm, seed); err != nil {
			return nil, false, fmt.Errorf("failed to seed roster: %w", err)
		}
		seeded = true
	}

	r, err := LoadRoster(dm)
	if err != nil {
		return nil, seeded, err
	}
	return r, seeded, nil
}
