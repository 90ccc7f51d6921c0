package contract

import (
	"context"

	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Roster() RosterRepo
}

// RosterRepo defines the contract for the persisted roster
type RosterRepo interface {
	UpsertContact(contact entity.Contact, position int) error
	ListContacts() ([]entity.Contact, error)
	CountContacts() (int, error)
	// DeleteContactsExcept removes every contact whose identifier is not in keep.
	DeleteContactsExcept(keep []string) error
	SetDefaultContact(contactID string) error
	GetDefaultContact() (string, error)
	AssignDay(day int, contactID string) error
	ClearDay(day int) error
	GetSchedule() (entity.Schedule, error)
}
