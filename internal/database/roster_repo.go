package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

const settingDefaultContact = "default_contact"

type rosterRepository struct {
	db dbConn
}

func newRosterRepo(db dbConn) contract.RosterRepo {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) UpsertContact(contact entity.Contact, position int) error {
	query := `
		INSERT INTO contacts (contact_key, phone_number, position)
		VALUES (?, ?, ?)
		ON CONFLICT(contact_key) DO UPDATE SET
			phone_number = excluded.phone_number,
			position = excluded.position,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, contact.ID, contact.Phone, position)
	if err != nil {
		return fmt.Errorf("failed to upsert contact %s: %w", contact.ID, err)
	}

	return nil
}

func (r *rosterRepository) ListContacts() ([]entity.Contact, error) {
	query := `
		SELECT contact_key, phone_number
		FROM contacts
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

func (r *rosterRepository) CountContacts() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

func (r *rosterRepository) DeleteContactsExcept(keep []string) error {
	query := `DELETE FROM contacts`
	args := make([]any, 0, len(keep))
	if len(keep) > 0 {
		query += ` WHERE contact_key NOT IN (?` + strings.Repeat(`, ?`, len(keep)-1) + `)`
		for _, id := range keep {
			args = append(args, id)
		}
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to prune contacts: %w", err)
	}
	return nil
}

func (r *rosterRepository) SetDefaultContact(contactID string) error {
	query := `
		INSERT INTO roster_settings (setting_key, setting_value)
		VALUES (?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, settingDefaultContact, contactID); err != nil {
		return fmt.Errorf("failed to set default contact: %w", err)
	}
	return nil
}

func (r *rosterRepository) GetDefaultContact() (string, error) {
	var contactID string
	err := r.db.QueryRow(`SELECT setting_value FROM roster_settings WHERE setting_key = ?`, settingDefaultContact).Scan(&contactID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get default contact: %w", err)
	}
	return contactID, nil
}

func (r *rosterRepository) AssignDay(day int, contactID string) error {
	if !domain.IsValidDay(day) {
		return fmt.Errorf("%w: day index %d is outside 0-6", domain.ErrInvalidRoster, day)
	}

	var exists int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE contact_key = ?`, contactID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check contact: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUnknownContact, contactID)
	}

	query := `
		INSERT INTO schedule_entries (day_index, contact_key)
		VALUES (?, ?)
		ON CONFLICT(day_index) DO UPDATE SET
			contact_key = excluded.contact_key,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, day, contactID); err != nil {
		return fmt.Errorf("failed to assign day %d: %w", day, err)
	}
	return nil
}

func (r *rosterRepository) ClearDay(day int) error {
	if _, err := r.db.Exec(`DELETE FROM schedule_entries WHERE day_index = ?`, day); err != nil {
		return fmt.Errorf("failed to clear day %d: %w", day, err)
	}
	return nil
}

func (r *rosterRepository) GetSchedule() (entity.Schedule, error) {
	rows, err := r.db.Query(`SELECT day_index, contact_key FROM schedule_entries ORDER BY day_index`)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	defer rows.Close()

	schedule := make(entity.Schedule)
	for rows.Next() {
		var (
			day int
			id  string
		)
		if err := rows.Scan(&day, &id); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		schedule[day] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule: %w", err)
	}

	return schedule, nil
}
