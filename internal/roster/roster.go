// Package roster builds the routing roster from the environment or a YAML file.
package roster

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// Getenv looks up a configuration value; os.Getenv satisfies it.
type Getenv func(key string) string

// Load reads the roster from path when it is set, otherwise from the environment.
// The result is validated.
func Load(path string, getenv Getenv) (*entity.Roster, error) {
	var (
		r   *entity.Roster
		err error
	)
	if path != "" {
		r, err = FromYAML(path, getenv)
	} else {
		r, err = FromEnv(getenv)
	}
	if err != nil {
		return nil, err
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FromEnv builds the roster from ONCALL_CONTACTS and ONCALL_SCHEDULE. Each
// contact's phone number is read from the variable named after it, and the
// default contact's from DEFAULT_CONTACT.
func FromEnv(getenv Getenv) (*entity.Roster, error) {
	contactList := getenv("ONCALL_CONTACTS")
	if contactList == "" {
		contactList = domain.DefaultContacts
	}
	scheduleSpec := getenv("ONCALL_SCHEDULE")
	if scheduleSpec == "" {
		scheduleSpec = domain.DefaultSchedule
	}

	var contacts []entity.Contact
	for _, id := range splitList(contactList) {
		if id == domain.DefaultContactID {
			continue
		}
		contacts = append(contacts, entity.Contact{ID: id, Phone: strings.TrimSpace(getenv(id))})
	}
	contacts = append(contacts, entity.Contact{
		ID:    domain.DefaultContactID,
		Phone: strings.TrimSpace(getenv(domain.DefaultContactID)),
	})

	schedule, err := ParseSchedule(scheduleSpec)
	if err != nil {
		return nil, err
	}

	return entity.NewRoster(entity.NewDirectory(contacts...), schedule, domain.DefaultContactID), nil
}

type fileRoster struct {
	DefaultContact string            `yaml:"default_contact"`
	Contacts       []entity.Contact  `yaml:"contacts"`
	Schedule       map[string]string `yaml:"schedule"`
}

// FromYAML reads a roster file. ${VAR} references are expanded with getenv
// so phone numbers can stay in the environment.
func FromYAML(path string, getenv Getenv) (*entity.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	expanded := os.Expand(string(data), getenv)

	var fr fileRoster
	if err := yaml.Unmarshal([]byte(expanded), &fr); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	defaultID := fr.DefaultContact
	if defaultID == "" {
		defaultID = domain.DefaultContactID
	}

	schedule := make(entity.Schedule, len(fr.Schedule))
	for key, id := range fr.Schedule {
		day, err := ParseDay(key)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule key %q: %v", domain.ErrInvalidRoster, key, err)
		}
		schedule[day] = strings.TrimSpace(id)
	}

	contacts := make([]entity.Contact, 0, len(fr.Contacts))
	for _, c := range fr.Contacts {
		contacts = append(contacts, entity.Contact{ID: strings.TrimSpace(c.ID), Phone: strings.TrimSpace(c.Phone)})
	}

	return entity.NewRoster(entity.NewDirectory(contacts...), schedule, defaultID), nil
}

// ParseSchedule parses "day=ID" pairs separated by commas. Days are indices
// (0 = Monday) or English day names.
func ParseSchedule(spec string) (entity.Schedule, error) {
	schedule := make(entity.Schedule)
	for _, pair := range splitList(spec) {
		key, id, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: schedule entry %q must look like day=CONTACT", domain.ErrInvalidRoster, pair)
		}
		day, err := ParseDay(key)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule entry %q: %v", domain.ErrInvalidRoster, pair, err)
		}
		schedule[day] = strings.TrimSpace(id)
	}
	return schedule, nil
}

// ParseDay accepts a day index 0-6 or a day name such as "monday" or "mon".
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, ok := domain.WeekdayIndexes[s]; ok {
		return day, nil
	}
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown day %q", s)
	}
	if !domain.IsValidDay(day) {
		return 0, fmt.Errorf("day index %d is outside 0-6", day)
	}
	return day, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
