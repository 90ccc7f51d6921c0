package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/oncall-router/internal/domain"
)

// Contact is a directory entry. Phone may be empty, which is a degraded but
// valid state.
type Contact struct {
	ID    string `json:"id" yaml:"id"`
	Phone string `json:"phone" yaml:"phone"`
}

// Directory maps contact identifiers to phone numbers, preserving insertion order.
type Directory struct {
	contacts []Contact
	index    map[string]int
}

// NewDirectory builds a directory from contacts. A repeated identifier keeps
// its first position and takes the last phone number given.
func NewDirectory(contacts ...Contact) Directory {
	d := Directory{index: make(map[string]int, len(contacts))}
	for _, c := range contacts {
		if i, ok := d.index[c.ID]; ok {
			d.contacts[i].Phone = c.Phone
			continue
		}
		d.index[c.ID] = len(d.contacts)
		d.contacts = append(d.contacts, c)
	}
	return d
}

// Lookup returns the phone number for id and whether id is in the directory.
func (d Directory) Lookup(id string) (string, bool) {
	i, ok := d.index[id]
	if !ok {
		return "", false
	}
	return d.contacts[i].Phone, true
}

func (d Directory) Has(id string) bool {
	_, ok := d.index[id]
	return ok
}

// Contacts returns a copy of the entries in insertion order.
func (d Directory) Contacts() []Contact {
	out := make([]Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

func (d Directory) Len() int {
	return len(d.contacts)
}

// Schedule maps day indices (0 = Monday) to contact identifiers.
type Schedule map[int]string

// Get returns the identifier scheduled for day.
func (s Schedule) Get(day int) (string, bool) {
	id, ok := s[day]
	return id, ok
}

// Days returns the scheduled day indices in ascending order.
func (s Schedule) Days() []int {
	days := make([]int, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Roster is the read-only routing configuration: directory, weekly schedule
// and the default contact. It is built once and shared by every consumer.
type Roster struct {
	directory      Directory
	schedule       Schedule
	defaultContact string
}

func NewRoster(directory Directory, schedule Schedule, defaultContact string) *Roster {
	sched := make(Schedule, len(schedule))
	for day, id := range schedule {
		sched[day] = id
	}
	return &Roster{
		directory:      directory,
		schedule:       sched,
		defaultContact: defaultContact,
	}
}

func (r *Roster) Directory() Directory {
	return r.directory
}

// Schedule returns a copy of the weekly schedule.
func (r *Roster) Schedule() Schedule {
	out := make(Schedule, len(r.schedule))
	for day, id := range r.schedule {
		out[day] = id
	}
	return out
}

func (r *Roster) ScheduledFor(day int) (string, bool) {
	return r.schedule.Get(day)
}

func (r *Roster) DefaultContact() string {
	return r.defaultContact
}

// DefaultPhone returns the directory entry of the default contact.
func (r *Roster) DefaultPhone() string {
	phone, _ := r.directory.Lookup(r.defaultContact)
	return phone
}

// Validate checks the structural invariants the resolver relies on. Contacts
// without a phone number are not an error; see MissingPhones.
func (r *Roster) Validate() error {
	var problems []string

	if r.defaultContact == "" {
		problems = append(problems, "default contact is not set")
	} else if !r.directory.Has(r.defaultContact) {
		problems = append(problems, fmt.Sprintf("default contact %s is not in the directory", r.defaultContact))
	}

	for _, day := range r.schedule.Days() {
		id := r.schedule[day]
		if !domain.IsValidDay(day) {
			problems = append(problems, fmt.Sprintf("day index %d is outside 0-6", day))
			continue
		}
		if !r.directory.Has(id) {
			problems = append(problems, fmt.Sprintf("%s is scheduled on %s but is not in the directory", id, domain.WeekdayNames[day]))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRoster, strings.Join(problems, "; "))
	}
	return nil
}

// MissingPhones lists directory identifiers that have no phone number.
func (r *Roster) MissingPhones() []string {
	var ids []string
	for _, c := range r.directory.contacts {
		if c.Phone == "" {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
