package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/metrics"
)

type resolver struct {
	roster *entity.Roster
	clock  contract.Clock
	loc    *time.Location
}

func newResolver(roster *entity.Roster, clock contract.Clock, loc *time.Location) *resolver {
	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &resolver{
		roster: roster,
		clock:  clock,
		loc:    loc,
	}
}

// Resolve returns the on-call assignment for day, or for today when day is nil.
//
// The weekday name matches the requested day when it is a valid index (0-6);
// otherwise it is the current weekday in the resolver's timezone.
func (r *resolver) Resolve(day *int) (assignment entity.Assignment) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("error getting assigned contact, using default contact", "panic", rec)
			assignment = r.lastResort()
			metrics.Resolutions.WithLabelValues(string(assignment.Fallback)).Inc()
		}
	}()

	now := r.clock.Now().In(r.loc)
	index := domain.DayIndex(int(now.Weekday()))
	weekday := now.Weekday().String()

	if day == nil {
		slog.Debug("fetching current day of week for assignment", "day", index, "weekday", weekday)
	} else {
		index = *day
		if domain.IsValidDay(index) {
			weekday = domain.WeekdayNames[index]
		}
		slog.Debug("using explicit day index for assignment", "day", index)
	}

	assignment = r.assign(index)
	assignment.Weekday = weekday

	outcome := "scheduled"
	if assignment.IsFallback() {
		outcome = string(assignment.Fallback)
		slog.Info("assignment fell back to default contact",
			"day", index,
			"scheduled", assignment.ScheduledID,
			"reason", assignment.Fallback,
		)
	}
	metrics.Resolutions.WithLabelValues(outcome).Inc()

	slog.Info("assigned contact resolved",
		"day", index,
		"weekday", weekday,
		"contact", assignment.ContactID,
		"has_phone", assignment.HasPhone(),
	)
	return assignment
}

func (r *resolver) Today() entity.Assignment {
	return r.Resolve(nil)
}

// Week returns the assignments for Monday through Sunday.
func (r *resolver) Week() []entity.Assignment {
	week := make([]entity.Assignment, 0, domain.DaysInWeek)
	for day := domain.Monday; day <= domain.Sunday; day++ {
		week = append(week, r.Resolve(domain.Day(day)))
	}
	return week
}

func (r *resolver) assign(day int) entity.Assignment {
	assignment := entity.Assignment{Day: day}

	id, ok := r.roster.ScheduledFor(day)
	if !ok {
		return r.fallback(assignment, entity.FallbackUnscheduledDay)
	}
	assignment.ScheduledID = id

	phone, found := r.roster.Directory().Lookup(id)
	switch {
	case !found:
		return r.fallback(assignment, entity.FallbackNotInDirectory)
	case phone == "":
		return r.fallback(assignment, entity.FallbackNoPhone)
	}

	assignment.ContactID = id
	assignment.Phone = phone
	return assignment
}

func (r *resolver) fallback(assignment entity.Assignment, reason entity.FallbackReason) entity.Assignment {
	assignment.ContactID = r.roster.DefaultContact()
	assignment.Phone = r.roster.DefaultPhone()
	assignment.Fallback = reason
	return assignment
}

// lastResort must not depend on the clock, which may be what failed.
func (r *resolver) lastResort() entity.Assignment {
	now := time.Now().In(r.loc)
	assignment := entity.Assignment{
		ContactID: domain.DefaultContactID,
		Day:       domain.DayIndex(int(now.Weekday())),
		Weekday:   now.Weekday().String(),
		Fallback:  entity.FallbackInternalFault,
	}
	if r.roster != nil {
		assignment.ContactID = r.roster.DefaultContact()
		assignment.Phone = r.roster.DefaultPhone()
	}
	return assignment
}
