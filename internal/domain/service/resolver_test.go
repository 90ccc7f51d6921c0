package service

import (
	"testing"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_resolver_Resolve(t *testing.T) {
	type args struct {
		roster *entity.Roster
		now    time.Time
		day    *int
	}
	tests := []struct {
		name string
		args args
		want entity.Assignment
	}{
		{
			name: "Should return scheduled contact for Monday",
			args: args{roster: scenarioRoster("+9999"), now: monday, day: domain.Day(domain.Monday)},
			want: entity.Assignment{ContactID: "A", Phone: "+1111", Weekday: "Monday", Day: 0, ScheduledID: "A"},
		},
		{
			name: "Should fall back to default when scheduled contact has no phone",
			args: args{roster: scenarioRoster("+9999"), now: monday, day: domain.Day(domain.Tuesday)},
			want: entity.Assignment{
				ContactID:   domain.DefaultContactID,
				Phone:       "+9999",
				Weekday:     "Tuesday",
				Day:         1,
				ScheduledID: "B",
				Fallback:    entity.FallbackNoPhone,
			},
		},
		{
			name: "Should fall back to default when day is not scheduled",
			args: args{roster: scenarioRoster("+9999"), now: monday, day: domain.Day(domain.Wednesday)},
			want: entity.Assignment{
				ContactID: domain.DefaultContactID,
				Phone:     "+9999",
				Weekday:   "Wednesday",
				Day:       2,
				Fallback:  entity.FallbackUnscheduledDay,
			},
		},
		{
			name: "Should return empty phone when default contact has none",
			args: args{roster: scenarioRoster(""), now: monday, day: domain.Day(domain.Tuesday)},
			want: entity.Assignment{
				ContactID:   domain.DefaultContactID,
				Weekday:     "Tuesday",
				Day:         1,
				ScheduledID: "B",
				Fallback:    entity.FallbackNoPhone,
			},
		},
		{
			name: "Should resolve today from the clock when day is omitted",
			args: args{roster: scenarioRoster("+9999"), now: monday, day: nil},
			want: entity.Assignment{ContactID: "A", Phone: "+1111", Weekday: "Monday", Day: 0, ScheduledID: "A"},
		},
		{
			name: "Should map Sunday from the clock to day index 6",
			args: args{roster: scenarioRoster("+9999"), now: onDay(domain.Sunday), day: nil},
			want: entity.Assignment{
				ContactID: domain.DefaultContactID,
				Phone:     "+9999",
				Weekday:   "Sunday",
				Day:       6,
				Fallback:  entity.FallbackUnscheduledDay,
			},
		},
		{
			name: "Should use current weekday name for an out of range day",
			args: args{roster: scenarioRoster("+9999"), now: onDay(domain.Friday), day: domain.Day(9)},
			want: entity.Assignment{
				ContactID: domain.DefaultContactID,
				Phone:     "+9999",
				Weekday:   "Friday",
				Day:       9,
				Fallback:  entity.FallbackUnscheduledDay,
			},
		},
		{
			name: "Should fall back when scheduled contact is not in the directory",
			args: args{
				roster: entity.NewRoster(
					entity.NewDirectory(entity.Contact{ID: domain.DefaultContactID, Phone: "+9999"}),
					entity.Schedule{domain.Thursday: "GHOST"},
					domain.DefaultContactID,
				),
				now: monday,
				day: domain.Day(domain.Thursday),
			},
			want: entity.Assignment{
				ContactID:   domain.DefaultContactID,
				Phone:       "+9999",
				Weekday:     "Thursday",
				Day:         3,
				ScheduledID: "GHOST",
				Fallback:    entity.FallbackNotInDirectory,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockClock.EXPECT().Now().Return(tt.args.now).AnyTimes()

			r := newResolver(tt.args.roster, m.mockClock, time.UTC)
			got := r.Resolve(tt.args.day)

			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_resolver_Resolve_EveryDayReturnsDirectoryKey(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().Return(monday).AnyTimes()

	roster := scenarioRoster("+9999")
	r := newResolver(roster, m.mockClock, time.UTC)

	for day := domain.Monday; day <= domain.Sunday; day++ {
		got := r.Resolve(domain.Day(day))
		assert.True(t, roster.Directory().Has(got.ContactID), "day %d resolved to %q", day, got.ContactID)
		assert.Equal(t, domain.WeekdayNames[day], got.Weekday)
	}
}

func Test_resolver_Resolve_Idempotent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().Return(monday).AnyTimes()

	r := newResolver(scenarioRoster("+9999"), m.mockClock, time.UTC)

	for day := domain.Monday; day <= domain.Sunday; day++ {
		first := r.Resolve(domain.Day(day))
		second := r.Resolve(domain.Day(day))
		assert.Equal(t, first.ContactID, second.ContactID)
		assert.Equal(t, first.Phone, second.Phone)
	}
}

func Test_resolver_Resolve_UsesConfiguredTimezone(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// Monday 23:30 UTC is already Tuesday 08:30 at UTC+9
	m.mockClock.EXPECT().Now().Return(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)).AnyTimes()

	r := newResolver(scenarioRoster("+9999"), m.mockClock, time.FixedZone("UTC+9", 9*60*60))
	got := r.Today()

	assert.Equal(t, domain.Tuesday, got.Day)
	assert.Equal(t, "Tuesday", got.Weekday)
	assert.Equal(t, "B", got.ScheduledID)
}

func Test_resolver_Resolve_RecoversFromClockFault(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		panic("clock unavailable")
	}).Times(1)

	r := newResolver(scenarioRoster("+9999"), m.mockClock, time.UTC)
	got := r.Today()

	assert.Equal(t, domain.DefaultContactID, got.ContactID)
	assert.Equal(t, "+9999", got.Phone)
	assert.Equal(t, entity.FallbackInternalFault, got.Fallback)
	assert.NotEmpty(t, got.Weekday)
}

func Test_resolver_Resolve_NilRoster(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().Return(monday).AnyTimes()

	r := newResolver(nil, m.mockClock, time.UTC)
	got := r.Today()

	assert.Equal(t, domain.DefaultContactID, got.ContactID)
	assert.Empty(t, got.Phone)
	assert.Equal(t, entity.FallbackInternalFault, got.Fallback)
}

func Test_resolver_Week(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().Now().Return(onDay(domain.Thursday)).AnyTimes()

	r := newResolver(scenarioRoster("+9999"), m.mockClock, time.UTC)
	week := r.Week()

	require.Len(t, week, domain.DaysInWeek)
	assert.Equal(t, "A", week[domain.Monday].ContactID)
	assert.Equal(t, domain.DefaultContactID, week[domain.Tuesday].ContactID)
	for day, a := range week {
		assert.Equal(t, day, a.Day)
		assert.Equal(t, domain.WeekdayNames[day], a.Weekday)
	}
}
