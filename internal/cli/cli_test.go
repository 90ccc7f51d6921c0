package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/diegoclair/oncall-router/internal/config"
	"github.com/diegoclair/oncall-router/internal/database"
	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testRoster() *entity.Roster {
	return entity.NewRoster(
		entity.NewDirectory(
			entity.Contact{ID: "JOHNNY_R", Phone: "+15550001"},
			entity.Contact{ID: "EDWARD", Phone: "+15550002"},
			entity.Contact{ID: "CHRIS"},
			entity.Contact{ID: domain.DefaultContactID, Phone: "+15550009"},
		),
		entity.Schedule{domain.Monday: "JOHNNY_R", domain.Tuesday: "EDWARD", domain.Wednesday: "CHRIS"},
		domain.DefaultContactID,
	)
}

func credentialedConfig() *config.Config {
	return &config.Config{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+15550000",
	}
}

func newTestApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Roster: func(ctx context.Context) (*entity.Roster, error) { return testRoster(), nil },
		Seed:   func() (*entity.Roster, error) { return testRoster(), nil },
	}
}

func withStore(t *testing.T, a *App) contract.DataManager {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	a.Store = func() (contract.DataManager, io.Closer, error) {
		return dm, closerFunc(func() error { return nil }), nil
	}
	return dm
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCallAllCmd(t *testing.T) {
	t.Run("Should fail without provider credentials", func(t *testing.T) {
		a := newTestApp(&config.Config{})
		a.Caller = func(r *entity.Roster) (contract.BatchCaller, error) {
			t.Fatal("caller must not be built without credentials")
			return nil, nil
		}

		_, err := execute(t, a, "call-all")
		assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	})

	t.Run("Should print the batch report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		caller := mocks.NewMockBatchCaller(ctrl)

		caller.EXPECT().CallAll(gomock.Any()).Return(entity.BatchReport{
			BatchID: "batch-1",
			Placed: []entity.PlacedCall{
				{ContactID: "JOHNNY_R", To: "+15550001", CallSid: "CA1"},
			},
			Failed: []entity.FailedCall{
				{ContactID: "EDWARD", To: "+15550002", Err: errors.New("invalid number")},
			},
			Skipped: []string{"CHRIS"},
		}).Times(1)

		a := newTestApp(credentialedConfig())
		a.Caller = func(r *entity.Roster) (contract.BatchCaller, error) { return caller, nil }

		out, err := execute(t, a, "call-all")
		require.NoError(t, err)

		assert.Contains(t, out, "Batch batch-1: 1 placed, 1 failed, 1 skipped, 0 not attempted")
		assert.Contains(t, out, "placed   JOHNNY_R +15550001 (CA1)")
		assert.Contains(t, out, "failed   EDWARD +15550002: invalid number")
		assert.Contains(t, out, "skipped  CHRIS")
	})

	t.Run("Should surface roster errors", func(t *testing.T) {
		a := newTestApp(credentialedConfig())
		a.Roster = func(ctx context.Context) (*entity.Roster, error) { return nil, domain.ErrInvalidRoster }

		_, err := execute(t, a, "call-all")
		assert.ErrorIs(t, err, domain.ErrInvalidRoster)
	})
}

func TestWeekCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockAssignmentResolver(ctrl)

	resolver.EXPECT().Today().Return(entity.Assignment{Day: domain.Tuesday}).Times(1)
	resolver.EXPECT().Week().Return([]entity.Assignment{
		{ContactID: "JOHNNY_R", Phone: "+15550001", Weekday: "Monday", Day: domain.Monday, ScheduledID: "JOHNNY_R"},
		{ContactID: "EDWARD", Phone: "+15550002", Weekday: "Tuesday", Day: domain.Tuesday, ScheduledID: "EDWARD"},
		{ContactID: domain.DefaultContactID, Phone: "+15550009", Weekday: "Wednesday", Day: domain.Wednesday, ScheduledID: "CHRIS", Fallback: entity.FallbackNoPhone},
	}).Times(1)

	a := newTestApp(&config.Config{})
	a.Resolver = func(r *entity.Roster) contract.AssignmentResolver { return resolver }

	out, err := execute(t, a, "week")
	require.NoError(t, err)

	assert.Contains(t, out, "DAY")
	assert.Contains(t, out, "Tuesday*")
	assert.Contains(t, out, "no_phone (CHRIS)")
	assert.Contains(t, out, "+15550009")
}

func TestRosterShowCmd(t *testing.T) {
	a := newTestApp(&config.Config{})

	out, err := execute(t, a, "roster", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, "CHRIS")
	assert.Regexp(t, `Thursday\s+-`, out)
	assert.Regexp(t, `Monday\s+JOHNNY_R`, out)
}

func TestRosterAssignCmd(t *testing.T) {
	a := newTestApp(&config.Config{})
	dm := withStore(t, a)
	require.NoError(t, database.SeedRoster(context.Background(), dm, testRoster()))

	out, err := execute(t, a, "roster", "assign", "thu", "EDWARD")
	require.NoError(t, err)
	assert.Contains(t, out, "EDWARD is now on call on Thursday")

	schedule, err := dm.Roster().GetSchedule()
	require.NoError(t, err)
	assert.Equal(t, "EDWARD", schedule[domain.Thursday])

	_, err = execute(t, a, "roster", "assign", "someday", "EDWARD")
	assert.Error(t, err)

	_, err = execute(t, a, "roster", "assign", "friday", "GHOST")
	assert.ErrorIs(t, err, domain.ErrUnknownContact)
}

func TestRosterClearCmd(t *testing.T) {
	a := newTestApp(&config.Config{})
	dm := withStore(t, a)
	require.NoError(t, database.SeedRoster(context.Background(), dm, testRoster()))

	_, err := execute(t, a, "roster", "clear", "monday")
	require.NoError(t, err)

	schedule, err := dm.Roster().GetSchedule()
	require.NoError(t, err)
	_, ok := schedule[domain.Monday]
	assert.False(t, ok)
}

func TestRosterSeedCmd(t *testing.T) {
	a := newTestApp(&config.Config{})
	dm := withStore(t, a)

	out, err := execute(t, a, "roster", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 4 contacts")

	count, err := dm.Roster().CountContacts()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = execute(t, a, "roster", "seed")
	assert.ErrorContains(t, err, "already has 4 contacts")

	_, err = execute(t, a, "roster", "seed", "--force")
	assert.NoError(t, err)
}
