package service

import (
	"testing"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockVoiceClient *mocks.MockVoiceClient
	mockSlackClient *mocks.MockSlackClient
	mockClock       *mocks.MockClock
	mockResolver    *mocks.MockAssignmentResolver
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockVoiceClient: mocks.NewMockVoiceClient(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
		mockClock:       mocks.NewMockClock(ctrl),
		mockResolver:    mocks.NewMockAssignmentResolver(ctrl),
	}

	return
}

// Monday, 1 January 2024
var monday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func onDay(day int) time.Time {
	return monday.AddDate(0, 0, day)
}

// scenarioRoster: A works Monday, B (no phone) works Tuesday, nobody else is scheduled.
func scenarioRoster(defaultPhone string) *entity.Roster {
	return entity.NewRoster(
		entity.NewDirectory(
			entity.Contact{ID: "A", Phone: "+1111"},
			entity.Contact{ID: "B"},
			entity.Contact{ID: domain.DefaultContactID, Phone: defaultPhone},
		),
		entity.Schedule{domain.Monday: "A", domain.Tuesday: "B"},
		domain.DefaultContactID,
	)
}
