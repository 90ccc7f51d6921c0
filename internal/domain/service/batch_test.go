package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBatchOptions = BatchOptions{
	From:              "+15550000",
	ControlURL:        "https://example.com/voice.xml",
	StatusCallbackURL: "https://example.com/call-status",
}

func rosterOf(contacts ...entity.Contact) *entity.Roster {
	return entity.NewRoster(entity.NewDirectory(contacts...), entity.Schedule{}, domain.DefaultContactID)
}

func Test_batchCaller_CallAll_SkipsContactsWithoutPhone(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockVoiceClient.EXPECT().
		PlaceCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, call entity.OutboundCall) (string, error) {
			assert.Equal(t, "A", call.ContactID)
			assert.Equal(t, "+1111", call.To)
			assert.Equal(t, "+15550000", call.From)
			assert.Equal(t, "https://example.com/voice.xml", call.ControlURL)
			assert.Equal(t, "https://example.com/call-status", call.StatusCallbackURL)
			assert.Equal(t, http.MethodPost, call.StatusCallbackMethod)
			assert.Equal(t, []string{"initiated", "ringing", "answered", "completed"}, call.StatusEvents)
			return "CA123", nil
		}).Times(1)

	b := newBatchCaller(rosterOf(entity.Contact{ID: "A", Phone: "+1111"}, entity.Contact{ID: "B"}), m.mockVoiceClient, testBatchOptions)
	report := b.CallAll(context.Background())

	require.Len(t, report.Placed, 1)
	assert.Equal(t, entity.PlacedCall{ContactID: "A", To: "+1111", CallSid: "CA123"}, report.Placed[0])
	assert.Equal(t, []string{"B"}, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.NotEmpty(t, report.BatchID)
}

func Test_batchCaller_CallAll_ContinuesAfterProviderFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	providerErr := errors.New("21211: invalid 'To' phone number")

	gomock.InOrder(
		m.mockVoiceClient.EXPECT().
			PlaceCall(gomock.Any(), gomock.Cond(func(x any) bool { return x.(entity.OutboundCall).ContactID == "A" })).
			Return("", providerErr).Times(1),
		m.mockVoiceClient.EXPECT().
			PlaceCall(gomock.Any(), gomock.Cond(func(x any) bool { return x.(entity.OutboundCall).ContactID == "C" })).
			Return("CA456", nil).Times(1),
	)

	b := newBatchCaller(rosterOf(
		entity.Contact{ID: "A", Phone: "+1111"},
		entity.Contact{ID: "B"},
		entity.Contact{ID: "C", Phone: "+3333"},
	), m.mockVoiceClient, testBatchOptions)
	report := b.CallAll(context.Background())

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "A", report.Failed[0].ContactID)
	assert.ErrorIs(t, report.Failed[0].Err, providerErr)
	require.Len(t, report.Placed, 1)
	assert.Equal(t, "CA456", report.Placed[0].CallSid)
	assert.Equal(t, []string{"B"}, report.Skipped)
	assert.Equal(t, 2, report.Attempted())
}

func Test_batchCaller_CallAll_RecoversFromClientPanic(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockVoiceClient.EXPECT().
		PlaceCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, entity.OutboundCall) (string, error) {
			panic("nil response")
		}).Times(1)

	b := newBatchCaller(rosterOf(entity.Contact{ID: "A", Phone: "+1111"}), m.mockVoiceClient, testBatchOptions)
	report := b.CallAll(context.Background())

	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0].Err.Error(), "nil response")
}

func Test_batchCaller_CallAll_BoundsEachCall(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockVoiceClient.EXPECT().
		PlaceCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ entity.OutboundCall) (string, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
			return "CA1", nil
		}).Times(1)

	opts := testBatchOptions
	opts.CallTimeout = 5 * time.Second

	b := newBatchCaller(rosterOf(entity.Contact{ID: "A", Phone: "+1111"}), m.mockVoiceClient, opts)
	report := b.CallAll(context.Background())

	assert.Len(t, report.Placed, 1)
}

func Test_batchCaller_CallAll_StopsWhenCancelled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	m.mockVoiceClient.EXPECT().
		PlaceCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, entity.OutboundCall) (string, error) {
			cancel()
			return "CA1", nil
		}).Times(1)

	b := newBatchCaller(rosterOf(
		entity.Contact{ID: "A", Phone: "+1111"},
		entity.Contact{ID: "B", Phone: "+2222"},
		entity.Contact{ID: "C", Phone: "+3333"},
	), m.mockVoiceClient, testBatchOptions)
	report := b.CallAll(ctx)

	assert.Len(t, report.Placed, 1)
	assert.Equal(t, []string{"B", "C"}, report.NotAttempted)
}

func Test_newBatchCaller_DefaultsControlURL(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	b := newBatchCaller(rosterOf(), m.mockVoiceClient, BatchOptions{})

	assert.Equal(t, domain.DefaultCallControlURL, b.opts.ControlURL)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func Test_newBatchCaller_WarnsWithoutStatusCallback(t *testing.T) {
	tests := []struct {
		name      string
		withVoice bool
		callback  string
		wantWarn  bool
	}{
		{name: "Should warn when calls cannot report progress", withVoice: true, callback: "", wantWarn: true},
		{name: "Should stay quiet with a status callback", withVoice: true, callback: "https://example.com/call-status", wantWarn: false},
		{name: "Should stay quiet without a voice client", withVoice: false, callback: "", wantWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			logs := captureLogs(t)

			opts := testBatchOptions
			opts.StatusCallbackURL = tt.callback

			if tt.withVoice {
				newBatchCaller(rosterOf(), m.mockVoiceClient, opts)
			} else {
				newBatchCaller(rosterOf(), nil, opts)
			}

			if tt.wantWarn {
				assert.Contains(t, logs.String(), "no status callback URL configured")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
