package service

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/metrics"
	"github.com/slack-go/slack"
)

// announcer posts today's on-call contact to a Slack channel once a day.
type announcer struct {
	resolver    contract.AssignmentResolver
	slackClient contract.SlackClient
	clock       contract.Clock
	loc         *time.Location
	channelID   string
	hour        int
	minute      int

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func newAnnouncer(resolver contract.AssignmentResolver, slackClient contract.SlackClient, clock contract.Clock, loc *time.Location, channelID, at string) (*announcer, error) {
	if channelID == "" {
		return nil, fmt.Errorf("slack channel id is required")
	}

	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("invalid announce time %q, use HH:MM: %w", at, err)
	}

	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &announcer{
		resolver:    resolver,
		slackClient: slackClient,
		clock:       clock,
		loc:         loc,
		channelID:   channelID,
		hour:        t.Hour(),
		minute:      t.Minute(),
	}, nil
}

func (a *announcer) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return
	}
	a.running = true
	a.stopChan = make(chan struct{})
	slog.Info("announcer starting", "channel", a.channelID, "at", fmt.Sprintf("%02d:%02d", a.hour, a.minute), "timezone", a.loc.String())
	go a.mainLoop(a.stopChan)
}

func (a *announcer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	slog.Info("announcer stopping")
	close(a.stopChan)
	a.running = false
}

func (a *announcer) mainLoop(stop <-chan struct{}) {
	for {
		next := a.nextAnnouncement(a.clock.Now())
		slog.Info("next on-call announcement scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			if err := a.Announce(); err != nil {
				slog.Error("failed to announce on-call contact", "error", err)
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextAnnouncement returns the first announcement time strictly after now.
func (a *announcer) nextAnnouncement(now time.Time) time.Time {
	local := now.In(a.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), a.hour, a.minute, 0, 0, a.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Announce posts today's assignment to the configured channel.
func (a *announcer) Announce() error {
	assignment := a.resolver.Today()

	_, _, err := a.slackClient.PostMessage(
		a.channelID,
		slack.MsgOptionText(announcementText(assignment), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		metrics.Announcements.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	metrics.Announcements.WithLabelValues("sent").Inc()
	slog.Info("on-call announcement sent", "channel", a.channelID, "contact", assignment.ContactID)
	return nil
}

func announcementText(assignment entity.Assignment) string {
	if !assignment.HasPhone() {
		return fmt.Sprintf("⚠️ *On-call today (%s)*\n\nNo phone number is configured for %s. Inbound calls will hear an error message.",
			assignment.Weekday, assignment.ContactID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📞 *On-call today (%s)*: %s (%s)", assignment.Weekday, assignment.ContactID, maskPhone(assignment.Phone))
	if assignment.IsFallback() {
		scheduled := assignment.ScheduledID
		if scheduled == "" {
			scheduled = "nobody"
		}
		fmt.Fprintf(&b, "\n\n_Default contact in use (%s, scheduled: %s)_", assignment.Fallback, scheduled)
	}
	return b.String()
}

// maskPhone keeps only the last four characters of a phone number.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
