package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/metrics"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// BatchOptions configures the outbound test caller.
type BatchOptions struct {
	From              string
	ControlURL        string
	StatusCallbackURL string
	// CallTimeout bounds each provider request; zero means no limit.
	CallTimeout time.Duration
	// CallsPerSecond paces provider requests; zero or less disables pacing.
	CallsPerSecond float64
}

type batchCaller struct {
	roster  *entity.Roster
	voice   contract.VoiceClient
	opts    BatchOptions
	limiter *rate.Limiter
}

func newBatchCaller(roster *entity.Roster, voice contract.VoiceClient, opts BatchOptions) *batchCaller {
	if opts.ControlURL == "" {
		opts.ControlURL = domain.DefaultCallControlURL
	}

	if voice != nil && opts.StatusCallbackURL == "" {
		slog.Warn("no status callback URL configured, outbound calls will not report progress",
			"hint", "set PUBLIC_BASE_URL or STATUS_CALLBACK_URL",
		)
	}

	limit := rate.Inf
	if opts.CallsPerSecond > 0 {
		limit = rate.Limit(opts.CallsPerSecond)
	}

	return &batchCaller{
		roster:  roster,
		voice:   voice,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// CallAll places one call to every directory contact that has a phone number,
// in directory order. A failed call is logged and does not stop the batch.
// Cancelling ctx stops the batch before the next contact.
func (b *batchCaller) CallAll(ctx context.Context) entity.BatchReport {
	report := entity.BatchReport{BatchID: uuid.NewString()}
	logger := slog.With("batch_id", report.BatchID)

	contacts := b.roster.Directory().Contacts()
	logger.Info("starting to call all contacts in directory", "contacts", len(contacts))

	for i, contact := range contacts {
		if err := ctx.Err(); err != nil {
			report.NotAttempted = remainingIDs(contacts[i:])
			logger.Warn("batch interrupted", "error", err, "not_attempted", len(report.NotAttempted))
			break
		}

		if contact.Phone == "" {
			logger.Info("no phone number found, skipping", "contact", contact.ID)
			report.Skipped = append(report.Skipped, contact.ID)
			metrics.OutboundCalls.WithLabelValues("skipped").Inc()
			continue
		}

		if err := b.limiter.Wait(ctx); err != nil {
			report.NotAttempted = remainingIDs(contacts[i:])
			logger.Warn("batch interrupted while pacing calls", "error", err, "not_attempted", len(report.NotAttempted))
			break
		}

		logger.Info("initiating call", "contact", contact.ID, "to", contact.Phone)
		sid, err := b.placeCall(ctx, contact)
		if err != nil {
			logger.Error("failed to initiate call", "contact", contact.ID, "to", contact.Phone, "error", err)
			report.Failed = append(report.Failed, entity.FailedCall{ContactID: contact.ID, To: contact.Phone, Err: err})
			metrics.OutboundCalls.WithLabelValues("failed").Inc()
			continue
		}

		logger.Info("call initiated successfully", "contact", contact.ID, "call_sid", sid)
		report.Placed = append(report.Placed, entity.PlacedCall{ContactID: contact.ID, To: contact.Phone, CallSid: sid})
		metrics.OutboundCalls.WithLabelValues("placed").Inc()
	}

	logger.Info("batch completed",
		"placed", len(report.Placed),
		"failed", len(report.Failed),
		"skipped", len(report.Skipped),
		"not_attempted", len(report.NotAttempted),
	)
	return report
}

func (b *batchCaller) placeCall(ctx context.Context, contact entity.Contact) (sid string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("voice client panic: %v", rec)
		}
	}()

	if b.opts.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.CallTimeout)
		defer cancel()
	}

	events := make([]string, len(domain.StatusCallbackEvents))
	copy(events, domain.StatusCallbackEvents)

	return b.voice.PlaceCall(ctx, entity.OutboundCall{
		ContactID:            contact.ID,
		To:                   contact.Phone,
		From:                 b.opts.From,
		ControlURL:           b.opts.ControlURL,
		StatusCallbackURL:    b.opts.StatusCallbackURL,
		StatusCallbackMethod: http.MethodPost,
		StatusEvents:         events,
	})
}

func remainingIDs(contacts []entity.Contact) []string {
	ids := make([]string, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}
	return ids
}
