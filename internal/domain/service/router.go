package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diegoclair/oncall-router/internal/domain"
	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
	"github.com/diegoclair/oncall-router/internal/metrics"
)

type callRouter struct {
	resolver contract.AssignmentResolver
}

func newCallRouter(resolver contract.AssignmentResolver) *callRouter {
	return &callRouter{resolver: resolver}
}

// Route decides how to answer an inbound call: forward it to today's contact,
// or play the error message when no phone number is available.
func (r *callRouter) Route(ctx context.Context) (decision entity.RouteDecision) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "error processing incoming call", "panic", rec)
			decision = entity.SpokenError(entity.Assignment{}, domain.ErrorMessage, fmt.Sprintf("internal fault: %v", rec))
			metrics.InboundCalls.WithLabelValues(decision.Kind.String()).Inc()
		}
	}()

	slog.InfoContext(ctx, "processing incoming call, fetching assigned contact for today")
	assignment := r.resolver.Today()

	if !assignment.HasPhone() {
		reason := fmt.Sprintf("no valid phone number found for %s on %s", assignment.ContactID, assignment.Weekday)
		slog.ErrorContext(ctx, "routing failure",
			"reason", reason,
			"contact", assignment.ContactID,
			"weekday", assignment.Weekday,
		)
		decision = entity.SpokenError(assignment, domain.ErrorMessage, reason)
		metrics.InboundCalls.WithLabelValues(decision.Kind.String()).Inc()
		return decision
	}

	slog.InfoContext(ctx, "incoming call forwarded",
		"weekday", assignment.Weekday,
		"contact", assignment.ContactID,
		"number", assignment.Phone,
		"fallback", string(assignment.Fallback),
	)
	decision = entity.ForwardTo(assignment)
	metrics.InboundCalls.WithLabelValues(decision.Kind.String()).Inc()
	return decision
}
