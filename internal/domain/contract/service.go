package contract

import (
	"context"

	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

// AssignmentResolver computes the on-call contact for a day
type AssignmentResolver interface {
	// Resolve returns the assignment for day, or for today when day is nil.
	// It never fails; faults degrade to the default contact.
	Resolve(day *int) entity.Assignment
	Today() entity.Assignment
	Week() []entity.Assignment
}

// CallRouter decides what happens to an inbound call
type CallRouter interface {
	Route(ctx context.Context) entity.RouteDecision
}

// BatchCaller dials every contact in the directory
type BatchCaller interface {
	CallAll(ctx context.Context) entity.BatchReport
}
