package contract

import (
	"context"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

// VoiceClient is the telephony provider used to place outbound calls
type VoiceClient interface {
	// PlaceCall starts a call and returns the provider call identifier
	PlaceCall(ctx context.Context, call entity.OutboundCall) (string, error)
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}
