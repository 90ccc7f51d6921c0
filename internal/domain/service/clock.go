package service

import (
	"time"

	"github.com/diegoclair/oncall-router/internal/domain/contract"
)

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a clock backed by the wall clock.
func SystemClock() contract.Clock {
	return systemClock{}
}
