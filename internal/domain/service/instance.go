package service

import (
	"time"

	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/domain/entity"
)

// Options configures the services built by NewInstance.
type Options struct {
	Clock    contract.Clock
	Location *time.Location
	Batch    BatchOptions
}

type Instance struct {
	Resolver *resolver
	Router   *callRouter
	Batch    *batchCaller
	clock    contract.Clock
	loc      *time.Location
}

func NewInstance(roster *entity.Roster, voiceClient contract.VoiceClient, opts Options) *Instance {
	resolver := newResolver(roster, opts.Clock, opts.Location)

	return &Instance{
		Resolver: resolver,
		Router:   newCallRouter(resolver),
		Batch:    newBatchCaller(roster, voiceClient, opts.Batch),
		clock:    resolver.clock,
		loc:      resolver.loc,
	}
}

// NewAnnouncer builds the daily Slack announcer for channelID at the HH:MM time at.
func (i *Instance) NewAnnouncer(slackClient contract.SlackClient, channelID, at string) (*announcer, error) {
	return newAnnouncer(i.Resolver, slackClient, i.clock, i.loc, channelID, at)
}
