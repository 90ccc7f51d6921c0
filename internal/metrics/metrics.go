// Package metrics exposes Prometheus counters for call routing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the router
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Resolutions counts assignment resolutions by outcome ("scheduled" or the fallback reason).
var Resolutions = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oncall",
	Name:      "resolutions_total",
	Help:      "Assignment resolutions by outcome",
}, []string{"outcome"})

// InboundCalls counts inbound call decisions by kind (forward, spoken_error).
var InboundCalls = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oncall",
	Name:      "inbound_calls_total",
	Help:      "Inbound call routing decisions by kind",
}, []string{"decision"})

// CallStatusEvents counts provider status callbacks by status.
var CallStatusEvents = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oncall",
	Name:      "call_status_events_total",
	Help:      "Call status callbacks received by status",
}, []string{"status"})

// OutboundCalls counts batch caller outcomes (placed, failed, skipped).
var OutboundCalls = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oncall",
	Name:      "outbound_calls_total",
	Help:      "Outbound test calls by result",
}, []string{"result"})

// Announcements counts Slack announcement attempts by result (sent, failed).
var Announcements = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oncall",
	Name:      "announcements_total",
	Help:      "Slack on-call announcements by result",
}, []string{"result"})

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
