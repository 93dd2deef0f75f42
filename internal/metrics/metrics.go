package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Commands counts handled chat commands by kind.
	Commands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timebot_commands_total",
		Help: "Number of chat commands handled, by command kind.",
	}, []string{"command"})

	// LookupFailures counts upstream lookups that returned a non-success
	// status or failed outright.
	LookupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timebot_lookup_failures_total",
		Help: "Number of failed upstream lookups, by upstream service.",
	}, []string{"upstream"})
)
