package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncFailuresTotal counts failed polls and failed replace-all writes.
	SyncFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crewboard_sync_failures_total",
		Help: "Number of failed entity store fetches and replaces.",
	})

	// ActionsTotal counts ledger actions submitted through sessions.
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crewboard_actions_total",
		Help: "Number of ledger actions by type.",
	}, []string{"action"})

	// ActiveSessions tracks live sessions in this process.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "crewboard_active_sessions",
		Help: "Number of live sessions.",
	})
)
