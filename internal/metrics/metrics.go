package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentry_refresh_ticks_total",
			Help: "Number of refresh ticks started.",
		},
	)

	tickFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentry_refresh_failures_total",
			Help: "Number of refresh ticks abandoned because of an error.",
		},
	)

	connectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "netsentry_connections_rendered_total",
			Help: "Number of connection rows rendered across all ticks.",
		},
	)

	resolveFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsentry_process_resolve_failures_total",
			Help: "Number of connections skipped because the owning process could not be resolved, labelled by reason.",
		},
		[]string{"reason"},
	)

	lastSnapshotRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "netsentry_last_snapshot_rows",
			Help: "Rows rendered by the most recent completed tick.",
		},
	)
)

func Register(reg *prometheus.Registry) {
	reg.MustRegister(ticksTotal, tickFailuresTotal, connectionsTotal, resolveFailuresTotal, lastSnapshotRows)
}

func IncTick() {
	ticksTotal.Inc()
}

func IncTickFailure() {
	tickFailuresTotal.Inc()
}

func IncConnection() {
	connectionsTotal.Inc()
}

func IncResolveFailure(reason string) {
	resolveFailuresTotal.WithLabelValues(reason).Inc()
}

func SetSnapshotRows(n int) {
	lastSnapshotRows.Set(float64(n))
}
