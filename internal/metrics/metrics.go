// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "powercycle"

var (
	// Registry is a dedicated Prometheus registry for all harness metrics.
	Registry = prometheus.NewRegistry()

	// FramesSent counts cyclic and transition frames by power state.
	FramesSent = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_sent_total",
			Help:      "Total number of power-state frames transmitted",
		},
		[]string{"state"}, // awake | asleep
	)

	// Transitions counts cascade transitions by resulting state.
	Transitions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Total number of simulated power transitions",
		},
		[]string{"to"},
	)

	// CheckLaunches counts mount-check invocations.
	CheckLaunches = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_launches_total",
			Help:      "Total number of mount-check launches on wake transitions",
		},
	)

	// BusErrors counts failed frame transmissions.
	BusErrors = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bus_errors_total",
			Help:      "Total number of failed bus transmissions",
		},
	)
)

// Handler returns an HTTP handler serving the harness registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
