package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GameMetrics counts engine-level outcomes. It satisfies the service
// layer's metrics interface and registers on the default Prometheus
// registry, which the router exposes at /metrics.
type GameMetrics struct {
	ageUps        *prometheus.CounterVec
	careerActions *prometheus.CounterVec
}

// NewGameMetrics registers the game counters.
func NewGameMetrics() *GameMetrics {
	return &GameMetrics{
		ageUps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifesim_age_ups_total",
			Help: "Number of age-up operations, partitioned by whether a life event fired.",
		}, []string{"event_fired"}),
		careerActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifesim_career_actions_total",
			Help: "Number of career actions processed, partitioned by action.",
		}, []string{"action"}),
	}
}

// AgeUp records one age-up operation.
func (m *GameMetrics) AgeUp(eventFired bool) {
	label := "no"
	if eventFired {
		label = "yes"
	}
	m.ageUps.WithLabelValues(label).Inc()
}

// CareerAction records one successful career action.
func (m *GameMetrics) CareerAction(action string) {
	m.careerActions.WithLabelValues(action).Inc()
}
