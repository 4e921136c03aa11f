// Package telemetry exports visibility transitions as Prometheus metrics.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/visibility/pkg/events"
	"github.com/go-drift/visibility/pkg/visibility"
)

// Metrics holds Prometheus collectors for visibility trackers.
//
// Metrics:
//   - visibility_transitions_total{tracker,state} - accepted transitions by new state
//   - visibility_state{tracker,state} - 1 for the current state, 0 otherwise
//   - visibility_last_transition_timestamp_seconds{tracker} - time of the last transition
type Metrics struct {
	TransitionsTotal *prometheus.CounterVec
	State            *prometheus.GaugeVec
	LastTransition   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "visibility_transitions_total",
				Help: "Total number of accepted visibility transitions",
			},
			[]string{"tracker", "state"},
		),
		State: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "visibility_state",
				Help: "Current visibility state (1 for the active state)",
			},
			[]string{"tracker", "state"},
		),
		LastTransition: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "visibility_last_transition_timestamp_seconds",
				Help: "Unix time of the last accepted visibility transition",
			},
			[]string{"tracker"},
		),
	}
}

// Observe records the tracker's current state under name and follows its
// transitions. Cancel the returned subscription to stop.
func (m *Metrics) Observe(name string, t *visibility.Tracker) *events.Subscription {
	var mu sync.Mutex
	current := t.State()
	m.State.WithLabelValues(name, string(current)).Set(1)

	return t.OnUpdate(func(next visibility.State) {
		mu.Lock()
		defer mu.Unlock()

		m.State.WithLabelValues(name, string(current)).Set(0)
		m.State.WithLabelValues(name, string(next)).Set(1)
		current = next

		m.TransitionsTotal.WithLabelValues(name, string(next)).Inc()
		if ts, ok := t.LastStateChangeTime(); ok {
			m.LastTransition.WithLabelValues(name).Set(float64(ts.UnixNano()) / 1e9)
		}
	})
}
