package eventloop

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics counts delivered events and the transitions they caused.
type metrics struct {
	events      prometheus.Counter
	transitions *prometheus.CounterVec
}

func newMetrics(name string) *metrics {
	labels := prometheus.Labels{"machine": name}
	return &metrics{
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "typestate_events_total",
			Help:        "Total number of events delivered to the state machine",
			ConstLabels: labels,
		}),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "typestate_transitions_total",
				Help:        "Total number of state transitions by source and target state",
				ConstLabels: labels,
			},
			[]string{"from", "to"},
		),
	}
}

// register adds the collectors to reg. A nil reg leaves them unregistered.
func (m *metrics) register(reg prometheus.Registerer) error {
	if reg == nil {
		return nil
	}
	if err := reg.Register(m.events); err != nil {
		return fmt.Errorf("%w: %w", ErrMetrics, err)
	}
	if err := reg.Register(m.transitions); err != nil {
		reg.Unregister(m.events)
		return fmt.Errorf("%w: %w", ErrMetrics, err)
	}
	return nil
}

func (m *metrics) observe(from, to string, transitioned bool) {
	m.events.Inc()
	if transitioned {
		m.transitions.WithLabelValues(from, to).Inc()
	}
}
