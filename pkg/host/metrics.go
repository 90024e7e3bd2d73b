package host

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the lifecycle callbacks a runtime delivers.
type Metrics struct {
	callbacks *prometheus.CounterVec
	stops     prometheus.Counter
}

// NewMetrics creates the runtime collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		callbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blocks",
			Subsystem: "host",
			Name:      "callbacks_total",
			Help:      "Lifecycle callbacks delivered, by component, event and result.",
		}, []string{"component", "event", "result"}),
		stops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blocks",
			Subsystem: "host",
			Name:      "stop_requests_total",
			Help:      "Stop requests received from services.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.callbacks, m.stops)
	}
	return m
}

func (m *Metrics) observe(component, event string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.callbacks.WithLabelValues(component, event, result).Inc()
}

func (m *Metrics) stopRequested() {
	if m == nil {
		return
	}
	m.stops.Inc()
}

// queueDepth exposes the number of pending main-queue callbacks.
func queueDepth(r *Runtime) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "blocks",
		Subsystem: "host",
		Name:      "queue_depth",
		Help:      "Callbacks waiting on the main queue.",
	}, func() float64 { return float64(r.Pending()) })
}
