package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	ActiveRooms      prometheus.Gauge
	ConnectedClients prometheus.Gauge
	CommandsReceived prometheus.Counter
	CommandLatency   prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of live rooms",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connected_clients",
			Help:      "Number of connected websocket clients",
		}),
		CommandsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_received_total",
			Help:      "Total number of client commands received",
		}),
		CommandLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_latency_seconds",
			Help:      "Command processing latency",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}

	prometheus.MustRegister(
		m.ActiveRooms,
		m.ConnectedClients,
		m.CommandsReceived,
		m.CommandLatency,
	)
	return m
}

// Nil-safe helpers so components can run without metrics in tests.

func (m *Metrics) SetActiveRooms(n int) {
	if m != nil {
		m.ActiveRooms.Set(float64(n))
	}
}

func (m *Metrics) IncConnectedClients() {
	if m != nil {
		m.ConnectedClients.Inc()
	}
}

func (m *Metrics) DecConnectedClients() {
	if m != nil {
		m.ConnectedClients.Dec()
	}
}

func (m *Metrics) IncCommandsReceived() {
	if m != nil {
		m.CommandsReceived.Inc()
	}
}

func (m *Metrics) ObserveCommandLatency(d time.Duration) {
	if m != nil {
		m.CommandLatency.Observe(d.Seconds())
	}
}
