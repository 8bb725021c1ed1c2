// Package metrics exposes Prometheus collectors for the relay.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the relay's Prometheus collectors.
type Metrics struct {
	ConnectionsActive prometheus.Gauge
	RoomsActive       prometheus.Gauge
	MessagesRelayed   prometheus.Counter
	ActivityRelayed   prometheus.Counter
}

// New registers the relay collectors with reg. A nil reg uses the
// default registerer, which is what the /metrics handler serves.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ConnectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roomcast_connections_active",
			Help: "Number of open client connections.",
		}),
		RoomsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roomcast_rooms_active",
			Help: "Number of rooms with at least one member.",
		}),
		MessagesRelayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "roomcast_messages_relayed_total",
			Help: "Chat messages fanned out to rooms.",
		}),
		ActivityRelayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "roomcast_activity_relayed_total",
			Help: "Typing notices fanned out to rooms.",
		}),
	}
}

// Handler exposes the default registry, for mounting at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
