package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	LocationUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_location_updates_total",
			Help: "Total number of accepted driver location reports",
		},
		[]string{"service"},
	)

	LocationUpdatesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_location_updates_rejected_total",
			Help: "Total number of rejected driver location reports",
		},
		[]string{"service", "reason"},
	)

	DriversRegisteredGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "drivers_registered_total",
			Help: "Current number of registered drivers",
		},
		[]string{"service"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	SimulatorTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuttle_simulator_ticks_total",
			Help: "Total number of shuttle position simulation ticks",
		},
		[]string{"service"},
	)
)

// RecordHTTPMetrics records the counter and duration for a finished request.
func RecordHTTPMetrics(service, method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HttpRequestsTotal.WithLabelValues(service, method, path, code).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, code).Observe(duration.Seconds())
}
