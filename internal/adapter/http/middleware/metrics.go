package middleware

import (
	"net/http"
	"time"

	"github.com/NssGourav/shuttle-tracker/pkg/metrics"
)

const serviceName = "shuttle-tracker"

func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		metrics.HttpRequestsInFlight.WithLabelValues(serviceName).Inc()
		defer metrics.HttpRequestsInFlight.WithLabelValues(serviceName).Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.RecordHTTPMetrics(serviceName, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
