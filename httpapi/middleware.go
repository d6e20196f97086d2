package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/cityroutes/roadmap"
)

var (
	// operationsTotal counts Map operations by outcome.
	// Outcome is "ok" or a roadmap.Kind name.
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cityroutes_operations_total",
		Help: "Map operations by name and outcome",
	}, []string{"op", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cityroutes_http_request_duration_seconds",
		Help:    "HTTP request duration by method and route template",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"method", "route"})
)

// observe counts one operation and returns err unchanged.
func observe(op string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = roadmap.KindOf(err).String()
	}
	operationsTotal.WithLabelValues(op, outcome).Inc()

	return err
}

// requestID echoes a client supplied X-Request-ID or assigns a fresh one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
