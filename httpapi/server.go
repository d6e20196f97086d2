// Package httpapi exposes a roadmap.Map over HTTP with JSON bodies.
//
// Every Map operation has an endpoint; POST /commands additionally accepts a
// text/plain body in the line language and answers with what the batch
// runner would have printed. The Map serialises operations itself, so the
// handlers hold no locks of their own.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/command"
	"github.com/katalvlaran/cityroutes/roadmap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxBody caps every request body.
const maxBody = 1 << 20

// Server routes HTTP requests to a Map.
type Server struct {
	m      *roadmap.Map
	log    *slog.Logger
	router *mux.Router
}

// New builds the router for m. A nil log discards access logs.
func New(m *roadmap.Map, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{m: m, log: log, router: mux.NewRouter()}
	s.routes()

	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.requestID, s.accessLog)

	r.HandleFunc("/roads", s.getRoad).Methods(http.MethodGet)
	r.HandleFunc("/roads", s.addRoad).Methods(http.MethodPost)
	r.HandleFunc("/roads", s.repairRoad).Methods(http.MethodPatch)
	r.HandleFunc("/roads", s.removeRoad).Methods(http.MethodDelete)

	r.HandleFunc("/routes/{id}", s.getRoute).Methods(http.MethodGet)
	r.HandleFunc("/routes/{id}", s.newRoute).Methods(http.MethodPost)
	r.HandleFunc("/routes/{id}", s.exactRoute).Methods(http.MethodPut)
	r.HandleFunc("/routes/{id}", s.removeRoute).Methods(http.MethodDelete)
	r.HandleFunc("/routes/{id}/extend", s.extendRoute).Methods(http.MethodPost)
	r.HandleFunc("/routes/{id}/description", s.routeDescription).Methods(http.MethodGet)

	r.HandleFunc("/commands", s.commands).Methods(http.MethodPost)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

var errBadBody = errors.New("httpapi: malformed request body")

// status maps a failure to its HTTP status.
func status(err error) int {
	if errors.Is(err, errBadBody) || errors.Is(err, command.ErrBadNumber) {
		return http.StatusBadRequest
	}
	switch roadmap.KindOf(err) {
	case roadmap.KindValidation:
		return http.StatusBadRequest
	case roadmap.KindNotFound:
		return http.StatusNotFound
	case roadmap.KindConflict:
		return http.StatusConflict
	case roadmap.KindAmbiguous, roadmap.KindUnreachable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := roadmap.KindOf(err).String()
	if errors.Is(err, errBadBody) || errors.Is(err, command.ErrBadNumber) {
		kind = roadmap.KindValidation.String()
	}
	writeJSON(w, status(err), ErrorResponse{Error: err.Error(), Kind: kind})
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errBadBody, err)
	}

	return nil
}

// statusWriter records the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		s.log.Info("http request",
			"method", r.Method,
			"route", route,
			"status", sw.code,
			"duration", elapsed,
			"request_id", w.Header().Get(RequestIDHeader),
		)
	})
}
