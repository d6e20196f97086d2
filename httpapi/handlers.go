package httpapi

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/cityroutes/batch"
	"github.com/katalvlaran/cityroutes/command"
	"github.com/katalvlaran/cityroutes/roadmap"
)

// RoadRequest is the body of POST and PATCH /roads.
// PATCH ignores Length.
type RoadRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Length uint32 `json:"length"`
	Year   int32  `json:"year"`
}

// NewRouteRequest is the body of POST /routes/{id}.
type NewRouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ExtendRouteRequest is the body of POST /routes/{id}/extend.
type ExtendRouteRequest struct {
	City string `json:"city"`
}

// ExactRouteRequest is the body of PUT /routes/{id}.
type ExactRouteRequest struct {
	Cities  []string `json:"cities"`
	Lengths []uint32 `json:"lengths"`
	Years   []int32  `json:"years"`
}

// RouteResponse is a route together with its textual description.
type RouteResponse struct {
	roadmap.RouteInfo
	Description string `json:"description"`
}

// CommandsResponse reports a POST /commands run.
type CommandsResponse struct {
	Summary batch.Summary `json:"summary"`
	Output  []string      `json:"output"`
	Errors  []string      `json:"errors"`
}

func routeID(r *http.Request) (uint32, error) {
	return command.Uint(mux.Vars(r)["id"])
}

func (s *Server) getRoad(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	info, err := s.m.Road(q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) addRoad(w http.ResponseWriter, r *http.Request) {
	var req RoadRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := observe("addRoad", s.m.AddRoad(req.From, req.To, req.Length, req.Year)); err != nil {
		writeError(w, err)
		return
	}
	s.road(w, http.StatusCreated, req.From, req.To)
}

func (s *Server) repairRoad(w http.ResponseWriter, r *http.Request) {
	var req RoadRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := observe("repairRoad", s.m.RepairRoad(req.From, req.To, req.Year)); err != nil {
		writeError(w, err)
		return
	}
	s.road(w, http.StatusOK, req.From, req.To)
}

func (s *Server) removeRoad(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := observe("removeRoad", s.m.RemoveRoad(q.Get("from"), q.Get("to"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// road answers with the current state of the road between from and to.
func (s *Server) road(w http.ResponseWriter, code int, from, to string) {
	info, err := s.m.Road(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, code, info)
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.route(w, http.StatusOK, id)
}

func (s *Server) newRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req NewRouteRequest
	if err = decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err = observe("newRoute", s.m.NewRoute(id, req.From, req.To)); err != nil {
		writeError(w, err)
		return
	}
	s.route(w, http.StatusCreated, id)
}

func (s *Server) extendRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req ExtendRouteRequest
	if err = decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err = observe("extendRoute", s.m.ExtendRoute(id, req.City)); err != nil {
		writeError(w, err)
		return
	}
	s.route(w, http.StatusOK, id)
}

func (s *Server) exactRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req ExactRouteRequest
	if err = decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err = observe("exactRoute", s.m.ExactRoute(id, req.Cities, req.Lengths, req.Years)); err != nil {
		writeError(w, err)
		return
	}
	s.route(w, http.StatusCreated, id)
}

func (s *Server) removeRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err = observe("removeRoute", s.m.RemoveRoute(id)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// routeDescription answers in the line language's output format. A missing
// route yields an empty line, as getRouteDescription does.
func (s *Server) routeDescription(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = observe("getRouteDescription", nil)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.m.RouteDescription(id) + "\n"))
}

func (s *Server) route(w http.ResponseWriter, code int, id uint32) {
	info, err := s.m.Route(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, code, RouteResponse{RouteInfo: info, Description: s.m.RouteDescription(id)})
}

func (s *Server) commands(w http.ResponseWriter, r *http.Request) {
	var out, errOut bytes.Buffer
	runner := &batch.Runner{Map: s.m, Out: &out, Err: &errOut, Logger: s.log}
	sum, err := runner.Run(r.Context(), http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CommandsResponse{
		Summary: sum,
		Output:  lines(out.String()),
		Errors:  lines(errOut.String()),
	})
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.m.Stats())
}

// lines splits newline-terminated text; empty lines in the middle are kept.
func lines(text string) []string {
	if text == "" {
		return []string{}
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
