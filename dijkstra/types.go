// Package dijkstra defines the distance algebra, configuration options and
// sentinel errors for the route search over a core.Graph.
//
// A Distance orders paths lexicographically by (Length ascending, OldestYear
// descending): the shorter path wins and, among equally long paths, the one
// whose oldest road is newest wins. The source is seeded with (0, +∞) and an
// unreachable city carries (∞, -∞).
//
// Options:
//
//	– Source:          city the search starts from (required).
//	– Target:          city the search stops at (required).
//	– WithForbidden:   cities the path may not pass through; the source is exempt.
//	– WithClosedRoads: roads treated as absent for this search only.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrCityNotFound   if Source or Target is not a city of the graph.
//	– ErrSameEndpoints  if Source == Target.
//	– ErrUnreachable    if no admissible path joins Source and Target.
//	– ErrAmbiguous      if more than one path achieves the optimal Distance.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cityroutes/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound indicates that Source or Target is not a city of the graph.
	ErrCityNotFound = errors.New("dijkstra: city not found in graph")

	// ErrSameEndpoints indicates Source and Target are the same city.
	ErrSameEndpoints = errors.New("dijkstra: source and target coincide")

	// ErrUnreachable indicates that Target cannot be reached from Source
	// without crossing a forbidden city or a closed road.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrAmbiguous indicates two or more distinct paths share the optimal Distance.
	// The Path returned alongside still carries that Distance, with no roads.
	ErrAmbiguous = errors.New("dijkstra: optimal path is not unique")
)

// Distance is the cost of a path: its total Length and the Year of its oldest road.
// The zero value is the unreachable distance.
type Distance struct {
	// Length is the sum of road lengths.
	Length uint64

	// OldestYear is the minimum road year along the path (+∞ for the empty path).
	OldestYear int64

	// Reachable is false for the (∞, -∞) distance.
	Reachable bool
}

// Origin is the distance of the empty path at the source.
var Origin = Distance{Length: 0, OldestYear: math.MaxInt64, Reachable: true}

// Unreachable is the (∞, -∞) distance.
var Unreachable = Distance{}

// Extend returns d followed by a road of the given length and year.
// Extending an unreachable distance stays unreachable.
func (d Distance) Extend(length uint32, year int32) Distance {
	if !d.Reachable {
		return Unreachable
	}
	oldest := d.OldestYear
	if int64(year) < oldest {
		oldest = int64(year)
	}

	return Distance{Length: d.Length + uint64(length), OldestYear: oldest, Reachable: true}
}

// String renders d as "(length, year)" or "unreachable".
func (d Distance) String() string {
	if !d.Reachable {
		return "unreachable"
	}

	return fmt.Sprintf("(%d, %d)", d.Length, d.OldestYear)
}

// Compare orders distances: negative when a is better than b, zero when they
// are equal, positive when a is worse. Any reachable distance beats Unreachable.
func Compare(a, b Distance) int {
	switch {
	case !a.Reachable && !b.Reachable:
		return 0
	case !a.Reachable:
		return 1
	case !b.Reachable:
		return -1
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	case a.OldestYear > b.OldestYear:
		return -1
	case a.OldestYear < b.OldestYear:
		return 1
	}

	return 0
}

// Path is the unique optimal road sequence ordered Source→Target.
type Path struct {
	Roads    []core.RoadID
	Distance Distance
}

// Options configures a single ShortestPath search.
//
// Source    – start city (must exist).
// Target    – destination city (must exist and differ from Source).
// Forbidden – cities the path may not enter; Source is exempt.
// Closed    – roads ignored by this search.
type Options struct {
	Source    core.CityID
	Target    core.CityID
	Forbidden []core.CityID
	Closed    []core.RoadID
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the start city.
func Source(id core.CityID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the destination city.
func Target(id core.CityID) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithForbidden adds cities the path may not pass through.
// Unknown ids are ignored; the Source is never treated as forbidden.
func WithForbidden(ids ...core.CityID) Option {
	return func(o *Options) {
		o.Forbidden = append(o.Forbidden, ids...)
	}
}

// WithClosedRoads adds roads that the search treats as absent.
func WithClosedRoads(ids ...core.RoadID) Option {
	return func(o *Options) {
		o.Closed = append(o.Closed, ids...)
	}
}

// DefaultOptions returns Options with no endpoints and no restrictions.
func DefaultOptions() Options {
	return Options{
		Source: core.NoCity,
		Target: core.NoCity,
	}
}
