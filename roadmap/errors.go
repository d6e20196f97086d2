// File: errors.go
// Role: roadmap sentinel errors and the error-kind taxonomy shared by the
//       batch runner and the HTTP surface.
// Determinism:
//   - KindOf checks sentinels in a fixed order; the first match wins.

package roadmap

import (
	"errors"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/dijkstra"
	"github.com/katalvlaran/cityroutes/trie"
)

// Sentinel errors raised by Map operations in addition to the wrapped
// core, trie and dijkstra sentinels.
var (
	// ErrSameCity indicates an operation named the same city twice where two
	// distinct cities are required.
	ErrSameCity = errors.New("roadmap: cities must differ")

	// ErrYearRegression indicates a repair year older than the road's current year,
	// or an exact route stating a year older than an existing road's.
	ErrYearRegression = errors.New("roadmap: year older than recorded")

	// ErrLengthMismatch indicates an exact route stating a length different from
	// an existing road's.
	ErrLengthMismatch = errors.New("roadmap: length differs from existing road")

	// ErrRepeatedCity indicates an exact route visiting a city twice.
	ErrRepeatedCity = errors.New("roadmap: city repeated in route")

	// ErrCityOnRoute indicates an extension target that already lies on the route.
	ErrCityOnRoute = errors.New("roadmap: city already on route")

	// ErrBadSequence indicates mismatched or too short exact-route field lists.
	ErrBadSequence = errors.New("roadmap: malformed route sequence")
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota
	// KindValidation: malformed input, invalid name, zero length or year, bad route number.
	KindValidation
	// KindConflict: duplicate road, self-loop, route number in use, repeated city.
	KindConflict
	// KindNotFound: missing city, road or route.
	KindNotFound
	// KindAmbiguous: more than one optimal path.
	KindAmbiguous
	// KindUnreachable: no admissible path.
	KindUnreachable
	// KindResource: id space exhausted.
	KindResource
	// KindInternal: anything else, including violated invariants.
	KindInternal
)

var kindNames = [...]string{
	KindNone:        "none",
	KindValidation:  "validation",
	KindConflict:    "conflict",
	KindNotFound:    "not_found",
	KindAmbiguous:   "ambiguous",
	KindUnreachable: "unreachable",
	KindResource:    "resource",
	KindInternal:    "internal",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

var kindTable = []struct {
	err  error
	kind Kind
}{
	{trie.ErrInvalidName, KindValidation},
	{core.ErrBadLength, KindValidation},
	{core.ErrBadYear, KindValidation},
	{core.ErrBadRouteID, KindValidation},
	{dijkstra.ErrSameEndpoints, KindValidation},
	{ErrSameCity, KindValidation},
	{ErrBadSequence, KindValidation},

	{trie.ErrDuplicateName, KindConflict},
	{core.ErrSelfLoop, KindConflict},
	{core.ErrRoadExists, KindConflict},
	{core.ErrRouteExists, KindConflict},
	{core.ErrRoadInUse, KindConflict},
	{ErrYearRegression, KindConflict},
	{ErrLengthMismatch, KindConflict},
	{ErrRepeatedCity, KindConflict},
	{ErrCityOnRoute, KindConflict},

	{core.ErrCityNotFound, KindNotFound},
	{core.ErrRoadNotFound, KindNotFound},
	{core.ErrRouteNotFound, KindNotFound},
	{dijkstra.ErrCityNotFound, KindNotFound},

	{dijkstra.ErrAmbiguous, KindAmbiguous},
	{dijkstra.ErrUnreachable, KindUnreachable},
	{core.ErrArenaFull, KindResource},
}

// KindOf classifies err by the first sentinel it wraps.
// nil yields KindNone; unrecognised errors yield KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, e := range kindTable {
		if errors.Is(err, e.err) {
			return e.kind
		}
	}

	return KindInternal
}
