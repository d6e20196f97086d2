// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: City, Road, Route entities, sentinel errors, and the Graph arena constructor.
// Policy:
//   - Entities reference each other by identifier only; the Graph arena owns every record.
//   - Identifiers are never recycled: cities are append-only, roads use a monotonic counter,
//     route numbers are chosen by the caller within [MinRouteID, MaxRouteID].
// AI-HINT (file):
//   - Pointers returned by Graph getters are read-only by convention; mutate through Graph methods.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrCityNotFound indicates an operation referenced a city id outside the arena.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrRoadNotFound indicates an operation referenced a road id not in the arena.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrRouteNotFound indicates an operation referenced an empty route slot.
	ErrRouteNotFound = errors.New("core: route not found")

	// ErrSelfLoop indicates a road whose two endpoints are the same city.
	ErrSelfLoop = errors.New("core: road endpoints must differ")

	// ErrRoadExists indicates a second road between the same pair of cities.
	ErrRoadExists = errors.New("core: road already exists between cities")

	// ErrBadLength indicates a zero road length.
	ErrBadLength = errors.New("core: road length must be positive")

	// ErrBadYear indicates a zero road year.
	ErrBadYear = errors.New("core: road year must be non-zero")

	// ErrBadRouteID indicates a route number outside [MinRouteID, MaxRouteID].
	ErrBadRouteID = errors.New("core: route id out of range")

	// ErrRouteExists indicates the route slot is already occupied.
	ErrRouteExists = errors.New("core: route id already in use")

	// ErrBrokenPath indicates a road sequence that is empty, disconnected,
	// or visits a city twice.
	ErrBrokenPath = errors.New("core: road sequence is not a simple path")

	// ErrRoadInUse indicates an attempt to delete a road still traversed by a route.
	ErrRoadInUse = errors.New("core: road is used by a route")

	// ErrBadIndex indicates a splice index outside the route's road sequence.
	ErrBadIndex = errors.New("core: route index out of range")

	// ErrArenaFull indicates the city or road id space is exhausted.
	ErrArenaFull = errors.New("core: id space exhausted")
)

// Route number range.
const (
	MinRouteID RouteID = 1
	MaxRouteID RouteID = 999
)

// CityID identifies a city. Ids are dense, assigned from 0 in creation order.
type CityID int32

// RoadID identifies a road. Ids are assigned from a monotonic counter.
type RoadID int32

// RouteID is a route number in [MinRouteID, MaxRouteID].
type RouteID uint32

// NoCity is returned where a city lookup yields nothing.
const NoCity CityID = -1

// MaxCities bounds the dense city id space.
const MaxCities = math.MaxInt32

// City is a named graph node.
type City struct {
	// ID is the dense identifier of the city.
	ID CityID

	// Name is the unique city name.
	Name string

	// roads holds incident road ids in attachment order.
	roads []RoadID
}

// Road is an undirected edge between two distinct cities.
type Road struct {
	// ID uniquely identifies the road in its Graph.
	ID RoadID

	// A and B are the endpoints; the road is undirected, A/B order is creation order.
	A, B CityID

	// Length is the positive road length.
	Length uint32

	// Year is the build or last repair year; never zero.
	Year int32

	// routes holds the ids of routes currently traversing the road.
	routes []RouteID
}

// Route is a numbered simple path over roads.
type Route struct {
	// ID is the route number.
	ID RouteID

	// Start and End are the cached endpoint cities of the path.
	Start, End CityID

	// roads is the ordered road sequence walked from Start.
	roads []RoadID
}

// Graph is the arena owning every City, Road and Route.
//
// Concurrency: Graph is not synchronized. The roadmap package serializes
// every operation under a single Map-level lock.
type Graph struct {
	cities     []*City
	roads      map[RoadID]*Road
	nextRoadID RoadID

	routes     [MaxRouteID + 1]*Route // slot 0 unused
	routeCount int
}

// NewGraph returns an empty arena.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		cities: make([]*City, 0, 16),
		roads:  make(map[RoadID]*Road),
	}
}

// ValidRouteID reports whether id is inside the route number range.
func ValidRouteID(id RouteID) bool {
	return id >= MinRouteID && id <= MaxRouteID
}
