// Package core provides the in-memory arena of cities, roads and routes that
// the routing engine and the roadmap orchestrator operate on.
//
// The graph G = (V,E) is undirected and simple:
//
//   - Cities (V) have dense ids assigned from 0 in creation order and a unique name.
//   - Roads (E) join two distinct cities, carry a positive Length and a non-zero Year
//     (build or last repair), and at most one road joins any pair of cities.
//   - Routes are numbered 1..999 and hold an ordered road sequence forming a simple
//     path from a cached Start to a cached End.
//
// Ownership model:
//
//   - The Graph arena owns every record. Cities list incident roads by RoadID,
//     roads list traversing routes by RouteID, routes list roads by RoadID.
//     No record holds a pointer to another, so deleting a road is one arena
//     delete plus index cleanup.
//   - Ids are never recycled: cities are append-only, roads draw from a
//     monotonic counter, route numbers are caller-chosen.
//
// Core Methods:
//
//	// Cities
//	AddCity(name string) CityID                  // O(1)
//	City(id CityID) (*City, error)               // O(1)
//	IncidentRoads(id CityID) []RoadID            // O(1), live slice
//	RoadBetween(a, b CityID) (RoadID, bool)      // O(min deg)
//
//	// Roads
//	AddRoad(a, b CityID, length uint32, year int32) (RoadID, error)
//	Road(id RoadID) (*Road, error)
//	SetRoadYear(id RoadID, year int32) error
//	DeleteRoad(id RoadID) error                  // road must carry no route
//	ConnectedCity / CommonCity / FirstDifferentCity
//
//	// Routes
//	AddRoute(id RouteID, start, end CityID, roads []RoadID) error
//	InsertRouteRoads(id RouteID, index int, roads []RoadID) error
//	RemoveRouteRoad(id RouteID, road RoadID) (int, error)
//	RemoveRoute(id RouteID) error
//	RouteCities / RouteCityIndex / RouteFirstOf
//
//	// Consistency
//	Validate() error
//
// Errors:
//
//	ErrCityNotFound, ErrRoadNotFound, ErrRouteNotFound – missing records
//	ErrSelfLoop, ErrRoadExists                         – road conflicts
//	ErrBadLength, ErrBadYear, ErrBadRouteID            – invalid parameters
//	ErrRouteExists                                     – occupied route slot
//	ErrBrokenPath                                      – sequence is not a simple path
//	ErrRoadInUse                                       – deleting a road a route still uses
//	ErrInconsistent                                    – Validate found a violated invariant
//
// Concurrency: none. The arena is mutated only from roadmap.Map, which holds
// a single exclusive lock per operation.
package core
