// File: methods_roads.go
// Role: Road lifecycle & queries: AddRoad/DeleteRoad/Road/SetRoadYear/RoadCount/Roads,
//       plus endpoint geometry (Other, CommonCity, FirstDifferentCity).
// Determinism:
//   - Roads() returns roads sorted by RoadID asc.
//   - nextRoadID is monotonic; a deleted road's id is never handed out again.
// AI-HINT (file):
//   - At most one road joins any pair of cities (ErrRoadExists).
//   - A road is always present in both endpoint incident lists or in neither.

package core

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Other returns the endpoint of r opposite to c.
// The boolean is false when c is not an endpoint of r.
func (r *Road) Other(c CityID) (CityID, bool) {
	switch c {
	case r.A:
		return r.B, true
	case r.B:
		return r.A, true
	default:
		return NoCity, false
	}
}

// Touches reports whether c is an endpoint of r.
func (r *Road) Touches(c CityID) bool { return c == r.A || c == r.B }

// Routes returns a copy of the ids of the routes traversing r.
func (r *Road) Routes() []RouteID { return slices.Clone(r.routes) }

// AddRoad creates a road between a and b and attaches it to both cities.
//
// Steps:
//  1. Validate endpoints, length and year.
//  2. Reject a second road between the same pair (ErrRoadExists).
//  3. Allocate the next RoadID, store the road, attach to a then b.
//
// Complexity: O(min(deg(a), deg(b))) for the duplicate check.
func (g *Graph) AddRoad(a, b CityID, length uint32, year int32) (RoadID, error) {
	if !g.hasCity(a) {
		return 0, fmt.Errorf("%w: id=%d", ErrCityNotFound, a)
	}
	if !g.hasCity(b) {
		return 0, fmt.Errorf("%w: id=%d", ErrCityNotFound, b)
	}
	if a == b {
		return 0, ErrSelfLoop
	}
	if length == 0 {
		return 0, ErrBadLength
	}
	if year == 0 {
		return 0, ErrBadYear
	}
	if _, ok := g.RoadBetween(a, b); ok {
		return 0, fmt.Errorf("%w: %q-%q", ErrRoadExists, g.cities[a].Name, g.cities[b].Name)
	}

	if g.nextRoadID == math.MaxInt32 {
		return 0, ErrArenaFull
	}
	rid := g.nextRoadID
	g.nextRoadID++
	g.roads[rid] = &Road{ID: rid, A: a, B: b, Length: length, Year: year}
	g.attach(a, rid)
	g.attach(b, rid)

	return rid, nil
}

// Road returns the road record for rid (read-only by convention).
// Complexity: O(1).
func (g *Graph) Road(rid RoadID) (*Road, error) {
	r, ok := g.roads[rid]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrRoadNotFound, rid)
	}

	return r, nil
}

// SetRoadYear overwrites the year of rid. Ordering rules (repairs may not go
// back in time) belong to the caller.
// Complexity: O(1).
func (g *Graph) SetRoadYear(rid RoadID, year int32) error {
	r, ok := g.roads[rid]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrRoadNotFound, rid)
	}
	if year == 0 {
		return ErrBadYear
	}
	r.Year = year

	return nil
}

// DeleteRoad detaches rid from both endpoint cities and drops it from the arena.
// The road must not be traversed by any route (ErrRoadInUse).
// Complexity: O(deg(A) + deg(B)).
func (g *Graph) DeleteRoad(rid RoadID) error {
	r, ok := g.roads[rid]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrRoadNotFound, rid)
	}
	if len(r.routes) > 0 {
		return fmt.Errorf("%w: id=%d routes=%v", ErrRoadInUse, rid, r.routes)
	}
	g.detach(r.A, rid)
	g.detach(r.B, rid)
	delete(g.roads, rid)

	return nil
}

// RoadCapacity returns how many more roads the id space can hold.
func (g *Graph) RoadCapacity() int { return int(math.MaxInt32 - g.nextRoadID) }

// RoadCount returns the number of roads in the arena.
// Complexity: O(1).
func (g *Graph) RoadCount() int { return len(g.roads) }

// Roads returns all road ids sorted ascending.
// Complexity: O(E log E).
func (g *Graph) Roads() []RoadID {
	out := make([]RoadID, 0, len(g.roads))
	for rid := range g.roads {
		out = append(out, rid)
	}
	slices.Sort(out)

	return out
}

// ConnectedCity returns the endpoint of road rid opposite to c.
// The boolean is false when rid is unknown or c is not one of its endpoints.
func (g *Graph) ConnectedCity(rid RoadID, c CityID) (CityID, bool) {
	r, ok := g.roads[rid]
	if !ok {
		return NoCity, false
	}

	return r.Other(c)
}

// CommonCity returns a city shared by r1 and r2.
// The boolean is false when either road is unknown or they share no endpoint.
func (g *Graph) CommonCity(r1, r2 RoadID) (CityID, bool) {
	a, ok1 := g.roads[r1]
	b, ok2 := g.roads[r2]
	if !ok1 || !ok2 {
		return NoCity, false
	}
	switch {
	case b.Touches(a.A):
		return a.A, true
	case b.Touches(a.B):
		return a.B, true
	default:
		return NoCity, false
	}
}

// FirstDifferentCity returns the endpoint of r1 that r2 does not touch, given
// that the two roads share a city. The boolean is false otherwise, or when
// both endpoints are shared.
func (g *Graph) FirstDifferentCity(r1, r2 RoadID) (CityID, bool) {
	common, ok := g.CommonCity(r1, r2)
	if !ok {
		return NoCity, false
	}
	out, _ := g.roads[r1].Other(common)
	if g.roads[r2].Touches(out) {
		return NoCity, false
	}

	return out, true
}

// addRouteLink records route id on road rid.
func (g *Graph) addRouteLink(rid RoadID, id RouteID) {
	r := g.roads[rid]
	r.routes = append(r.routes, id)
}

// dropRouteLink removes route id from road rid, preserving order.
func (g *Graph) dropRouteLink(rid RoadID, id RouteID) {
	r, ok := g.roads[rid]
	if !ok {
		return
	}
	if i := slices.Index(r.routes, id); i >= 0 {
		r.routes = slices.Delete(r.routes, i, i+1)
	}
}
