// File: methods_routes.go
// Role: Route lifecycle & road-sequence mutation: AddRoute/RemoveRoute/InsertRouteRoads/
//       RemoveRouteRoad, plus walks (RouteCities, RouteCityIndex, RouteFirstOf).
// Determinism:
//   - RouteIDs() returns occupied route numbers ascending.
//   - Every mutation validates the resulting walk before it touches the route.
// AI-HINT (file):
//   - Road sequences may be supplied in either orientation; they are flipped to
//     match the anchor city of the splice.
//   - RemoveRouteRoad intentionally leaves a gap; fill it with InsertRouteRoads
//     at the returned index before handing the route back to callers.

package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Roads returns a copy of the route's road sequence, ordered from Start.
func (r *Route) Roads() []RoadID { return slices.Clone(r.roads) }

// Len returns the number of roads on the route.
func (r *Route) Len() int { return len(r.roads) }

// AddRoute registers route id as the path over roads from start to end.
// roads may be given end→start; the sequence is reversed when its first
// road does not touch start.
//
// Errors: ErrBadRouteID, ErrRouteExists, ErrCityNotFound, ErrRoadNotFound, ErrBrokenPath.
// Complexity: O(len(roads) + V) for the simplicity check.
func (g *Graph) AddRoute(id RouteID, start, end CityID, roads []RoadID) error {
	if !ValidRouteID(id) {
		return fmt.Errorf("%w: %d", ErrBadRouteID, id)
	}
	if g.routes[id] != nil {
		return fmt.Errorf("%w: %d", ErrRouteExists, id)
	}
	if !g.hasCity(start) || !g.hasCity(end) {
		return ErrCityNotFound
	}
	if len(roads) == 0 {
		return fmt.Errorf("%w: empty", ErrBrokenPath)
	}
	seq, cities, err := g.orientFrom(start, roads)
	if err != nil {
		return err
	}
	if _, err = g.walk(start, seq); err != nil {
		return err
	}
	if cities[len(cities)-1] != end {
		return fmt.Errorf("%w: path ends at %d, want %d", ErrBrokenPath, cities[len(cities)-1], end)
	}

	g.routes[id] = &Route{ID: id, Start: start, End: end, roads: seq}
	g.routeCount++
	for _, rid := range seq {
		g.addRouteLink(rid, id)
	}

	return nil
}

// Route returns the route record for id (read-only by convention).
// Complexity: O(1).
func (g *Graph) Route(id RouteID) (*Route, error) {
	if !ValidRouteID(id) || g.routes[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrRouteNotFound, id)
	}

	return g.routes[id], nil
}

// HasRoute reports whether route slot id is occupied.
func (g *Graph) HasRoute(id RouteID) bool {
	return ValidRouteID(id) && g.routes[id] != nil
}

// RouteCount returns the number of occupied route slots.
func (g *Graph) RouteCount() int { return g.routeCount }

// RouteIDs returns occupied route numbers ascending.
// Complexity: O(MaxRouteID).
func (g *Graph) RouteIDs() []RouteID {
	out := make([]RouteID, 0, g.routeCount)
	for id := MinRouteID; id <= MaxRouteID; id++ {
		if g.routes[id] != nil {
			out = append(out, id)
		}
	}

	return out
}

// RemoveRoute detaches route id from every road it uses and frees the slot.
// Roads and cities are untouched.
// Complexity: O(len(route) · routes-per-road).
func (g *Graph) RemoveRoute(id RouteID) error {
	rt, err := g.Route(id)
	if err != nil {
		return err
	}
	for _, rid := range rt.roads {
		g.dropRouteLink(rid, id)
	}
	g.routes[id] = nil
	g.routeCount--

	return nil
}

// RouteCities returns the cities of route id walked from Start to End.
// Complexity: O(len(route)).
func (g *Graph) RouteCities(id RouteID) ([]CityID, error) {
	rt, err := g.Route(id)
	if err != nil {
		return nil, err
	}
	out := make([]CityID, 0, len(rt.roads)+1)
	cur := rt.Start
	out = append(out, cur)
	for _, rid := range rt.roads {
		next, ok := g.ConnectedCity(rid, cur)
		if !ok {
			return out, fmt.Errorf("%w: route %d breaks at road %d", ErrBrokenPath, id, rid)
		}
		out = append(out, next)
		cur = next
	}

	return out, nil
}

// RouteCityIndex returns the position of city c along route id
// (0 for Start, Len() for End), or -1 when c is not on the route.
func (g *Graph) RouteCityIndex(id RouteID, c CityID) int {
	cities, err := g.RouteCities(id)
	if err != nil {
		return -1
	}

	return slices.Index(cities, c)
}

// RouteFirstOf returns whichever of a and b appears first walking route id from Start.
func (g *Graph) RouteFirstOf(id RouteID, a, b CityID) (CityID, bool) {
	cities, err := g.RouteCities(id)
	if err != nil {
		return NoCity, false
	}
	for _, c := range cities {
		if c == a || c == b {
			return c, true
		}
	}

	return NoCity, false
}

// RemoveRouteRoad takes rid out of route id and drops the route back-link on
// the road. It returns the index the road occupied. Cached Start/End are kept,
// so the route has a gap at that index until InsertRouteRoads fills it.
// Complexity: O(len(route)).
func (g *Graph) RemoveRouteRoad(id RouteID, rid RoadID) (int, error) {
	rt, err := g.Route(id)
	if err != nil {
		return -1, err
	}
	i := slices.Index(rt.roads, rid)
	if i < 0 {
		return -1, fmt.Errorf("%w: road %d not on route %d", ErrRoadNotFound, rid, id)
	}
	rt.roads = slices.Delete(rt.roads, i, i+1)
	g.dropRouteLink(rid, id)

	return i, nil
}

// InsertRouteRoads splices block into route id before position index.
//
// Orientation:
//   - index 0 on a route whose first road still touches Start: the block is
//     prepended, flipped so that it ends at Start; the block's far end becomes Start.
//   - otherwise the block is flipped so that it starts at the city reached by
//     walking the first index roads from Start.
//
// The resulting sequence must be a simple path; Start/End are then recomputed
// from the walk. On any error the route is left unchanged.
//
// Complexity: O(len(route) + len(block) + V).
func (g *Graph) InsertRouteRoads(id RouteID, index int, block []RoadID) error {
	rt, err := g.Route(id)
	if err != nil {
		return err
	}
	if index < 0 || index > len(rt.roads) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrBadIndex, index, len(rt.roads))
	}
	if len(block) == 0 {
		return nil
	}

	var (
		oriented []RoadID
		cities   []CityID
		start    = rt.Start
	)
	if index == 0 && len(rt.roads) > 0 && g.roads[rt.roads[0]].Touches(rt.Start) {
		if oriented, cities, err = g.orientFrom(rt.Start, block); err != nil {
			return err
		}
		slices.Reverse(oriented)
		start = cities[len(cities)-1]
	} else {
		anchor := rt.Start
		if index > 0 {
			prefix, werr := g.walk(rt.Start, rt.roads[:index])
			if werr != nil {
				return werr
			}
			anchor = prefix[len(prefix)-1]
		}
		if oriented, _, err = g.orientFrom(anchor, block); err != nil {
			return err
		}
	}

	seq := make([]RoadID, 0, len(rt.roads)+len(oriented))
	seq = append(seq, rt.roads[:index]...)
	seq = append(seq, oriented...)
	seq = append(seq, rt.roads[index:]...)
	walked, err := g.walk(start, seq)
	if err != nil {
		return err
	}

	rt.roads = seq
	rt.Start = start
	rt.End = walked[len(walked)-1]
	for _, rid := range oriented {
		g.addRouteLink(rid, id)
	}

	return nil
}

// orientFrom returns block oriented to start at from, together with the
// visited cities, reversing block when it runs the other way.
func (g *Graph) orientFrom(from CityID, block []RoadID) ([]RoadID, []CityID, error) {
	for _, rid := range block {
		if _, ok := g.roads[rid]; !ok {
			return nil, nil, fmt.Errorf("%w: id=%d", ErrRoadNotFound, rid)
		}
	}
	seq := slices.Clone(block)
	if cities, ok := g.follow(from, seq); ok {
		return seq, cities, nil
	}
	slices.Reverse(seq)
	if cities, ok := g.follow(from, seq); ok {
		return seq, cities, nil
	}

	return nil, nil, fmt.Errorf("%w: block does not connect to city %d", ErrBrokenPath, from)
}

// follow walks seq from c without the simplicity check.
func (g *Graph) follow(c CityID, seq []RoadID) ([]CityID, bool) {
	out := make([]CityID, 0, len(seq)+1)
	out = append(out, c)
	var ok bool
	for _, rid := range seq {
		if c, ok = g.roads[rid].Other(c); !ok {
			return nil, false
		}
		out = append(out, c)
	}

	return out, true
}

// walk follows seq from start and fails when a road is missing, does not
// continue the path, or leads back to a visited city.
func (g *Graph) walk(start CityID, seq []RoadID) ([]CityID, error) {
	seen := make([]bool, len(g.cities))
	out := make([]CityID, 0, len(seq)+1)
	cur := start
	seen[cur] = true
	out = append(out, cur)
	for _, rid := range seq {
		r, ok := g.roads[rid]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrRoadNotFound, rid)
		}
		next, ok := r.Other(cur)
		if !ok {
			return nil, fmt.Errorf("%w: road %d does not continue from city %d", ErrBrokenPath, rid, cur)
		}
		if seen[next] {
			return nil, fmt.Errorf("%w: city %d visited twice", ErrBrokenPath, next)
		}
		seen[next] = true
		out = append(out, next)
		cur = next
	}

	return out, nil
}
