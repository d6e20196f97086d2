// File: validate.go
// Role: Whole-arena consistency check used by tests and by roadmap.Map.Validate.
// Determinism:
//   - Cities, roads and routes are checked in ascending id order, so the first
//     reported violation is stable.

package core

import (
	"errors"
	"fmt"
)

// ErrInconsistent indicates a violated global invariant.
var ErrInconsistent = errors.New("core: inconsistent graph")

// Validate checks every global invariant of the arena:
//   - each incident-road entry exists, touches its city, and appears once;
//   - each road is present in both endpoint incident lists;
//   - at most one road joins any pair of cities;
//   - each route walks from Start to End over existing roads visiting no city twice;
//   - route↔road back-links are symmetric.
//
// Complexity: O(V + E + Σ|route|·routes-per-road).
func (g *Graph) Validate() error {
	type pair struct{ a, b CityID }
	pairs := make(map[pair]RoadID, len(g.roads))

	for _, c := range g.cities {
		seen := make(map[RoadID]bool, len(c.roads))
		for _, rid := range c.roads {
			r, ok := g.roads[rid]
			if !ok {
				return fmt.Errorf("%w: city %d lists missing road %d", ErrInconsistent, c.ID, rid)
			}
			if !r.Touches(c.ID) {
				return fmt.Errorf("%w: city %d lists foreign road %d", ErrInconsistent, c.ID, rid)
			}
			if seen[rid] {
				return fmt.Errorf("%w: city %d lists road %d twice", ErrInconsistent, c.ID, rid)
			}
			seen[rid] = true
		}
	}

	for _, rid := range g.Roads() {
		r := g.roads[rid]
		if !g.hasCity(r.A) || !g.hasCity(r.B) || r.A == r.B {
			return fmt.Errorf("%w: road %d has bad endpoints", ErrInconsistent, rid)
		}
		if !listed(g.cities[r.A].roads, rid) || !listed(g.cities[r.B].roads, rid) {
			return fmt.Errorf("%w: road %d missing from an endpoint", ErrInconsistent, rid)
		}
		p := pair{r.A, r.B}
		if p.a > p.b {
			p.a, p.b = p.b, p.a
		}
		if other, dup := pairs[p]; dup {
			return fmt.Errorf("%w: roads %d and %d join the same cities", ErrInconsistent, other, rid)
		}
		pairs[p] = rid
		for _, id := range r.routes {
			rt := g.routes[id]
			if !ValidRouteID(id) || rt == nil || !listed(rt.roads, rid) {
				return fmt.Errorf("%w: road %d back-links route %d which does not use it", ErrInconsistent, rid, id)
			}
		}
	}

	count := 0
	for _, id := range g.RouteIDs() {
		rt := g.routes[id]
		count++
		if len(rt.roads) == 0 {
			return fmt.Errorf("%w: route %d is empty", ErrInconsistent, id)
		}
		cities, err := g.walk(rt.Start, rt.roads)
		if err != nil {
			return fmt.Errorf("%w: route %d: %v", ErrInconsistent, id, err)
		}
		if cities[len(cities)-1] != rt.End {
			return fmt.Errorf("%w: route %d ends at %d, cached end %d", ErrInconsistent, id, cities[len(cities)-1], rt.End)
		}
		for _, rid := range rt.roads {
			if !listed(g.roads[rid].routes, id) {
				return fmt.Errorf("%w: road %d lacks back-link to route %d", ErrInconsistent, rid, id)
			}
		}
	}
	if count != g.routeCount {
		return fmt.Errorf("%w: route count %d, slots %d", ErrInconsistent, g.routeCount, count)
	}

	return nil
}

func listed[T comparable](xs []T, x T) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
