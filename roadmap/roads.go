// File: roads.go
// Role: Road operations: AddRoad, RepairRoad, RemoveRoad.
// Determinism:
//   - RemoveRoad repairs affected routes in ascending route number.
// AI-HINT (file):
//   - RemoveRoad plans every detour with the road closed before mutating anything;
//     the commit phase cannot fail on valid state.

package roadmap

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/dijkstra"
	"github.com/katalvlaran/cityroutes/trie"
)

// AddRoad creates a road between city1 and city2, creating either city if
// it does not exist yet.
//
// Errors: trie.ErrInvalidName, core.ErrSelfLoop, core.ErrBadLength,
// core.ErrBadYear, core.ErrRoadExists, core.ErrArenaFull.
func (m *Map) AddRoad(city1, city2 string, length uint32, year int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("addRoad", m.addRoad(city1, city2, length, year),
		"city1", city1, "city2", city2, "length", length, "year", year)
}

func (m *Map) addRoad(city1, city2 string, length uint32, year int32) error {
	// 1) Validate everything before the first write.
	for _, name := range []string{city1, city2} {
		if !trie.ValidName(name) {
			return fmt.Errorf("%w: %q", trie.ErrInvalidName, name)
		}
	}
	if city1 == city2 {
		return fmt.Errorf("%w: %q", core.ErrSelfLoop, city1)
	}
	if length == 0 {
		return core.ErrBadLength
	}
	if year == 0 {
		return core.ErrBadYear
	}
	a, aok := m.names.Lookup(city1)
	b, bok := m.names.Lookup(city2)
	if aok && bok {
		if _, dup := m.g.RoadBetween(core.CityID(a), core.CityID(b)); dup {
			return fmt.Errorf("%w: %q-%q", core.ErrRoadExists, city1, city2)
		}
	}
	if m.g.RoadCapacity() < 1 || m.g.CityCount()+2 > core.MaxCities {
		return core.ErrArenaFull
	}

	// 2) Commit.
	ca, err := m.ensureCity(city1)
	if err != nil {
		return err
	}
	cb, err := m.ensureCity(city2)
	if err != nil {
		return err
	}
	_, err = m.g.AddRoad(ca, cb, length, year)

	return err
}

// ensureCity returns the id of name, creating the city when missing.
func (m *Map) ensureCity(name string) (core.CityID, error) {
	if id, ok := m.names.Lookup(name); ok {
		return core.CityID(id), nil
	}

	return m.addCity(name)
}

// RepairRoad sets the year of the road between city1 and city2.
// The new year may not be older than the current one.
//
// Errors: trie.ErrInvalidName, core.ErrCityNotFound, ErrSameCity,
// core.ErrRoadNotFound, core.ErrBadYear, ErrYearRegression.
func (m *Map) RepairRoad(city1, city2 string, year int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("repairRoad", m.repairRoad(city1, city2, year),
		"city1", city1, "city2", city2, "year", year)
}

func (m *Map) repairRoad(city1, city2 string, year int32) error {
	_, _, rid, err := m.roadBetween(city1, city2)
	if err != nil {
		return err
	}
	if year == 0 {
		return core.ErrBadYear
	}
	r, _ := m.g.Road(rid)
	if year < r.Year {
		return fmt.Errorf("%w: %d < %d", ErrYearRegression, year, r.Year)
	}

	return m.g.SetRoadYear(rid, year)
}

// detour is the planned replacement of one road within one route.
type detour struct {
	route core.RouteID
	roads []core.RoadID
}

// RemoveRoad deletes the road between city1 and city2. Every route using it
// is rerouted between the two cities adjacent to the break over the unique
// best path that avoids the route's other cities. If any route cannot be
// rerouted the network is left untouched.
//
// Errors: trie.ErrInvalidName, core.ErrCityNotFound, ErrSameCity,
// core.ErrRoadNotFound, dijkstra.ErrAmbiguous, dijkstra.ErrUnreachable.
func (m *Map) RemoveRoad(city1, city2 string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("removeRoad", m.removeRoad(city1, city2), "city1", city1, "city2", city2)
}

func (m *Map) removeRoad(city1, city2 string) error {
	a, b, rid, err := m.roadBetween(city1, city2)
	if err != nil {
		return err
	}
	road, _ := m.g.Road(rid)
	affected := road.Routes()
	slices.Sort(affected)

	// 1) Plan a detour for every route through the road.
	plans := make([]detour, 0, len(affected))
	for _, id := range affected {
		first, _ := m.g.RouteFirstOf(id, a, b)
		second := a
		if first == a {
			second = b
		}
		cities, err := m.g.RouteCities(id)
		if err != nil {
			return err
		}
		path, err := dijkstra.ShortestPath(m.g,
			dijkstra.Source(first),
			dijkstra.Target(second),
			dijkstra.WithForbidden(lo.Without(cities, second)...),
			dijkstra.WithClosedRoads(rid),
		)
		if err != nil {
			return fmt.Errorf("route %d: %w", id, err)
		}
		plans = append(plans, detour{route: id, roads: path.Roads})
	}

	// 2) Splice every detour, then drop the road.
	for _, p := range plans {
		idx, err := m.g.RemoveRouteRoad(p.route, rid)
		if err != nil {
			return err
		}
		if err = m.g.InsertRouteRoads(p.route, idx, p.roads); err != nil {
			return err
		}
	}

	return m.g.DeleteRoad(rid)
}
