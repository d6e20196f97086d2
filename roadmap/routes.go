// File: routes.go
// Role: Route operations: NewRoute, ExtendRoute, ExactRoute, RemoveRoute,
//       RouteDescription.
// Determinism:
//   - Paths come from dijkstra.ShortestPath, which rejects non-unique optima.
//   - ExtendRoute prefers the strictly better of the two ends and fails on a tie.

package roadmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/dijkstra"
	"github.com/katalvlaran/cityroutes/trie"
)

// NewRoute creates route id as the unique best path from city1 to city2.
//
// Errors: core.ErrBadRouteID, core.ErrRouteExists, trie.ErrInvalidName,
// core.ErrCityNotFound, ErrSameCity, dijkstra.ErrAmbiguous, dijkstra.ErrUnreachable.
func (m *Map) NewRoute(id uint32, city1, city2 string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("newRoute", m.newRoute(core.RouteID(id), city1, city2),
		"route", id, "city1", city1, "city2", city2)
}

func (m *Map) newRoute(id core.RouteID, city1, city2 string) error {
	if err := m.freeRouteID(id); err != nil {
		return err
	}
	a, b, err := m.pair(city1, city2)
	if err != nil {
		return err
	}
	path, err := dijkstra.ShortestPath(m.g, dijkstra.Source(a), dijkstra.Target(b))
	if err != nil {
		return err
	}

	return m.g.AddRoute(id, a, b, path.Roads)
}

// ExtendRoute lengthens route id so that it ends (or starts) at city. Both
// ends are tried, each avoiding every other city of the route; the strictly
// better connection is spliced on. The call fails if either end has more
// than one best connection.
//
// Errors: core.ErrBadRouteID, core.ErrRouteNotFound, trie.ErrInvalidName,
// core.ErrCityNotFound, ErrCityOnRoute, dijkstra.ErrAmbiguous (at either end,
// or a tie between the two ends), dijkstra.ErrUnreachable.
func (m *Map) ExtendRoute(id uint32, city string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("extendRoute", m.extendRoute(core.RouteID(id), city), "route", id, "city", city)
}

func (m *Map) extendRoute(id core.RouteID, city string) error {
	if !core.ValidRouteID(id) {
		return fmt.Errorf("%w: %d", core.ErrBadRouteID, id)
	}
	rt, err := m.g.Route(id)
	if err != nil {
		return err
	}
	c, err := m.city(city)
	if err != nil {
		return err
	}
	cities, err := m.g.RouteCities(id)
	if err != nil {
		return err
	}
	if m.g.RouteCityIndex(id, c) >= 0 {
		return fmt.Errorf("%w: %q on route %d", ErrCityOnRoute, city, id)
	}

	head, headErr := dijkstra.ShortestPath(m.g,
		dijkstra.Source(c),
		dijkstra.Target(rt.Start),
		dijkstra.WithForbidden(lo.Without(cities, rt.Start)...),
	)
	tail, tailErr := dijkstra.ShortestPath(m.g,
		dijkstra.Source(rt.End),
		dijkstra.Target(c),
		dijkstra.WithForbidden(lo.Without(cities, rt.End)...),
	)
	atHead, err := pickEnd(head, headErr, tail, tailErr)
	if err != nil {
		return err
	}
	if atHead {
		return m.g.InsertRouteRoads(id, 0, head.Roads)
	}

	return m.g.InsertRouteRoads(id, rt.Len(), tail.Roads)
}

// pickEnd chooses between the head and tail extension. It reports true for
// the head. An ambiguous search at either end fails the extension; an
// unreachable end is simply not a candidate.
func pickEnd(head dijkstra.Path, headErr error, tail dijkstra.Path, tailErr error) (bool, error) {
	for _, err := range []error{headErr, tailErr} {
		if err != nil && !errors.Is(err, dijkstra.ErrUnreachable) {
			return false, err
		}
	}
	switch c := dijkstra.Compare(head.Distance, tail.Distance); {
	case !head.Distance.Reachable && !tail.Distance.Reachable:
		return false, headErr
	case c == 0:
		return false, fmt.Errorf("%w: both ends tie at %s", dijkstra.ErrAmbiguous, head.Distance)
	default:
		return c < 0, nil
	}
}

// ExactRoute creates route id over the given city sequence. lengths[i] and
// years[i] describe the road from cities[i] to cities[i+1]. An existing road
// is reused when its length matches and its year is not newer than stated;
// its year is then set to the stated one. Missing cities and roads are created.
// Nothing is created when the call fails.
//
// Errors: core.ErrBadRouteID, core.ErrRouteExists, ErrBadSequence,
// trie.ErrInvalidName, ErrRepeatedCity, core.ErrBadLength, core.ErrBadYear,
// ErrLengthMismatch, ErrYearRegression, core.ErrArenaFull.
func (m *Map) ExactRoute(id uint32, cities []string, lengths []uint32, years []int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("exactRoute", m.exactRoute(core.RouteID(id), cities, lengths, years),
		"route", id, "cities", len(cities))
}

func (m *Map) exactRoute(id core.RouteID, cities []string, lengths []uint32, years []int32) error {
	// 1) Validate the request on its own.
	if err := m.freeRouteID(id); err != nil {
		return err
	}
	if len(cities) < 2 || len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return fmt.Errorf("%w: %d cities, %d lengths, %d years", ErrBadSequence, len(cities), len(lengths), len(years))
	}
	for _, name := range cities {
		if !trie.ValidName(name) {
			return fmt.Errorf("%w: %q", trie.ErrInvalidName, name)
		}
	}
	if dup := lo.FindDuplicates(cities); len(dup) > 0 {
		return fmt.Errorf("%w: %q", ErrRepeatedCity, dup[0])
	}
	for i := range lengths {
		if lengths[i] == 0 {
			return fmt.Errorf("%w: segment %d", core.ErrBadLength, i)
		}
		if years[i] == 0 {
			return fmt.Errorf("%w: segment %d", core.ErrBadYear, i)
		}
	}

	// 2) Validate against existing roads.
	fresh := 0
	for i := 1; i < len(cities); i++ {
		rid, ok := m.existingRoad(cities[i-1], cities[i])
		if !ok {
			fresh++
			continue
		}
		r, _ := m.g.Road(rid)
		if r.Length != lengths[i-1] {
			return fmt.Errorf("%w: %q-%q is %d, stated %d", ErrLengthMismatch, cities[i-1], cities[i], r.Length, lengths[i-1])
		}
		if r.Year > years[i-1] {
			return fmt.Errorf("%w: %q-%q is %d, stated %d", ErrYearRegression, cities[i-1], cities[i], r.Year, years[i-1])
		}
	}
	if m.g.RoadCapacity() < fresh || m.g.CityCount()+len(cities) > core.MaxCities {
		return core.ErrArenaFull
	}

	// 3) Commit.
	ids := make([]core.CityID, len(cities))
	for i, name := range cities {
		c, err := m.ensureCity(name)
		if err != nil {
			return err
		}
		ids[i] = c
	}
	roads := make([]core.RoadID, 0, len(cities)-1)
	for i := 1; i < len(ids); i++ {
		rid, ok := m.g.RoadBetween(ids[i-1], ids[i])
		var err error
		if ok {
			err = m.g.SetRoadYear(rid, years[i-1])
		} else {
			rid, err = m.g.AddRoad(ids[i-1], ids[i], lengths[i-1], years[i-1])
		}
		if err != nil {
			return err
		}
		roads = append(roads, rid)
	}

	return m.g.AddRoute(id, ids[0], ids[len(ids)-1], roads)
}

// existingRoad looks up the road between two names without creating anything.
func (m *Map) existingRoad(city1, city2 string) (core.RoadID, bool) {
	a, aok := m.names.Lookup(city1)
	b, bok := m.names.Lookup(city2)
	if !aok || !bok {
		return 0, false
	}

	return m.g.RoadBetween(core.CityID(a), core.CityID(b))
}

// RemoveRoute deletes route id. Roads and cities stay.
//
// Errors: core.ErrBadRouteID, core.ErrRouteNotFound.
func (m *Map) RemoveRoute(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.done("removeRoute", m.removeRoute(core.RouteID(id)), "route", id)
}

func (m *Map) removeRoute(id core.RouteID) error {
	if !core.ValidRouteID(id) {
		return fmt.Errorf("%w: %d", core.ErrBadRouteID, id)
	}

	return m.g.RemoveRoute(id)
}

// RouteDescription renders route id as
// "id;city;length;year;city;...;length;year;city", walking from its start.
// A missing or out-of-range route yields "".
func (m *Map) RouteDescription(id uint32) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, err := m.routeInfo(core.RouteID(id))
	if err != nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(info.ID), 10))
	for i, r := range info.Roads {
		sb.WriteByte(';')
		sb.WriteString(info.Cities[i])
		sb.WriteByte(';')
		sb.WriteString(strconv.FormatUint(uint64(r.Length), 10))
		sb.WriteByte(';')
		sb.WriteString(strconv.FormatInt(int64(r.Year), 10))
	}
	sb.WriteByte(';')
	sb.WriteString(info.Cities[len(info.Cities)-1])

	return sb.String()
}

// freeRouteID checks that id is in range and unused.
func (m *Map) freeRouteID(id core.RouteID) error {
	if !core.ValidRouteID(id) {
		return fmt.Errorf("%w: %d", core.ErrBadRouteID, id)
	}
	if m.g.HasRoute(id) {
		return fmt.Errorf("%w: %d", core.ErrRouteExists, id)
	}

	return nil
}
