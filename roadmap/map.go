// File: map.go
// Role: Map construction, options, the shared lock, name resolution and
//       read-only queries (Stats, HasCity, Road, Route, Validate).
// Concurrency:
//   - Every exported method takes m.mu for its whole duration; operations
//     never interleave.
// AI-HINT (file):
//   - Mutating operations live in roads.go and routes.go. Each one validates
//     completely before its first write, so a returned error means nothing changed.

package roadmap

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/trie"
)

// Map owns the road network: cities with their name index, roads and routes.
type Map struct {
	mu    sync.Mutex
	g     *core.Graph
	names *trie.Trie
	log   *slog.Logger
}

// Option configures a Map.
type Option func(*Map)

// WithLogger routes operation logs to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Map) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns an empty Map. Logs are discarded unless WithLogger is given.
func New(opts ...Option) *Map {
	m := &Map{
		g:     core.NewGraph(),
		names: trie.New(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Stats summarises the size of the network.
type Stats struct {
	Cities int `json:"cities"`
	Roads  int `json:"roads"`
	Routes int `json:"routes"`
}

// RoadInfo describes one road.
type RoadInfo struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Length uint32   `json:"length"`
	Year   int32    `json:"year"`
	Routes []uint32 `json:"routes,omitempty"`
}

// RouteInfo is a snapshot of a route walked from its start.
// Roads[i] joins Cities[i] and Cities[i+1].
type RouteInfo struct {
	ID     uint32     `json:"id"`
	Cities []string   `json:"cities"`
	Roads  []RoadInfo `json:"roads"`
	Length uint64     `json:"length"`
}

// Stats returns the current city, road and route counts.
func (m *Map) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{Cities: m.g.CityCount(), Roads: m.g.RoadCount(), Routes: m.g.RouteCount()}
}

// HasCity reports whether a city called name exists.
func (m *Map) HasCity(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.names.Lookup(name)

	return ok
}

// Road returns the road between the two named cities, oriented from city1.
func (m *Map) Road(city1, city2 string) (RoadInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, _, rid, err := m.roadBetween(city1, city2)
	if err != nil {
		return RoadInfo{}, err
	}
	r, _ := m.g.Road(rid)

	return m.roadInfo(r, a), nil
}

// Route returns a snapshot of route id.
func (m *Map) Route(id uint32) (RouteInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.routeInfo(core.RouteID(id))
}

// Validate checks every global invariant of the network and of the name index.
func (m *Map) Validate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.g.Validate(); err != nil {
		return err
	}
	if m.names.Len() != m.g.CityCount() {
		return fmt.Errorf("%w: %d names for %d cities", core.ErrInconsistent, m.names.Len(), m.g.CityCount())
	}
	for id := 0; id < m.g.CityCount(); id++ {
		name := m.g.CityName(core.CityID(id))
		if got, ok := m.names.Lookup(name); !ok || got != int32(id) {
			return fmt.Errorf("%w: name %q does not resolve to city %d", core.ErrInconsistent, name, id)
		}
	}

	return nil
}

// city resolves a city name.
func (m *Map) city(name string) (core.CityID, error) {
	if !trie.ValidName(name) {
		return core.NoCity, fmt.Errorf("%w: %q", trie.ErrInvalidName, name)
	}
	id, ok := m.names.Lookup(name)
	if !ok {
		return core.NoCity, fmt.Errorf("%w: %q", core.ErrCityNotFound, name)
	}

	return core.CityID(id), nil
}

// pair resolves two distinct existing cities.
func (m *Map) pair(city1, city2 string) (core.CityID, core.CityID, error) {
	a, err := m.city(city1)
	if err != nil {
		return core.NoCity, core.NoCity, err
	}
	b, err := m.city(city2)
	if err != nil {
		return core.NoCity, core.NoCity, err
	}
	if a == b {
		return core.NoCity, core.NoCity, fmt.Errorf("%w: %q", ErrSameCity, city1)
	}

	return a, b, nil
}

// roadBetween resolves two distinct existing cities and the road joining them.
func (m *Map) roadBetween(city1, city2 string) (core.CityID, core.CityID, core.RoadID, error) {
	a, b, err := m.pair(city1, city2)
	if err != nil {
		return core.NoCity, core.NoCity, 0, err
	}
	rid, ok := m.g.RoadBetween(a, b)
	if !ok {
		return a, b, 0, fmt.Errorf("%w: %q-%q", core.ErrRoadNotFound, city1, city2)
	}

	return a, b, rid, nil
}

// addCity registers a new city under name.
func (m *Map) addCity(name string) (core.CityID, error) {
	if m.g.CityCount() >= core.MaxCities {
		return core.NoCity, core.ErrArenaFull
	}
	id := core.CityID(m.g.CityCount())
	if err := m.names.Insert(name, int32(id)); err != nil {
		return core.NoCity, err
	}

	return m.g.AddCity(name), nil
}

// roadInfo describes r starting from the endpoint from.
func (m *Map) roadInfo(r *core.Road, from core.CityID) RoadInfo {
	a, b := r.A, r.B
	if from == b {
		a, b = b, a
	}
	routes := r.Routes()
	ids := make([]uint32, len(routes))
	for i, id := range routes {
		ids[i] = uint32(id)
	}

	return RoadInfo{From: m.g.CityName(a), To: m.g.CityName(b), Length: r.Length, Year: r.Year, Routes: ids}
}

func (m *Map) routeInfo(id core.RouteID) (RouteInfo, error) {
	rt, err := m.g.Route(id)
	if err != nil {
		return RouteInfo{}, err
	}
	cities, err := m.g.RouteCities(id)
	if err != nil {
		return RouteInfo{}, err
	}
	info := RouteInfo{ID: uint32(id), Cities: make([]string, len(cities))}
	for i, c := range cities {
		info.Cities[i] = m.g.CityName(c)
	}
	for i, rid := range rt.Roads() {
		r, _ := m.g.Road(rid)
		info.Roads = append(info.Roads, m.roadInfo(r, cities[i]))
		info.Length += uint64(r.Length)
	}

	return info, nil
}

// done logs the outcome of op and returns err unchanged.
func (m *Map) done(op string, err error, attrs ...any) error {
	if err != nil {
		m.log.Info("operation rejected", append(attrs, "op", op, "kind", KindOf(err).String(), "err", err)...)
		return err
	}
	m.log.Debug("operation applied", append(attrs, "op", op)...)

	return nil
}
