// File: methods_cities.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - City ids are dense and follow creation order.
//   - IncidentRoads() returns roads in attachment order.
//
// AI-Hints (file):
//   - Cities are never removed; CityCount() is also the next id to be assigned.
//   - Name uniqueness and the character rule are enforced by the caller's name index.
package core

import "fmt"

// AddCity appends a city named name and returns its id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string) CityID {
	id := CityID(len(g.cities))
	g.cities = append(g.cities, &City{ID: id, Name: name})

	return id
}

// City returns the city record for id (read-only by convention).
// Complexity: O(1).
func (g *Graph) City(id CityID) (*City, error) {
	if !g.hasCity(id) {
		return nil, fmt.Errorf("%w: id=%d", ErrCityNotFound, id)
	}

	return g.cities[id], nil
}

// CityName returns the name of id, or "" when id is unknown.
func (g *Graph) CityName(id CityID) string {
	if !g.hasCity(id) {
		return ""
	}

	return g.cities[id].Name
}

// CityCount returns the number of cities; valid ids are [0, CityCount()).
// Complexity: O(1).
func (g *Graph) CityCount() int { return len(g.cities) }

// IncidentRoads returns the live incident-road slice of city id.
// The slice must not be modified or retained across mutations.
// Unknown ids yield nil.
// Complexity: O(1).
func (g *Graph) IncidentRoads(id CityID) []RoadID {
	if !g.hasCity(id) {
		return nil
	}

	return g.cities[id].roads
}

// Degree returns the number of roads incident to id (0 for unknown ids).
func (g *Graph) Degree(id CityID) int { return len(g.IncidentRoads(id)) }

// RoadBetween returns the road joining a and b, if any.
// Scans the incident list of the endpoint with the smaller degree.
// Complexity: O(min(deg(a), deg(b))).
func (g *Graph) RoadBetween(a, b CityID) (RoadID, bool) {
	if !g.hasCity(a) || !g.hasCity(b) || a == b {
		return 0, false
	}
	from, to := a, b
	if len(g.cities[b].roads) < len(g.cities[a].roads) {
		from, to = b, a
	}
	for _, rid := range g.cities[from].roads {
		if other, ok := g.roads[rid].Other(from); ok && other == to {
			return rid, true
		}
	}

	return 0, false
}

func (g *Graph) hasCity(id CityID) bool {
	return id >= 0 && int(id) < len(g.cities)
}

// attach records rid in the incident list of city.
func (g *Graph) attach(city CityID, rid RoadID) {
	c := g.cities[city]
	c.roads = append(c.roads, rid)
}

// detach removes rid from the incident list of city, preserving order.
func (g *Graph) detach(city CityID, rid RoadID) {
	c := g.cities[city]
	for i, r := range c.roads {
		if r == rid {
			c.roads = append(c.roads[:i], c.roads[i+1:]...)
			return
		}
	}
}
