// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cityroutes/core.
//
// Purpose:
//   - Provide small deterministic fixtures (named cities, chains of roads).
//   - Keep fixture ids readable in failure output.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroutes/core"
)

// Common years and lengths used across core tests.
const (
	Year1990 int32 = 1990
	Year2000 int32 = 2000
	Year2010 int32 = 2010

	Len1  uint32 = 1
	Len5  uint32 = 5
	Len10 uint32 = 10
)

// fixture bundles a graph with its cities addressed by name.
type fixture struct {
	g     *core.Graph
	ids   map[string]core.CityID
	roads map[[2]string]core.RoadID
}

// newFixture creates one city per name, in order.
func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()
	f := &fixture{
		g:     core.NewGraph(),
		ids:   make(map[string]core.CityID, len(names)),
		roads: make(map[[2]string]core.RoadID),
	}
	for _, n := range names {
		f.ids[n] = f.g.AddCity(n)
	}

	return f
}

// road adds a road a–b and records it under both orderings.
func (f *fixture) road(t *testing.T, a, b string, length uint32, year int32) core.RoadID {
	t.Helper()
	rid, err := f.g.AddRoad(f.ids[a], f.ids[b], length, year)
	require.NoError(t, err, "AddRoad(%s,%s)", a, b)
	f.roads[[2]string{a, b}] = rid
	f.roads[[2]string{b, a}] = rid

	return rid
}

// r returns the recorded road a–b.
func (f *fixture) r(a, b string) core.RoadID { return f.roads[[2]string{a, b}] }

// names maps city ids back to names.
func (f *fixture) names(ids []core.CityID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = f.g.CityName(id)
	}

	return out
}

// chain builds the path names[0]–names[1]–…, every road length Len1, year Year2000.
func chain(t *testing.T, names ...string) *fixture {
	t.Helper()
	f := newFixture(t, names...)
	for i := 1; i < len(names); i++ {
		f.road(t, names[i-1], names[i], Len1, Year2000)
	}

	return f
}

// mustValid asserts every arena invariant.
func mustValid(t *testing.T, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
}
