// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroutes/core"
)

func TestGraph_CitiesAreDense(t *testing.T) {
	g := core.NewGraph()
	a := g.AddCity("A")
	b := g.AddCity("B")

	assert.Equal(t, core.CityID(0), a)
	assert.Equal(t, core.CityID(1), b)
	assert.Equal(t, 2, g.CityCount())
	assert.Equal(t, "B", g.CityName(b))
	assert.Equal(t, "", g.CityName(7))

	_, err := g.City(2)
	assert.ErrorIs(t, err, core.ErrCityNotFound)
	_, err = g.City(-1)
	assert.ErrorIs(t, err, core.ErrCityNotFound)
}

func TestGraph_AddRoadConstraints(t *testing.T) {
	f := newFixture(t, "A", "B")
	a, b := f.ids["A"], f.ids["B"]

	_, err := f.g.AddRoad(a, a, Len1, Year2000)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	_, err = f.g.AddRoad(a, b, 0, Year2000)
	assert.ErrorIs(t, err, core.ErrBadLength)
	_, err = f.g.AddRoad(a, b, Len1, 0)
	assert.ErrorIs(t, err, core.ErrBadYear)
	_, err = f.g.AddRoad(a, 9, Len1, Year2000)
	assert.ErrorIs(t, err, core.ErrCityNotFound)

	rid, err := f.g.AddRoad(a, b, Len10, Year2000)
	require.NoError(t, err)
	_, err = f.g.AddRoad(b, a, Len5, Year2010)
	assert.ErrorIs(t, err, core.ErrRoadExists, "reverse pair is the same road")

	got, ok := f.g.RoadBetween(b, a)
	require.True(t, ok)
	assert.Equal(t, rid, got)
	assert.Equal(t, []core.RoadID{rid}, f.g.IncidentRoads(a))
	assert.Equal(t, []core.RoadID{rid}, f.g.IncidentRoads(b))
	mustValid(t, f.g)
}

func TestGraph_RoadGeometry(t *testing.T) {
	f := chain(t, "A", "B", "C")
	ab, bc := f.r("A", "B"), f.r("B", "C")

	other, ok := f.g.ConnectedCity(ab, f.ids["A"])
	require.True(t, ok)
	assert.Equal(t, f.ids["B"], other)
	_, ok = f.g.ConnectedCity(ab, f.ids["C"])
	assert.False(t, ok)

	common, ok := f.g.CommonCity(ab, bc)
	require.True(t, ok)
	assert.Equal(t, f.ids["B"], common)

	first, ok := f.g.FirstDifferentCity(ab, bc)
	require.True(t, ok)
	assert.Equal(t, f.ids["A"], first)
	first, ok = f.g.FirstDifferentCity(bc, ab)
	require.True(t, ok)
	assert.Equal(t, f.ids["C"], first)

	d := f.g.AddCity("D")
	cd, err := f.g.AddRoad(f.ids["C"], d, Len1, Year2000)
	require.NoError(t, err)
	_, ok = f.g.CommonCity(ab, cd)
	assert.False(t, ok)
}

func TestGraph_SetRoadYearAndDelete(t *testing.T) {
	f := chain(t, "A", "B", "C")
	ab := f.r("A", "B")

	require.NoError(t, f.g.SetRoadYear(ab, Year2010))
	r, err := f.g.Road(ab)
	require.NoError(t, err)
	assert.Equal(t, Year2010, r.Year)
	assert.ErrorIs(t, f.g.SetRoadYear(ab, 0), core.ErrBadYear)

	require.NoError(t, f.g.DeleteRoad(ab))
	_, err = f.g.Road(ab)
	assert.ErrorIs(t, err, core.ErrRoadNotFound)
	assert.Empty(t, f.g.IncidentRoads(f.ids["A"]))
	assert.Equal(t, []core.RoadID{f.r("B", "C")}, f.g.IncidentRoads(f.ids["B"]))
	assert.ErrorIs(t, f.g.DeleteRoad(ab), core.ErrRoadNotFound)

	// ids are never reused
	again, err := f.g.AddRoad(f.ids["A"], f.ids["B"], Len1, Year2000)
	require.NoError(t, err)
	assert.NotEqual(t, ab, again)
	mustValid(t, f.g)
}

func TestGraph_DeleteRoadInUse(t *testing.T) {
	f := chain(t, "A", "B")
	ab := f.r("A", "B")
	require.NoError(t, f.g.AddRoute(1, f.ids["A"], f.ids["B"], []core.RoadID{ab}))

	assert.ErrorIs(t, f.g.DeleteRoad(ab), core.ErrRoadInUse)
	require.NoError(t, f.g.RemoveRoute(1))
	require.NoError(t, f.g.DeleteRoad(ab))
	mustValid(t, f.g)
}

func TestGraph_AddRouteOrientation(t *testing.T) {
	f := chain(t, "A", "B", "C", "D")
	fwd := []core.RoadID{f.r("A", "B"), f.r("B", "C"), f.r("C", "D")}
	rev := []core.RoadID{f.r("C", "D"), f.r("B", "C"), f.r("A", "B")}

	require.NoError(t, f.g.AddRoute(1, f.ids["A"], f.ids["D"], fwd))
	require.NoError(t, f.g.AddRoute(2, f.ids["A"], f.ids["D"], rev))

	for _, id := range []core.RouteID{1, 2} {
		cities, err := f.g.RouteCities(id)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, f.names(cities), "route %d", id)
	}
	r, _ := f.g.Road(f.r("B", "C"))
	assert.ElementsMatch(t, []core.RouteID{1, 2}, r.Routes())
	assert.Equal(t, []core.RouteID{1, 2}, f.g.RouteIDs())
	mustValid(t, f.g)
}

func TestGraph_AddRouteErrors(t *testing.T) {
	f := chain(t, "A", "B", "C")
	a, c := f.ids["A"], f.ids["C"]
	path := []core.RoadID{f.r("A", "B"), f.r("B", "C")}

	assert.ErrorIs(t, f.g.AddRoute(0, a, c, path), core.ErrBadRouteID)
	assert.ErrorIs(t, f.g.AddRoute(1000, a, c, path), core.ErrBadRouteID)
	assert.ErrorIs(t, f.g.AddRoute(3, a, c, nil), core.ErrBrokenPath)
	assert.ErrorIs(t, f.g.AddRoute(3, a, f.ids["B"], path), core.ErrBrokenPath, "wrong end")
	assert.ErrorIs(t, f.g.AddRoute(3, a, c, []core.RoadID{f.r("A", "B"), f.r("A", "B")}), core.ErrBrokenPath)

	require.NoError(t, f.g.AddRoute(3, a, c, path))
	assert.ErrorIs(t, f.g.AddRoute(3, a, c, path), core.ErrRouteExists)
	assert.Equal(t, 1, f.g.RouteCount())
	mustValid(t, f.g)
}

func TestGraph_InsertRouteRoads_AppendAndPrepend(t *testing.T) {
	f := chain(t, "X", "A", "B", "C", "Y")
	require.NoError(t, f.g.AddRoute(5, f.ids["A"], f.ids["B"], []core.RoadID{f.r("A", "B")}))

	// append B–C–Y given in reverse orientation
	require.NoError(t, f.g.InsertRouteRoads(5, 1, []core.RoadID{f.r("C", "Y"), f.r("B", "C")}))
	rt, _ := f.g.Route(5)
	assert.Equal(t, f.ids["A"], rt.Start)
	assert.Equal(t, f.ids["Y"], rt.End)

	// prepend X–A
	require.NoError(t, f.g.InsertRouteRoads(5, 0, []core.RoadID{f.r("X", "A")}))
	cities, err := f.g.RouteCities(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "A", "B", "C", "Y"}, f.names(cities))
	assert.Equal(t, f.ids["X"], rt.Start)
	assert.Equal(t, 4, rt.Len())
	assert.Equal(t, 2, f.g.RouteCityIndex(5, f.ids["B"]))
	assert.Equal(t, -1, f.g.RouteCityIndex(5, 99))
	mustValid(t, f.g)
}

func TestGraph_RemoveAndRefillGap(t *testing.T) {
	// A–B–C with a detour B–D–C
	f := chain(t, "A", "B", "C")
	f.ids["D"] = f.g.AddCity("D")
	f.road(t, "B", "D", Len5, Year1990)
	f.road(t, "D", "C", Len5, Year1990)
	require.NoError(t, f.g.AddRoute(1, f.ids["A"], f.ids["C"], []core.RoadID{f.r("A", "B"), f.r("B", "C")}))

	first, ok := f.g.RouteFirstOf(1, f.ids["C"], f.ids["B"])
	require.True(t, ok)
	assert.Equal(t, f.ids["B"], first)

	idx, err := f.g.RemoveRouteRoad(1, f.r("B", "C"))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	require.NoError(t, f.g.InsertRouteRoads(1, idx, []core.RoadID{f.r("D", "C"), f.r("B", "D")}))

	cities, err := f.g.RouteCities(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, f.names(cities))
	require.NoError(t, f.g.DeleteRoad(f.r("B", "C")))
	mustValid(t, f.g)
}

func TestGraph_RefillOnlyRoad(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.road(t, "A", "B", Len1, Year2000)
	f.road(t, "A", "C", Len1, Year2000)
	f.road(t, "C", "B", Len1, Year2000)
	require.NoError(t, f.g.AddRoute(9, f.ids["A"], f.ids["B"], []core.RoadID{f.r("A", "B")}))

	idx, err := f.g.RemoveRouteRoad(9, f.r("A", "B"))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.NoError(t, f.g.InsertRouteRoads(9, idx, []core.RoadID{f.r("C", "B"), f.r("A", "C")}))

	cities, err := f.g.RouteCities(9)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, f.names(cities))
	rt, _ := f.g.Route(9)
	assert.Equal(t, f.ids["B"], rt.End)
}

func TestGraph_InsertRouteRoadsRejectsLoops(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.road(t, "A", "B", Len1, Year2000)
	f.road(t, "B", "C", Len1, Year2000)
	f.road(t, "C", "A", Len1, Year2000)
	require.NoError(t, f.g.AddRoute(1, f.ids["A"], f.ids["C"], []core.RoadID{f.r("A", "B"), f.r("B", "C")}))

	err := f.g.InsertRouteRoads(1, 2, []core.RoadID{f.r("C", "A")})
	assert.ErrorIs(t, err, core.ErrBrokenPath)
	assert.ErrorIs(t, f.g.InsertRouteRoads(1, 5, []core.RoadID{f.r("C", "A")}), core.ErrBadIndex)

	cities, _ := f.g.RouteCities(1)
	assert.Equal(t, []string{"A", "B", "C"}, f.names(cities), "failed insert leaves route unchanged")
	mustValid(t, f.g)
}

func TestGraph_RemoveRoute(t *testing.T) {
	f := chain(t, "A", "B", "C")
	require.NoError(t, f.g.AddRoute(2, f.ids["A"], f.ids["C"], []core.RoadID{f.r("A", "B"), f.r("B", "C")}))
	require.NoError(t, f.g.RemoveRoute(2))

	assert.False(t, f.g.HasRoute(2))
	assert.ErrorIs(t, f.g.RemoveRoute(2), core.ErrRouteNotFound)
	r, _ := f.g.Road(f.r("A", "B"))
	assert.Empty(t, r.Routes())
	assert.Equal(t, 2, f.g.RoadCount())
	mustValid(t, f.g)
}
