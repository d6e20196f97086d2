// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cityroutes/core"
)

// BenchmarkAddRoad_Star measures adding roads from one hub to fresh cities.
func BenchmarkAddRoad_Star(b *testing.B) {
	g := core.NewGraph()
	hub := g.AddCity("Hub")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := g.AddCity(fmt.Sprintf("N%d", i))
		_, _ = g.AddRoad(hub, c, 1, 2000)
	}
}

// BenchmarkRoadBetween measures the pair lookup on a dense hub.
func BenchmarkRoadBetween(b *testing.B) {
	g := core.NewGraph()
	hub := g.AddCity("Hub")
	leaves := make([]core.CityID, 1000)
	for i := range leaves {
		leaves[i] = g.AddCity(fmt.Sprintf("N%d", i))
		_, _ = g.AddRoad(hub, leaves[i], 1, 2000)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.RoadBetween(leaves[i%len(leaves)], hub)
	}
}

// BenchmarkRouteCities measures walking a long route.
func BenchmarkRouteCities(b *testing.B) {
	g := core.NewGraph()
	prev := g.AddCity("C0")
	start := prev
	roads := make([]core.RoadID, 0, 500)
	for i := 1; i <= 500; i++ {
		c := g.AddCity(fmt.Sprintf("C%d", i))
		rid, _ := g.AddRoad(prev, c, 1, 2000)
		roads = append(roads, rid)
		prev = c
	}
	if err := g.AddRoute(1, start, prev, roads); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.RouteCities(1)
	}
}
