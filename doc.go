// Package cityroutes maintains a network of cities, roads and numbered
// national routes, and keeps every route valid as the network changes.
//
// A road joins two cities and carries a length and the year it was built or
// last repaired. A route is a simple path between two cities. Routes are
// created over the unique best path, where "best" means shortest in total
// length and, among equally short paths, the one whose oldest road is newest.
// When a road is removed every route through it is rerouted the same way, or
// the removal is refused.
//
// Packages, bottom up:
//
//	pqueue/    binary heap used by the path search
//	trie/      exact-match city name index
//	core/      arena of cities, roads and routes with their invariants
//	dijkstra/  lexicographic shortest path with ambiguity detection
//	roadmap/   Map: the eight operations, all-or-nothing, one lock
//	command/   parser for the ';'-separated line language
//	batch/     line interpreter printing descriptions and ERROR lines
//	httpapi/   JSON over HTTP with Prometheus metrics
//	config/    YAML configuration
//	logging/   slog handlers
//	cmd/cityroutes  the binary
//
// Quick example:
//
//	m := roadmap.New()
//	_ = m.AddRoad("A", "B", 10, 2000)
//	_ = m.AddRoad("B", "C", 5, 2010)
//	_ = m.NewRoute(1, "A", "C")
//	fmt.Println(m.RouteDescription(1)) // 1;A;10;2000;B;5;2010;C
package cityroutes
