// Package roadmap maintains a road network of named cities and the numbered
// routes laid over it.
//
// A Map owns a core.Graph arena, the trie name index and a logger. Its
// operations mirror the command language read by the batch runner:
//
//	AddRoad(city1, city2, length, year)        // creates missing cities
//	RepairRoad(city1, city2, year)             // year may not go back
//	RemoveRoad(city1, city2)                   // reroutes every route using it
//	NewRoute(id, city1, city2)                 // unique best path
//	ExtendRoute(id, city)                      // better of the two ends
//	ExactRoute(id, cities, lengths, years)     // route over given roads
//	RemoveRoute(id)
//	RouteDescription(id) string                // "" when absent
//
// Paths are ranked by total length, then by the year of their oldest road
// (newer wins). A query whose optimum is not unique fails with
// dijkstra.ErrAmbiguous.
//
// Atomicity: every operation validates completely before its first write,
// so a failed call leaves the map exactly as it was. In particular ExactRoute
// and AddRoad never leave behind cities created for a request that failed.
//
// Errors wrap sentinels from core, trie, dijkstra and this package; KindOf
// maps any of them to a Kind for reporting.
//
// Concurrency: a Map is safe for concurrent use. Each operation holds one
// exclusive lock for its whole duration.
package roadmap
