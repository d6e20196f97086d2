// Package dijkstra finds the unique best path between two cities of a
// core.Graph under a two-level cost.
//
// Overview:
//
//   - A path's cost is its Distance: total Length first, then the Year of its
//     oldest road, where a newer oldest road is better.
//   - ShortestPath settles cities in Distance order using pqueue.PriorityQueue
//     and stops when the Target is settled.
//   - The result is required to be unique: when two roads into any city of the
//     backtracked path tie at the optimal Distance, the search fails with
//     ErrAmbiguous instead of picking one arbitrarily.
//
// When to use:
//
//   - Creating a route between two cities (roadmap.NewRoute).
//   - Extending a route to a new endpoint without re-entering its own cities
//     (roadmap.ExtendRoute with WithForbidden).
//   - Finding a detour around a road that is about to be removed
//     (roadmap.RemoveRoad with WithClosedRoads and WithForbidden).
//
// Key features:
//
//   - Functional options keep the call site declarative.
//   - Forbidden cities are pre-marked as settled at Unreachable, so the search
//     never enters them; the Source is exempt.
//   - Closed roads are ignored for one search without mutating the graph.
//   - Dense []Distance / []bool state indexed by core.CityID.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      nil graph.
//   - ErrCityNotFound:  Source or Target outside the graph.
//   - ErrSameEndpoints: Source == Target.
//   - ErrUnreachable:   no admissible path.
//   - ErrAmbiguous:     the optimum is not unique; Path.Distance is still set.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, opts ...Option) (Path, error)
//
//	  - opts:
//	      • Source(core.CityID):            required.
//	      • Target(core.CityID):            required.
//	      • WithForbidden(...core.CityID):  cities the path may not visit.
//	      • WithClosedRoads(...core.RoadID): roads ignored by this search.
//
// Thread safety:
//
//   - ShortestPath only reads g. Callers must not mutate g concurrently;
//     roadmap.Map serializes all access under its lock.
package dijkstra
