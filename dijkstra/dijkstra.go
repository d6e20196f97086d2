// Package dijkstra implements the single-pair route search over a core.Graph.
//
// ShortestPath runs Dijkstra's algorithm from Source under the lexicographic
// Distance order, stops as soon as Target is settled, then walks back from
// Target to recover the road sequence. At every backtrack step exactly one
// incident road must produce the optimal distance of the current city; a tie
// means the optimum is not unique and the search reports ErrAmbiguous.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each city is settled at most once.
//   - Each road relaxation may push one queue entry (lazy decrease-key).
//   - Backtracking visits every road incident to the path once.
//   - Space: O(V + E)
//   - O(V) for the dense distance and settled arrays.
//   - O(E) worst-case queue entries.
package dijkstra

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/pqueue"
)

// ShortestPath computes the unique optimal path from Options.Source to
// Options.Target in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source and Target must be cities of g (ErrCityNotFound).
//  3. Source and Target must differ (ErrSameEndpoints).
//
// Outcomes:
//
//   - (Path, nil):            the unique optimum, roads ordered Source→Target.
//   - (Path{Distance}, ErrAmbiguous): the optimum exists but is not unique.
//   - (Path{Unreachable}, ErrUnreachable): forbidden cities or closed roads cut
//     Target off from Source.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, opts ...Option) (Path, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Path{}, ErrNilGraph
	}
	n := g.CityCount()
	if cfg.Source < 0 || int(cfg.Source) >= n {
		return Path{}, fmt.Errorf("%w: source=%d", ErrCityNotFound, cfg.Source)
	}
	if cfg.Target < 0 || int(cfg.Target) >= n {
		return Path{}, fmt.Errorf("%w: target=%d", ErrCityNotFound, cfg.Target)
	}
	if cfg.Source == cfg.Target {
		return Path{}, fmt.Errorf("%w: city=%d", ErrSameEndpoints, cfg.Source)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]Distance, n),
		settled: make([]bool, n),
		closed:  make(map[core.RoadID]struct{}, len(cfg.Closed)),
		pq:      pqueue.New(compareItems),
	}
	r.init()
	r.process()

	// 4) Reconstruct
	best := r.dist[cfg.Target]
	if !best.Reachable {
		return Path{Distance: Unreachable}, fmt.Errorf("%w: %d→%d", ErrUnreachable, cfg.Source, cfg.Target)
	}
	roads, err := r.backtrack()
	if err != nil {
		return Path{Distance: best}, err
	}

	return Path{Roads: roads, Distance: best}, nil
}

// runner holds the mutable state for a single search.
// settled is true once a city's distance is final; forbidden cities start settled
// at Unreachable so they are never entered.
type runner struct {
	g       *core.Graph
	options Options
	dist    []Distance
	settled []bool
	closed  map[core.RoadID]struct{}
	pq      *pqueue.PriorityQueue[item]
}

// item is a queue entry; stale entries are skipped when popped.
type item struct {
	city core.CityID
	dist Distance
}

func compareItems(a, b item) int { return Compare(a.dist, b.dist) }

// init marks forbidden cities, records closed roads and seeds the source.
func (r *runner) init() {
	for _, c := range r.options.Forbidden {
		if c >= 0 && int(c) < len(r.settled) && c != r.options.Source {
			r.settled[c] = true
		}
	}
	for _, rid := range r.options.Closed {
		r.closed[rid] = struct{}{}
	}
	r.dist[r.options.Source] = Origin
	r.pq.Push(item{city: r.options.Source, dist: Origin})
}

// process settles cities in Distance order until the target is settled or
// the queue drains.
func (r *runner) process() {
	for {
		it, ok := r.pq.Pop()
		if !ok {
			return
		}
		if r.settled[it.city] {
			continue
		}
		r.settled[it.city] = true
		if it.city == r.options.Target {
			return
		}
		r.relax(it.city)
	}
}

// relax improves the distance of every unsettled neighbour of u.
func (r *runner) relax(u core.CityID) {
	for _, rid := range r.g.IncidentRoads(u) {
		road, v, ok := r.traverse(rid, u)
		if !ok {
			continue
		}
		if r.settled[v] {
			continue
		}
		cand := r.dist[u].Extend(road.Length, road.Year)
		if Compare(cand, r.dist[v]) >= 0 {
			continue
		}
		r.dist[v] = cand
		r.pq.Push(item{city: v, dist: cand})
	}
}

// backtrack walks from the target to the source, choosing at every city the
// unique incident road whose settled far end yields the city's distance.
func (r *runner) backtrack() ([]core.RoadID, error) {
	var roads []core.RoadID
	cur := r.options.Target
	for cur != r.options.Source {
		var (
			best  = Unreachable
			via   core.RoadID
			from  core.CityID
			count int
		)
		for _, rid := range r.g.IncidentRoads(cur) {
			road, w, ok := r.traverse(rid, cur)
			if !ok || !r.settled[w] || !r.dist[w].Reachable {
				continue
			}
			cand := r.dist[w].Extend(road.Length, road.Year)
			switch c := Compare(cand, best); {
			case c < 0:
				best, via, from, count = cand, rid, w, 1
			case c == 0 && best.Reachable:
				count++
			}
		}
		if count == 0 || Compare(best, r.dist[cur]) != 0 {
			return nil, fmt.Errorf("%w: no predecessor for city %d", ErrUnreachable, cur)
		}
		if count > 1 {
			return nil, fmt.Errorf("%w: %d roads into city %d tie at %s", ErrAmbiguous, count, cur, best)
		}
		roads = append(roads, via)
		cur = from
	}
	slices.Reverse(roads)

	return roads, nil
}

// traverse resolves rid for a step out of c, skipping closed roads.
func (r *runner) traverse(rid core.RoadID, c core.CityID) (*core.Road, core.CityID, bool) {
	if _, shut := r.closed[rid]; shut {
		return nil, core.NoCity, false
	}
	road, err := r.g.Road(rid)
	if err != nil {
		return nil, core.NoCity, false
	}
	other, ok := road.Other(c)

	return road, other, ok
}
