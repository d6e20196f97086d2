package roadmap_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/core"
	"github.com/katalvlaran/cityroutes/dijkstra"
	"github.com/katalvlaran/cityroutes/roadmap"
	"github.com/katalvlaran/cityroutes/trie"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want roadmap.Kind
	}{
		{nil, roadmap.KindNone},
		{trie.ErrInvalidName, roadmap.KindValidation},
		{fmt.Errorf("%w: 0", core.ErrBadRouteID), roadmap.KindValidation},
		{roadmap.ErrBadSequence, roadmap.KindValidation},
		{core.ErrSelfLoop, roadmap.KindConflict},
		{fmt.Errorf("wrap: %w", core.ErrRoadExists), roadmap.KindConflict},
		{roadmap.ErrYearRegression, roadmap.KindConflict},
		{core.ErrRouteNotFound, roadmap.KindNotFound},
		{fmt.Errorf("route 3: %w", dijkstra.ErrAmbiguous), roadmap.KindAmbiguous},
		{dijkstra.ErrUnreachable, roadmap.KindUnreachable},
		{core.ErrArenaFull, roadmap.KindResource},
		{errors.New("boom"), roadmap.KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roadmap.KindOf(tc.err), "err=%v", tc.err)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", roadmap.KindNotFound.String())
	assert.Equal(t, "none", roadmap.KindNone.String())
	assert.Equal(t, "unknown", roadmap.Kind(42).String())
}

func TestWithLogger_RecordsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := roadmap.New(roadmap.WithLogger(log))

	require.NoError(t, m.AddRoad("A", "B", 1, 2000))
	require.Error(t, m.AddRoad("A", "B", 1, 2000))

	out := buf.String()
	assert.Contains(t, out, `"msg":"operation applied"`)
	assert.Contains(t, out, `"msg":"operation rejected"`)
	assert.Contains(t, out, `"kind":"conflict"`)
	assert.Contains(t, out, `"op":"addRoad"`)
}

// TestConcurrentOperations ensures the Map lock serialises mixed callers.
func TestConcurrentOperations(t *testing.T) {
	m := roadmap.New()
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			a, b := fmt.Sprintf("S%d", i), fmt.Sprintf("T%d", i)
			assert.NoError(t, m.AddRoad("Hub", a, 1, 2000))
			assert.NoError(t, m.AddRoad(a, b, 1, 2000))
			assert.NoError(t, m.NewRoute(uint32(i+1), "Hub", b))
			_ = m.RouteDescription(uint32(i + 1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, roadmap.Stats{Cities: 1 + 2*workers, Roads: 2 * workers, Routes: workers}, m.Stats())
	require.NoError(t, m.Validate())
}
