package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroutes/pqueue"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// pair orders by key only; tag lets tests see which of two equal keys came out.
type pair struct {
	key int
	tag string
}

func pairCmp(a, b pair) int { return intCmp(a.key, b.key) }

func TestPriorityQueue_Empty(t *testing.T) {
	q := pqueue.New(intCmp)

	assert.Equal(t, 0, q.Len())
	_, ok := q.Peek()
	assert.False(t, ok, "Peek on empty queue")
	_, ok = q.Pop()
	assert.False(t, ok, "Pop on empty queue")
	assert.False(t, q.Contains(1))
}

func TestPriorityQueue_NilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() { pqueue.New[int](nil) })
}

func TestPriorityQueue_PopsInOrder(t *testing.T) {
	q := pqueue.New(intCmp)
	in := []int{5, 3, 9, 1, 7, 3, 8, 2, 6, 4, 0}
	for _, v := range in {
		q.Push(v)
	}
	require.Equal(t, len(in), q.Len())

	min, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, min)

	out := make([]int, 0, len(in))
	for q.Len() > 0 {
		v, ok := q.Pop()
		require.True(t, ok)
		out = append(out, v)
	}

	want := append([]int(nil), in...)
	sort.Ints(want)
	assert.Equal(t, want, out)
}

func TestPriorityQueue_InterleavedRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := pqueue.New(intCmp)
	var shadow []int

	for i := 0; i < 2000; i++ {
		if r.Intn(3) > 0 || len(shadow) == 0 {
			v := r.Intn(500)
			q.Push(v)
			shadow = append(shadow, v)
			sort.Ints(shadow)
		} else {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, shadow[0], v, "step %d", i)
			shadow = shadow[1:]
		}
		require.Equal(t, len(shadow), q.Len())
	}
}

func TestPriorityQueue_Contains(t *testing.T) {
	q := pqueue.New(intCmp)
	for _, v := range []int{10, 4, 7, 1, 12, 9} {
		q.Push(v)
	}

	for _, v := range []int{10, 4, 7, 1, 12, 9} {
		assert.True(t, q.Contains(v), "Contains(%d)", v)
	}
	for _, v := range []int{0, 2, 8, 13} {
		assert.False(t, q.Contains(v), "Contains(%d)", v)
	}

	_, _ = q.Pop()
	assert.False(t, q.Contains(1), "popped value must be gone")
}

func TestPriorityQueue_TiesKeepIncumbent(t *testing.T) {
	q := pqueue.New(pairCmp)
	q.Push(pair{1, "first"})
	q.Push(pair{1, "second"})

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "first", v.tag)
	v, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, "second", v.tag)
}

func TestPriorityQueue_Clear(t *testing.T) {
	q := pqueue.New(intCmp)
	q.Push(1)
	q.Push(2)
	q.Clear()

	assert.Equal(t, 0, q.Len())
	q.Push(3)
	v, _ := q.Pop()
	assert.Equal(t, 3, v)
}

func BenchmarkPriorityQueue_PushPop(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	vals := make([]int, 1024)
	for i := range vals {
		vals[i] = r.Int()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New(intCmp)
		for _, v := range vals {
			q.Push(v)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}
