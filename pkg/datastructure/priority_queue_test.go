package datastructure_test

import (
	"lintang/campusnav/pkg/datastructure"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T string | int32](t *testing.T, pq *datastructure.MinHeap[T]) []datastructure.PriorityQueueNode[T] {
	t.Helper()
	out := []datastructure.PriorityQueueNode[T]{}
	for !pq.IsEmpty() {
		n, err := pq.ExtractMin()
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestMinHeap(t *testing.T) {
	t.Run("extract in rank order", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		for name, rank := range map[string]float64{"C": 3, "A": 7, "E": 1, "B": 4, "D": 2} {
			require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: rank, Item: name}))
		}
		assert.Equal(t, 5, pq.Size())

		top, err := pq.GetMin()
		require.NoError(t, err)
		assert.Equal(t, "E", top.Item)

		got := []string{}
		for _, n := range drain(t, pq) {
			got = append(got, n.Item)
		}
		assert.Equal(t, []string{"E", "D", "C", "B", "A"}, got)
	})

	t.Run("rank tie goes to smaller item", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		for _, name := range []string{"K", "B", "S", "A"} {
			require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: math.Inf(1), Item: name}))
		}
		require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: 2, Item: "Z"}))
		require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: 2, Item: "H"}))

		got := []string{}
		for _, n := range drain(t, pq) {
			got = append(got, n.Item)
		}
		assert.Equal(t, []string{"H", "Z", "A", "B", "K", "S"}, got)
	})

	t.Run("empty", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		assert.True(t, pq.IsEmpty())
		_, err := pq.ExtractMin()
		assert.ErrorIs(t, err, datastructure.ErrEmptyQueue)
		_, err = pq.GetMin()
		assert.ErrorIs(t, err, datastructure.ErrEmptyQueue)
	})

	t.Run("duplicate insert rejected", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: 1, Item: "A"}))
		err := pq.Insert(datastructure.PriorityQueueNode[string]{Rank: 0, Item: "A"})
		assert.ErrorIs(t, err, datastructure.ErrDuplicateItem)
		assert.Equal(t, 1, pq.Size())

		_, err = pq.ExtractMin()
		require.NoError(t, err)
		assert.False(t, pq.Contains("A"))
		assert.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: 0, Item: "A"}))
	})

	t.Run("decrease key moves item up", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		for i, name := range []string{"A", "B", "C", "D"} {
			require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: float64(10 * (i + 1)), Item: name}))
		}
		require.NoError(t, pq.DecreaseKey(datastructure.PriorityQueueNode[string]{Rank: 5, Item: "D"}))

		n, ok := pq.GetItem("D")
		assert.True(t, ok)
		assert.Equal(t, 5.0, n.Rank)

		top, err := pq.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, "D", top.Item)
		assert.Equal(t, 5.0, top.Rank)
	})

	t.Run("raised key moves item down", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		for i, name := range []string{"A", "B", "C"} {
			require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[string]{Rank: float64(i), Item: name}))
		}
		require.NoError(t, pq.DecreaseKey(datastructure.PriorityQueueNode[string]{Rank: 100, Item: "A"}))

		got := []string{}
		for _, n := range drain(t, pq) {
			got = append(got, n.Item)
		}
		assert.Equal(t, []string{"B", "C", "A"}, got)
	})

	t.Run("decrease key of unknown item", func(t *testing.T) {
		pq := datastructure.NewMinHeap[string]()
		err := pq.DecreaseKey(datastructure.PriorityQueueNode[string]{Rank: 1, Item: "ghost"})
		assert.ErrorIs(t, err, datastructure.ErrItemNotFound)
		_, ok := pq.GetItem("ghost")
		assert.False(t, ok)
	})

	t.Run("random inserts and decrease keys extract non-decreasing", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		for round := 0; round < 50; round++ {
			pq := datastructure.NewMinHeap[int32]()
			n := 1 + rnd.Intn(200)
			for i := 0; i < n; i++ {
				require.NoError(t, pq.Insert(datastructure.PriorityQueueNode[int32]{Rank: rnd.Float64() * 1000, Item: int32(i)}))
			}
			for i := 0; i < n; i++ {
				item := int32(rnd.Intn(n))
				cur, ok := pq.GetItem(item)
				require.True(t, ok)
				require.NoError(t, pq.DecreaseKey(datastructure.PriorityQueueNode[int32]{Rank: cur.Rank * rnd.Float64(), Item: item}))
			}

			out := drain(t, pq)
			require.Len(t, out, n)
			for i := 1; i < len(out); i++ {
				assert.LessOrEqual(t, out[i-1].Rank, out[i].Rank)
			}
		}
	})
}
