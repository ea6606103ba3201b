package routingalgorithm_test

import (
	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/engine/routingalgorithm"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	from, to string
	weight   float64
}

func buildGraph(t *testing.T, vertices []string, edges []testEdge) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v, datastructure.NewCoordinate(0, 0), datastructure.Junction))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.weight))
	}
	return g
}

func diamondGraph(t *testing.T) *datastructure.Graph {
	return buildGraph(t, []string{"A", "B", "C", "D"}, []testEdge{
		{"A", "B", 10},
		{"A", "C", 7},
		{"B", "D", 2},
		{"C", "D", 3},
	})
}

func thirteenVertexGraph(t *testing.T) *datastructure.Graph {
	return buildGraph(t,
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "S"},
		[]testEdge{
			{"S", "A", 7}, {"S", "B", 2}, {"S", "C", 3}, {"C", "L", 2},
			{"L", "I", 4}, {"L", "J", 4}, {"I", "J", 6}, {"I", "K", 4},
			{"J", "K", 4}, {"K", "E", 5}, {"E", "G", 2}, {"G", "H", 2},
			{"H", "F", 3}, {"H", "B", 1}, {"F", "D", 5}, {"B", "D", 4},
			{"B", "A", 3},
		})
}

func TestDijkstra(t *testing.T) {
	t.Run("predecessor map of diamond graph", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(diamondGraph(t), 1)
		pred, err := rt.Dijkstra("A")
		require.NoError(t, err)
		assert.Equal(t, routingalgorithm.PredecessorMap{
			"A": routingalgorithm.NoPredecessor,
			"B": "A",
			"C": "A",
			"D": "C",
		}, pred)
	})

	t.Run("unreached vertices have no predecessor", func(t *testing.T) {
		g := buildGraph(t, []string{"A", "B", "X", "Y"}, []testEdge{{"A", "B", 1}, {"X", "Y", 1}})
		rt := routingalgorithm.NewRouteAlgorithm(g, 1)
		pred, err := rt.Dijkstra("A")
		require.NoError(t, err)
		assert.Equal(t, "A", pred["B"])
		assert.Equal(t, routingalgorithm.NoPredecessor, pred["X"])
		assert.Equal(t, routingalgorithm.NoPredecessor, pred["Y"])
	})

	t.Run("unknown origin", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(diamondGraph(t), 1)
		_, err := rt.Dijkstra("Z")
		assert.ErrorIs(t, err, datastructure.ErrMissingVertex)
	})

	t.Run("graph is not mutated by queries", func(t *testing.T) {
		g := thirteenVertexGraph(t)
		before := g.Edges()
		rt := routingalgorithm.NewRouteAlgorithm(g, 1)
		_, err := rt.ShortestPath("S", "E")
		require.NoError(t, err)
		assert.Equal(t, before, g.Edges())
	})
}

func TestShortestPath(t *testing.T) {
	t.Run("thirteen vertex example", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(thirteenVertexGraph(t), 1)
		path, err := rt.ShortestPath("S", "E")
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "B", "H", "G", "E"}, path)
	})

	t.Run("reverse direction", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(thirteenVertexGraph(t), 1)
		path, err := rt.ShortestPath("E", "S")
		require.NoError(t, err)
		assert.Equal(t, []string{"E", "G", "H", "B", "S"}, path)
	})

	t.Run("origin equals destination", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(diamondGraph(t), 1)
		path, err := rt.ShortestPath("B", "B")
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, path)
	})

	t.Run("disconnected components", func(t *testing.T) {
		g := buildGraph(t, []string{"A", "B", "X", "Y"}, []testEdge{{"A", "B", 1}, {"X", "Y", 1}})
		rt := routingalgorithm.NewRouteAlgorithm(g, 1)
		path, err := rt.ShortestPath("A", "Y")
		assert.ErrorIs(t, err, routingalgorithm.ErrNoPath)
		assert.Nil(t, path)
	})

	t.Run("isolated destination", func(t *testing.T) {
		g := buildGraph(t, []string{"A", "B", "lonely"}, []testEdge{{"A", "B", 1}})
		rt := routingalgorithm.NewRouteAlgorithm(g, 1)
		_, err := rt.ShortestPath("A", "lonely")
		assert.ErrorIs(t, err, routingalgorithm.ErrNoPath)
	})

	t.Run("unknown destination", func(t *testing.T) {
		rt := routingalgorithm.NewRouteAlgorithm(diamondGraph(t), 1)
		_, err := rt.ShortestPath("A", "Z")
		assert.ErrorIs(t, err, datastructure.ErrMissingVertex)
	})

	t.Run("zero weight edges", func(t *testing.T) {
		g := buildGraph(t, []string{"A", "B", "C"}, []testEdge{{"A", "B", 0}, {"B", "C", 0}, {"A", "C", 1}})
		rt := routingalgorithm.NewRouteAlgorithm(g, 1)
		path, err := rt.ShortestPath("A", "C")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, path)
	})
}

func TestReconstructPath(t *testing.T) {
	pred := routingalgorithm.PredecessorMap{"A": "", "B": "A", "C": "B", "X": ""}

	t.Run("walks back to origin", func(t *testing.T) {
		path, err := routingalgorithm.ReconstructPath(pred, "A", "C")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, path)
	})

	t.Run("terminal vertex is not origin", func(t *testing.T) {
		_, err := routingalgorithm.ReconstructPath(pred, "A", "X")
		assert.ErrorIs(t, err, routingalgorithm.ErrNoPath)
	})

	t.Run("target absent", func(t *testing.T) {
		_, err := routingalgorithm.ReconstructPath(pred, "A", "Q")
		assert.ErrorIs(t, err, datastructure.ErrMissingVertex)
	})

	t.Run("cycle in predecessor map", func(t *testing.T) {
		broken := routingalgorithm.PredecessorMap{"A": "", "B": "C", "C": "B"}
		_, err := routingalgorithm.ReconstructPath(broken, "A", "B")
		assert.ErrorIs(t, err, routingalgorithm.ErrNoPath)
	})
}

func TestShortestPathManyToMany(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "S", "island"},
		[]testEdge{
			{"S", "A", 7}, {"S", "B", 2}, {"S", "C", 3}, {"C", "L", 2},
			{"L", "I", 4}, {"L", "J", 4}, {"I", "J", 6}, {"I", "K", 4},
			{"J", "K", 4}, {"K", "E", 5}, {"E", "G", 2}, {"G", "H", 2},
			{"H", "F", 3}, {"H", "B", 1}, {"F", "D", 5}, {"B", "D", 4},
			{"B", "A", 3},
		})
	rt := routingalgorithm.NewRouteAlgorithm(g, 3)

	t.Run("matrix matches single queries", func(t *testing.T) {
		sources := []string{"S", "E", "S"}
		targets := []string{"E", "D", "island", "S"}
		res, err := rt.ShortestPathManyToManyDijkstraWorkers(sources, targets)
		require.NoError(t, err)
		require.Len(t, res, 2)

		se := res["S"]["E"]
		assert.True(t, se.Found)
		assert.Equal(t, []string{"S", "B", "H", "G", "E"}, se.Paths)
		assert.Equal(t, 7.0, se.Dist)

		sd := res["S"]["D"]
		assert.True(t, sd.Found)
		assert.Equal(t, []string{"S", "B", "D"}, sd.Paths)
		assert.Equal(t, 6.0, sd.Dist)

		ss := res["S"]["S"]
		assert.True(t, ss.Found)
		assert.Equal(t, []string{"S"}, ss.Paths)
		assert.Equal(t, 0.0, ss.Dist)

		assert.False(t, res["S"]["island"].Found)
		assert.Empty(t, res["S"]["island"].Paths)

		for _, target := range []string{"D", "S"} {
			single, err := rt.ShortestPath("E", target)
			require.NoError(t, err)
			assert.Equal(t, single, res["E"][target].Paths)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := rt.ShortestPathManyToManyDijkstraWorkers([]string{"S"}, []string{"nowhere"})
		assert.ErrorIs(t, err, datastructure.ErrMissingVertex)
	})
}
