package routingalgorithm

import (
	"errors"
	"fmt"
	"math"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/util"
)

// ErrNoPath tidak ada path dari origin ke target (beda connected component).
var ErrNoPath = errors.New("no path between the two vertices")

// NoPredecessor nilai PredecessorMap untuk origin dan vertex yang tidak punya predecessor.
const NoPredecessor = ""

// PredecessorMap nama vertex -> nama vertex sebelumnya di shortest path dari origin.
type PredecessorMap map[string]string

type Graph interface {
	NumVertices() int
	VertexIndex(name string) (datastructure.Index, bool)
	GetVertex(idx datastructure.Index) datastructure.Vertex
	GetOutEdges(idx datastructure.Index) []datastructure.EdgePair
}

// RouteAlgorithm shortest path query di atas graph campus yang read-only. aman dipanggil concurrent,
// tiap query punya priority queue sendiri.
type RouteAlgorithm struct {
	graph      Graph
	numWorkers int
}

func NewRouteAlgorithm(graph Graph, numWorkers int) *RouteAlgorithm {
	return &RouteAlgorithm{graph: graph, numWorkers: numWorkers}
}

// dijkstra full relaxation dari originIdx. semua vertex masuk priority queue di awal (rank +Inf kecuali origin),
// tiap vertex di extract tepat sekali. item priority queue = nama vertex, jadi rank sama -> nama yang lebih kecil duluan.
func (rt *RouteAlgorithm) dijkstra(originIdx datastructure.Index) ([]float64, []datastructure.Index, error) {
	n := rt.graph.NumVertices()
	dist := make([]float64, n)
	cameFrom := make([]datastructure.Index, n)

	pq := datastructure.NewMinHeap[string]()
	for i := 0; i < n; i++ {
		idx := datastructure.Index(i)
		dist[i] = math.Inf(1)
		if idx == originIdx {
			dist[i] = 0
		}
		cameFrom[i] = -1
		err := pq.Insert(datastructure.PriorityQueueNode[string]{Rank: dist[i], Item: rt.graph.GetVertex(idx).Name})
		if err != nil {
			return nil, nil, err
		}
	}

	for !pq.IsEmpty() {
		smallest, err := pq.ExtractMin()
		if err != nil {
			return nil, nil, err
		}
		u, _ := rt.graph.VertexIndex(smallest.Item)

		for _, e := range rt.graph.GetOutEdges(u) {
			v := e.ToNodeIDX
			newDist := dist[u] + e.Weight
			if newDist < dist[v] {
				dist[v] = newDist
				cameFrom[v] = u
				err := pq.DecreaseKey(datastructure.PriorityQueueNode[string]{Rank: newDist, Item: rt.graph.GetVertex(v).Name})
				if err != nil {
					return nil, nil, err
				}
			}
		}
	}
	return dist, cameFrom, nil
}

// Dijkstra predecessor map seluruh graph relatif terhadap origin.
func (rt *RouteAlgorithm) Dijkstra(origin string) (PredecessorMap, error) {
	originIdx, ok := rt.graph.VertexIndex(origin)
	if !ok {
		return nil, fmt.Errorf("%w: %q", datastructure.ErrMissingVertex, origin)
	}
	_, cameFrom, err := rt.dijkstra(originIdx)
	if err != nil {
		return nil, err
	}

	pred := make(PredecessorMap, len(cameFrom))
	for i, p := range cameFrom {
		name := rt.graph.GetVertex(datastructure.Index(i)).Name
		if p < 0 {
			pred[name] = NoPredecessor
			continue
		}
		pred[name] = rt.graph.GetVertex(p).Name
	}
	return pred, nil
}

// ReconstructPath jalan mundur dari target lewat predecessor sampai vertex tanpa predecessor.
// kalau vertex terakhir bukan origin return ErrNoPath, tidak pernah return path sebagian.
func ReconstructPath(pred PredecessorMap, origin, target string) ([]string, error) {
	if _, ok := pred[target]; !ok {
		return nil, fmt.Errorf("%w: %q", datastructure.ErrMissingVertex, target)
	}

	path := []string{target}
	curr := target
	for pred[curr] != NoPredecessor {
		curr = pred[curr]
		path = append(path, curr)
		if len(path) > len(pred) {
			// predecessor map rusak (cycle)
			return nil, fmt.Errorf("%w: from %q to %q", ErrNoPath, origin, target)
		}
	}
	if curr != origin {
		return nil, fmt.Errorf("%w: from %q to %q", ErrNoPath, origin, target)
	}
	return util.ReverseG(path), nil
}

// ShortestPath urutan nama vertex dari origin sampai destination (inklusif).
func (rt *RouteAlgorithm) ShortestPath(origin, destination string) ([]string, error) {
	if _, ok := rt.graph.VertexIndex(destination); !ok {
		return nil, fmt.Errorf("%w: %q", datastructure.ErrMissingVertex, destination)
	}
	pred, err := rt.Dijkstra(origin)
	if err != nil {
		return nil, err
	}
	return ReconstructPath(pred, origin, destination)
}
