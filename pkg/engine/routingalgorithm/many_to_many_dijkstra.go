package routingalgorithm

import (
	"fmt"

	"lintang/campusnav/pkg/concurrent"
	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/util"
)

// callDijkstra satu dijkstra dari job.Source, lalu path ke semua target.
func (rt *RouteAlgorithm) callDijkstra(job concurrent.ShortestPathJobItem) []datastructure.SPSingleResultResult {
	results := make([]datastructure.SPSingleResultResult, 0, len(job.Targets))

	sourceIdx, _ := rt.graph.VertexIndex(job.Source)
	dist, cameFrom, err := rt.dijkstra(sourceIdx)

	for _, target := range job.Targets {
		res := datastructure.SPSingleResultResult{Source: job.Source, Dest: target, Paths: []string{}}
		targetIdx, _ := rt.graph.VertexIndex(target)
		if err != nil || cameFrom == nil || (targetIdx != sourceIdx && cameFrom[targetIdx] < 0) {
			results = append(results, res)
			continue
		}

		path := []string{}
		for curr := targetIdx; curr >= 0; curr = cameFrom[curr] {
			path = append(path, rt.graph.GetVertex(curr).Name)
		}
		res.Paths = util.ReverseG(path)
		res.Dist = dist[targetIdx]
		res.Found = true
		results = append(results, res)
	}
	return results
}

// ShortestPathManyToManyDijkstraWorkers shortest path semua pasangan sources x targets.
// satu dijkstra per source, dijalankan di worker pool. pasangan yang tidak terhubung Found=false.
func (rt *RouteAlgorithm) ShortestPathManyToManyDijkstraWorkers(sources []string, targets []string) (map[string]map[string]datastructure.SPSingleResultResult, error) {
	for _, name := range append(append([]string{}, sources...), targets...) {
		if _, ok := rt.graph.VertexIndex(name); !ok {
			return nil, fmt.Errorf("%w: %q", datastructure.ErrMissingVertex, name)
		}
	}

	sources = removeDuplicates(sources)
	workers := concurrent.NewWorkerPool[concurrent.ShortestPathJobItem, []datastructure.SPSingleResultResult](rt.numWorkers, len(sources))
	for _, s := range sources {
		workers.AddJob(concurrent.ShortestPathJobItem{Source: s, Targets: targets})
	}
	workers.Close()

	workers.Start(rt.callDijkstra)
	workers.Wait()

	spMap := make(map[string]map[string]datastructure.SPSingleResultResult, len(sources))
	for _, s := range sources {
		spMap[s] = make(map[string]datastructure.SPSingleResultResult, len(targets))
	}
	for results := range workers.CollectResults() {
		for _, curr := range results {
			spMap[curr.Source][curr.Dest] = curr
		}
	}
	return spMap, nil
}

func removeDuplicates[T comparable](arr []T) []T {
	set := make(map[T]struct{}, len(arr))
	newarr := make([]T, 0, len(arr))
	for _, v := range arr {
		if _, ok := set[v]; !ok {
			set[v] = struct{}{}
			newarr = append(newarr, v)
		}
	}
	return newarr
}
