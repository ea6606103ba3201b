package concurrent

// ShortestPathJobItem satu source untuk many-to-many query, semua target dihitung dari satu kali dijkstra.
type ShortestPathJobItem struct {
	Source  string
	Targets []string
}

// SavePlacesJobItem satu h3 cell beserta nama-nama place di dalamnya.
type SavePlacesJobItem struct {
	KeyStr string
	ValArr []string
}

type JobI interface {
	ShortestPathJobItem | SavePlacesJobItem
}

type JobFunc[T JobI, G any] func(job T) G
