package datastructure

import (
	"fmt"
	"math"
	"sort"

	"lintang/campusnav/pkg/geo"
)

type Index int32

// EdgePair satu arah dari edge undirected. edge u-v disimpan dua kali: di OutEdges u dan di OutEdges v.
type EdgePair struct {
	ToNodeIDX Index
	Weight    float64
}

type Vertex struct {
	Name     string
	Location Coordinate
	Kind     VertexKind
	IDx      Index
	OutEdges []EdgePair

	edgePos map[Index]int // neighbour idx -> posisi di OutEdges
}

// Edge undirected edge, dipakai buat snapshot graph.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph weighted undirected graph campus map. vertex disimpan di arena (slice) dan diakses pakai Index,
// nodeIdxMap map nama vertex -> Index. Setelah selesai di load, graph read-only dan aman dipakai
// banyak query secara concurrent.
type Graph struct {
	vertices   []Vertex
	nodeIdxMap map[string]Index
	edgeList   [][2]Index // urutan insert edge pertama kali
}

func NewGraph() *Graph {
	return &Graph{
		vertices:   make([]Vertex, 0),
		nodeIdxMap: make(map[string]Index),
	}
}

// AddVertex tambah vertex baru tanpa neighbour. no-op kalau nama sudah ada (kind & location lama dipertahankan).
func (g *Graph) AddVertex(name string, location Coordinate, kind VertexKind) error {
	if name == "" {
		return ErrEmptyVertexName
	}
	if kind != PointOfInterest && kind != Junction {
		return fmt.Errorf("invalid vertex kind %q for %q", kind, name)
	}
	if _, ok := g.nodeIdxMap[name]; ok {
		return nil
	}

	idx := Index(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{
		Name:     name,
		Location: location,
		Kind:     kind,
		IDx:      idx,
		OutEdges: make([]EdgePair, 0),
		edgePos:  make(map[Index]int),
	})
	g.nodeIdxMap[name] = idx
	return nil
}

// AddEdge tambah edge undirected name1-name2. weight ditulis ke kedua endpoint sekaligus,
// kalau edge sudah ada weight lama di overwrite (bukan dijumlah).
func (g *Graph) AddEdge(name1, name2 string, weight float64) error {
	if name1 == name2 {
		return fmt.Errorf("%w: %q", ErrDuplicateEdgeEndpoints, name1)
	}
	u, ok := g.nodeIdxMap[name1]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingVertex, name1)
	}
	v, ok := g.nodeIdxMap[name2]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingVertex, name2)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %q-%q weight %v", ErrNegativeWeight, name1, name2, weight)
	}

	if !g.setHalfEdge(u, v, weight) {
		g.edgeList = append(g.edgeList, [2]Index{u, v})
	}
	g.setHalfEdge(v, u, weight)
	return nil
}

// setHalfEdge return true kalau half edge from->to sudah ada sebelumnya.
func (g *Graph) setHalfEdge(from, to Index, weight float64) bool {
	vert := &g.vertices[from]
	if pos, ok := vert.edgePos[to]; ok {
		vert.OutEdges[pos].Weight = weight
		return true
	}
	vert.edgePos[to] = len(vert.OutEdges)
	vert.OutEdges = append(vert.OutEdges, EdgePair{ToNodeIDX: to, Weight: weight})
	return false
}

// GetDistance weight edge name1-name2, 0 kalau tidak adjacent atau salah satu vertex tidak ada.
func (g *Graph) GetDistance(name1, name2 string) float64 {
	u, okU := g.nodeIdxMap[name1]
	v, okV := g.nodeIdxMap[name2]
	if !okU || !okV {
		return 0
	}
	pos, ok := g.vertices[u].edgePos[v]
	if !ok {
		return 0
	}
	return g.vertices[u].OutEdges[pos].Weight
}

func (g *Graph) AreAdjacent(name1, name2 string) bool {
	u, okU := g.nodeIdxMap[name1]
	v, okV := g.nodeIdxMap[name2]
	if !okU || !okV {
		return false
	}
	_, ok := g.vertices[u].edgePos[v]
	return ok
}

// Neighbours nama-nama neighbour dari vertex name, urut sesuai urutan insert edge.
func (g *Graph) Neighbours(name string) ([]string, error) {
	u, ok := g.nodeIdxMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVertex, name)
	}
	names := make([]string, 0, len(g.vertices[u].OutEdges))
	for _, e := range g.vertices[u].OutEdges {
		names = append(names, g.vertices[e.ToNodeIDX].Name)
	}
	return names, nil
}

// AllVertices nama semua vertex urut sesuai insert. kind AnyKind = tanpa filter.
func (g *Graph) AllVertices(kind VertexKind) []string {
	names := make([]string, 0, len(g.vertices))
	for _, v := range g.vertices {
		if kind == AnyKind || v.Kind == kind {
			names = append(names, v.Name)
		}
	}
	return names
}

func (g *Graph) Location(name string) (Coordinate, error) {
	u, ok := g.nodeIdxMap[name]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrMissingVertex, name)
	}
	return g.vertices[u].Location, nil
}

func (g *Graph) Kind(name string) (VertexKind, bool) {
	u, ok := g.nodeIdxMap[name]
	if !ok {
		return AnyKind, false
	}
	return g.vertices[u].Kind, true
}

type junctionDist struct {
	idx  Index
	dist float64
}

// NearestJunctions k junction terdekat dari point of interest name, urut dari yang paling dekat.
// jarak sama -> urutan scan (urutan insert junction). kalau jumlah junction < k, return semua junction.
func (g *Graph) NearestJunctions(name string, k int) ([]string, error) {
	u, ok := g.nodeIdxMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingVertex, name)
	}
	place := g.vertices[u]
	if place.Kind != PointOfInterest {
		return nil, fmt.Errorf("%w: %q", ErrNotPlace, name)
	}
	if k <= 0 {
		return []string{}, nil
	}

	placeLoc := geo.NewLocation(place.Location.Lat, place.Location.Lon)
	cands := make([]junctionDist, 0)
	for _, v := range g.vertices {
		if v.Kind != Junction {
			continue
		}
		dist := geo.CalculateDistance(placeLoc, geo.NewLocation(v.Location.Lat, v.Location.Lon))
		cands = append(cands, junctionDist{v.IDx, dist})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})

	if k > len(cands) {
		k = len(cands)
	}
	nearest := make([]string, 0, k)
	for _, c := range cands[:k] {
		nearest = append(nearest, g.vertices[c.idx].Name)
	}
	return nearest, nil
}

func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumEdges() int {
	return len(g.edgeList)
}

func (g *Graph) VertexIndex(name string) (Index, bool) {
	idx, ok := g.nodeIdxMap[name]
	return idx, ok
}

func (g *Graph) GetVertex(idx Index) Vertex {
	return g.vertices[idx]
}

func (g *Graph) GetOutEdges(idx Index) []EdgePair {
	return g.vertices[idx].OutEdges
}

// Edges semua edge undirected, masing-masing sekali, urut sesuai insert pertama kali.
// AddEdge ulang dengan urutan ini menghasilkan urutan OutEdges yang sama persis.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeList))
	for _, e := range g.edgeList {
		from := g.vertices[e[0]]
		pos := from.edgePos[e[1]]
		edges = append(edges, Edge{From: from.Name, To: g.vertices[e[1]].Name, Weight: from.OutEdges[pos].Weight})
	}
	return edges
}

// Vertices salinan semua vertex tanpa adjacency, urut sesuai index.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		vs[i] = Vertex{Name: v.Name, Location: v.Location, Kind: v.Kind, IDx: v.IDx}
	}
	return vs
}
