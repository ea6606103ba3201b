package kv

import (
	"errors"
	"fmt"
	"io"
	"math"

	"lintang/campusnav/pkg/concurrent"
	"lintang/campusnav/pkg/datastructure"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/uber/h3-go/v4"
	"golang.org/x/exp/slog"
)

const (
	graphSnapshotKey = "graph:snapshot"
	placeCellPrefix  = "place:"
	h3Resolution     = 9
)

var ErrSnapshotNotFound = errors.New("graph snapshot not found")

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

// SaveGraph simpan vertex, edge (urut insert) & daftar nama place ke pebble.
func (k *KVDB) SaveGraph(g *datastructure.Graph, places []string) error {
	vertices := g.Vertices()
	s := graphSnapshot{
		Vertices: make([]snapshotVertex, len(vertices)),
		Edges:    make([]snapshotEdge, 0, g.NumEdges()),
		Places:   places,
	}
	for i, v := range vertices {
		s.Vertices[i] = snapshotVertex{Name: v.Name, Lat: v.Location.Lat, Lon: v.Location.Lon, Kind: uint8(v.Kind)}
	}
	for _, e := range g.Edges() {
		from, _ := g.VertexIndex(e.From)
		to, _ := g.VertexIndex(e.To)
		s.Edges = append(s.Edges, snapshotEdge{From: int32(from), To: int32(to), Weight: e.Weight})
	}

	val, err := encodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encode graph snapshot: %w", err)
	}
	if err := k.db.Set([]byte(graphSnapshotKey), val, pebble.Sync); err != nil {
		return err
	}
	slog.Info("graph snapshot saved", "vertices", len(s.Vertices), "edges", len(s.Edges), "bytes", len(val))
	return nil
}

// LoadGraph bangun ulang graph dari snapshot. ErrSnapshotNotFound kalau belum pernah di preprocess.
func (k *KVDB) LoadGraph() (*datastructure.Graph, []string, error) {
	val, closer, err := k.db.Get([]byte(graphSnapshotKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	s, err := decodeSnapshot(val)
	closer.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("decode graph snapshot: %w", err)
	}

	g := datastructure.NewGraph()
	for _, v := range s.Vertices {
		if err := g.AddVertex(v.Name, datastructure.NewCoordinate(v.Lat, v.Lon), datastructure.VertexKind(v.Kind)); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range s.Edges {
		if int(e.From) >= len(s.Vertices) || int(e.To) >= len(s.Vertices) || e.From < 0 || e.To < 0 {
			return nil, nil, fmt.Errorf("graph snapshot edge %d-%d out of range", e.From, e.To)
		}
		if err := g.AddEdge(s.Vertices[e.From].Name, s.Vertices[e.To].Name, e.Weight); err != nil {
			return nil, nil, err
		}
	}
	return g, s.Places, nil
}

// CreatePlaceKV kelompokkan point of interest per h3 cell (resolusi 9) lalu simpan tiap cell ke pebble pakai worker pool.
func (k *KVDB) CreatePlaceKV(g *datastructure.Graph, numWorkers int, showProgress bool) error {
	kv := make(map[string][]string)
	for _, name := range g.AllVertices(datastructure.PointOfInterest) {
		loc, err := g.Location(name)
		if err != nil {
			return err
		}
		cell := h3.LatLngToCell(h3.NewLatLng(loc.Lat, loc.Lon), h3Resolution)
		key := placeCellPrefix + cell.String()
		kv[key] = append(kv[key], name)
	}

	var w io.Writer = io.Discard
	if showProgress {
		w = ansi.NewAnsiStdout()
	}
	bar := progressbar.NewOptions(len(kv),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2][reset] saving h3 indexed places to pebble db..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// bucket lama dari preprocessing sebelumnya dihapus dulu. ';' byte setelah ':'.
	if err := k.db.DeleteRange([]byte(placeCellPrefix), []byte("place;"), pebble.Sync); err != nil {
		return err
	}

	workers := concurrent.NewWorkerPool[concurrent.SavePlacesJobItem, error](numWorkers, len(kv))
	for keyStr, valArr := range kv {
		workers.AddJob(concurrent.SavePlacesJobItem{KeyStr: keyStr, ValArr: valArr})
	}
	workers.Close()

	workers.Start(k.SavePlaces)
	workers.Wait()

	var firstErr error
	for err := range workers.CollectResults() {
		bar.Add(1)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (k *KVDB) SavePlaces(item concurrent.SavePlacesJobItem) error {
	val, err := encodePlaces(item.ValArr)
	if err != nil {
		return err
	}
	return k.db.Set([]byte(item.KeyStr), val, pebble.Sync)
}

func (k *KVDB) getPlacesInCell(cell h3.Cell) ([]string, error) {
	val, closer, err := k.db.Get([]byte(placeCellPrefix + cell.String()))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return decodePlaces(val)
}

// GetPlacesNearCoord kandidat place di cell-cell h3 yang menutupi lingkaran radius searchRadiusKm dari (lat,lon).
// hasilnya masih kasar (per cell), filter jarak pastinya di caller.
func (k *KVDB) GetPlacesNearCoord(lat, lon, searchRadiusKm float64) ([]string, error) {
	cells := kRingIndexesArea(lat, lon, searchRadiusKm)
	places := []string{}
	for _, cell := range cells {
		names, err := k.getPlacesInCell(cell)
		if err != nil {
			return nil, err
		}
		places = append(places, names...)
	}
	return places, nil
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    search cell neighbor dari cell dari lat,lon  yang radius nya = searchRadiusKm
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	// minimal ring 1, titik di pinggir cell bisa dekat dengan place di cell sebelah
	radius := 1
	diskArea := 7 * originArea
	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
