package spatialindex

import (
	"errors"
	"sort"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

var ErrEmptyIndex = errors.New("place index is empty")

var tol = 0.0001

// minCandidates rtree pakai jarak euclid di derajat lat/lon, kandidat diambil lebih banyak
// lalu diurutkan ulang pakai jarak geo.
const minCandidates = 8

type PlaceGraph interface {
	AllVertices(kind datastructure.VertexKind) []string
	Location(name string) (datastructure.Coordinate, error)
}

type PlaceRect struct {
	Location rtreego.Point
	Name     string
}

func (p *PlaceRect) Bounds() rtreego.Rect {
	return p.Location.ToRect(tol)
}

type NearbyPlace struct {
	Name     string                   `json:"name"`
	Location datastructure.Coordinate `json:"location"`
	Distance float64                  `json:"distance"`
}

// PlaceIndex rtree semua point of interest, buat snapping koordinat ke place terdekat.
type PlaceIndex struct {
	tree *rtreego.Rtree
}

func NewPlaceIndex(g PlaceGraph) (*PlaceIndex, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2 dimension, 25 min entries dan 50 max entries
	for _, name := range g.AllVertices(datastructure.PointOfInterest) {
		loc, err := g.Location(name)
		if err != nil {
			return nil, err
		}
		tree.Insert(&PlaceRect{Location: rtreego.Point{loc.Lat, loc.Lon}, Name: name})
	}
	return &PlaceIndex{tree: tree}, nil
}

func (p *PlaceIndex) Size() int {
	return p.tree.Size()
}

// NearestPlaces k place terdekat dari (lat,lon), urut dari yang paling dekat (jarak geo.Distance).
func (p *PlaceIndex) NearestPlaces(lat, lon float64, k int) ([]NearbyPlace, error) {
	if p.tree.Size() == 0 {
		return nil, ErrEmptyIndex
	}
	if k <= 0 {
		return []NearbyPlace{}, nil
	}
	numCand := k
	if numCand < minCandidates {
		numCand = minCandidates
	}

	cands := p.tree.NearestNeighbors(numCand, rtreego.Point{lat, lon})
	places := make([]NearbyPlace, 0, len(cands))
	for _, c := range cands {
		rect, ok := c.(*PlaceRect)
		if !ok || rect == nil {
			continue
		}
		places = append(places, NearbyPlace{
			Name:     rect.Name,
			Location: datastructure.NewCoordinate(rect.Location[0], rect.Location[1]),
			Distance: geo.Distance(lat, lon, rect.Location[0], rect.Location[1]),
		})
	}
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Distance < places[j].Distance
	})
	if k < len(places) {
		places = places[:k]
	}
	return places, nil
}

// NearestPlace place yang paling dekat dengan (lat,lon).
func (p *PlaceIndex) NearestPlace(lat, lon float64) (NearbyPlace, error) {
	places, err := p.NearestPlaces(lat, lon, 1)
	if err != nil {
		return NearbyPlace{}, err
	}
	return places[0], nil
}
