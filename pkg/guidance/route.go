package guidance

import (
	"fmt"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/geo"

	"github.com/twpayne/go-polyline"
)

type RouteGraph interface {
	Location(name string) (datastructure.Coordinate, error)
	GetDistance(name1, name2 string) float64
}

type Leg struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Distance    float64 `json:"distance"`
	Bearing     float64 `json:"bearing"`
	Instruction string  `json:"instruction"`
}

type TravelDuration struct {
	Mode         TransportMode `json:"mode"`
	Minutes      int           `json:"minutes"`
	Seconds      int           `json:"seconds"`
	TotalSeconds float64       `json:"total_seconds"`
}

type Route struct {
	Path        []string                   `json:"path"`
	Coordinates []datastructure.Coordinate `json:"coordinates"`
	Legs        []Leg                      `json:"legs"`
	Distance    float64                    `json:"distance"`
	Durations   []TravelDuration           `json:"durations"`
	Polyline    string                     `json:"polyline"`
	Bounds      geo.Bounds                 `json:"bounds"`
}

// NewRoute ringkasan rute dari urutan nama vertex hasil shortest path: koordinat, jarak per leg,
// total jarak (jumlah weight edge di path), waktu tempuh tiap mode, polyline & bounding box.
func NewRoute(path []string, g RouteGraph) (Route, error) {
	route := Route{
		Path:        path,
		Coordinates: make([]datastructure.Coordinate, 0, len(path)),
		Legs:        make([]Leg, 0),
		Durations:   make([]TravelDuration, 0, len(AllModes)),
	}

	for i, name := range path {
		loc, err := g.Location(name)
		if err != nil {
			return Route{}, err
		}
		route.Coordinates = append(route.Coordinates, loc)
		if i == 0 {
			continue
		}

		prev := route.Coordinates[i-1]
		dist := g.GetDistance(path[i-1], name)
		bearing := BearingTo(prev.Lat, prev.Lon, loc.Lat, loc.Lon)
		route.Legs = append(route.Legs, Leg{
			From:        path[i-1],
			To:          name,
			Distance:    dist,
			Bearing:     bearing,
			Instruction: fmt.Sprintf("Head %s for %.0f m", CompassDirection(bearing), dist),
		})
		route.Distance += dist
	}

	for _, mode := range AllModes {
		t, err := TravelTime(route.Distance, mode)
		if err != nil {
			return Route{}, err
		}
		m, s := MinSec(t)
		route.Durations = append(route.Durations, TravelDuration{Mode: mode, Minutes: m, Seconds: s, TotalSeconds: t})
	}

	route.Polyline = RenderPath(route.Coordinates)
	coords := make([][]float64, 0, len(route.Coordinates))
	for _, c := range route.Coordinates {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	route.Bounds, _ = geo.RouteBounds(coords)
	return route, nil
}

// RenderPath encode koordinat rute ke google polyline.
func RenderPath(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
