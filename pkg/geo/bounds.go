package geo

import "github.com/golang/geo/s2"

// Bounds bounding box sebuah rute, dipakai client buat set viewport peta.
type Bounds struct {
	MinLat    float64 `json:"min_lat"`
	MinLon    float64 `json:"min_lon"`
	MaxLat    float64 `json:"max_lat"`
	MaxLon    float64 `json:"max_lon"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}

// RouteBounds hitung bounding rectangle dari titik-titik [lat, lon] pakai s2.Rect.
// ok false kalau coords kosong.
func RouteBounds(coords [][]float64) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}

	rect := s2.EmptyRect()
	for _, c := range coords {
		rect = rect.AddPoint(s2.LatLngFromDegrees(c[0], c[1]))
	}

	lo, hi, center := rect.Lo(), rect.Hi(), rect.Center()
	return Bounds{
		MinLat:    lo.Lat.Degrees(),
		MinLon:    lo.Lng.Degrees(),
		MaxLat:    hi.Lat.Degrees(),
		MaxLon:    hi.Lng.Degrees(),
		CenterLat: center.Lat.Degrees(),
		CenterLon: center.Lng.Degrees(),
	}, true
}
