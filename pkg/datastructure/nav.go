package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

type VertexKind uint8

const (
	// AnyKind filter AllVertices tanpa batasan kind. bukan kind vertex yang valid.
	AnyKind VertexKind = iota
	PointOfInterest
	Junction
)

func (k VertexKind) String() string {
	switch k {
	case PointOfInterest:
		return "point_of_interest"
	case Junction:
		return "junction"
	default:
		return "any"
	}
}
