package guidance

import (
	"math"
)

/*
BearingTo. menghitung sudut bearing untuk leg (p1,p2), 0 = utara, searah jarum jam, [0, 360).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := (p2Lon - p1Lon) * math.Pi / 180.0

	lat1 := p1Lat * math.Pi / 180.0
	lat2 := p2Lat * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Atan2(y, x) * 180.0 / math.Pi

	return math.Mod(brng+360, 360)
}

var compassPoints = []string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// CompassDirection bearing -> arah mata angin 8 penjuru.
func CompassDirection(bearing float64) string {
	sector := int(math.Floor(math.Mod(bearing+22.5, 360) / 45))
	return compassPoints[sector%8]
}
