package geo

import "math"

// earthRadiusM radius bumi yang dipakai semua perhitungan jarak di campus map (meter).
const earthRadiusM = 6.378e+6

type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// NewLocation. simpan lat/lon dalam radian.
func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

// CalculateDistance jarak permukaan bumi antara dua lokasi (meter), spherical law of cosines.
//
//	d = R * acos( sin φ1 * sin φ2 + cos φ1 * cos φ2 * cos Δλ )
//
// argumen acos di clamp ke [-1, 1] karena rounding float bisa menghasilkan 1.0000000000000002
// untuk dua titik yang sama/berdekatan.
func CalculateDistance(locationOne Location, locationTwo Location) float64 {
	if locationOne == locationTwo {
		// sin²φ + cos²φ bisa jadi 0.9999999999999999, acos nya ~0.1 m bukan 0.
		return 0
	}
	diffLon := locationTwo.Longitude - locationOne.Longitude

	cosCentralAngle := math.Sin(locationOne.Latitude)*math.Sin(locationTwo.Latitude) +
		math.Cos(locationOne.Latitude)*math.Cos(locationTwo.Latitude)*math.Cos(diffLon)

	return earthRadiusM * math.Acos(clamp(cosCentralAngle, -1, 1))
}

// Distance shortcut CalculateDistance dari derajat.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return CalculateDistance(NewLocation(lat1, lon1), NewLocation(lat2, lon2))
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
