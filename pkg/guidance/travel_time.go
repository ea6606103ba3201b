package guidance

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownMode = errors.New("unknown transport mode")

type TransportMode string

const (
	Walking TransportMode = "walking"
	Bicycle TransportMode = "bicycle"
	Car     TransportMode = "car"
)

// AllModes urutan mode yang ditampilkan di ringkasan rute.
var AllModes = []TransportMode{Walking, Bicycle, Car}

// ModeSpeed kecepatan tetap tiap mode (m/s). bicycle ~20 km/h, car ~50 km/h.
func ModeSpeed(mode TransportMode) (float64, error) {
	switch mode {
	case Walking:
		return 1, nil
	case Bicycle:
		return 5.55556, nil
	case Car:
		return 13.8889, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// TravelTime waktu tempuh distance meter dengan mode (detik).
func TravelTime(distance float64, mode TransportMode) (float64, error) {
	speed, err := ModeSpeed(mode)
	if err != nil {
		return 0, err
	}
	return distance / speed, nil
}

// MinSec detik -> (menit, detik), dua-duanya dibulatkan ke bawah.
func MinSec(seconds float64) (int, int) {
	minutes := math.Floor(seconds / 60)
	secs := math.Floor(seconds - minutes*60)
	return int(minutes), int(secs)
}

// Duration waktu tempuh distance meter dengan mode dalam (menit, detik).
func Duration(distance float64, mode TransportMode) (int, int, error) {
	t, err := TravelTime(distance, mode)
	if err != nil {
		return 0, 0, err
	}
	m, s := MinSec(t)
	return m, s, nil
}
