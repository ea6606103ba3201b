package osmparser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrMalformedRecord = errors.New("malformed record")

// JunctionRecord satu segmen jalan antar dua junction.
// Nodes berisi satu string "<id1>-<id2>", Coordinates [[lat1,lng1],[lat2,lng2]].
type JunctionRecord struct {
	Nodes          []string    `json:"nodes" validate:"required,len=1,dive,required"`
	Coordinates    [][]float64 `json:"coordinates" validate:"required,len=2,dive,len=2"`
	DistanceMetres []float64   `json:"distance_metres" validate:"required,len=1"`
}

// Endpoints id kedua junction dari field nodes.
func (r JunctionRecord) Endpoints() (string, string, error) {
	ids := strings.Split(r.Nodes[0], "-")
	if len(ids) != 2 || ids[0] == "" || ids[1] == "" {
		return "", "", fmt.Errorf("node id %q is not <id1>-<id2>", r.Nodes[0])
	}
	return ids[0], ids[1], nil
}

// PlaceRecord satu building kampus. Lat/Lng pointer supaya field yang tidak ada di json (nil)
// bisa dibedakan dari koordinat 0.
type PlaceRecord struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,latitude"`
	Lng  *float64 `json:"lng" validate:"required,longitude"`
}

func NewPlaceRecord(name string, lat, lng float64) PlaceRecord {
	return PlaceRecord{Name: name, Lat: &lat, Lng: &lng}
}

// Coordinate lat, lng dari record yang sudah lolos validasi.
func (r PlaceRecord) Coordinate() (float64, float64) {
	return *r.Lat, *r.Lng
}

var validate = validator.New()

func validateJunctions(records []JunctionRecord) error {
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("%w: junction record %d: %v", ErrMalformedRecord, i, err)
		}
		if _, _, err := rec.Endpoints(); err != nil {
			return fmt.Errorf("%w: junction record %d: %v", ErrMalformedRecord, i, err)
		}
	}
	return nil
}

func validatePlaces(records []PlaceRecord) error {
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return fmt.Errorf("%w: place record %d: %v", ErrMalformedRecord, i, err)
		}
	}
	return nil
}

// ReadJunctionRecords decode array json junction record & validasi tiap record.
func ReadJunctionRecords(r io.Reader) ([]JunctionRecord, error) {
	var records []JunctionRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := validateJunctions(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadPlaceRecords decode array json place record & validasi tiap record.
func ReadPlaceRecords(r io.Reader) ([]PlaceRecord, error) {
	var records []PlaceRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := validatePlaces(records); err != nil {
		return nil, err
	}
	return records, nil
}

func LoadJunctionFile(path string) ([]JunctionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJunctionRecords(f)
}

func LoadPlaceFile(path string) ([]PlaceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPlaceRecords(f)
}

// PlaceNames nama place sesuai urutan input, duplikat dibuang.
func PlaceNames(records []PlaceRecord) []string {
	seen := make(map[string]bool, len(records))
	names := make([]string, 0, len(records))
	for _, rec := range records {
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		names = append(names, rec.Name)
	}
	return names
}
