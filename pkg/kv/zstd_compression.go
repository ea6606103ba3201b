package kv

import (
	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

type snapshotVertex struct {
	Name string
	Lat  float64
	Lon  float64
	Kind uint8
}

type snapshotEdge struct {
	From   int32
	To     int32
	Weight float64
}

// graphSnapshot isi pebble value untuk graph yang sudah di load. Edges urut sesuai insert.
type graphSnapshot struct {
	Vertices []snapshotVertex
	Edges    []snapshotEdge
	Places   []string
}

func encodeSnapshot(s graphSnapshot) ([]byte, error) {
	bb, err := binary.Marshal(s)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func decodeSnapshot(bbCompressed []byte) (graphSnapshot, error) {
	var s graphSnapshot
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return s, err
	}
	err = binary.Unmarshal(bb, &s)
	return s, err
}

func encodePlaces(names []string) ([]byte, error) {
	bb, err := binary.Marshal(names)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func decodePlaces(bbCompressed []byte) ([]string, error) {
	var names []string
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	err = binary.Unmarshal(bb, &names)
	return names, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}
