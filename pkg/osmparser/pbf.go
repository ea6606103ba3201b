package osmparser

import (
	"context"
	"fmt"
	"io"

	"lintang/campusnav/pkg/geo"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"
)

// WalkableRoadType highway yang bisa dilewati pejalan kaki di area kampus.
var WalkableRoadType = map[string]bool{
	"footway":       true,
	"path":          true,
	"pedestrian":    true,
	"steps":         true,
	"cycleway":      true,
	"living_street": true,
	"residential":   true,
	"service":       true,
	"unclassified":  true,
	"tertiary":      true,
	"secondary":     true,
	"primary":       true,
	"track":         true,
	"corridor":      true,
}

func isWalkableWay(tags osm.Tags) bool {
	return WalkableRoadType[tags.Find("highway")]
}

func isNamedBuilding(tags osm.Tags) bool {
	return tags.Find("name") != "" && tags.HasTag("building")
}

func isNamedPlaceNode(tags osm.Tags) bool {
	return tags.Find("name") != "" && (tags.HasTag("building") || tags.HasTag("amenity"))
}

// ParsePBF baca openstreetmap pbf extract kampus. scan pertama ambil way jalan & gedung,
// scan kedua ambil node yang dipakai way tadi & node place yang punya nama.
func ParsePBF(ctx context.Context, r io.ReadSeeker, procs int) ([]JunctionRecord, []PlaceRecord, error) {
	scanner := osmpbf.New(ctx, r, procs)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	ways := []*osm.Way{}
	wayNodesMap := make(map[osm.NodeID]bool)
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !isWalkableWay(way.Tags) && !isNamedBuilding(way.Tags) {
			continue
		}
		ways = append(ways, way)
		for _, n := range way.Nodes {
			wayNodesMap[n.ID] = true
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("scan osm ways: %w", err)
	}
	scanner.Close()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, nil, err
	}
	scanner = osmpbf.New(ctx, r, procs)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	nodes := []*osm.Node{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if wayNodesMap[node.ID] || isNamedPlaceNode(node.Tags) {
			nodes = append(nodes, node)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan osm nodes: %w", err)
	}

	junctions, places := ExtractFromOSM(ways, nodes)
	slog.Info("openstreetmap extract parsed",
		"ways", len(ways),
		"nodes", len(nodes),
		"junction_records", len(junctions),
		"places", len(places))
	return junctions, places, nil
}

// ExtractFromOSM ubah way & node osm jadi record loader. tiap pasangan node berurutan di way jalan
// jadi satu JunctionRecord, node bernama (amenity/building) dan gedung bernama (titik tengah node nya) jadi PlaceRecord.
func ExtractFromOSM(ways []*osm.Way, nodes []*osm.Node) ([]JunctionRecord, []PlaceRecord) {
	nodeMap := make(map[osm.NodeID]*osm.Node, len(nodes))
	for _, n := range nodes {
		nodeMap[n.ID] = n
	}

	junctions := []JunctionRecord{}
	places := []PlaceRecord{}

	for _, n := range nodes {
		if isNamedPlaceNode(n.Tags) {
			places = append(places, NewPlaceRecord(n.Tags.Find("name"), n.Lat, n.Lon))
		}
	}

	for _, way := range ways {
		if isNamedBuilding(way.Tags) {
			if place, ok := buildingCenter(way, nodeMap); ok {
				places = append(places, place)
			}
			continue
		}

		for i := 1; i < len(way.Nodes); i++ {
			from, okFrom := nodeMap[way.Nodes[i-1].ID]
			to, okTo := nodeMap[way.Nodes[i].ID]
			if !okFrom || !okTo || from.ID == to.ID {
				continue
			}
			junctions = append(junctions, JunctionRecord{
				Nodes:          []string{fmt.Sprintf("%d-%d", from.ID, to.ID)},
				Coordinates:    [][]float64{{from.Lat, from.Lon}, {to.Lat, to.Lon}},
				DistanceMetres: []float64{geo.Distance(from.Lat, from.Lon, to.Lat, to.Lon)},
			})
		}
	}
	return junctions, places
}

// buildingCenter rata-rata koordinat node gedung. node penutup polygon (sama dengan node pertama) tidak dihitung.
func buildingCenter(way *osm.Way, nodeMap map[osm.NodeID]*osm.Node) (PlaceRecord, bool) {
	wayNodes := way.Nodes
	if len(wayNodes) > 1 && wayNodes[0].ID == wayNodes[len(wayNodes)-1].ID {
		wayNodes = wayNodes[:len(wayNodes)-1]
	}
	var lat, lon float64
	count := 0
	for _, wn := range wayNodes {
		n, ok := nodeMap[wn.ID]
		if !ok {
			continue
		}
		lat += n.Lat
		lon += n.Lon
		count++
	}
	if count == 0 {
		return PlaceRecord{}, false
	}
	return NewPlaceRecord(way.Tags.Find("name"), lat/float64(count), lon/float64(count)), true
}
