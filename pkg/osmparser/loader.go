package osmparser

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/geo"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slog"
)

const DefaultNearestJunctions = 3

// GraphLoader bikin campus graph dari junction record & place record.
type GraphLoader struct {
	k            int
	showProgress bool
}

func NewGraphLoader(k int, showProgress bool) *GraphLoader {
	if k <= 0 {
		k = DefaultNearestJunctions
	}
	return &GraphLoader{k: k, showProgress: showProgress}
}

func (l *GraphLoader) newBar(max int, desc string) *progressbar.ProgressBar {
	var w io.Writer = io.Discard
	if l.showProgress {
		w = ansi.NewAnsiStdout()
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// BuildGraph junction dulu baru place, karena linking place butuh junction yang sudah ada di graph.
// weight junction-junction diambil dari record (dibulatkan ke bawah jadi integer meter),
// weight place-junction dihitung pakai geo.CalculateDistance.
func (l *GraphLoader) BuildGraph(junctions []JunctionRecord, places []PlaceRecord) (*datastructure.Graph, error) {
	if err := validateJunctions(junctions); err != nil {
		return nil, err
	}
	if err := validatePlaces(places); err != nil {
		return nil, err
	}

	g := datastructure.NewGraph()

	bar := l.newBar(len(junctions), "[cyan][1/2][reset] loading campus junctions...")
	for _, rec := range junctions {
		id1, id2, _ := rec.Endpoints()
		c1 := datastructure.NewCoordinate(rec.Coordinates[0][0], rec.Coordinates[0][1])
		c2 := datastructure.NewCoordinate(rec.Coordinates[1][0], rec.Coordinates[1][1])
		if err := g.AddVertex(id1, c1, datastructure.Junction); err != nil {
			return nil, err
		}
		if err := g.AddVertex(id2, c2, datastructure.Junction); err != nil {
			return nil, err
		}
		bar.Add(1)
		if id1 == id2 {
			continue
		}
		if err := g.AddEdge(id1, id2, math.Trunc(rec.DistanceMetres[0])); err != nil {
			return nil, err
		}
	}
	bar.Finish()

	bar = l.newBar(len(places), "[cyan][2/2][reset] linking places to nearest junctions...")
	for _, rec := range places {
		bar.Add(1)
		if _, exists := g.Kind(rec.Name); exists {
			continue
		}
		lat, lng := rec.Coordinate()
		if err := g.AddVertex(rec.Name, datastructure.NewCoordinate(lat, lng), datastructure.PointOfInterest); err != nil {
			return nil, err
		}
		nearest, err := g.NearestJunctions(rec.Name, l.k)
		if err != nil {
			return nil, err
		}
		for _, j := range nearest {
			loc, err := g.Location(j)
			if err != nil {
				return nil, err
			}
			dist := geo.Distance(lat, lng, loc.Lat, loc.Lon)
			if err := g.AddEdge(rec.Name, j, dist); err != nil {
				return nil, fmt.Errorf("linking %q: %w", rec.Name, err)
			}
		}
	}
	bar.Finish()

	slog.Info("campus graph loaded",
		"vertices", g.NumVertices(),
		"edges", g.NumEdges(),
		"places", len(g.AllVertices(datastructure.PointOfInterest)))
	return g, nil
}

// LoadGraph baca file json junction & place lalu BuildGraph.
func (l *GraphLoader) LoadGraph(junctionFile, placeFile string) (*datastructure.Graph, []string, error) {
	junctions, err := LoadJunctionFile(junctionFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load junctions %s: %w", junctionFile, err)
	}
	places, err := LoadPlaceFile(placeFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load places %s: %w", placeFile, err)
	}
	g, err := l.BuildGraph(junctions, places)
	if err != nil {
		return nil, nil, err
	}
	return g, PlaceNames(places), nil
}

// Sources file input graph. junction dari OSMFile kalau diisi (selain itu JunctionFile),
// place dari PlaceFile kalau diisi (selain itu dari building/amenity bernama di OSMFile).
type Sources struct {
	JunctionFile string
	PlaceFile    string
	OSMFile      string
}

func (l *GraphLoader) LoadSources(ctx context.Context, src Sources) (*datastructure.Graph, []string, error) {
	if src.OSMFile == "" {
		return l.LoadGraph(src.JunctionFile, src.PlaceFile)
	}

	f, err := os.Open(src.OSMFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	junctions, places, err := ParsePBF(ctx, f, 3)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", src.OSMFile, err)
	}

	if src.PlaceFile != "" {
		places, err = LoadPlaceFile(src.PlaceFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load places %s: %w", src.PlaceFile, err)
		}
	}
	g, err := l.BuildGraph(junctions, places)
	if err != nil {
		return nil, nil, err
	}
	return g, PlaceNames(places), nil
}
