package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"lintang/campusnav/pkg/kv"
	"lintang/campusnav/pkg/osmparser"
	"lintang/campusnav/pkg/util"

	"github.com/cockroachdb/pebble"
	"golang.org/x/exp/slog"
)

func init() {
	util.LoadEnv()
}

var (
	placeFile    = flag.String("places", util.GetEnv("PLACES_FILE", "data/places.json"), "json file building kampus (name, lat, lng)")
	junctionFile = flag.String("junctions", util.GetEnv("JUNCTIONS_FILE", "data/junctions.json"), "json file junction kampus")
	osmFile      = flag.String("osm", util.GetEnv("OSM_FILE", ""), "openstreetmap pbf kampus, kalau diisi junction diambil dari sini")
	dbDir        = flag.String("db", util.GetEnv("DB_DIR", "campusnavDB"), "direktori pebble db")
	nearestK     = flag.Int("k", util.GetEnvInt("NEAREST_JUNCTIONS", osmparser.DefaultNearestJunctions), "jumlah junction terdekat untuk tiap building")
	numWorkers   = flag.Int("workers", util.GetEnvInt("WORKERS", 4), "jumlah worker penyimpanan h3 place index")
)

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	loader := osmparser.NewGraphLoader(*nearestK, true)
	g, places, err := loader.LoadSources(context.Background(), osmparser.Sources{
		JunctionFile: *junctionFile,
		PlaceFile:    *placeFile,
		OSMFile:      *osmFile,
	})
	if err != nil {
		log.Fatal(err)
	}

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	if err := kvDB.SaveGraph(g, places); err != nil {
		log.Fatal(err)
	}
	if err := kvDB.CreatePlaceKV(g, *numWorkers, true); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n campus graph snapshot ready: %d vertices, %d edges, %d places\n", g.NumVertices(), g.NumEdges(), len(places))
}
