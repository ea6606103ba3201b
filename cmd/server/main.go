package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	_ "lintang/campusnav/docs"
	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/engine/routingalgorithm"
	"lintang/campusnav/pkg/kv"
	"lintang/campusnav/pkg/osmparser"
	"lintang/campusnav/pkg/server/rest"
	"lintang/campusnav/pkg/server/rest/service"
	"lintang/campusnav/pkg/spatialindex"
	"lintang/campusnav/pkg/util"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/exp/slog"

	_ "net/http/pprof"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func init() {
	util.LoadEnv()
}

var (
	listenAddr    = flag.String("listenaddr", util.GetEnv("LISTEN_ADDR", ":5000"), "server listen address")
	placeFile     = flag.String("places", util.GetEnv("PLACES_FILE", "data/places.json"), "json file building kampus (name, lat, lng)")
	junctionFile  = flag.String("junctions", util.GetEnv("JUNCTIONS_FILE", "data/junctions.json"), "json file junction kampus")
	osmFile       = flag.String("osm", util.GetEnv("OSM_FILE", ""), "openstreetmap pbf kampus, kalau diisi junction diambil dari sini")
	dbDir         = flag.String("db", util.GetEnv("DB_DIR", "campusnavDB"), "direktori pebble db")
	nearestK      = flag.Int("k", util.GetEnvInt("NEAREST_JUNCTIONS", osmparser.DefaultNearestJunctions), "jumlah junction terdekat untuk tiap building")
	numWorkers    = flag.Int("workers", util.GetEnvInt("WORKERS", 4), "jumlah worker many to many query")
	swaggerDocURL = flag.String("swagger", util.GetEnv("SWAGGER_URL", "http://localhost:5000/swagger/doc.json"), "url swagger doc.json")
)

//	@title			campusnav API
//	@version		1.0
//	@description	campus shortest path routing engine in go

//	@contact.name	campusnav

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}
	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	g, places, err := loadCampusGraph(kvDB)
	if err != nil {
		log.Fatal(err)
	}

	placeIndex, err := spatialindex.NewPlaceIndex(g)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(*swaggerDocURL), //The url pointing to API definition
	))

	routingAlgorithm := routingalgorithm.NewRouteAlgorithm(g, *numWorkers)
	navigatorSvc := service.NewNavigationService(g, routingAlgorithm, kvDB, placeIndex, places)
	rest.NavigatorRouter(r, navigatorSvc, m)

	slog.Info("server started", "addr", *listenAddr, "places", len(places))
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

// loadCampusGraph pakai snapshot di pebble kalau sudah pernah di preprocess,
// kalau belum build dari file input lalu simpan snapshot + h3 place index.
func loadCampusGraph(kvDB *kv.KVDB) (*datastructure.Graph, []string, error) {
	g, places, err := kvDB.LoadGraph()
	if err == nil {
		slog.Info("campus graph loaded from snapshot", "dir", *dbDir, "vertices", g.NumVertices(), "edges", g.NumEdges())
		return g, places, nil
	}
	if !errors.Is(err, kv.ErrSnapshotNotFound) {
		return nil, nil, err
	}

	slog.Info("no graph snapshot found, building campus graph from input files")
	loader := osmparser.NewGraphLoader(*nearestK, true)
	g, places, err = loader.LoadSources(context.Background(), osmparser.Sources{
		JunctionFile: *junctionFile,
		PlaceFile:    *placeFile,
		OSMFile:      *osmFile,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := kvDB.SaveGraph(g, places); err != nil {
		return nil, nil, err
	}
	if err := kvDB.CreatePlaceKV(g, *numWorkers, true); err != nil {
		return nil, nil, err
	}
	return g, places, nil
}
