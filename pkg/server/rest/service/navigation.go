package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/engine/routingalgorithm"
	"lintang/campusnav/pkg/geo"
	"lintang/campusnav/pkg/guidance"
	"lintang/campusnav/pkg/server"
	"lintang/campusnav/pkg/spatialindex"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type CampusGraph interface {
	Location(name string) (datastructure.Coordinate, error)
	GetDistance(name1, name2 string) float64
	Kind(name string) (datastructure.VertexKind, bool)
	AllVertices(kind datastructure.VertexKind) []string
}

type RoutingAlgorithm interface {
	ShortestPath(origin, destination string) ([]string, error)
	ShortestPathManyToManyDijkstraWorkers(sources []string, targets []string) (map[string]map[string]datastructure.SPSingleResultResult, error)
}

type KVDB interface {
	GetPlacesNearCoord(lat, lon, searchRadiusKm float64) ([]string, error)
}

type PlaceIndex interface {
	NearestPlace(lat, lon float64) (spatialindex.NearbyPlace, error)
}

// closeMatchCutoff similarity minimal (1 - levenshtein/panjang nama) supaya nama dianggap mirip.
const closeMatchCutoff = 0.6

type NavigationService struct {
	graph      CampusGraph
	routing    RoutingAlgorithm
	kv         KVDB
	placeIndex PlaceIndex
	places     []string
}

// NewNavigationService places daftar nama place sesuai urutan file input, hanya yang ada di graph sebagai point of interest yang dipakai.
func NewNavigationService(graph CampusGraph, routing RoutingAlgorithm, kv KVDB, placeIndex PlaceIndex, places []string) *NavigationService {
	catalogue := make([]string, 0, len(places))
	for _, p := range places {
		if kind, ok := graph.Kind(p); ok && kind == datastructure.PointOfInterest {
			catalogue = append(catalogue, p)
		}
	}
	return &NavigationService{graph: graph, routing: routing, kv: kv, placeIndex: placeIndex, places: catalogue}
}

func (uc *NavigationService) checkLocation(name string) error {
	if _, ok := uc.graph.Kind(name); !ok {
		return server.WrapErrorf(datastructure.ErrMissingVertex, server.ErrNotFound, "%s: %q", server.MessageUnknownLocation, name)
	}
	return nil
}

func routingError(err error) error {
	switch {
	case errors.Is(err, routingalgorithm.ErrNoPath):
		return server.WrapErrorf(err, server.ErrNotFound, server.MessageNoRoute)
	case errors.Is(err, datastructure.ErrMissingVertex):
		return server.WrapErrorf(err, server.ErrNotFound, server.MessageUnknownLocation)
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
}

// ShortestPath rute terpendek antara dua lokasi (nama vertex) beserta ringkasan jarak & waktu tempuh.
func (uc *NavigationService) ShortestPath(ctx context.Context, from, to string) (guidance.Route, error) {
	if err := uc.checkLocation(from); err != nil {
		return guidance.Route{}, err
	}
	if err := uc.checkLocation(to); err != nil {
		return guidance.Route{}, err
	}

	path, err := uc.routing.ShortestPath(from, to)
	if err != nil {
		return guidance.Route{}, routingError(err)
	}

	route, err := guidance.NewRoute(path, uc.graph)
	if err != nil {
		return guidance.Route{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return route, nil
}

type SnappedRoute struct {
	Source      spatialindex.NearbyPlace
	Destination spatialindex.NearbyPlace
	Route       guidance.Route
}

// ShortestPathCoord snap koordinat asal & tujuan ke place terdekat lalu cari rute antar place itu.
func (uc *NavigationService) ShortestPathCoord(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (SnappedRoute, error) {
	src, err := uc.placeIndex.NearestPlace(srcLat, srcLon)
	if err != nil {
		return SnappedRoute{}, server.WrapErrorf(err, server.ErrNotFound, server.MessageUnknownLocation)
	}
	dst, err := uc.placeIndex.NearestPlace(dstLat, dstLon)
	if err != nil {
		return SnappedRoute{}, server.WrapErrorf(err, server.ErrNotFound, server.MessageUnknownLocation)
	}

	route, err := uc.ShortestPath(ctx, src.Name, dst.Name)
	if err != nil {
		return SnappedRoute{}, err
	}
	return SnappedRoute{Source: src, Destination: dst, Route: route}, nil
}

// ManyToManyQuery path & jarak dari setiap source ke setiap target. pasangan yang tidak terhubung Found=false.
func (uc *NavigationService) ManyToManyQuery(ctx context.Context, sources, targets []string) (map[string]map[string]datastructure.SPSingleResultResult, error) {
	for _, name := range append(append([]string{}, sources...), targets...) {
		if err := uc.checkLocation(name); err != nil {
			return nil, err
		}
	}
	res, err := uc.routing.ShortestPathManyToManyDijkstraWorkers(sources, targets)
	if err != nil {
		return nil, routingError(err)
	}
	return res, nil
}

// Places semua nama place, urut sesuai file input.
func (uc *NavigationService) Places(ctx context.Context) []string {
	return append([]string{}, uc.places...)
}

// SearchPlaces cari nama place dari input user. urutan hasil: sama persis (case insensitive),
// mengandung query, fuzzy match (huruf query muncul berurutan), lalu nama yang mirip (typo).
func (uc *NavigationService) SearchPlaces(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, server.WrapErrorf(errors.New("empty query"), server.ErrBadParamInput, "query must not be empty")
	}

	lowerQuery := strings.ToLower(query)
	seen := make(map[string]bool)
	res := []string{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			res = append(res, name)
		}
	}

	for _, p := range uc.places {
		if strings.EqualFold(p, query) {
			add(p)
		}
	}
	for _, p := range uc.places {
		if strings.Contains(strings.ToLower(p), lowerQuery) {
			add(p)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, uc.places)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	for _, r := range ranks {
		add(r.Target)
	}

	type closeMatch struct {
		name  string
		score float64
	}
	matches := []closeMatch{}
	for _, p := range uc.places {
		if seen[p] {
			continue
		}
		score := similarity(lowerQuery, strings.ToLower(p))
		if score >= closeMatchCutoff {
			matches = append(matches, closeMatch{p, score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	for _, c := range matches {
		add(c.name)
	}

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(longest)
}

// NearbyPlaces place dalam radius radiusM meter dari (lat,lon), urut dari yang paling dekat.
// kandidat diambil dari h3 cell di pebble lalu difilter pakai jarak sebenarnya.
func (uc *NavigationService) NearbyPlaces(ctx context.Context, lat, lon, radiusM float64) ([]spatialindex.NearbyPlace, error) {
	cands, err := uc.kv.GetPlacesNearCoord(lat, lon, radiusM/1000)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}

	places := []spatialindex.NearbyPlace{}
	for _, name := range cands {
		loc, err := uc.graph.Location(name)
		if err != nil {
			continue
		}
		d := geo.Distance(lat, lon, loc.Lat, loc.Lon)
		if d <= radiusM {
			places = append(places, spatialindex.NearbyPlace{Name: name, Location: loc, Distance: d})
		}
	}
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Distance != places[j].Distance {
			return places[i].Distance < places[j].Distance
		}
		return places[i].Name < places[j].Name
	})
	return places, nil
}
