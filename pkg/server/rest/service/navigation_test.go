package service_test

import (
	"context"
	"errors"
	"testing"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/engine/routingalgorithm"
	"lintang/campusnav/pkg/server"
	"lintang/campusnav/pkg/server/rest/service"
	"lintang/campusnav/pkg/spatialindex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	names []string
	err   error
}

func (f *fakeKV) GetPlacesNearCoord(lat, lon, searchRadiusKm float64) ([]string, error) {
	return f.names, f.err
}

func campusGraph(t *testing.T) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph()
	require.NoError(t, g.AddVertex("j1", datastructure.NewCoordinate(43.6600, -79.3960), datastructure.Junction))
	require.NoError(t, g.AddVertex("j2", datastructure.NewCoordinate(43.6610, -79.3960), datastructure.Junction))
	require.NoError(t, g.AddVertex("j3", datastructure.NewCoordinate(43.6620, -79.3960), datastructure.Junction))
	require.NoError(t, g.AddVertex("j9", datastructure.NewCoordinate(43.7001, -79.4000), datastructure.Junction))
	require.NoError(t, g.AddVertex("Robarts Library", datastructure.NewCoordinate(43.6621, -79.3961), datastructure.PointOfInterest))
	require.NoError(t, g.AddVertex("Hart House", datastructure.NewCoordinate(43.6601, -79.3959), datastructure.PointOfInterest))
	require.NoError(t, g.AddVertex("Bahen Centre", datastructure.NewCoordinate(43.7000, -79.4000), datastructure.PointOfInterest))
	require.NoError(t, g.AddEdge("j1", "j2", 111))
	require.NoError(t, g.AddEdge("j2", "j3", 111))
	require.NoError(t, g.AddEdge("Robarts Library", "j3", 13.5))
	require.NoError(t, g.AddEdge("Hart House", "j1", 12.25))
	require.NoError(t, g.AddEdge("Bahen Centre", "j9", 10))
	return g
}

func newService(t *testing.T, kv service.KVDB) *service.NavigationService {
	t.Helper()
	g := campusGraph(t)
	idx, err := spatialindex.NewPlaceIndex(g)
	require.NoError(t, err)
	places := []string{"Robarts Library", "Hart House", "Bahen Centre", "j1", "Ghost Hall"}
	return service.NewNavigationService(g, routingalgorithm.NewRouteAlgorithm(g, 2), kv, idx, places)
}

func requireServerError(t *testing.T, err error, code error) *server.Error {
	t.Helper()
	var serr *server.Error
	require.True(t, errors.As(err, &serr), "error %v is not a server.Error", err)
	assert.Equal(t, code, serr.Code())
	return serr
}

func TestShortestPath(t *testing.T) {
	svc := newService(t, &fakeKV{})
	ctx := context.Background()

	t.Run("route between places", func(t *testing.T) {
		route, err := svc.ShortestPath(ctx, "Hart House", "Robarts Library")
		require.NoError(t, err)
		assert.Equal(t, []string{"Hart House", "j1", "j2", "j3", "Robarts Library"}, route.Path)
		assert.Equal(t, 247.75, route.Distance)
		assert.Len(t, route.Legs, 4)
		assert.Len(t, route.Durations, 3)
		assert.NotEmpty(t, route.Polyline)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := svc.ShortestPath(ctx, "Hart House", "Narnia")
		serr := requireServerError(t, err, server.ErrNotFound)
		assert.Contains(t, serr.Error(), server.MessageUnknownLocation)
		assert.ErrorIs(t, err, datastructure.ErrMissingVertex)
	})

	t.Run("no route", func(t *testing.T) {
		_, err := svc.ShortestPath(ctx, "Hart House", "Bahen Centre")
		serr := requireServerError(t, err, server.ErrNotFound)
		assert.Equal(t, server.MessageNoRoute, serr.Error())
		assert.ErrorIs(t, err, routingalgorithm.ErrNoPath)
	})

	t.Run("snap coordinates to nearest places", func(t *testing.T) {
		res, err := svc.ShortestPathCoord(ctx, 43.66012, -79.39592, 43.66205, -79.39612)
		require.NoError(t, err)
		assert.Equal(t, "Hart House", res.Source.Name)
		assert.Equal(t, "Robarts Library", res.Destination.Name)
		assert.Equal(t, "Robarts Library", res.Route.Path[len(res.Route.Path)-1])
	})
}

func TestManyToManyQuery(t *testing.T) {
	svc := newService(t, &fakeKV{})
	ctx := context.Background()

	res, err := svc.ManyToManyQuery(ctx, []string{"Hart House"}, []string{"Robarts Library", "Bahen Centre"})
	require.NoError(t, err)
	assert.True(t, res["Hart House"]["Robarts Library"].Found)
	assert.Equal(t, 247.75, res["Hart House"]["Robarts Library"].Dist)
	assert.False(t, res["Hart House"]["Bahen Centre"].Found)

	_, err = svc.ManyToManyQuery(ctx, []string{"Hart House"}, []string{"Narnia"})
	requireServerError(t, err, server.ErrNotFound)
}

func TestPlaces(t *testing.T) {
	svc := newService(t, &fakeKV{})
	ctx := context.Background()

	t.Run("catalogue keeps input order and only places", func(t *testing.T) {
		assert.Equal(t, []string{"Robarts Library", "Hart House", "Bahen Centre"}, svc.Places(ctx))
	})

	t.Run("search", func(t *testing.T) {
		tests := []struct {
			query string
			limit int
			want  []string
		}{
			{"robarts library", 0, []string{"Robarts Library"}},
			{"lib", 0, []string{"Robarts Library"}},
			{"Hart Huose", 0, []string{"Hart House"}},
			{"qqqqqqq", 0, []string{}},
		}
		for _, tt := range tests {
			t.Run(tt.query, func(t *testing.T) {
				got, err := svc.SearchPlaces(ctx, tt.query, tt.limit)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("search limit", func(t *testing.T) {
		got, err := svc.SearchPlaces(ctx, "e", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := svc.SearchPlaces(ctx, "  ", 0)
		requireServerError(t, err, server.ErrBadParamInput)
	})
}

func TestNearbyPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("filters candidates by real distance", func(t *testing.T) {
		svc := newService(t, &fakeKV{names: []string{"Robarts Library", "Hart House", "Bahen Centre"}})
		places, err := svc.NearbyPlaces(ctx, 43.6601, -79.3959, 300)
		require.NoError(t, err)
		require.Len(t, places, 2)
		assert.Equal(t, "Hart House", places[0].Name)
		assert.Equal(t, "Robarts Library", places[1].Name)
		assert.Less(t, places[0].Distance, places[1].Distance)
	})

	t.Run("store error", func(t *testing.T) {
		svc := newService(t, &fakeKV{err: errors.New("pebble closed")})
		_, err := svc.NearbyPlaces(ctx, 43.6601, -79.3959, 300)
		requireServerError(t, err, server.ErrInternalServerError)
	})
}
