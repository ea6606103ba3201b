package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lintang/campusnav/pkg/datastructure"
	"lintang/campusnav/pkg/geo"
	"lintang/campusnav/pkg/guidance"
	"lintang/campusnav/pkg/server"
	"lintang/campusnav/pkg/server/rest/service"
	"lintang/campusnav/pkg/spatialindex"
	"lintang/campusnav/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, from, to string) (guidance.Route, error)
	ShortestPathCoord(ctx context.Context, srcLat, srcLon, dstLat, dstLon float64) (service.SnappedRoute, error)
	ManyToManyQuery(ctx context.Context, sources, targets []string) (map[string]map[string]datastructure.SPSingleResultResult, error)
	Places(ctx context.Context) []string
	SearchPlaces(ctx context.Context, query string, limit int) ([]string, error)
	NearbyPlaces(ctx context.Context, lat, lon, radiusM float64) ([]spatialindex.NearbyPlace, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/shortest-path-coord", handler.shortestPathCoord)
			r.Post("/many-to-many", handler.ManyToManyQuery)
			r.Get("/places", handler.Places)
			r.Get("/places/search", handler.SearchPlaces)
			r.Get("/places/nearby", handler.NearbyPlaces)
			r.Get("/hello", handler.Hello)
		})
	})
}

// validateRequest return renderer error validasi (pesan sudah diterjemahkan ke english), nil kalau valid.
func validateRequest(data interface{}) render.Renderer {
	validate := validator.New()
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	return ErrValidation(err, vv)
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 tempat di kampus
type ShortestPathRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.From == "" || s.To == "" {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathCoordRequest model info
//
//	@Description	request body untuk shortest path query dari koordinat, koordinat di snap ke tempat terdekat
type ShortestPathCoordRequest struct {
	SrcLat *float64 `json:"src_lat" validate:"required,gte=-90,lte=90"`
	SrcLon *float64 `json:"src_lon" validate:"required,gte=-180,lte=180"`
	DstLat *float64 `json:"dst_lat" validate:"required,gte=-90,lte=90"`
	DstLon *float64 `json:"dst_lon" validate:"required,gte=-180,lte=180"`
}

// Bind no-op, field yang tidak ada (nil) ditolak validator. koordinat 0 tetap valid.
func (s *ShortestPathCoordRequest) Bind(r *http.Request) error {
	return nil
}

type DurationRes struct {
	Mode    string  `json:"mode"`
	Minutes int     `json:"minutes"`
	Seconds int     `json:"seconds"`
	ETA     float64 `json:"eta_seconds"`
}

// ShortestPathResponse	model info
//
//	@Description	response body untuk shortest path query antara 2 tempat di kampus
type ShortestPathResponse struct {
	Path        []string                   `json:"path"`
	Dist        float64                    `json:"distance"`
	Durations   []DurationRes              `json:"durations"`
	Navigations []guidance.Leg             `json:"navigations"`
	Polyline    string                     `json:"polyline"`
	Route       []datastructure.Coordinate `json:"route,omitempty"`
	Bounds      geo.Bounds                 `json:"bounds"`
	Found       bool                       `json:"found"`
	Alg         string                     `json:"algorithm"`
}

func NewShortestPathResponse(route guidance.Route) *ShortestPathResponse {
	durations := make([]DurationRes, 0, len(route.Durations))
	for _, d := range route.Durations {
		durations = append(durations, DurationRes{
			Mode:    string(d.Mode),
			Minutes: d.Minutes,
			Seconds: d.Seconds,
			ETA:     util.RoundFloat(d.TotalSeconds, 2),
		})
	}
	legs := make([]guidance.Leg, 0, len(route.Legs))
	for _, l := range route.Legs {
		l.Distance = util.RoundFloat(l.Distance, 2)
		l.Bearing = util.RoundFloat(l.Bearing, 2)
		legs = append(legs, l)
	}
	return &ShortestPathResponse{
		Path:        route.Path,
		Dist:        util.RoundFloat(route.Distance, 2),
		Durations:   durations,
		Navigations: legs,
		Polyline:    route.Polyline,
		Route:       route.Coordinates,
		Bounds:      route.Bounds,
		Found:       true,
		Alg:         "Dijkstra",
	}
}

// shortestPath
//
//	@Summary		shortest path query antara 2 tempat di kampus.
//	@Description	shortest path query antara 2 tempat (nama building / junction) di kampus. Hanya 1 source dan 1 destination
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 tempat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateRequest(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("shortest_path").Inc()
	route, err := h.svc.ShortestPath(r.Context(), data.From, data.To)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(route))
}

// ShortestPathCoordResponse model info
//
//	@Description	response body untuk shortest path query dari koordinat
type ShortestPathCoordResponse struct {
	Source      spatialindex.NearbyPlace `json:"source"`
	Destination spatialindex.NearbyPlace `json:"destination"`
	*ShortestPathResponse
}

// shortestPathCoord
//
//	@Summary		shortest path query dari 2 koordinat.
//	@Description	koordinat asal & tujuan di snap ke building terdekat, lalu shortest path query antara 2 building tersebut.
//	@Tags			navigations
//	@Param			body	body	ShortestPathCoordRequest	true	"request body query shortest path dari 2 koordinat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path-coord [post]
//	@Success		200	{object}	ShortestPathCoordResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPathCoord(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathCoordRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateRequest(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("shortest_path_coord").Inc()
	res, err := h.svc.ShortestPathCoord(r.Context(), *data.SrcLat, *data.SrcLon, *data.DstLat, *data.DstLon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	res.Source.Distance = util.RoundFloat(res.Source.Distance, 2)
	res.Destination.Distance = util.RoundFloat(res.Destination.Distance, 2)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ShortestPathCoordResponse{
		Source:               res.Source,
		Destination:          res.Destination,
		ShortestPathResponse: NewShortestPathResponse(res.Route),
	})
}

// ManyToManyQueryRequest model info
//
//	@Description	request body untuk shortest path query antara banyak source dan banyak target
type ManyToManyQueryRequest struct {
	Sources []string `json:"sources" validate:"required,min=1,dive,required"`
	Targets []string `json:"targets" validate:"required,min=1,dive,required"`
}

func (s *ManyToManyQueryRequest) Bind(r *http.Request) error {
	if len(s.Sources) == 0 || len(s.Targets) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

type SrcTargetPair struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Path   []string `json:"path"`
	Dist   float64  `json:"distance"`
	Found  bool     `json:"found"`
}

// ManyToManyQueryResponse model info
//
//	@Description	response body untuk many to many query, urut sesuai urutan sources lalu targets di request
type ManyToManyQueryResponse struct {
	Results []SrcTargetPair `json:"results"`
}

func RenderManyToManyQueryResponse(sources, targets []string, res map[string]map[string]datastructure.SPSingleResultResult) *ManyToManyQueryResponse {
	pairs := []SrcTargetPair{}
	seen := make(map[string]bool)
	for _, s := range sources {
		if seen[s] {
			continue
		}
		seen[s] = true
		for _, t := range targets {
			sp := res[s][t]
			pairs = append(pairs, SrcTargetPair{
				Source: s,
				Target: t,
				Path:   sp.Paths,
				Dist:   util.RoundFloat(sp.Dist, 2),
				Found:  sp.Found,
			})
		}
	}
	return &ManyToManyQueryResponse{Results: pairs}
}

// ManyToManyQuery
//
//	@Summary		many to many shortest path query antara banyak tempat di kampus.
//	@Description	shortest path dari setiap source ke setiap target. pasangan yang tidak terhubung found=false.
//	@Tags			navigations
//	@Param			body	body	ManyToManyQueryRequest	true	"request body many to many query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/many-to-many [post]
//	@Success		200	{object}	ManyToManyQueryResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ManyToManyQuery(w http.ResponseWriter, r *http.Request) {
	data := &ManyToManyQueryRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateRequest(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues("many_to_many").Inc()
	res, err := h.svc.ManyToManyQuery(r.Context(), data.Sources, data.Targets)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderManyToManyQueryResponse(data.Sources, data.Targets, res))
}

// PlacesResponse model info
//
//	@Description	response body daftar nama building
type PlacesResponse struct {
	Places []string `json:"places"`
}

// Places
//
//	@Summary		daftar semua building di kampus.
//	@Tags			places
//	@Produce		application/json
//	@Router			/navigations/places [get]
//	@Success		200	{object}	PlacesResponse
func (h *NavigationHandler) Places(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &PlacesResponse{Places: h.svc.Places(r.Context())})
}

type SearchPlacesRequest struct {
	Query string `validate:"required"`
	Limit int    `validate:"gte=0,lte=100"`
}

// SearchPlaces
//
//	@Summary		cari building dari nama (fuzzy).
//	@Tags			places
//	@Param			q		query	string	true	"nama building"
//	@Param			limit	query	int		false	"jumlah hasil maksimal"
//	@Produce		application/json
//	@Router			/navigations/places/search [get]
//	@Success		200	{object}	PlacesResponse
//	@Failure		400	{object}	ErrResponse
func (h *NavigationHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	data := SearchPlacesRequest{Query: r.URL.Query().Get("q"), Limit: 10}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("invalid limit %q", limitStr)))
			return
		}
		data.Limit = limit
	}
	if errRend := validateRequest(data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	places, err := h.svc.SearchPlaces(r.Context(), data.Query, data.Limit)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &PlacesResponse{Places: places})
}

type NearbyPlacesRequest struct {
	Lat    *float64 `validate:"required,gte=-90,lte=90"`
	Lon    *float64 `validate:"required,gte=-180,lte=180"`
	Radius float64  `validate:"required,gt=0,lte=5000"`
}

// NearbyPlacesResponse model info
//
//	@Description	response body building di sekitar koordinat
type NearbyPlacesResponse struct {
	Places []spatialindex.NearbyPlace `json:"places"`
}

// NearbyPlaces
//
//	@Summary		building dalam radius tertentu (meter) dari koordinat.
//	@Tags			places
//	@Param			lat		query	number	true	"latitude"
//	@Param			lon		query	number	true	"longitude"
//	@Param			radius	query	number	false	"radius dalam meter, default 500"
//	@Produce		application/json
//	@Router			/navigations/places/nearby [get]
//	@Success		200	{object}	NearbyPlacesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	data := NearbyPlacesRequest{Radius: 500}
	q := r.URL.Query()
	for _, key := range []string{"lat", "lon", "radius"} {
		val := q.Get(key)
		if val == "" {
			continue
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("invalid %s %q", key, val)))
			return
		}
		switch key {
		case "lat":
			data.Lat = &f
		case "lon":
			data.Lon = &f
		default:
			data.Radius = f
		}
	}
	if errRend := validateRequest(data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	places, err := h.svc.NearbyPlaces(r.Context(), *data.Lat, *data.Lon, data.Radius)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	for i := range places {
		places[i].Distance = util.RoundFloat(places[i].Distance, 2)
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &NearbyPlacesResponse{Places: places})
}

func (h *NavigationHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello, World!")
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	errText := err.Error()
	if getStatusCode(err) == http.StatusInternalServerError {
		errText = server.MessageInternalServerError
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      errText,
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
