package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"skydash/pkg/client"
	"skydash/pkg/consts"
	srvc "skydash/pkg/service"
	"skydash/pkg/views"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

type Handler struct {
	services    *srvc.Service
	splashDelay time.Duration
	now         func() time.Time
}

func NewHandler(services *srvc.Service, splashDelay time.Duration) *Handler {
	return &Handler{
		services:    services,
		splashDelay: splashDelay,
		now:         time.Now,
	}
}

func (h *Handler) InitRoutes() *mux.Router {

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, requestLogger, middleware.Recoverer)

	// pages
	router.HandleFunc("/", h.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/partials/{tab}", h.Tab).Methods(http.MethodGet)

	// json
	router.HandleFunc("/v1/apod", h.DailyImage).Methods(http.MethodGet)
	router.HandleFunc("/v1/apod/range", h.DailyImageRange).Methods(http.MethodGet)
	router.HandleFunc("/v1/neo/feed", h.NeoFeed).Methods(http.MethodGet)
	router.HandleFunc("/v1/journal", h.Journal).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	return router
}

// mount builds the dashboard for one request. The caller owns Teardown.
func (h *Handler) mount(ctx context.Context, r *http.Request, tab views.Tab) *views.Dashboard {
	d := views.NewDashboard(h.services, h.services, tab, h.splashDelay)
	d.Mount(ctx, h.now())

	if sel := getStringParam(r, consts.ParamSelected); sel != "" && tab == views.TabApod {
		if !d.Apod.Select(sel) {
			logrus.Debugf("selected date %q is not on the page", sel)
		}
	}
	return d
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	d := h.mount(ctx, r, views.ParseTab(getStringParam(r, consts.ParamTab)))
	defer d.Teardown()

	var buf bytes.Buffer
	if err := views.RenderDashboard(&buf, d); err != nil {
		logrus.Errorf("Error while rendering dashboard: %q", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	sendHTML(w, &buf)
}

// Tab renders the component of a single tab without the page around it.
func (h *Handler) Tab(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	d := h.mount(ctx, r, views.ParseTab(mux.Vars(r)["tab"]))
	defer d.Teardown()

	var buf bytes.Buffer
	if err := views.RenderTab(&buf, d); err != nil {
		logrus.Errorf("Error while rendering tab: %q", err)
		http.Error(w, "failed to render tab", http.StatusInternalServerError)
		return
	}

	sendHTML(w, &buf)
}

// DailyImage returns the record of ?date=, today when absent.
func (h *Handler) DailyImage(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	date, err := getTimeParam(r, consts.ParamDate)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	img, err := h.services.DailyImage(ctx, date)
	if err != nil {
		sendFetchError(w, err)
		return
	}

	sendResponse(w, http.StatusOK, "ok", img)
}

// DailyImageRange returns ?start_date..?end_date, most recent first.
// Without both params it serves the dashboard's recent window.
func (h *Handler) DailyImageRange(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	start, end, err := getRangeParams(r)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if start.IsZero() {
		start, end = client.RecentWindow(h.now())
	}

	imgs, err := h.services.DailyImageRange(ctx, start, end)
	if err != nil {
		sendFetchError(w, err)
		return
	}

	sendResponse(w, http.StatusOK, "ok", imgs)
}

// NeoFeed returns the raw feed keyed by date, today..+3 days when no range is given.
func (h *Handler) NeoFeed(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	start, end, err := getRangeParams(r)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if start.IsZero() {
		start, end = client.NeoWindow(h.now())
	}

	feed, err := h.services.NearEarthObjects(ctx, start, end)
	if err != nil {
		sendFetchError(w, err)
		return
	}

	sendResponse(w, http.StatusOK, "ok", feed)
}

func (h *Handler) Journal(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	limit, err := getIntParam(r, consts.ParamLimit)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	entries, err := h.services.Recent(ctx, limit)
	if err != nil {
		logrus.Errorf("Error while reading journal: %q", err)
		sendResponse(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", entries)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.services.Ping(ctx); err != nil {
		logrus.Warnf("journal ping failed: %q", err)
		sendResponse(w, http.StatusServiceUnavailable, "journal unavailable", nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", nil)
}

// upstream failures are not the caller's fault, bad ranges are
func sendFetchError(w http.ResponseWriter, err error) {
	var rangeErr *srvc.RangeError
	if errors.As(err, &rangeErr) {
		sendResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	logrus.Errorf("Error while fetching from upstream: %q", err)

	var data any
	if code := client.StatusCode(err); code != 0 {
		data = map[string]int{"upstream_status": code}
	}
	sendResponse(w, http.StatusBadGateway, client.Message(err), data)
}
