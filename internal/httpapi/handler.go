// Package httpapi exposes a catalog.Catalog over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/IvanBrykalov/catalogcache/catalog"
	"github.com/IvanBrykalov/catalogcache/seed"
)

// Prefix is where RegisterRoutes mounts the catalog endpoints.
const Prefix = "/api/v1/catalog"

// Handler serves catalog endpoints.
type Handler struct {
	catalog catalog.Catalog
	log     *zap.Logger
}

// NewHandler returns a Handler over c. A nil logger disables logging.
func NewHandler(c catalog.Catalog, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{catalog: c, log: log.Named("httpapi")}
}

// RegisterRoutes mounts the catalog endpoints under Prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route(Prefix, func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/grouped", h.listGrouped)
		r.Get("/filters", h.filters)
		r.Get("/featured", h.featured)
		r.Post("/cache/invalidate", h.invalidate)
		r.Get("/cache/stats", h.stats)
	})
}

// listProducts answers GET /products?q=&category=&brand=.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.Products(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	list = catalog.FilterProducts(list, q.Get("category"), q.Get("brand"))
	list = catalog.SearchProducts(list, q.Get("q"))
	respond(w, http.StatusOK, list)
}

// listGrouped answers GET /products/grouped?q=&category=&brand=.
func (h *Handler) listGrouped(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.Products(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	groups := catalog.GroupProducts(list)
	groups = catalog.FilterGroupedProducts(groups, q.Get("category"), q.Get("brand"))
	groups = catalog.SearchGroupedProducts(groups, q.Get("q"))
	respond(w, http.StatusOK, groups)
}

func (h *Handler) filters(w http.ResponseWriter, r *http.Request) {
	f, err := h.catalog.Filters(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, f)
}

func (h *Handler) featured(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, seed.Featured())
}

func (h *Handler) invalidate(w http.ResponseWriter, r *http.Request) {
	h.catalog.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.catalog.Stats())
}

// Client-facing error messages. The underlying error is only logged.
const (
	msgStoreUnavailable = "product store unavailable"
	msgClosed           = "catalog closed"
	msgInternal         = "internal error"
)

// fail maps catalog errors to status codes: store failures are 502,
// a closed catalog is 503.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, msgInternal
	var fe *catalog.FetchError
	switch {
	case errors.As(err, &fe):
		status, msg = http.StatusBadGateway, msgStoreUnavailable
	case errors.Is(err, catalog.ErrClosed):
		status, msg = http.StatusServiceUnavailable, msgClosed
	}
	h.log.Warn("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	respond(w, status, errorBody{Error: msg})
}

type errorBody struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
