package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
)

// CatalogHandler serves CRUD requests for every collection in a [Store].
// Implements [Handler].
type CatalogHandler struct {
	store  *Store
	logger *log.Logger
}

var _ Handler = (*CatalogHandler)(nil)

// NewCatalogHandler creates a handler over the given store.
func NewCatalogHandler(store *Store, logger *log.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// Routes implements [Handler].
func (h *CatalogHandler) Routes() []string {
	return []string{
		"GET /{collection}",
		"POST /{collection}",
		"GET /{collection}/{id}",
		"PATCH /{collection}/{id}",
		"DELETE /{collection}/{id}",
	}
}

// ServeHTTP dispatches on method and the presence of an id path segment.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	if !h.store.Has(collection) {
		writeError(w, http.StatusNotFound, "unknown collection")
		return
	}

	rawID := r.PathValue("id")
	if rawID == "" {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, h.store.List(collection))
		case http.MethodPost:
			h.create(w, r, collection)
		}
		return
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, ok := h.store.Get(collection, id)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodPatch:
		h.update(w, r, collection, id)
	case http.MethodDelete:
		if !h.store.Delete(collection, id) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (h *CatalogHandler) create(w http.ResponseWriter, r *http.Request, collection string) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.Create(collection, body))
}

func (h *CatalogHandler) update(w http.ResponseWriter, r *http.Request, collection string, id int) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	item, found := h.store.Update(collection, id, body)
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// NewCatalogRouter assembles the full development API: catalog handler plus
// request logging.
func NewCatalogRouter(store *Store, logger *log.Logger) *BasicRouter {
	router := NewBasicRouter()
	router.Use(RequestLogger(logger))
	router.Handler(NewCatalogHandler(store, logger))
	return router
}
