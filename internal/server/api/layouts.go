package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kmathur/glide/internal/store"
)

// LayoutHandler handles HTTP requests for layout resources.
type LayoutHandler struct {
	store *store.Store
}

// NewLayoutHandler creates a new LayoutHandler with the given store.
func NewLayoutHandler(s *store.Store) *LayoutHandler {
	return &LayoutHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *LayoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/layouts or /api/layouts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/layouts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/layouts
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/layouts/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createLayoutRequest struct {
	Name string          `json:"name"`
	Keys []store.KeyRect `json:"keys"`
}

type layoutResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	KeyCount  int    `json:"key_count"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type listLayoutsResponse struct {
	Layouts []layoutResponse `json:"layouts"`
}

// toResponse converts a store.Layout to a layoutResponse.
func toResponse(l *store.Layout) layoutResponse {
	return layoutResponse{
		ID:        l.ID,
		Name:      l.Name,
		KeyCount:  l.KeyCount,
		CreatedAt: l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: l.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/layouts and returns all layouts.
func (h *LayoutHandler) list(w http.ResponseWriter, r *http.Request) {
	layouts, err := h.store.Layouts().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list layouts")
		return
	}

	response := listLayoutsResponse{
		Layouts: make([]layoutResponse, 0, len(layouts)),
	}

	for _, l := range layouts {
		response.Layouts = append(response.Layouts, toResponse(l))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/layouts/{id} and returns a single layout.
func (h *LayoutHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	layout, err := h.store.Layouts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Layout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get layout")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(layout))
}

// create handles POST /api/layouts and creates a new layout, optionally
// with its key rectangles.
func (h *LayoutHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	layout := &store.Layout{
		ID:       uuid.New().String(),
		Name:     req.Name,
		KeyCount: len(req.Keys),
	}

	if err := h.store.Layouts().Create(layout); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create layout")
		return
	}

	if len(req.Keys) > 0 {
		if err := h.store.Layouts().ReplaceKeys(layout.ID, req.Keys); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save layout keys")
			return
		}
	}

	writeJSON(w, http.StatusCreated, toResponse(layout))
}

// delete handles DELETE /api/layouts/{id} and removes a layout.
func (h *LayoutHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Layouts().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Layout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete layout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
