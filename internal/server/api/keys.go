package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kmathur/glide/internal/store"
)

// KeysHandler handles HTTP requests for layout key resources.
type KeysHandler struct {
	store *store.Store
}

// NewKeysHandler creates a new KeysHandler with the given store.
func NewKeysHandler(s *store.Store) *KeysHandler {
	return &KeysHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/layouts/{id}/keys
func (h *KeysHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse layout ID from path: /api/layouts/{id}/keys
	path := strings.TrimPrefix(r.URL.Path, "/api/layouts/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "keys" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	layoutID := parts[0]

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, layoutID)
	case http.MethodPut:
		h.replace(w, r, layoutID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type replaceKeysRequest struct {
	Keys []store.KeyRect `json:"keys"`
}

type listKeysResponse struct {
	Keys []store.KeyRect `json:"keys"`
}

// list handles GET /api/layouts/{id}/keys
func (h *KeysHandler) list(w http.ResponseWriter, r *http.Request, layoutID string) {
	if _, err := h.store.Layouts().GetByID(layoutID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Layout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify layout")
		return
	}

	keys, err := h.store.Layouts().GetKeys(layoutID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list keys")
		return
	}

	writeJSON(w, http.StatusOK, listKeysResponse{Keys: keys})
}

// replace handles PUT /api/layouts/{id}/keys
func (h *KeysHandler) replace(w http.ResponseWriter, r *http.Request, layoutID string) {
	var req replaceKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Keys) == 0 {
		writeError(w, http.StatusBadRequest, "At least one key is required")
		return
	}

	if err := h.store.Layouts().ReplaceKeys(layoutID, req.Keys); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Layout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save keys")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
