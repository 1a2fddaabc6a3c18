// Package api provides HTTP API handlers for the Glide swipe typing
// engine.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/kmathur/glide/internal/decoder"
	"github.com/kmathur/glide/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// GeometryFromKeys converts stored key rectangles into the geometry map
// consumed by the decoder.
func GeometryFromKeys(keys []store.KeyRect) decoder.GeometryMap {
	geometry := make(decoder.GeometryMap, len(keys))
	for _, k := range keys {
		geometry[k.KeyID] = decoder.Rect{
			Left:   k.Left,
			Top:    k.Top,
			Right:  k.Right,
			Bottom: k.Bottom,
		}
	}
	return geometry
}
