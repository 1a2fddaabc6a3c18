package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kmathur/glide/internal/store"
)

// TraceHandler handles HTTP requests for decode trace resources.
type TraceHandler struct {
	store *store.Store
}

// NewTraceHandler creates a new TraceHandler with the given store.
func NewTraceHandler(s *store.Store) *TraceHandler {
	return &TraceHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/traces or /api/traces/{id}
func (h *TraceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/traces")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}

	h.get(w, r, path)
}

type traceResponse struct {
	ID          string              `json:"id"`
	LayoutID    string              `json:"layout_id"`
	Word        string              `json:"word,omitempty"`
	Decoded     bool                `json:"decoded"`
	SampleCount int                 `json:"sample_count"`
	PathLength  float64             `json:"path_length"`
	DurationMs  int64               `json:"duration_ms"`
	CreatedAt   string              `json:"created_at"`
	Samples     []store.TraceSample `json:"samples,omitempty"`
}

type listTracesResponse struct {
	Traces []traceResponse `json:"traces"`
}

func traceToResponse(t *store.Trace) traceResponse {
	return traceResponse{
		ID:          t.ID,
		LayoutID:    t.LayoutID,
		Word:        t.Word,
		Decoded:     t.Decoded,
		SampleCount: t.SampleCount,
		PathLength:  t.PathLength,
		DurationMs:  t.DurationMs,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/traces with an optional limit query parameter.
func (h *TraceHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	traces, err := h.store.Traces().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list traces")
		return
	}

	response := listTracesResponse{
		Traces: make([]traceResponse, 0, len(traces)),
	}
	for _, t := range traces {
		response.Traces = append(response.Traces, traceToResponse(t))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/traces/{id} and includes the raw samples.
func (h *TraceHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	trace, err := h.store.Traces().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Trace not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get trace")
		return
	}

	samples, err := h.store.Traces().GetSamples(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get trace samples")
		return
	}

	response := traceToResponse(trace)
	response.Samples = samples
	writeJSON(w, http.StatusOK, response)
}
