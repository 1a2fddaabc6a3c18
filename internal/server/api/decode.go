package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/kmathur/glide/internal/decoder"
	"github.com/kmathur/glide/internal/dictionary"
	"github.com/kmathur/glide/internal/store"
)

// DecodeHandler replays recorded touch samples through a fresh decoder
// and returns the decoded word with ranked suggestions.
type DecodeHandler struct {
	store  *store.Store
	dict   *dictionary.Dictionary
	config decoder.Config
}

// NewDecodeHandler creates a new DecodeHandler.
func NewDecodeHandler(s *store.Store, dict *dictionary.Dictionary, config decoder.Config) *DecodeHandler {
	return &DecodeHandler{store: s, dict: dict, config: config}
}

type decodeRequest struct {
	LayoutID string              `json:"layout_id"`
	Samples  []store.TraceSample `json:"samples"`
	Limit    int                 `json:"limit"`
}

type decodeResponse struct {
	Word        string                  `json:"word,omitempty"`
	Decoded     bool                    `json:"decoded"`
	Suggestions []string                `json:"suggestions"`
	Snapshot    decoder.GestureSnapshot `json:"snapshot"`
	TraceID     string                  `json:"trace_id,omitempty"`
}

// ServeHTTP handles POST /api/decode.
func (h *DecodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.LayoutID == "" {
		writeError(w, http.StatusBadRequest, "layout_id is required")
		return
	}
	if len(req.Samples) == 0 {
		writeError(w, http.StatusBadRequest, "At least one sample is required")
		return
	}

	keys, err := h.store.Layouts().GetKeys(req.LayoutID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load layout keys")
		return
	}
	if len(keys) == 0 {
		if _, err := h.store.Layouts().GetByID(req.LayoutID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Layout not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to verify layout")
			return
		}
	}
	geometry := GeometryFromKeys(keys)

	// Replay the samples with their recorded timing; the debounce rule
	// depends on it.
	dec := decoder.New(h.config)
	dec.StartSwipeAt(req.Samples[0].X, req.Samples[0].Y, req.Samples[0].TimestampMs)
	for _, s := range req.Samples[1:] {
		dec.AddPointAt(s.X, s.Y, s.TimestampMs)
	}

	// Snapshot, visits and suggestions are probes; EndSwipe clears the
	// gesture. The snapshot alone cannot see visits (they only exist
	// relative to a geometry), so count them here.
	snapshot := dec.AnalyzeGesture()
	snapshot.VisitCount = len(dec.Visits(geometry))
	suggestions := dec.Suggest(geometry, h.dict, req.Limit)
	word, decoded := dec.EndSwipe(geometry)

	response := decodeResponse{
		Word:        word,
		Decoded:     decoded,
		Suggestions: suggestions,
		Snapshot:    snapshot,
	}
	if response.Suggestions == nil {
		response.Suggestions = []string{}
	}

	trace := &store.Trace{
		ID:          uuid.New().String(),
		LayoutID:    req.LayoutID,
		Word:        word,
		Decoded:     decoded,
		SampleCount: snapshot.SampleCount,
		PathLength:  snapshot.TotalPathLength,
		DurationMs:  snapshot.DurationMs,
	}
	if err := h.store.Traces().Create(trace, req.Samples); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save trace")
		return
	}
	response.TraceID = trace.ID

	writeJSON(w, http.StatusOK, response)
}
