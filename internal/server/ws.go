package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/kmathur/glide/internal/decoder"
	"github.com/kmathur/glide/internal/dictionary"
	"github.com/kmathur/glide/internal/server/api"
	"github.com/kmathur/glide/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SwipeHandler decodes live swipe gestures over a WebSocket. Each
// connection owns one decoder, and the connection's read loop is its
// single caller, which satisfies the decoder's single-threaded
// contract.
type SwipeHandler struct {
	store  *store.Store
	dict   *dictionary.Dictionary
	config decoder.Config
}

// NewSwipeHandler creates a new SwipeHandler.
func NewSwipeHandler(s *store.Store, dict *dictionary.Dictionary, config decoder.Config) *SwipeHandler {
	return &SwipeHandler{store: s, dict: dict, config: config}
}

// swipeFrame is one client message. Type is "start", "point" or "end".
// A start frame selects the layout; point frames carry positions; an
// end frame finishes the gesture and requests the decoded word.
type swipeFrame struct {
	Type     string  `json:"type"`
	LayoutID string  `json:"layout_id,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Limit    int     `json:"limit,omitempty"`
}

type wordFrame struct {
	Type        string                  `json:"type"`
	Word        string                  `json:"word,omitempty"`
	Decoded     bool                    `json:"decoded"`
	Suggestions []string                `json:"suggestions"`
	Snapshot    decoder.GestureSnapshot `json:"snapshot"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// ServeHTTP handles WebSocket upgrade requests and runs the per
// connection decode session.
func (h *SwipeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	dec := decoder.New(h.config)
	var geometry decoder.GeometryMap

	for {
		var frame swipeFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Type {
		case "start":
			keys, err := h.store.Layouts().GetKeys(frame.LayoutID)
			if err != nil || len(keys) == 0 {
				conn.WriteJSON(errorFrame{Type: "error", Error: "unknown layout"})
				geometry = nil
				continue
			}
			geometry = api.GeometryFromKeys(keys)
			dec.StartSwipe(frame.X, frame.Y)

		case "point":
			dec.AddPoint(frame.X, frame.Y)

		case "end":
			if geometry == nil {
				conn.WriteJSON(errorFrame{Type: "error", Error: "no layout selected"})
				continue
			}

			// Probe before EndSwipe clears the gesture state
			snapshot := dec.AnalyzeGesture()
			snapshot.VisitCount = len(dec.Visits(geometry))
			suggestions := dec.Suggest(geometry, h.dict, frame.Limit)
			word, decoded := dec.EndSwipe(geometry)

			if suggestions == nil {
				suggestions = []string{}
			}

			reply := wordFrame{
				Type:        "word",
				Word:        word,
				Decoded:     decoded,
				Suggestions: suggestions,
				Snapshot:    snapshot,
			}
			if err := conn.WriteJSON(reply); err != nil {
				return
			}

		default:
			conn.WriteJSON(errorFrame{Type: "error", Error: "unknown frame type"})
		}
	}
}
