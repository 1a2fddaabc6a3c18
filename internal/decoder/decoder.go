// Package decoder implements swipe-to-type gesture decoding: given a
// continuous sequence of touch samples over a keyboard face, it infers
// the word the user intended to type.
package decoder

import (
	"time"

	"github.com/kmathur/glide/internal/dictionary"
)

// Default tunables for the decoder.
const (
	// DefaultMinSwipeDistance is the minimum cumulative path length for
	// a gesture to qualify as a swipe, in layout distance units.
	DefaultMinSwipeDistance = 50.0
	// DefaultHitRadius is the maximum distance from a key center at
	// which a sample still registers a hit.
	DefaultHitRadius = 60.0
	// DefaultMinKeyIntervalMs is the debounce interval between visits
	// to different keys.
	DefaultMinKeyIntervalMs = 30
	// DefaultConfidenceThreshold is the minimum confidence for a visit
	// to contribute to the built word.
	DefaultConfidenceThreshold = 0.3
	// DefaultSuggestLimit is the maximum number of dictionary
	// suggestions returned when the caller does not specify one.
	DefaultSuggestLimit = 5
)

// Config holds the decoder tunables. Zero or negative fields fall back
// to the package defaults, except ConfidenceThreshold: zero is a
// meaningful setting (keep every positive-confidence visit), so only a
// negative value falls back there.
type Config struct {
	MinSwipeDistance    float64
	HitRadius           float64
	MinKeyIntervalMs    int64
	ConfidenceThreshold float64
}

// DefaultConfig returns the default decoder configuration.
func DefaultConfig() Config {
	return Config{
		MinSwipeDistance:    DefaultMinSwipeDistance,
		HitRadius:           DefaultHitRadius,
		MinKeyIntervalMs:    DefaultMinKeyIntervalMs,
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
}

// SwipeDecoder decodes one swipe gesture at a time. It is a plain
// stateful value object: construct one per active input session and
// pass collaborators (geometry, dictionary) explicitly per call.
//
// The decoder is meant for single-threaded, synchronous use by the
// caller that owns touch-event delivery. It performs no locking;
// concurrent calls are outside its contract.
type SwipeDecoder struct {
	config Config
	path   []SwipeSample
	visits []KeyVisit
	now    func() int64
}

// New creates a SwipeDecoder with the given configuration. Unset
// tunables take their defaults.
func New(config Config) *SwipeDecoder {
	if config.MinSwipeDistance <= 0 {
		config.MinSwipeDistance = DefaultMinSwipeDistance
	}
	if config.HitRadius <= 0 {
		config.HitRadius = DefaultHitRadius
	}
	if config.MinKeyIntervalMs <= 0 {
		config.MinKeyIntervalMs = DefaultMinKeyIntervalMs
	}
	if config.ConfidenceThreshold < 0 {
		config.ConfidenceThreshold = DefaultConfidenceThreshold
	}

	return &SwipeDecoder{
		config: config,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// Config returns the effective decoder configuration.
func (d *SwipeDecoder) Config() Config {
	return d.config
}

// StartSwipe begins a new gesture at the given position, discarding any
// unfinished gesture. Calling it while already recording is legal and
// simply restarts.
func (d *SwipeDecoder) StartSwipe(x, y float64) {
	d.StartSwipeAt(x, y, d.now())
}

// StartSwipeAt is StartSwipe with an explicit timestamp, used when
// replaying recorded gestures.
func (d *SwipeDecoder) StartSwipeAt(x, y float64, timestampMs int64) {
	d.reset()
	d.path = append(d.path, SwipeSample{X: x, Y: y, Timestamp: timestampMs})
}

// AddPoint appends a touch sample stamped at call time. There is no
// upper bound on sample count; the caller-side sampling rate determines
// volume.
func (d *SwipeDecoder) AddPoint(x, y float64) {
	d.AddPointAt(x, y, d.now())
}

// AddPointAt is AddPoint with an explicit timestamp, used when
// replaying recorded gestures.
func (d *SwipeDecoder) AddPointAt(x, y float64, timestampMs int64) {
	d.path = append(d.path, SwipeSample{X: x, Y: y, Timestamp: timestampMs})
}

// IsValidSwipe reports whether the recorded path qualifies as a swipe:
// at least 3 samples and a cumulative length of at least
// MinSwipeDistance. It is side-effect free and callable mid-gesture.
func (d *SwipeDecoder) IsValidSwipe() bool {
	if len(d.path) < 3 {
		return false
	}
	return pathLength(d.path) >= d.config.MinSwipeDistance
}

// EndSwipe finishes the gesture: it resolves the recorded path against
// the geometry, reduces the hits to key visits and builds the candidate
// word. Gesture state is cleared regardless of outcome, so the decoder
// never carries state across gestures.
//
// Returns ok=false when the gesture is not a valid swipe or no visit
// survives the confidence filter.
func (d *SwipeDecoder) EndSwipe(geometry GeometryMap) (string, bool) {
	defer d.reset()

	if !d.IsValidSwipe() {
		return "", false
	}

	d.visits = ReduceHits(d.path, geometry, d.config)
	return BuildWord(d.visits, d.config.ConfidenceThreshold)
}

// Suggest returns up to limit dictionary words ranked by edit distance
// to the decoded candidate. Unlike EndSwipe it is a read-only probe: it
// works on the recorded path without committing or clearing any state,
// so it is usable while a gesture is still in progress.
//
// A nil dictionary yields a singleton containing only the candidate.
// When no candidate can be built, the result is empty and the
// dictionary is never consulted.
func (d *SwipeDecoder) Suggest(geometry GeometryMap, dict *dictionary.Dictionary, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	if !d.IsValidSwipe() {
		return nil
	}

	visits := d.Visits(geometry)
	candidate, ok := BuildWord(visits, d.config.ConfidenceThreshold)
	if !ok {
		return nil
	}

	if dict == nil {
		return []string{candidate}
	}
	return dictionary.Rank(candidate, dict.Words(), limit)
}

// Visits reduces the recorded path against the geometry into the key
// visit sequence. Like Suggest it is a read-only probe: it commits and
// clears nothing, so callers can inspect visits mid-gesture or right
// before EndSwipe.
func (d *SwipeDecoder) Visits(geometry GeometryMap) []KeyVisit {
	return ReduceHits(d.path, geometry, d.config)
}

// AnalyzeGesture summarizes the current gesture state. It is computable
// at any time; an empty path yields a zero snapshot, and duration is
// only meaningful once two or more samples exist.
func (d *SwipeDecoder) AnalyzeGesture() GestureSnapshot {
	snapshot := GestureSnapshot{
		SampleCount:     len(d.path),
		TotalPathLength: pathLength(d.path),
		VisitCount:      len(d.visits),
	}

	if len(d.path) >= 2 {
		snapshot.DurationMs = d.path[len(d.path)-1].Timestamp - d.path[0].Timestamp
	}

	return snapshot
}

// reset clears the swipe path and visit sequence.
func (d *SwipeDecoder) reset() {
	d.path = d.path[:0]
	d.visits = nil
}
