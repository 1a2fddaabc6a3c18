package decoder

import "math"

// SwipeSample represents one recorded touch point of a gesture.
type SwipeSample struct {
	X         float64 // X coordinate
	Y         float64 // Y coordinate
	Timestamp int64   // Timestamp in milliseconds
}

// Rect is an axis-aligned key hit rectangle in the same coordinate
// space as touch samples.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// GeometryMap maps key identifiers to their hit rectangles for the
// currently visible layout. It is read-only for the duration of one
// decode and is never retained by the decoder.
type GeometryMap map[string]Rect

// KeyVisit is a resolved, deduplicated visit to one key during a gesture.
type KeyVisit struct {
	KeyID      string  // Single-character key identifier
	Confidence float64 // Hit quality in [0, 1], higher is better
	Timestamp  int64   // Timestamp of the sample that opened the visit
}

// GestureSnapshot is a read-only diagnostic summary of the current
// in-progress or just-ended gesture.
type GestureSnapshot struct {
	SampleCount     int     `json:"sample_count"`
	TotalPathLength float64 `json:"total_path_length"`
	VisitCount      int     `json:"visit_count"`
	DurationMs      int64   `json:"duration_ms"`
}

// sampleDistance calculates the Euclidean distance between two samples.
func sampleDistance(a, b SwipeSample) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// pathLength calculates the cumulative polyline length of a sample path.
func pathLength(path []SwipeSample) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += sampleDistance(path[i-1], path[i])
	}
	return total
}
