package decoder

import "testing"

func TestReduceHits_MergesAdjacentSameKey(t *testing.T) {
	geometry := qwertyRow()
	config := DefaultConfig()

	// Three samples over q: center, off-center, center again. The
	// revisits arrive well within MinKeyInterval and must merge into a
	// single visit keeping the maximum confidence.
	path := []SwipeSample{
		{X: 35, Y: 25, Timestamp: 0},
		{X: 25, Y: 25, Timestamp: 5},
		{X: 35, Y: 25, Timestamp: 10},
	}

	visits := ReduceHits(path, geometry, config)
	if len(visits) != 1 {
		t.Fatalf("visits = %d, want 1", len(visits))
	}
	if visits[0].KeyID != "q" {
		t.Errorf("KeyID = %q, want %q", visits[0].KeyID, "q")
	}
	if visits[0].Confidence != 1.0 {
		t.Errorf("Confidence = %f, want 1.0 (maximum of observations)", visits[0].Confidence)
	}
	if visits[0].Timestamp != 0 {
		t.Errorf("Timestamp = %d, want 0 (merge must not move the visit)", visits[0].Timestamp)
	}
}

func TestReduceHits_ConfidenceNeverDecreases(t *testing.T) {
	geometry := qwertyRow()

	// Center hit followed by a weaker off-center hit on the same key
	path := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 45, Y: 25, Timestamp: 10},
	}

	visits := ReduceHits(path, geometry, DefaultConfig())
	if len(visits) != 1 {
		t.Fatalf("visits = %d, want 1", len(visits))
	}
	if visits[0].Confidence != 1.0 {
		t.Errorf("Confidence = %f, want 1.0 (never decreased)", visits[0].Confidence)
	}
}

func TestReduceHits_DebouncesFastKeyChanges(t *testing.T) {
	geometry := qwertyRow()
	config := DefaultConfig()

	// w arrives only 10ms after the q visit was recorded and must be
	// dropped; e arrives late enough to be kept.
	path := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 75, Y: 25, Timestamp: 10},
		{X: 125, Y: 25, Timestamp: 50},
	}

	visits := ReduceHits(path, geometry, config)
	if len(visits) != 2 {
		t.Fatalf("visits = %d, want 2 (w debounced)", len(visits))
	}
	if visits[0].KeyID != "q" || visits[1].KeyID != "e" {
		t.Errorf("visits = [%s %s], want [q e]", visits[0].KeyID, visits[1].KeyID)
	}
}

func TestReduceHits_IntervalExactlyAtBoundary(t *testing.T) {
	geometry := qwertyRow()
	config := DefaultConfig()

	// Exactly MinKeyInterval after the previous visit is allowed
	path := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 75, Y: 25, Timestamp: config.MinKeyIntervalMs},
	}

	visits := ReduceHits(path, geometry, config)
	if len(visits) != 2 {
		t.Fatalf("visits = %d, want 2 at the debounce boundary", len(visits))
	}
}

func TestReduceHits_SamplesWithoutHitsAreSkipped(t *testing.T) {
	geometry := qwertyRow()

	path := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 500, Y: 500, Timestamp: 40}, // no key anywhere near
		{X: 125, Y: 25, Timestamp: 80},
	}

	visits := ReduceHits(path, geometry, DefaultConfig())
	if len(visits) != 2 {
		t.Fatalf("visits = %d, want 2", len(visits))
	}
	if visits[0].KeyID != "q" || visits[1].KeyID != "e" {
		t.Errorf("visits = [%s %s], want [q e]", visits[0].KeyID, visits[1].KeyID)
	}
}

func TestReduceHits_OrderSensitive(t *testing.T) {
	geometry := qwertyRow()
	config := DefaultConfig()

	forward := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 75, Y: 25, Timestamp: 50},
		{X: 125, Y: 25, Timestamp: 100},
	}
	backward := []SwipeSample{
		{X: 125, Y: 25, Timestamp: 0},
		{X: 75, Y: 25, Timestamp: 50},
		{X: 25, Y: 25, Timestamp: 100},
	}

	fw := ReduceHits(forward, geometry, config)
	bw := ReduceHits(backward, geometry, config)

	if len(fw) != 3 || len(bw) != 3 {
		t.Fatalf("visit counts = %d/%d, want 3/3", len(fw), len(bw))
	}
	for i := range fw {
		if fw[i].KeyID != bw[len(bw)-1-i].KeyID {
			t.Errorf("reversed path should visit keys in reverse order")
		}
	}
}

func TestReduceHits_EmptyPath(t *testing.T) {
	visits := ReduceHits(nil, qwertyRow(), DefaultConfig())
	if len(visits) != 0 {
		t.Errorf("visits = %d, want 0 for empty path", len(visits))
	}
}

func TestReduceHits_RevisitAfterLeavingKey(t *testing.T) {
	geometry := qwertyRow()
	config := DefaultConfig()

	// q -> w -> q: leaving and returning creates a distinct visit
	path := []SwipeSample{
		{X: 25, Y: 25, Timestamp: 0},
		{X: 75, Y: 25, Timestamp: 50},
		{X: 25, Y: 25, Timestamp: 100},
	}

	visits := ReduceHits(path, geometry, config)
	if len(visits) != 3 {
		t.Fatalf("visits = %d, want 3", len(visits))
	}
	if visits[0].KeyID != "q" || visits[1].KeyID != "w" || visits[2].KeyID != "q" {
		t.Errorf("visits = [%s %s %s], want [q w q]",
			visits[0].KeyID, visits[1].KeyID, visits[2].KeyID)
	}
}
