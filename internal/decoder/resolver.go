package decoder

import (
	"unicode"
	"unicode/utf8"
)

// distanceEpsilon is the tolerance used when comparing key center
// distances for the tie-break rule.
const distanceEpsilon = 1e-9

// ResolveHit finds the nearest eligible key center for a single touch
// sample. It returns the key identifier, a confidence score in [0, 1],
// and whether any eligible key lies within hitRadius of the sample.
//
// Only keys whose identifier is exactly one alphabetic character are
// eligible; all other geometry entries are skipped regardless of
// proximity. When two eligible keys are equidistant (within a small
// epsilon), the lexicographically smaller key id wins, so resolution is
// deterministic across map iteration orders.
func ResolveHit(sample SwipeSample, geometry GeometryMap, hitRadius float64) (string, float64, bool) {
	bestID := ""
	bestDist := 0.0

	for keyID, rect := range geometry {
		if !eligibleKey(keyID) {
			continue
		}

		cx, cy := rect.Center()
		dist := sampleDistance(sample, SwipeSample{X: cx, Y: cy})

		if bestID == "" || dist < bestDist-distanceEpsilon {
			bestID = keyID
			bestDist = dist
			continue
		}

		// Tie-break on equal distance
		if dist <= bestDist+distanceEpsilon && keyID < bestID {
			bestID = keyID
			bestDist = dist
		}
	}

	if bestID == "" || bestDist > hitRadius {
		return "", 0, false
	}

	return bestID, confidence(bestDist, hitRadius), true
}

// eligibleKey reports whether a key identifier is a hit target:
// exactly one character, and that character is alphabetic.
func eligibleKey(keyID string) bool {
	if utf8.RuneCountInString(keyID) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(keyID)
	return unicode.IsLetter(r)
}

// confidence converts a touch-to-center distance into a [0, 1] score.
// A hit exactly at the key center yields 1.0, a hit exactly at the hit
// radius yields 0.0.
func confidence(dist, hitRadius float64) float64 {
	if hitRadius <= 0 {
		return 0
	}
	ratio := dist / hitRadius
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio
}
