package decoder

import "strings"

// BuildWord concatenates the key ids of visits whose confidence exceeds
// the threshold into a lowercase candidate string, in visit order.
//
// Returns ok=false when no visit survives the filter. The distinction
// matters: "no word" is an explicit absence, never an empty string.
func BuildWord(visits []KeyVisit, threshold float64) (string, bool) {
	var b strings.Builder
	for _, v := range visits {
		if v.Confidence > threshold {
			b.WriteString(strings.ToLower(v.KeyID))
		}
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}
