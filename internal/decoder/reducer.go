package decoder

// ReduceHits compresses the raw per-sample hit stream into a
// deduplicated, temporally debounced sequence of distinct key visits.
//
// The path must be processed in original temporal order: merging and
// debounce decisions depend on sequence adjacency, so reordering the
// samples changes the result.
//
// Algorithm, per sample:
//  1. Resolve a hit or skip the sample entirely.
//  2. A hit on the same key as the last visit merges into it, keeping
//     the higher confidence; the visit timestamp is not changed.
//  3. A hit on a different key opens a new visit only if it arrives at
//     least MinKeyIntervalMs after the previously recorded visit;
//     earlier hits are dropped silently (debounce, not an error).
func ReduceHits(path []SwipeSample, geometry GeometryMap, config Config) []KeyVisit {
	var visits []KeyVisit
	var lastRecorded int64

	for _, sample := range path {
		keyID, conf, ok := ResolveHit(sample, geometry, config.HitRadius)
		if !ok {
			continue
		}

		if len(visits) > 0 {
			last := &visits[len(visits)-1]
			if last.KeyID == keyID {
				if conf > last.Confidence {
					last.Confidence = conf
				}
				continue
			}

			if sample.Timestamp-lastRecorded < config.MinKeyIntervalMs {
				continue
			}
		}

		visits = append(visits, KeyVisit{
			KeyID:      keyID,
			Confidence: conf,
			Timestamp:  sample.Timestamp,
		})
		lastRecorded = sample.Timestamp
	}

	return visits
}
