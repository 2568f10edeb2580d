package waveoptics

import "sort"

// coherenceKey groups lights that may interfere: same coherence source and
// same travel direction. Anything else is kept as a separate entry.
type coherenceKey struct {
	source int
	dir    Direction
}

// resolveInterference coherently sums the lights collected at one position.
// Each light's accumulated global phase is applied as a complex rotation
// before the amplitudes are added, so equal in-phase beams quadruple in
// intensity and opposite-phase beams cancel. Groups that end up below the
// energy threshold are dropped.
func resolveInterference(lights []WaveLight, threshold Real) []WaveLight {
	if len(lights) == 0 {
		return nil
	}

	groups := make(map[coherenceKey][]WaveLight)
	for _, l := range lights {
		k := coherenceKey{l.SourceID, l.Direction}
		groups[k] = append(groups[k], l)
	}

	keys := make([]coherenceKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].dir < keys[j].dir
	})

	out := make([]WaveLight, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		sum := group[0].phased()
		shortest := group[0].PathLength
		for _, l := range group[1:] {
			sum = sum.Add(l.phased())
			if l.PathLength < shortest {
				shortest = l.PathLength
			}
		}
		if !sum.IsAboveThreshold(threshold) {
			continue
		}
		out = append(out, WaveLight{
			Jones:      sum,
			Direction:  k.dir,
			SourceID:   k.source,
			PathLength: shortest,
		})
	}
	return out
}
