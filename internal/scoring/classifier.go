package scoring

// classify finds the band containing s. Bands are ordered ascending and
// non-overlapping; a nil upper bound is open above. A score outside every
// band clamps to the last band and reports ok=false so the caller can record
// the anomaly.
func classify(bands []Band, s float64) (Band, bool) {
	for _, b := range bands {
		if s < b.Lower {
			continue
		}
		if b.Upper == nil {
			return b, true
		}
		if b.UpperExclusive {
			if s < *b.Upper {
				return b, true
			}
		} else if s <= *b.Upper {
			return b, true
		}
	}
	return bands[len(bands)-1], false
}
