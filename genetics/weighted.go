package genetics

// pick runs one cumulative-weight draw over an ordered table. It
// returns the first entry whose cumulative weight reaches
// r = rng()*total, falling back to the first entry if floating error
// leaves no match. Species, rarity, and eye-size selection all share
// this one implementation.
func pick[T any](rng Rand, entries []T, weight func(T) float64) T {
	var total float64
	for _, e := range entries {
		total += weight(e)
	}

	r := rng.Float64() * total
	var cum float64
	for _, e := range entries {
		cum += weight(e)
		if cum >= r {
			return e
		}
	}
	return entries[0]
}
