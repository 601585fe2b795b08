package booking

import "math"

// querySeed hashes the identity of one provider quote (location, provider,
// dates) into a non-negative 32-bit seed using a rolling polynomial hash
// (h = h*31 + char, truncated to int32, absolute value). Every derived
// figure for the offer is a pure function of this seed plus a small fixed
// offset, so results are reproducible across runs and languages as long as
// the hash arithmetic and IEEE-754 sin are preserved.
func querySeed(parts ...string) int64 {
	var h int32
	for _, p := range parts {
		for _, r := range p {
			h = h*31 + int32(r)
		}
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// seededUnit maps a seed onto [0,1] with a sinusoidal transform. Not a real
// PRNG on purpose: (sin(seed)+1)/2 yields the same float in any language
// with IEEE-754 sin, which keeps cached results and snapshots portable.
func seededUnit(seed int64) float64 {
	return (math.Sin(float64(seed)) + 1) / 2
}

// seededRange maps a seed linearly into [lo, hi].
func seededRange(seed int64, lo, hi float64) float64 {
	return lo + seededUnit(seed)*(hi-lo)
}
