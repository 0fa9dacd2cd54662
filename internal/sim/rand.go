package sim

import "math/rand"

// Rand is the single source of randomness for a session. Every random
// decision the simulation makes goes through it, so a fixed seed replays
// a day exactly.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a math/rand source seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness, not security
}

// shuffle permutes pts in place (Fisher-Yates).
func shuffle[T any](rng Rand, pts []T) {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// pick returns a uniformly chosen element. vals must be non-empty.
func pick[T any](rng Rand, vals []T) T {
	return vals[rng.Intn(len(vals))]
}
