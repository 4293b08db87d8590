package common

import "math/rand"

// RandomInt returns a uniformly distributed integer in the inclusive range
// [low, high]. It panics if high < low.
func RandomInt(rng *rand.Rand, low, high int) int {
	return low + rng.Intn(high-low+1)
}
