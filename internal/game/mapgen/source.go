package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/minefield/internal/common"
)

// IntSource produces uniformly distributed integers in the inclusive range
// [low, high]. Mine placement is only as uniform as its source.
type IntSource interface {
	Int(low, high int) int
}

// IntSourceFunc adapts a plain function to IntSource.
type IntSourceFunc func(low, high int) int

func (f IntSourceFunc) Int(low, high int) int { return f(low, high) }

type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns an IntSource backed by rng.
func NewRandSource(rng *rand.Rand) IntSource {
	return &randSource{rng: rng}
}

func (s *randSource) Int(low, high int) int {
	return common.RandomInt(s.rng, low, high)
}
