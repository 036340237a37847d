package mathx

import (
	"math"
	"math/rand"
)

// NormalSource yields standard-normal draws. The Monte Carlo engine takes its
// randomness through this interface so tests can seed it (or substitute a
// scripted sequence) and runs stay reproducible.
type NormalSource interface {
	Norm() float64
}

// BoxMuller generates N(0,1) values via the Box–Muller transform: each pair of
// independent uniform draws produces two normals, the second cached as a spare.
type BoxMuller struct {
	rng      *rand.Rand
	spare    float64
	hasSpare bool
}

// NewBoxMuller returns a generator seeded deterministically. Identical seeds
// produce identical draw sequences.
func NewBoxMuller(seed int64) *BoxMuller {
	return &BoxMuller{rng: rand.New(rand.NewSource(seed))}
}

// Norm returns the next standard-normal draw.
func (b *BoxMuller) Norm() float64 {
	if b.hasSpare {
		b.hasSpare = false
		return b.spare
	}

	// u1 must be strictly positive for the log term.
	u1 := b.rng.Float64()
	for u1 == 0 {
		u1 = b.rng.Float64()
	}
	u2 := b.rng.Float64()

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	b.spare = r * math.Sin(theta)
	b.hasSpare = true
	return r * math.Cos(theta)
}
