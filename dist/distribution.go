// Package dist supplies the contingent-duration distributions a
// simulation samples from, and the seeded Sampler that draws them once per
// run. spec.md §4.2 describes the draw as "typically uniform; distribution
// family is an edge attribute" — this package generalizes that to a small
// Distribution family built on gonum.org/v1/gonum/stat/distuv, which is
// present across the retrieved example pack's gonum-dependent repositories
// as the numerical library of choice for this kind of sampling.
package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dream-stnu/simcore/stn"
)

// Uniform draws uniformly from [lo,hi], matching the Python original's
// np.random.RandomState.uniform and the simulator's default when a
// contingent edge names no distribution.
type Uniform struct{}

// Sample implements stn.Distribution.
func (Uniform) Sample(lo, hi float64, src stn.RandSource) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: asRandSource(src)}.Rand()
}

// TruncatedNormal draws from a normal distribution centered at the
// interval's midpoint with the given standard deviation (as a fraction of
// the interval half-width), clamped into [lo,hi]. This supplements
// spec.md's "typically uniform" note with the other bounded-interval
// family contingent-duration models commonly use, without changing the
// uniform default.
type TruncatedNormal struct {
	// SigmaFraction scales the half-width (hi-lo)/2 to get the standard
	// deviation. Must be > 0; a value around 0.25 concentrates most mass
	// away from the bounds.
	SigmaFraction float64
}

// Sample implements stn.Distribution.
func (d TruncatedNormal) Sample(lo, hi float64, src stn.RandSource) float64 {
	mu := (lo + hi) / 2
	sigma := d.SigmaFraction * (hi - lo) / 2
	if sigma <= 0 {
		sigma = (hi - lo) / 8
	}
	v := distuv.Normal{Mu: mu, Sigma: sigma, Src: asRandSource(src)}.Rand()
	return math.Min(hi, math.Max(lo, v))
}

// randSourceAdapter bridges stn.RandSource (a single Float64() method) to
// gonum's rand.Source interface, which additionally requires Uint64() and
// Seed(uint64). Only Float64 is ever used for sampling in this package;
// Uint64 is derived from it and Seed is a deliberate no-op since the
// Sampler owns seeding via the underlying *rand.Rand (see sampler.go).
type randSourceAdapter struct {
	src stn.RandSource
}

func (a randSourceAdapter) Uint64() uint64 {
	return uint64(a.src.Float64() * (1 << 63) * 2)
}

func (randSourceAdapter) Seed(uint64) {}

func asRandSource(src stn.RandSource) randSourceAdapter {
	return randSourceAdapter{src: src}
}
