package stnbuilder

import "github.com/dream-stnu/simcore/stn"

// config holds the tunables every constructor in this package shares,
// assembled via the functional-options pattern (grounded on
// builder/api.go's Option/Constructor shape).
type config struct {
	requirementWeight float64
	contingentLo      float64
	contingentHi      float64
	dist              stn.Distribution
}

func defaultConfig() config {
	return config{
		requirementWeight: 10,
		contingentLo:      1,
		contingentHi:      3,
	}
}

// Option configures a constructor in this package.
type Option func(*config)

// WithRequirementWeight sets the upper bound every requirement edge a
// constructor emits carries.
func WithRequirementWeight(w float64) Option {
	return func(c *config) { c.requirementWeight = w }
}

// WithContingentBounds sets the [lo,hi] interval every contingent edge a
// constructor emits carries.
func WithContingentBounds(lo, hi float64) Option {
	return func(c *config) {
		c.contingentLo = lo
		c.contingentHi = hi
	}
}

// WithDistribution sets the Distribution every contingent edge a
// constructor emits samples from. Nil (the default) defers to the
// sampler's own fallback.
func WithDistribution(d stn.Distribution) Option {
	return func(c *config) { c.dist = d }
}

func (c config) validate() error {
	var errs error
	if c.requirementWeight < 0 {
		errs = appendErr(errs, ErrInvalidRequirementWeight)
	}
	if c.contingentLo < 0 || c.contingentLo > c.contingentHi {
		errs = appendErr(errs, ErrInvalidContingentBounds)
	}
	return errs
}
