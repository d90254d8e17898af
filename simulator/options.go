package simulator

// Options carries the tunables montsim.py's simulate accepted via its
// sim_options dict: the reschedule-acceptance thresholds each strategy
// may consult, and the RNG seed for contingent-duration resampling.
type Options struct {
	// SIThreshold gates drea-si's and arsi's improvement test.
	SIThreshold float64
	// ARThreshold gates drea-ar's and arsi's allowable-risk test.
	ARThreshold float64
	// ALPThreshold gates drea-alp's alpha-difference test.
	ALPThreshold float64

	// RandSeed seeds the contingent-duration sampler. Nil picks the
	// sampler's own default seed.
	RandSeed *int64
}
