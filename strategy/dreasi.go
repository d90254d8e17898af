package strategy

import (
	"math"

	"github.com/dream-stnu/simcore/stn"
)

// dreaSIDispatcher rescues DREA from over-eager rescheduling: after the
// mandatory first reschedule, a freshly executed contingent timepoint only
// triggers a new guide if SREA's improved risk level would meaningfully
// raise the probability of completing every remaining contingent event
// (the "SI test": p1-p0 > threshold, where p_k = (1-alpha)^(num
// remaining contingent events)). Ports
// montsim.py's Simulator._drea_si_algorithm.
type dreaSIDispatcher struct{}

func (d dreaSIDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if ctx.Opts.FirstRun {
		ctx.Counters.NumReschedules++
		ctx.Counters.NumSentSchedules++
		alpha, guide, ok := ctx.Oracle.Srea(ctx.Working)
		if !ok {
			return ctx.PreviousAlpha, ctx.PreviousGuide
		}
		if ctx.Log != nil {
			ctx.Log.Debug("got new drea-si guide", "alpha", alpha)
		}
		return alpha, guide
	}
	if !ctx.Opts.ExecutedContingent {
		return ctx.PreviousAlpha, ctx.PreviousGuide
	}

	alpha, guide, ok := ctx.Oracle.Srea(ctx.Working)
	ctx.Counters.NumReschedules++
	if !ok {
		return ctx.PreviousAlpha, ctx.PreviousGuide
	}

	numCont := float64(remainingContingentCount(guide))
	p0 := math.Pow(1-ctx.PreviousAlpha, numCont)
	p1 := math.Pow(1-alpha, numCont)
	if p1-p0 > ctx.Opts.SIThreshold {
		ctx.Counters.NumSentSchedules++
		if ctx.Log != nil {
			ctx.Log.Debug("got new drea-si guide", "alpha", alpha)
		}
		return alpha, guide
	}
	if ctx.Log != nil {
		ctx.Log.Debug("did not reschedule drea-si", "p0", p0, "p1", p1)
	}
	return ctx.PreviousAlpha, ctx.PreviousGuide
}
