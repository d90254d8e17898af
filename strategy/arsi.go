package strategy

import (
	"math"

	"github.com/dream-stnu/simcore/stn"
)

// arsiDispatcher composes the Allowable Risk eligibility gate from
// drea-ar with the probability-of-improvement acceptance test from
// drea-si: AR decides *when* SREA is even worth calling, SI decides
// whether the resulting guide is worth sending. Ports montsim.py's
// Simulator._arsi_algorithm and its outer get_guide counter bookkeeping.
//
// The Python original ends with an unreachable `return previous_alpha,
// previous_guide, contingent_event_counter` after the if/else already
// returns on both branches; that dead statement is dropped here.
type arsiDispatcher struct {
	counter int
}

func (d *arsiDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if ctx.Opts.ExecutedContingent {
		d.counter++
	}
	alpha, guide, newCounter := arsiAlgorithm(ctx, d.counter)
	d.counter = newCounter
	return alpha, guide
}

func arsiAlgorithm(ctx *Context, counter int) (float64, *stn.STN, int) {
	if ctx.Opts.FirstRun {
		alpha, guide, ok := ctx.Oracle.Srea(ctx.Working)
		if !ok {
			return ctx.PreviousAlpha, ctx.PreviousGuide, counter
		}
		ctx.Counters.NumReschedules++
		return alpha, guide, counter
	}
	if !ctx.Opts.ExecutedContingent {
		return ctx.PreviousAlpha, ctx.PreviousGuide, counter
	}

	n := arEscapeIterations(ctx.PreviousAlpha, ctx.Opts.ARThreshold)
	var alpha float64
	var guide *stn.STN
	var ok bool
	if counter >= n {
		if ctx.Log != nil {
			ctx.Log.Debug("arsi rescheduled")
		}
		alpha, guide, ok = ctx.Oracle.Srea(ctx.Working)
		ctx.Counters.NumReschedules++
	}
	if !ok {
		return ctx.PreviousAlpha, ctx.PreviousGuide, counter
	}

	numCont := float64(remainingContingentCount(guide))
	p0 := math.Pow(1-ctx.PreviousAlpha, numCont)
	p1 := math.Pow(1-alpha, numCont)
	if p1-p0 > ctx.Opts.SIThreshold {
		ctx.Counters.NumSentSchedules++
		if ctx.Log != nil {
			ctx.Log.Debug("got new arsi guide", "alpha", alpha)
		}
		return alpha, guide, 0
	}
	if ctx.Log != nil {
		ctx.Log.Debug("arsi did not send schedule", "p0", p0, "p1", p1)
	}
	return ctx.PreviousAlpha, ctx.PreviousGuide, counter
}
