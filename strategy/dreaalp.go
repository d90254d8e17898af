package strategy

import (
	"math"

	"github.com/dream-stnu/simcore/stn"
)

// dreaALPDispatcher corrects a flaw in the SI test: drea-si's
// probability-of-improvement metric can stay flat even when alpha swings
// wildly between reschedules, so it sometimes fails to reschedule when it
// should. drea-alp instead accepts a new guide whenever the new alpha
// differs from the previous one by more than threshold. Ports
// montsim.py's Simulator._drea_alp_algorithm.
type dreaALPDispatcher struct{}

func (d dreaALPDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if ctx.Opts.FirstRun {
		ctx.Counters.NumReschedules++
		alpha, guide, ok := ctx.Oracle.Srea(ctx.Working)
		if !ok {
			return ctx.PreviousAlpha, ctx.PreviousGuide
		}
		if ctx.Log != nil {
			ctx.Log.Debug("got new drea-alp guide", "alpha", alpha)
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

	if math.Abs(alpha-ctx.PreviousAlpha) > ctx.Opts.ALPThreshold {
		ctx.Counters.NumSentSchedules++
		if ctx.Log != nil {
			ctx.Log.Debug("got new drea-alp guide", "alpha", alpha)
		}
		return alpha, guide
	}
	if ctx.Log != nil {
		ctx.Log.Debug("did not send drea-alp reschedule", "previous_alpha", ctx.PreviousAlpha, "new_alpha", alpha)
	}
	return ctx.PreviousAlpha, ctx.PreviousGuide
}
