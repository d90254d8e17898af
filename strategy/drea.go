package strategy

import "github.com/dream-stnu/simcore/stn"

// dreaDispatcher reschedules on the first iteration and again every time
// a contingent timepoint is executed, otherwise following the previous
// guide. Ports montsim.py's Simulator._drea_algorithm.
type dreaDispatcher struct{}

func (d dreaDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if !ctx.Opts.FirstRun && !ctx.Opts.ExecutedContingent {
		return ctx.PreviousAlpha, ctx.PreviousGuide
	}
	ctx.Counters.NumReschedules++
	ctx.Counters.NumSentSchedules++
	alpha, guide := sreaWrapper(ctx)
	if ctx.Log != nil {
		ctx.Log.Debug("drea rescheduled", "alpha", alpha)
	}
	return alpha, guide
}
