package strategy

import "github.com/dream-stnu/simcore/stn"

// sreaOnceDispatcher reschedules exactly once, on the first iteration,
// then follows that single guide for the rest of the simulation. Ports
// montsim.py's Simulator._srea_algorithm.
type sreaOnceDispatcher struct{}

func (d *sreaOnceDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if !ctx.Opts.FirstRun {
		return ctx.PreviousAlpha, ctx.PreviousGuide
	}
	ctx.Counters.NumReschedules++
	ctx.Counters.NumSentSchedules++
	return sreaWrapper(ctx)
}
