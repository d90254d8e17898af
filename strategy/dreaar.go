package strategy

import "github.com/dream-stnu/simcore/stn"

// dreaARDispatcher implements the Allowable Risk test: it tracks how many
// contingent events have executed since the last reschedule and only asks
// SREA for a new guide once that count reaches the smallest n for which
// (1-alpha)^(n+1) no longer exceeds threshold — i.e. once the accumulated risk
// could plausibly have grown past what the current guide was designed to
// tolerate. Ports montsim.py's Simulator._drea_ar_algorithm, including its
// outer get_guide counter bookkeeping.
type dreaARDispatcher struct {
	counter int
}

func (d *dreaARDispatcher) GetGuide(ctx *Context) (float64, *stn.STN) {
	if ctx.Opts.ExecutedContingent {
		d.counter++
	}
	alpha, guide, newCounter := dreaARAlgorithm(ctx, d.counter)
	d.counter = newCounter
	return alpha, guide
}

func dreaARAlgorithm(ctx *Context, counter int) (float64, *stn.STN, int) {
	if ctx.Opts.FirstRun {
		if alpha, guide, ok := ctx.Oracle.Srea(ctx.Working); ok {
			ctx.Counters.NumReschedules++
			return alpha, guide, counter
		}
	}
	if !ctx.Opts.ExecutedContingent {
		return ctx.PreviousAlpha, ctx.PreviousGuide, counter
	}

	n := arEscapeIterations(ctx.PreviousAlpha, ctx.Opts.ARThreshold)
	newCounter := counter
	if counter >= n || ctx.Opts.FirstRun {
		if alpha, guide, ok := ctx.Oracle.Srea(ctx.Working); ok {
			ctx.Counters.NumReschedules++
			ctx.Counters.NumSentSchedules++
			if ctx.Log != nil {
				ctx.Log.Debug("drea-ar rescheduled", "alpha", alpha)
			}
			return alpha, guide, 0
		}
	}
	return ctx.PreviousAlpha, ctx.PreviousGuide, newCounter
}
