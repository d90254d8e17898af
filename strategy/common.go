package strategy

import "github.com/dream-stnu/simcore/stn"

// sreaWrapper runs the oracle against working and falls back to the
// previous alpha/guide if the oracle reports infeasibility, matching
// montsim.py's Simulator._srea_wrapper: "Our guide was inconsistent...
// Follow the previous guide."
func sreaWrapper(ctx *Context) (float64, *stn.STN) {
	alpha, guide, ok := ctx.Oracle.Srea(ctx.Working)
	if !ok {
		return ctx.PreviousAlpha, ctx.PreviousGuide
	}
	return alpha, guide
}

// remainingContingentCount counts guide's received timepoints that have
// not yet been executed, matching
// montsim.py.Simulator.remaining_contingent_count.
func remainingContingentCount(guide *stn.STN) int {
	count := 0
	for _, id := range guide.ReceivedTimepoints() {
		if v := guide.GetVertex(id); v != nil && !v.IsExecuted() {
			count++
		}
	}
	return count
}

// arEscapeIterations computes n, the largest number of consecutive
// unexecuted contingent events the simulator can tolerate before a
// reschedule becomes mandatory under threshold, matching the
// (1-alpha)**(n+1) > threshold escape loop duplicated in
// montsim.py's _drea_ar_algorithm and _arsi_algorithm. The 100-attempt cap
// guards against looping forever when threshold <= 0.
func arEscapeIterations(previousAlpha, threshold float64) int {
	n := 0
	attempts := 0
	remaining := 1 - previousAlpha
	power := remaining
	for power > threshold && attempts < 100 {
		n++
		attempts++
		power *= remaining
	}
	return n
}
