package simulator

import "github.com/dream-stnu/simcore/stn"

// Result is what Simulate returns: whether the run completed, every
// vertex's final assigned time (nil entries mean "never assigned",
// possible only on a failed run), the strategy's accumulated reschedule
// counters, and the last alpha the strategy settled on.
type Result struct {
	Success          bool
	AssignedTimes    map[int]*float64
	NumReschedules   int
	NumSentSchedules int
	FinalAlpha       float64
}

// assignedTimes snapshots every vertex's assigned time on net, matching
// montsim.py.Simulator.get_assigned_times: unassigned vertices map to a
// nil pointer rather than being omitted, so callers can distinguish
// "never assigned" from "not present".
func assignedTimes(net *stn.STN) map[int]*float64 {
	out := make(map[int]*float64, len(net.Verts()))
	for id, v := range net.Verts() {
		if !v.IsExecuted() {
			out[id] = nil
			continue
		}
		t, ok := net.GetAssignedTime(id)
		if !ok {
			out[id] = nil
			continue
		}
		tCopy := t
		out[id] = &tCopy
	}
	return out
}
