// Package dispatch implements the Dispatch Selector: choosing the next
// enabled timepoint and its firing time over the currently active guide
// STN. This is a direct port of the Python original's
// select_next_timepoint, including a documented quirk noted in spec.md §9.
package dispatch

import (
	"math"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/dream-stnu/simcore/internal/obslog"
	"github.com/dream-stnu/simcore/stn"
)

// Selection is the result of Select: the chosen vertex id, its firing
// time, and whether it was reached via an incoming contingent edge.
type Selection struct {
	VertexID      int
	Time          float64
	WasContingent bool
}

// Select scans every vertex in dispatch and returns the enabled vertex
// with the earliest feasible firing time, breaking ties by ascending
// vertex id (spec.md says ties are "broken arbitrarily"; a deterministic
// tie-break keeps runs reproducible per spec.md P5). A vertex is enabled
// iff all of its requirement predecessors (in dispatch) are executed. An
// enabled vertex is still skipped when no firing time can be computed for
// it: a requirement predecessor with no assigned time on working, or a
// contingent source with neither an assigned time nor a (Z,source) edge on
// dispatch.
//
// working is the simulator's own working STN, consulted — not dispatch —
// for a non-contingent vertex's predecessor assigned times. This mirrors
// the Python original's self.stn.get_assigned_time(edge.i) call inside
// select_next_timepoint and is preserved verbatim as a documented
// invariant (spec.md §9 Open Questions), not corrected: dispatch may be a
// stale or SREA-rewritten guide, while working always reflects the
// timepoints actually assigned so far.
//
// Returns ok=false if no vertex is currently enabled (spec.md §7 kind 2:
// treated by the caller as inconsistency).
func Select(dispatch, working *stn.STN, currentTime float64, log hclog.Logger) (Selection, bool) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	ids := make([]int, 0, len(dispatch.Verts()))
	for id := range dispatch.Verts() {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bestID := -1
	bestTime := math.Inf(1)
	bestContingent := false

	for _, id := range ids {
		v := dispatch.GetVertex(id)
		if v.IsExecuted() {
			continue
		}

		preds := dispatch.GetIncoming(id)
		enabled := true
		for _, e := range preds {
			p := dispatch.GetVertex(e.I)
			if p == nil || !p.IsExecuted() {
				enabled = false
				break
			}
		}
		if !enabled {
			continue
		}

		var earliest float64
		contingent := dispatch.GetIncomingContingent(id)
		if contingent == nil {
			if len(preds) == 0 {
				earliest = 0
			} else {
				earliest = math.Inf(-1)
				for _, e := range preds {
					t, ok := working.GetAssignedTime(e.I)
					if !ok {
						// Predecessor not yet assigned on the working STN;
						// this vertex cannot actually be enabled yet.
						enabled = false
						break
					}
					candidate := e.GetWeightMin() + t
					if candidate > earliest {
						earliest = candidate
					}
				}
				if !enabled {
					continue
				}
			}
		} else {
			sampleTime, err := contingent.SampledTime()
			if err != nil {
				sampleTime = 0
			}
			assignedTime, ok := dispatch.GetAssignedTime(contingent.I)
			if !ok {
				obslog.Warning(log, "executed event was not assigned on the guide STN; recovering via upper bound",
					"vertex", contingent.I)
				w, hasW := dispatch.GetEdgeWeight(stn.ZVertex, contingent.I)
				if !hasW {
					continue
				}
				obslog.Warning(log, "re-assigned contingent predecessor", "vertex", contingent.I, "time", w)
				earliest = w
			} else {
				earliest = assignedTime + sampleTime
			}
		}

		if earliest < bestTime {
			bestID = id
			bestTime = earliest
			bestContingent = contingent != nil
		}
	}

	if bestID == -1 {
		return Selection{}, false
	}
	return Selection{VertexID: bestID, Time: bestTime, WasContingent: bestContingent}, true
}
