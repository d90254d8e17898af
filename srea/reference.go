// File: reference.go
// Role: a deterministic stand-in for the real SREA risk-bound search.
//
// spec.md treats SREA as an external oracle and fixes only its call
// signature (§6); the actual algorithm (an LP search over how much of
// each contingent edge's probability mass to keep) is explicitly out of
// scope (§1). Reference exists so the rest of this repository — the
// strategy dispatcher, the simulation driver, and their tests — has a
// real, runnable oracle to call instead of a mock. It is grounded on
// stn.STN.FloydWarshall (matrix/impl_floydwarshall.go's closure routine)
// for the feasibility check; the risk-ladder search itself has no
// teacher analogue and is a minimal faithful implementation of the
// Oracle contract, not a port of the original SREA.
package srea

import "github.com/dream-stnu/simcore/stn"

// alphaLadder lists the risk levels Reference tries, from safest (alpha
// close to 0: almost no tightening of contingent upper bounds) to riskiest
// (alpha == 1: contingent edges collapse to their lower bound).
var alphaLadder = []float64{0.0, 0.05, 0.1, 0.2, 0.35, 0.5, 0.75, 1.0}

// Reference is a deterministic Oracle: for each alpha in alphaLadder
// (ascending), it tightens every contingent edge's upper bound toward its
// lower bound by a factor of alpha, then checks consistency via
// FloydWarshall. It returns the first (smallest, safest) alpha whose
// tightened network is consistent, or ok=false if even full collapse
// (alpha==1) is inconsistent.
type Reference struct{}

// Srea implements Oracle.
func (Reference) Srea(net *stn.STN) (float64, *stn.STN, bool) {
	for _, alpha := range alphaLadder {
		guide := net.Copy()
		for _, e := range guide.ContingentEdges() {
			e.Hi = e.Lo + (1-alpha)*(e.Hi-e.Lo)
		}
		if guide.FloydWarshall() {
			return alpha, guide, true
		}
	}
	return 0, nil, false
}
