// Package srea defines the Static Robust Execution Algorithm oracle
// contract spec.md §6 fixes for the simulation core, and supplies a
// deterministic reference implementation satisfying it.
//
// The real SREA (a risk-bound LP search over contingent-edge tightenings,
// described only by name in spec.md's Glossary) is explicitly out of
// scope for this repository (spec.md §1): the core only ever calls it
// through the Oracle interface below. See reference.go for why a
// stand-in oracle is still supplied.
package srea

import "github.com/dream-stnu/simcore/stn"

// Oracle is the external collaborator the strategy dispatcher calls to
// obtain a tightened, dispatchable schedule. Given an STN, it returns the
// risk level alpha in [0,1] and a guide STN to follow, or ok=false if no
// consistent tightening exists ("infeasible" in spec.md's vocabulary).
type Oracle interface {
	Srea(net *stn.STN) (alpha float64, guide *stn.STN, ok bool)
}
