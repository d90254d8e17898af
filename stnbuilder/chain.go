// File: chain.go
// Role: fixture/network construction for tests, demos, and cmd/simcli.
// Grounded on builder/impl_path.go's sequential vertex/edge emission
// discipline (deterministic IDs in ascending order, deterministic edge
// emission order, validate-then-build), re-expressed for STNU: instead of
// a uniform path, Chain alternates requirement and contingent edges so a
// single call exercises both edge kinds spec.md's Network module defines.
package stnbuilder

import (
	"fmt"

	"github.com/dream-stnu/simcore/stn"
)

const minChainVertices = 1

// Chain returns an STNU of n non-Z vertices in sequence: Z -> 1 is always
// a requirement edge (cfg.requirementWeight), then each subsequent edge
// i -> i+1 alternates contingent (odd i) and requirement (even i), so a
// chain of any length n >= 3 exercises both edge kinds and the dispatch
// selector's contingent-predecessor branch.
//
// Returns ErrTooFewVertices if n < 1, or an aggregated
// (github.com/hashicorp/go-multierror) validation error if the configured
// weight or bounds are invalid; in both cases nothing is built.
func Chain(n int, opts ...Option) (*stn.STN, error) {
	if n < minChainVertices {
		return nil, fmt.Errorf("Chain: n=%d: %w", n, ErrTooFewVertices)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Chain: %w", err)
	}

	net := stn.New()
	for i := 1; i <= n; i++ {
		if err := net.AddVertex(i); err != nil {
			return nil, fmt.Errorf("Chain: AddVertex(%d): %w", i, err)
		}
	}

	if err := net.AddRequirementEdge(stn.ZVertex, 1, cfg.requirementWeight); err != nil {
		return nil, fmt.Errorf("Chain: AddRequirementEdge(Z,1): %w", err)
	}

	for i := 1; i < n; i++ {
		var err error
		if i%2 == 1 {
			err = net.AddContingentEdge(i, i+1, cfg.contingentLo, cfg.contingentHi, cfg.dist)
		} else {
			err = net.AddRequirementEdge(i, i+1, cfg.requirementWeight)
		}
		if err != nil {
			return nil, fmt.Errorf("Chain: edge(%d,%d): %w", i, i+1, err)
		}
	}

	return net, nil
}
