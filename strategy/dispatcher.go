// Package strategy implements the seven execution (guide-reschedule)
// strategies the simulation driver can run: early, srea, drea, drea-si,
// drea-alp, drea-ar, and arsi. Each is a direct port of the corresponding
// method on montsim.py's Simulator (the _srea_algorithm / _drea_algorithm
// / ... family), restructured as a Dispatcher so the driver in package
// simulator never branches on strategy name itself.
package strategy

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/dream-stnu/simcore/srea"
	"github.com/dream-stnu/simcore/stn"
)

// Name identifies one of the seven execution strategies by the same
// strings the original CLI accepted.
type Name string

const (
	Early   Name = "early"
	SREA    Name = "srea"
	DREA    Name = "drea"
	DREASI  Name = "drea-si"
	DREAALP Name = "drea-alp"
	DREAAR  Name = "drea-ar"
	ARSI    Name = "arsi"
)

// ErrUnknownStrategy is returned by Lookup for any Name outside the seven
// above, mirroring the Python original's ValueError in get_guide's final
// else branch.
var ErrUnknownStrategy = errors.New("strategy: unknown execution strategy")

// Options carries the simulator's per-iteration flags and the
// user-configurable reschedule-acceptance thresholds, ported from
// montsim.py's sim_options dict and the options dict rebuilt on every
// simulate() iteration.
type Options struct {
	// FirstRun is true only on the loop's first iteration.
	FirstRun bool
	// ExecutedContingent is true when the timepoint just assigned was
	// reached via a contingent edge.
	ExecutedContingent bool

	// SIThreshold gates drea-si's and arsi's probability-of-improvement
	// acceptance test.
	SIThreshold float64
	// ARThreshold gates drea-ar's and arsi's allowable-risk acceptance test.
	ARThreshold float64
	// ALPThreshold gates drea-alp's alpha-difference acceptance test.
	ALPThreshold float64
}

// Counters accumulates the simulation-wide reschedule bookkeeping
// montsim.py tracks on the Simulator instance itself
// (num_reschedules/num_sent_schedules).
type Counters struct {
	NumReschedules   int
	NumSentSchedules int
}

// Context bundles everything a Dispatcher needs to compute the next guide:
// the driver's live working STN (consulted, never mutated, by the oracle
// wrapper), the SREA oracle to call, the previous iteration's alpha/guide,
// this iteration's Options, the shared Counters, and a logger.
type Context struct {
	Working       *stn.STN
	Oracle        srea.Oracle
	PreviousAlpha float64
	PreviousGuide *stn.STN
	Opts          Options
	Counters      *Counters
	Log           hclog.Logger
}

// Dispatcher computes the guide STN and its risk level alpha that the
// driver should dispatch against for the current iteration, given the
// previous iteration's choice.
type Dispatcher interface {
	GetGuide(ctx *Context) (alpha float64, guide *stn.STN)
}

// Lookup returns a fresh Dispatcher instance for name. A fresh instance is
// returned on every call because drea-ar and arsi carry their own
// reschedule-eligibility counter across iterations within a single
// simulation run (montsim.py's self._ar_contingent_event_counter); a new
// simulation must start that counter at zero.
func Lookup(name Name) (Dispatcher, error) {
	switch name {
	case Early:
		return earlyDispatcher{}, nil
	case SREA:
		return &sreaOnceDispatcher{}, nil
	case DREA:
		return dreaDispatcher{}, nil
	case DREASI:
		return dreaSIDispatcher{}, nil
	case DREAALP:
		return dreaALPDispatcher{}, nil
	case DREAAR:
		return &dreaARDispatcher{}, nil
	case ARSI:
		return &arsiDispatcher{}, nil
	default:
		return nil, fmt.Errorf("strategy.Lookup(%q): %w", name, ErrUnknownStrategy)
	}
}
