// File: simulator.go
// Role: the simulation driver. Direct Go port of
// montsim.py.Simulator.simulate's five-step loop: copy the starting STNs,
// resample contingent durations, seed the guide, then repeatedly fetch a
// guide, select the next timepoint, assign it across all three STNs,
// propagate-and-check on a scratch copy, clean up, and advance time.
package simulator

import (
	"github.com/hashicorp/go-hclog"

	"github.com/dream-stnu/simcore/dispatch"
	"github.com/dream-stnu/simcore/dist"
	"github.com/dream-stnu/simcore/internal/obslog"
	"github.com/dream-stnu/simcore/srea"
	"github.com/dream-stnu/simcore/stn"
	"github.com/dream-stnu/simcore/strategy"
)

// Simulator owns the collaborators a simulation run needs: the SREA
// oracle, a logger, and optional metrics. It holds no per-run state, so a
// single Simulator can run many Simulate calls concurrently as long as
// each is given its own starting STN (stn.STN itself is not safe for
// concurrent use, but separate STN instances are independent).
type Simulator struct {
	oracle  srea.Oracle
	log     hclog.Logger
	metrics *Metrics
}

// New returns a Simulator. A nil oracle defaults to srea.Reference{}; a
// nil log defaults to a no-op logger; a nil metrics disables
// instrumentation.
func New(oracle srea.Oracle, log hclog.Logger, metrics *Metrics) *Simulator {
	if oracle == nil {
		oracle = srea.Reference{}
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Simulator{oracle: oracle, log: log, metrics: metrics}
}

// Simulate runs one execution of starting under the named strategy.
// starting is never mutated; Simulate works on copies throughout.
func (s *Simulator) Simulate(starting *stn.STN, stratName strategy.Name, opts Options) (*Result, error) {
	strat, err := strategy.Lookup(stratName)
	if err != nil {
		return nil, err
	}

	working := starting.Copy()
	assignmentSTN := starting.Copy()
	counters := &strategy.Counters{}

	obslog.Verbose(s.log, "resampling stored network")
	dist.NewSampler(opts.RandSeed).Resample(working)

	guide := working
	currentAlpha := 0.0
	firstRun := true
	executedContingent := false
	currentTime := 0.0

	for !allAssigned(working) {
		ctx := &strategy.Context{
			Working:       working,
			Oracle:        s.oracle,
			PreviousAlpha: currentAlpha,
			PreviousGuide: guide,
			Opts: strategy.Options{
				FirstRun:           firstRun,
				ExecutedContingent: executedContingent,
				SIThreshold:        opts.SIThreshold,
				ARThreshold:        opts.ARThreshold,
				ALPThreshold:       opts.ALPThreshold,
			},
			Counters: counters,
			Log:      s.log,
		}
		firstRun = false

		obslog.VeryVerbose(s.log, "getting guide")
		currentAlpha, guide = strat.GetGuide(ctx)
		obslog.VeryVerbose(s.log, "got guide", "alpha", currentAlpha)

		obslog.VeryVerbose(s.log, "selecting timepoint")
		sel, ok := dispatch.Select(guide, working, currentTime, s.log)
		if !ok {
			obslog.Verbose(s.log, "no enabled timepoint; network is inconsistent",
				"assignments", assignedTimes(assignmentSTN))
			return s.fail(stratName, counters, currentAlpha, assignmentSTN), nil
		}
		obslog.VeryVerbose(s.log, "selected timepoint", "vertex", sel.VertexID, "time", sel.Time)
		executedContingent = sel.WasContingent

		assignTimepoint(guide, sel.VertexID, sel.Time)
		assignTimepoint(working, sel.VertexID, sel.Time)
		assignTimepoint(assignmentSTN, sel.VertexID, sel.Time)

		candidate := working.Copy()
		if !propagateConstraints(candidate) {
			obslog.Verbose(s.log, "failed to place point", "vertex", sel.VertexID, "time", sel.Time)
			return s.fail(stratName, counters, currentAlpha, assignmentSTN), nil
		}
		working = candidate
		working.Prune()
		currentTime = sel.Time
	}

	obslog.Verbose(s.log, "simulation successful", "assignments", assignedTimes(assignmentSTN))
	if s.metrics != nil {
		s.metrics.observe(string(stratName), countersView{counters.NumReschedules, counters.NumSentSchedules}, true)
	}
	return &Result{
		Success:          true,
		AssignedTimes:    assignedTimes(assignmentSTN),
		NumReschedules:   counters.NumReschedules,
		NumSentSchedules: counters.NumSentSchedules,
		FinalAlpha:       currentAlpha,
	}, nil
}

func (s *Simulator) fail(stratName strategy.Name, counters *strategy.Counters, alpha float64, assignmentSTN *stn.STN) *Result {
	if s.metrics != nil {
		s.metrics.observe(string(stratName), countersView{counters.NumReschedules, counters.NumSentSchedules}, false)
	}
	return &Result{
		Success:          false,
		AssignedTimes:    assignedTimes(assignmentSTN),
		NumReschedules:   counters.NumReschedules,
		NumSentSchedules: counters.NumSentSchedules,
		FinalAlpha:       alpha,
	}
}
