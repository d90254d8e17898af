// Package simulator drives one dynamic execution of an STNU: resample
// contingent durations, then repeatedly consult a strategy.Dispatcher for
// a guide, select the next timepoint, pin it, and propagate constraints
// until every timepoint is assigned or the network is found inconsistent.
package simulator
