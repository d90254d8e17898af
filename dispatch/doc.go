// Package dispatch implements the next-timepoint selection logic the
// simulation driver calls once per iteration: scan the current guide STN
// for enabled, unexecuted timepoints and pick the one with the earliest
// feasible firing time. See select.go for the port and its documented
// working-vs-dispatch quirk.
package dispatch
