// Package stn — see types.go and stn.go for the STNU graph ADT this
// package implements: timepoints, requirement/contingent edges, Floyd-
// Warshall propagation, and cleanup.
package stn
