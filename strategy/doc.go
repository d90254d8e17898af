// Package strategy — see dispatcher.go for the Dispatcher contract and
// Lookup, and the per-strategy files for each of the seven ported
// algorithms.
package strategy
