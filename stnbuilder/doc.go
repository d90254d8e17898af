// Package stnbuilder provides fixture and demo network constructors used
// by this repository's tests and cmd/simcli, in the functional-options
// style the rest of the corpus's graph builders use.
package stnbuilder
