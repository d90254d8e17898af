// Package srea — see oracle.go for the Oracle contract and reference.go
// for the deterministic reference implementation used throughout this
// repository's tests and cmd/simcli.
package srea
