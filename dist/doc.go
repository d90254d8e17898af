// Package dist — see distribution.go for the Distribution family and
// sampler.go for the seeded Sampler that draws once per simulation run.
package dist
