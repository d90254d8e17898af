// File: errors.go
// Role: sentinel errors and go-multierror validation aggregation for
// fixture construction, grounded on builder/errors.go's sentinel-error
// policy and builder/constants.go's per-constructor method-name tagging.
package stnbuilder

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Sentinel errors returned (individually, or aggregated via
// github.com/hashicorp/go-multierror) by this package's constructors.
var (
	// ErrTooFewVertices indicates a chain was asked to build
	// fewer vertices than it can meaningfully represent.
	ErrTooFewVertices = errors.New("stnbuilder: fewer than the minimum number of vertices requested")

	// ErrInvalidContingentBounds indicates a configured [lo,hi] contingent
	// interval does not satisfy 0 <= lo <= hi.
	ErrInvalidContingentBounds = errors.New("stnbuilder: contingent interval requires 0 <= lo <= hi")

	// ErrInvalidRequirementWeight indicates a configured requirement
	// weight is negative, which would make every chain position
	// unsatisfiable from Z.
	ErrInvalidRequirementWeight = errors.New("stnbuilder: requirement weight must be >= 0")
)

// appendErr aggregates cause onto errs via go-multierror, so a
// constructor can report every validation failure at once instead of
// stopping at the first.
func appendErr(errs error, cause error) error {
	return multierror.Append(errs, cause)
}
