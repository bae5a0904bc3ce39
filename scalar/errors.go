package scalar

import "errors"

// Sentinel errors returned by the scalar package. Other packages wrap
// these with fmt.Errorf("%w: …") to attach the offending value.
var (
	// ErrInvalidCoefficient indicates a degenerate cubic: a leading
	// coefficient of zero, or a non-finite coefficient.
	ErrInvalidCoefficient = errors.New("scalar: invalid cubic coefficient")
)
