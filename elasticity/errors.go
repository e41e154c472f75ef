package elasticity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaterial indicates a non-positive density or stress slope,
	// which would make the characteristic speeds imaginary.
	ErrInvalidMaterial = errors.New("elasticity: invalid material parameters")

	// ErrNonConvergence indicates the root finder exhausted its iteration
	// budget without meeting tolerance.
	ErrNonConvergence = errors.New("elasticity: root finder did not converge")
)

// SolveError carries the iteration context of a failed solve.
type SolveError struct {
	Iterations int
	Residual   float64
	Wrapped    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s (iterations = %d, residual = %g)",
		e.Wrapped.Error(), e.Iterations, e.Residual)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
