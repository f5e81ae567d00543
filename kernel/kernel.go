package kernel

import (
	"errors"
	"fmt"
)

const (
	// Steps is the number of discrete time steps every input element is evaluated for.
	Steps = 15
	// OverlayFactor is the scale applied to the whole result when the overlay flag is set.
	OverlayFactor = 1.5
)

// ErrLengthMismatch is returned when the x, y and z sequences do not have the same length.
var ErrLengthMismatch = errors.New("input sequences have different lengths")

// Factor returns the scale factor for the given overlay flag.
func Factor(overlay bool) float64 {
	if overlay {
		return OverlayFactor
	}
	return 1.0
}

// Value evaluates the unscaled quantity for a single element at time step t.
// NOTE: every strategy must keep this exact evaluation order, otherwise results
// stop being bit-identical across them.
func Value(x, y, z float64, t int) float64 {
	ft := float64(t)
	return ft*(x*x) + y - 2*z - 2*ft
}

// Validate makes sure x, y and z have the same length and returns it.
func Validate(x, y, z []float64) (int, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return 0, fmt.Errorf("%w: x=%d y=%d z=%d", ErrLengthMismatch, len(x), len(y), len(z))
	}
	return n, nil
}
