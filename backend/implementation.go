package backend

import (
	"github.com/evilsocket/predict/kernel"
)

// each backend must implement these methods, inputs are already validated
// and factor is the overlay scale to apply.
type implementation interface {
	Name() string
	Space() uint64

	Predict(x, y, z []float64, factor float64) *kernel.Result
}
