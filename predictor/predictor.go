package predictor

import (
	"fmt"

	"github.com/evilsocket/predict/backend"
	"github.com/evilsocket/predict/compiler"
	"github.com/evilsocket/predict/kernel"
	"github.com/evilsocket/predict/lazy"
)

// Predict evaluates the kernel for every element of x, y and z and every time
// step, scaling the result by 1.5 when overlay is set.
func Predict(x, y, z []float64, overlay bool) (*kernel.Result, error) {
	return PredictWith(Direct, x, y, z, overlay)
}

// PredictWith evaluates the kernel with the given strategy.
func PredictWith(s Strategy, x, y, z []float64, overlay bool) (*kernel.Result, error) {
	if s == Deferred {
		task, err := Defer(Direct, x, y, z, overlay)
		if err != nil {
			return nil, err
		}
		return task.Compute()
	}

	eval, err := Evaluator(s)
	if err != nil {
		return nil, err
	}
	return eval.Predict(x, y, z, overlay)
}

// Defer returns the description of a prediction that the inner eager strategy
// will evaluate once Compute is called.
func Defer(inner Strategy, x, y, z []float64, overlay bool, opts ...lazy.Option) (*lazy.Task, error) {
	eval, err := Evaluator(inner)
	if err != nil {
		return nil, err
	}
	return lazy.Delayed(eval, x, y, z, overlay, opts...), nil
}

// Evaluator returns the eager evaluator for the given strategy.
func Evaluator(s Strategy) (lazy.Evaluator, error) {
	switch s {
	case Direct:
		return backend.Get("naive")
	case Vectorized:
		return backend.Get("gonum")
	case Compiled:
		return compiler.Default()
	case Deferred:
		return nil, fmt.Errorf("%s is not an eager strategy", s)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}
