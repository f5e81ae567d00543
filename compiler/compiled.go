package compiler

import (
	"fmt"

	"github.com/evilsocket/predict/kernel"

	"github.com/robertkrimen/otto"
)

// Kernel is a compiled kernel ready to be executed.
type Kernel struct {
	name   string
	source string
	call   *otto.Script
	pool   *ExecutionPool
}

// Name returns the name the kernel was compiled with.
func (k *Kernel) Name() string {
	return k.name
}

// Is returns true if the kernel was compiled from the given source.
func (k *Kernel) Is(source string) bool {
	return k.source == source
}

// Predict validates the inputs and runs the precompiled call on a free VM
// of the pool, blocking until one is available.
func (k *Kernel) Predict(x, y, z []float64, overlay bool) (*kernel.Result, error) {
	n, err := kernel.Validate(x, y, z)
	if err != nil {
		return nil, err
	}

	res := kernel.NewResult(n)

	vm := k.pool.Get()
	defer vm.Release()

	// define the arguments
	args := map[string]interface{}{
		"n":      n,
		"x":      x,
		"y":      y,
		"z":      z,
		"factor": kernel.Factor(overlay),
		"out":    res.RawData(),
	}
	for name, value := range args {
		if err := vm.Set(name, value); err != nil {
			return nil, fmt.Errorf("error while running %s: %w", k.name, err)
		}
	}

	// evaluate the precompiled function call
	if _, err := vm.Run(k.call); err != nil {
		return nil, fmt.Errorf("error while running %s: %w", k.name, err)
	}

	return res, nil
}
