package backend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/evilsocket/predict/kernel"
)

// ErrUnknownBackend is returned when selecting a backend by a name that is not registered.
var ErrUnknownBackend = errors.New("unknown backend")

var (
	registry = map[string]implementation{
		"naive": naive{},
		"gonum": vectorized{},
	}
	impl implementation = naive{}
)

// Backend is a handle to one of the registered implementations.
type Backend struct {
	impl implementation
}

// Get returns the backend registered with the given name.
func Get(name string) (*Backend, error) {
	if i, found := registry[name]; found {
		return &Backend{impl: i}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
}

// Name returns the name of the backend.
func (b *Backend) Name() string {
	return b.impl.Name()
}

// Predict validates the inputs and evaluates the kernel with this backend.
func (b *Backend) Predict(x, y, z []float64, overlay bool) (*kernel.Result, error) {
	return run(b.impl, x, y, z, overlay)
}

// Names returns the sorted names of the registered backends.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use selects the default backend, it is not safe to call while
// predictions are running.
func Use(name string) error {
	i, found := registry[name]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
	impl = i
	return nil
}

// Name returns the name of the default backend.
func Name() string {
	return impl.Name()
}

// Space returns the amount of memory available to the default backend.
func Space() uint64 {
	return impl.Space()
}

// Predict evaluates the kernel with the default backend.
func Predict(x, y, z []float64, overlay bool) (*kernel.Result, error) {
	return run(impl, x, y, z, overlay)
}

func run(i implementation, x, y, z []float64, overlay bool) (*kernel.Result, error) {
	if _, err := kernel.Validate(x, y, z); err != nil {
		return nil, err
	}
	return i.Predict(x, y, z, kernel.Factor(overlay)), nil
}
