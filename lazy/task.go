package lazy

import (
	"fmt"

	"github.com/evilsocket/predict/kernel"

	"github.com/evilsocket/islazy/log"
	"golang.org/x/sync/errgroup"
)

// Evaluator is any eager strategy a Task can defer.
type Evaluator interface {
	Predict(x, y, z []float64, overlay bool) (*kernel.Result, error)
}

// Option customizes a Task.
type Option func(*Task)

// WithChunks splits the rows of the task in n contiguous partitions.
func WithChunks(n int) Option {
	return func(t *Task) {
		if n > 0 {
			t.chunks = n
		}
	}
}

// WithWorkers sets how many partitions can be evaluated at the same time.
func WithWorkers(n int) Option {
	return func(t *Task) {
		if n > 0 {
			t.workers = n
		}
	}
}

// Task is the description of a deferred prediction.
type Task struct {
	eval    Evaluator
	x, y, z []float64
	overlay bool
	chunks  int
	workers int
}

// Delayed creates the description of a prediction without evaluating it, the
// inputs are referenced and not copied so they must not change before Compute.
func Delayed(eval Evaluator, x, y, z []float64, overlay bool, opts ...Option) *Task {
	t := &Task{
		eval:    eval,
		x:       x,
		y:       y,
		z:       z,
		overlay: overlay,
		chunks:  1,
		workers: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Partitions returns the [start, end) row ranges the task will be evaluated in.
func (t *Task) Partitions() [][2]int {
	n := len(t.x)
	chunks := t.chunks
	if chunks > n {
		chunks = n
	}
	if chunks < 1 {
		return [][2]int{{0, n}}
	}

	parts := make([][2]int, 0, chunks)
	size, rest := n/chunks, n%chunks
	start := 0
	for i := 0; i < chunks; i++ {
		end := start + size
		if i < rest {
			end++
		}
		parts = append(parts, [2]int{start, end})
		start = end
	}
	return parts
}

func (t *Task) String() string {
	name := "?"
	if named, ok := t.eval.(interface{ Name() string }); ok {
		name = named.Name()
	}
	return fmt.Sprintf("delayed(%s, n=%d, overlay=%v, chunks=%d, workers=%d)",
		name, len(t.x), t.overlay, len(t.Partitions()), t.workers)
}

// Compute evaluates the task and blocks until the whole result is available,
// every call evaluates it again and returns a new result.
func (t *Task) Compute() (*kernel.Result, error) {
	n, err := kernel.Validate(t.x, t.y, t.z)
	if err != nil {
		return nil, err
	}

	parts := t.Partitions()
	if len(parts) == 1 {
		return t.eval.Predict(t.x, t.y, t.z, t.overlay)
	}

	log.Debug("computing %s", t)

	res := kernel.NewResult(n)
	g := errgroup.Group{}
	g.SetLimit(t.workers)
	for _, part := range parts {
		start, end := part[0], part[1]
		g.Go(func() error {
			chunk, err := t.eval.Predict(t.x[start:end], t.y[start:end], t.z[start:end], t.overlay)
			if err != nil {
				return fmt.Errorf("rows %d-%d: %w", start, end, err)
			}
			// partitions never overlap
			res.CopyRows(start, chunk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
