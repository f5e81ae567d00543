package bench

import (
	"fmt"
	"strings"

	"github.com/evilsocket/predict/kernel"
	"github.com/evilsocket/predict/lazy"
	"github.com/evilsocket/predict/predictor"
)

type evalFn func(x, y, z []float64, overlay bool) (*kernel.Result, error)

type entry struct {
	name string
	eval evalFn
}

// resolve maps a strategy name of the configuration to the function to time,
// deferred strategies include the construction of the task in their timing.
func resolve(name string, cfg *Config) (*entry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	outer, inner, deferred := strings.Cut(name, ":")

	s, err := predictor.ParseStrategy(outer)
	if err != nil {
		return nil, err
	}

	if s != predictor.Deferred {
		if deferred {
			return nil, fmt.Errorf("only deferred strategies can wrap another one: %s", name)
		}
		eval, err := predictor.Evaluator(s)
		if err != nil {
			return nil, err
		}
		return &entry{name: name, eval: eval.Predict}, nil
	}

	wrapped := predictor.Direct
	if deferred {
		if wrapped, err = predictor.ParseStrategy(inner); err != nil {
			return nil, err
		} else if wrapped == predictor.Deferred {
			return nil, fmt.Errorf("deferred strategies can't wrap themselves: %s", name)
		}
	}

	return &entry{
		name: fmt.Sprintf("deferred:%s", wrapped),
		eval: func(x, y, z []float64, overlay bool) (*kernel.Result, error) {
			task, err := predictor.Defer(wrapped, x, y, z, overlay,
				lazy.WithChunks(cfg.Chunks),
				lazy.WithWorkers(cfg.Workers))
			if err != nil {
				return nil, err
			}
			return task.Compute()
		},
	}, nil
}
