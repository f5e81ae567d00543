package predictor

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how the kernel is evaluated, every strategy returns the
// same result for the same inputs.
type Strategy int

const (
	// Direct evaluates every cell immediately with plain loops.
	Direct Strategy = iota
	// Vectorized evaluates a whole time step column at a time with gonum.
	Vectorized
	// Compiled runs the precompiled kernel script.
	Compiled
	// Deferred builds a lazy task around Direct and computes it right away.
	Deferred
)

// ErrUnknownStrategy is returned when parsing an invalid strategy name.
var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = map[Strategy]string{
	Direct:     "direct",
	Vectorized: "vectorized",
	Compiled:   "compiled",
	Deferred:   "deferred",
}

// Strategies returns all the available strategies.
func Strategies() []Strategy {
	return []Strategy{Direct, Vectorized, Compiled, Deferred}
}

func (s Strategy) String() string {
	if name, found := strategyNames[s]; found {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy returns the strategy with the given name, case insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, sname := range strategyNames {
		if sname == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
