package predictor

import (
	"errors"
	"testing"
)

func TestStrategyParse(t *testing.T) {
	units := []struct {
		name     string
		expected Strategy
	}{
		{"direct", Direct},
		{"Vectorized", Vectorized},
		{" COMPILED ", Compiled},
		{"deferred", Deferred},
	}

	for _, u := range units {
		if s, err := ParseStrategy(u.name); err != nil {
			t.Fatal(err)
		} else if s != u.expected {
			t.Fatalf("%q: expected %s, got %s", u.name, u.expected, s)
		}
	}
}

func TestStrategyParseUnknown(t *testing.T) {
	if _, err := ParseStrategy("numba"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStrategyString(t *testing.T) {
	for _, s := range Strategies() {
		if parsed, err := ParseStrategy(s.String()); err != nil {
			t.Fatal(err)
		} else if parsed != s {
			t.Fatalf("expected %s, got %s", s, parsed)
		}
	}

	if str := Strategy(99).String(); str != "strategy(99)" {
		t.Fatalf("unexpected string: %s", str)
	}
}
