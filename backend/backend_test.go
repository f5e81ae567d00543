package backend

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/evilsocket/predict/kernel"

	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-9

func randomInputs(r *rand.Rand, size int) (x, y, z []float64) {
	x = make([]float64, size)
	y = make([]float64, size)
	z = make([]float64, size)
	for i := 0; i < size; i++ {
		x[i] = float64(r.Intn(100))
		y[i] = r.Float64()
		z[i] = r.Float64()
	}
	return
}

func TestBackendNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "gonum" || names[1] != "naive" {
		t.Fatalf("unexpected backends: %v", names)
	}
}

func TestBackendGetUnknown(t *testing.T) {
	if b, err := Get("cuda"); err == nil {
		t.Fatal("expected error")
	} else if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("unexpected error: %v", err)
	} else if b != nil {
		t.Fatalf("expected nil backend, got %v", b)
	}
}

func TestBackendUse(t *testing.T) {
	defer Use("naive")

	if err := Use("gonum"); err != nil {
		t.Fatal(err)
	} else if Name() != "gonum" {
		t.Fatalf("unexpected default backend: %s", Name())
	} else if Space() == 0 {
		t.Fatal("expected available memory")
	} else if err = Use("opencl"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("unexpected error: %v", err)
	} else if Name() != "gonum" {
		t.Fatal("a failed Use must not change the default backend")
	}
}

func TestBackendExample(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			b, err := Get(name)
			if err != nil {
				t.Fatal(err)
			}

			res, err := b.Predict([]float64{2}, []float64{1.0}, []float64{0.5}, false)
			if err != nil {
				t.Fatal(err)
			}

			row := res.Row(0)
			for step, v := range row {
				if expected := 2.0 * float64(step); v != expected {
					t.Fatalf("step %d: expected %v, got %v", step, expected, v)
				}
			}
		})
	}
}

func TestBackendShape(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, name := range Names() {
		b, _ := Get(name)
		for _, size := range []int{0, 1, 13, 256} {
			x, y, z := randomInputs(r, size)
			res, err := b.Predict(x, y, z, false)
			if err != nil {
				t.Fatal(err)
			} else if rows, cols := res.Dims(); rows != size || cols != kernel.Steps {
				t.Fatalf("%s: expected %dx%d, got %dx%d", name, size, kernel.Steps, rows, cols)
			}
		}
	}
}

func TestBackendFormula(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	x, y, z := randomInputs(r, 64)

	for _, name := range Names() {
		b, _ := Get(name)
		for _, overlay := range []bool{false, true} {
			res, err := b.Predict(x, y, z, overlay)
			if err != nil {
				t.Fatal(err)
			}
			adj := kernel.Factor(overlay)
			for i := range x {
				for step := 0; step < kernel.Steps; step++ {
					ft := float64(step)
					expected := adj * (ft*x[i]*x[i] + y[i] - 2*z[i] - 2*ft)
					if got := res.At(i, step); !closeEnough(got, expected) {
						t.Fatalf("%s overlay=%v (%d, %d): expected %v, got %v", name, overlay, i, step, expected, got)
					}
				}
			}
		}
	}
}

func TestBackendOverlay(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	x, y, z := randomInputs(r, 32)

	for _, name := range Names() {
		b, _ := Get(name)
		plain, _ := b.Predict(x, y, z, false)
		scaled, _ := b.Predict(x, y, z, true)

		var expected mat.Dense
		expected.Scale(kernel.OverlayFactor, plain)
		if !mat.EqualApprox(&expected, scaled, epsilon) {
			t.Fatalf("%s: overlay result is not 1.5x the plain one", name)
		}
	}
}

func TestBackendDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	x, y, z := randomInputs(r, 100)

	for _, name := range Names() {
		b, _ := Get(name)
		first, _ := b.Predict(x, y, z, true)
		second, _ := b.Predict(x, y, z, true)
		if !mat.Equal(first, second) {
			t.Fatalf("%s: repeated calls returned different results", name)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	x, y, z := randomInputs(r, 500)

	n, _ := Get("naive")
	g, _ := Get("gonum")
	a, _ := n.Predict(x, y, z, true)
	b, _ := g.Predict(x, y, z, true)
	if !mat.EqualApprox(a, b, epsilon) {
		t.Fatal("naive and gonum backends disagree")
	}
}

func TestBackendDoesNotAlias(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	z := []float64{7, 8, 9}

	for _, name := range Names() {
		b, _ := Get(name)
		res, _ := b.Predict(x, y, z, false)
		res.Set(0, 0, 1000)
		if x[0] != 1 || y[0] != 4 || z[0] != 7 {
			t.Fatalf("%s: result aliases the inputs", name)
		}
	}
}

func TestBackendLengthMismatch(t *testing.T) {
	if res, err := Predict([]float64{1, 2}, []float64{1}, []float64{1, 2}, false); err == nil {
		t.Fatal("expected error")
	} else if !errors.Is(err, kernel.ErrLengthMismatch) {
		t.Fatalf("unexpected error: %v", err)
	} else if res != nil {
		t.Fatal("expected nil result")
	}
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	m := b
	if m < 0 {
		m = -m
	}
	return d <= epsilon || d <= epsilon*m
}
