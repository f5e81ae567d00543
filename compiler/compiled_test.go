package compiler

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/evilsocket/predict/backend"
	"github.com/evilsocket/predict/kernel"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

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

func TestCompiledExample(t *testing.T) {
	k, err := Default()
	require.NoError(t, err)

	res, err := k.Predict([]float64{2}, []float64{1.0}, []float64{0.5}, false)
	require.NoError(t, err)

	for step, v := range res.Row(0) {
		require.Equal(t, 2.0*float64(step), v, "step %d", step)
	}
}

func TestCompiledEmpty(t *testing.T) {
	k, err := Default()
	require.NoError(t, err)

	res, err := k.Predict(nil, nil, nil, true)
	require.NoError(t, err)

	rows, cols := res.Dims()
	require.Equal(t, 0, rows)
	require.Equal(t, kernel.Steps, cols)
}

func TestCompiledMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	x, y, z := randomInputs(r, 200)

	k, err := Default()
	require.NoError(t, err)
	naive, err := backend.Get("naive")
	require.NoError(t, err)

	for _, overlay := range []bool{false, true} {
		got, err := k.Predict(x, y, z, overlay)
		require.NoError(t, err)
		expected, err := naive.Predict(x, y, z, overlay)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(expected, got, 1e-12), "overlay=%v", overlay)
	}
}

func TestCompiledDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	x, y, z := randomInputs(r, 50)

	k, err := Default()
	require.NoError(t, err)

	first, err := k.Predict(x, y, z, true)
	require.NoError(t, err)
	second, err := k.Predict(x, y, z, true)
	require.NoError(t, err)
	require.True(t, mat.Equal(first, second))
}

func TestCompiledLengthMismatch(t *testing.T) {
	k, err := Default()
	require.NoError(t, err)

	res, err := k.Predict([]float64{1}, []float64{1, 2}, []float64{1}, false)
	require.Nil(t, res)
	require.True(t, errors.Is(err, kernel.ErrLengthMismatch))
}

func TestCompiledRuntimeError(t *testing.T) {
	k, err := Compile("broken", "function broken(n, x, y, z, factor, out){ return im_not_defined; }", 1)
	require.NoError(t, err)

	_, err = k.Predict([]float64{1}, []float64{1}, []float64{1}, false)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "error while running broken: ReferenceError"), err.Error())

	// the vm must have been released
	_, err = k.Predict([]float64{1}, []float64{1}, []float64{1}, false)
	require.Error(t, err)
}

func TestCompiledConcurrent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	x, y, z := randomInputs(r, 64)

	k, err := Compile("concurrent", Source, 4)
	require.NoError(t, err)

	expected, err := k.Predict(x, y, z, true)
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := k.Predict(x, y, z, true)
			if err != nil {
				errs <- err
			} else if !mat.Equal(expected, got) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
