package backend

import (
	"github.com/evilsocket/predict/kernel"

	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/floats"
)

// vectorized evaluates a whole time step column per iteration: x^2 and
// y - 2z are computed once and every column is derived from them.
type vectorized struct {
}

func (impl vectorized) Name() string {
	return "gonum"
}

func (impl vectorized) Space() uint64 {
	return memory.TotalMemory()
}

func (impl vectorized) Predict(x, y, z []float64, factor float64) *kernel.Result {
	n := len(x)
	res := kernel.NewResult(n)
	if n == 0 {
		return res
	}

	sq := make([]float64, n)
	floats.MulTo(sq, x, x)

	base := make([]float64, n)
	floats.AddScaledTo(base, y, -2, z)

	col := make([]float64, n)
	dense := res.Dense()
	for t := 0; t < kernel.Steps; t++ {
		ft := float64(t)
		floats.AddScaledTo(col, base, ft, sq)
		floats.AddConst(-2*ft, col)
		floats.Scale(factor, col)
		dense.SetCol(t, col)
	}

	return res
}
