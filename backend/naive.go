package backend

import (
	"github.com/evilsocket/predict/kernel"

	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Predict(x, y, z []float64, factor float64) *kernel.Result {
	res := kernel.NewResult(len(x))
	data := res.RawData()
	for i, xi := range x {
		row := data[i*kernel.Steps : (i+1)*kernel.Steps]
		for t := range row {
			row[t] = factor * kernel.Value(xi, y[i], z[i], t)
		}
	}
	return res
}
