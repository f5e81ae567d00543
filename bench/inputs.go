package bench

import (
	"math/rand"
)

// Inputs generates size random elements: x integers in [0, maxX), y and z
// uniform in [0, 1).
func Inputs(r *rand.Rand, size, maxX int) (x, y, z []float64) {
	x = make([]float64, size)
	y = make([]float64, size)
	z = make([]float64, size)
	for i := 0; i < size; i++ {
		x[i] = float64(r.Intn(maxX))
		y[i] = r.Float64()
		z[i] = r.Float64()
	}
	return
}
