package kernel

import (
	"gonum.org/v1/gonum/mat"
)

// Result is the rows x Steps matrix produced by the predictor, stored row major.
// It implements mat.Matrix so it can be used directly with gonum.
type Result struct {
	rows int
	data []float64
}

// NewResult allocates a zeroed result for the given number of input elements.
func NewResult(rows int) *Result {
	return &Result{
		rows: rows,
		data: make([]float64, rows*Steps),
	}
}

// Dims returns the number of rows (input elements) and columns (time steps).
func (r *Result) Dims() (int, int) {
	return r.rows, Steps
}

// At returns the value for input element i at time step t.
func (r *Result) At(i, t int) float64 {
	if i < 0 || i >= r.rows {
		panic(mat.ErrRowAccess)
	} else if t < 0 || t >= Steps {
		panic(mat.ErrColAccess)
	}
	return r.data[i*Steps+t]
}

// Set stores the value for input element i at time step t.
func (r *Result) Set(i, t int, v float64) {
	if i < 0 || i >= r.rows {
		panic(mat.ErrRowAccess)
	} else if t < 0 || t >= Steps {
		panic(mat.ErrColAccess)
	}
	r.data[i*Steps+t] = v
}

// T returns the implicit transpose of the result.
func (r *Result) T() mat.Matrix {
	return mat.Transpose{Matrix: r}
}

// Row returns a copy of the Steps values of input element i.
func (r *Result) Row(i int) []float64 {
	if i < 0 || i >= r.rows {
		panic(mat.ErrRowAccess)
	}
	row := make([]float64, Steps)
	copy(row, r.data[i*Steps:(i+1)*Steps])
	return row
}

// RawData returns the underlying row major storage, strategies use it to
// fill the result without going through Set.
func (r *Result) RawData() []float64 {
	return r.data
}

// Dense returns a *mat.Dense sharing the result storage, or nil for an empty
// result since gonum can't represent matrices with zero rows.
func (r *Result) Dense() *mat.Dense {
	if r.rows == 0 {
		return nil
	}
	return mat.NewDense(r.rows, Steps, r.data)
}

// CopyRows copies the rows of src into r starting at row offset.
func (r *Result) CopyRows(offset int, src *Result) {
	copy(r.data[offset*Steps:], src.data)
}
