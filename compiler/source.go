package compiler

// DefaultName is the name the built-in kernel source is compiled with.
const DefaultName = "predict"

// Source is the predictor kernel as a script, the function receives the number
// of elements, the three input sequences, the overlay factor and the row major
// output buffer. The `steps` global is defined by the compiler.
const Source = `function predict(n, x, y, z, factor, out) {
	for (var i = 0; i < n; ++i) {
		var xi = x[i], yi = y[i], zi = z[i];
		var row = i * steps;
		for (var t = 0; t < steps; ++t) {
			out[row + t] = factor * (t * (xi * xi) + yi - 2 * zi - 2 * t);
		}
	}
}`
