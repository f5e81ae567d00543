/*
Package kernel contains the quantity predictor formula shared by every execution strategy:

	value(i, t) = t * x[i]^2 + y[i] - 2*z[i] - 2*t

evaluated for each input element i and for each of the Steps discrete time steps, then
scaled by Factor(overlay).

The package only holds the formula, its constants, input validation and the Result
matrix; the strategies evaluating it live in the backend, compiler and lazy packages.
*/
package kernel
