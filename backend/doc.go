/*
Package backend provides an abstraction layer to the eager strategies evaluating the predictor kernel, currently implemented:

	- naive (direct evaluation, one cell at a time, no optimizations)
	- gonum (vectorized evaluation, one time step column at a time using gonum/floats)

The compiled and deferred strategies live in the compiler and lazy packages.
*/
package backend
