// Package lazy implements deferred evaluation of the predictor kernel: a Task
// records the inputs and the eager strategy to use, and nothing is evaluated
// until Compute is called.
package lazy
