// Package bench compares the execution strategies of the predictor on random
// inputs of growing size and reports how long each of them takes.
package bench
