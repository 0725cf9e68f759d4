// Package internal holds the numeric building blocks shared by the curve and
// surface code: knot vectors, basis functions, homogeneous points and a dense
// linear solver.
package internal

const (
	// Epsilon is the tolerance for knot comparisons and vanishing lengths.
	Epsilon = 1e-10

	// Tolerance is the looser tolerance used for geometric tests on input data.
	Tolerance = 1e-6
)
