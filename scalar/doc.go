// Package scalar provides the numeric primitives shared by every other
// package in this module: a single process-wide tolerance, real-root
// extraction for depressed cubics, interval intersection, and monotonicity
// testing.
//
// Every other package accepts a variadic []Option built on this package's
// Options/Option/DefaultOptions functional-options triple, so that a single
// call to WithEpsilon tightens or loosens every ε-comparison in the engine
// at once (spec: "ε is a single knob").
package scalar
