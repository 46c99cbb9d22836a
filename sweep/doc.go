// Package sweep iterates tangent-line extrapolation over a range of step
// offsets from a base point.
//
// A sweep starts at offset h = 0 and visits a fixed number of offsets in
// strictly increasing order, advancing h by the step size after each step.
// The offset is accumulated by repeated addition rather than recomputed as
// a multiple, so positions carry the same accumulated rounding the classic
// q1 tool produces.
//
// Each step yields a Row pairing the tangent-line approximation with the
// directly evaluated value at the same position. Rows stream through an
// emit callback; Collect gathers them into a slice for the analysis
// package.
package sweep
