package curve

import (
	"fmt"

	"github.com/numlab/quadex/errs"
)

// Quadratic is a degree-2 polynomial f(x) = A·x² + B·x + C.
//
// The zero value is not a valid quadratic (A would be zero); use New to
// validate coefficients up front. The struct is a small value type and is
// meant to be copied freely.
type Quadratic struct {
	A float64
	B float64
	C float64
}

// New returns the quadratic with the given coefficients.
//
// The leading coefficient is compared against zero exactly rather than
// within a tolerance: a == 0.0 degenerates the curve to a line and returns
// errs.ErrZeroLeadingCoeff, while arbitrarily small non-zero values are
// accepted as-is.
func New(a, b, c float64) (Quadratic, error) {
	if a == 0 {
		return Quadratic{}, errs.ErrZeroLeadingCoeff
	}

	return Quadratic{A: a, B: b, C: c}, nil
}

// Eval returns f(p) evaluated in Horner form: (A·p + B)·p + C.
func (q Quadratic) Eval(p float64) float64 {
	return (q.A*p+q.B)*p + q.C
}

// Slope returns the derivative f'(p) = 2·A·p + B. The constant term never
// influences the slope.
func (q Quadratic) Slope(p float64) float64 {
	return 2*q.A*p + q.B
}

// Extrapolate estimates f(x + h) from the tangent line, pairing the slope
// sampled at the offset point x+h with the function value sampled at the
// base point x:
//
//	estimate = f(x) + h·f'(x+h)
//
// The asymmetric sampling is part of the contract (see the package
// documentation); callers that want the textbook tangent line anchored at
// x can compute Eval(x) + h*Slope(x) instead.
func (q Quadratic) Extrapolate(x, h float64) float64 {
	return q.Eval(x) + h*q.Slope(x+h)
}

// Vertex returns the coordinates of the parabola's turning point,
// (-B/(2A), f(-B/(2A))).
func (q Quadratic) Vertex() (x, y float64) {
	x = -q.B / (2 * q.A)

	return x, q.Eval(x)
}

// Discriminant returns B² - 4AC. It is positive when the quadratic has two
// distinct real roots, zero for a double root, and negative when the roots
// are complex.
func (q Quadratic) Discriminant() float64 {
	return q.B*q.B - 4*q.A*q.C
}

// String returns a human-readable formula for the quadratic.
func (q Quadratic) String() string {
	return fmt.Sprintf("f(x) = %.3f*x² + %.3f*x + %.3f", q.A, q.B, q.C)
}
