// Package curve provides the quadratic polynomial primitives behind quadex:
// evaluation, slope, and first-order tangent-line extrapolation.
//
// # Overview
//
// A Quadratic is a plain value type holding the coefficients of
// f(x) = A·x² + B·x + C. All operations are pure float64 arithmetic with
// IEEE 754 semantics: infinities and NaNs propagate, nothing panics, and
// the same inputs always produce the same bits.
//
// # Extrapolation
//
// Extrapolate estimates f(x+h) from the tangent line, but pairs the slope
// sampled at the offset point x+h with the function value sampled at the
// base point x:
//
//	estimate = f(x) + h·f'(x+h)
//
// This asymmetric pairing is the contract, not an accident. It makes the
// estimate miss the true value by exactly A·h² in exact arithmetic,
//
//	Eval(x+h) - Extrapolate(x, h) = -A·h²
//
// which gives the error a clean scaling law that the analysis package can
// recover from tabulated runs.
//
// # Example
//
//	q, err := curve.New(1, 2, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(q.Eval(5))           // 38
//	fmt.Println(q.Slope(5))          // 12
//	fmt.Println(q.Extrapolate(5, 0)) // 38
package curve
