// Package report renders extrapolation comparison rows as the fixed-width
// console table produced by the q1 tool, while fingerprinting every emitted
// byte with xxhash so runs can be compared for identity.
//
// # Layout
//
// The table is four right-aligned float columns, widths 7/19/12/10 with 3
// decimals each, preceded exactly once by a two-line header:
//
//	  x + h      approximation    f(x + h)     error
//	------------------------------------------------
//	  5.000             38.000      38.000     0.000
//
// The error column is the directly evaluated value minus the tangent-line
// approximation, so a negative entry means the approximation overshot.
// Values whose error rounds to zero from below print as -0.000; the sign
// carries real information at this precision and is preserved.
package report
