// Package quadex demonstrates the numerical behavior of first-order
// tangent-line extrapolation on quadratic functions.
//
// Given f(x) = a·x² + b·x + c, the classic q1 demo walks a thousand step
// offsets h from a base point x and compares the tangent-line estimate
// against the directly evaluated value at x+h. The estimate deliberately
// pairs the slope at the offset point with the function value at the base
// point,
//
//	estimate = f(x) + h·f'(x+h)
//
// so the error of each row is -a·h² in exact arithmetic, and the printed
// table makes the quadratic growth of that error visible.
//
// # Basic Usage
//
// Printing the comparison table:
//
//	import "github.com/numlab/quadex"
//
//	q, _ := quadex.New(1, 2, 3)
//	checksum, _ := quadex.Tabulate(os.Stdout, q, 5)
//	fmt.Printf("fingerprint: %016x\n", checksum)
//
// Recovering the error scaling law instead of printing:
//
//	result, _ := quadex.Analyze(q, 5)
//	fmt.Println(result.BestFit) // quadratic law, coefficient ≈ -1
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the curve,
// sweep, report, and analysis packages, simplifying the most common use
// cases. For fine-grained control (custom emit callbacks, restricted law
// selections, direct writer access), use those packages directly.
package quadex

import (
	"io"

	"github.com/numlab/quadex/analysis"
	"github.com/numlab/quadex/curve"
	"github.com/numlab/quadex/report"
	"github.com/numlab/quadex/sweep"
)

// New creates the quadratic f(x) = a·x² + b·x + c.
//
// It returns errs.ErrZeroLeadingCoeff when a is exactly zero, since the
// curve would degenerate to a line.
func New(a, b, c float64) (curve.Quadratic, error) {
	return curve.New(a, b, c)
}

// Tabulate sweeps q from the base point and prints the full comparison
// table to w, returning the xxhash fingerprint of the emitted bytes.
//
// With no options the table matches the classic q1 output: a two-line
// header followed by 1000 rows stepping the offset by 0.001.
func Tabulate(w io.Writer, q curve.Quadratic, base float64, opts ...sweep.Option) (uint64, error) {
	rw := report.NewWriter(w)
	err := sweep.Run(q, base, func(row sweep.Row) error {
		return rw.WriteRow(row.Position, row.Approximation, row.Actual)
	}, opts...)
	if err != nil {
		return 0, err
	}

	return rw.Checksum(), nil
}

// Analyze sweeps q from the base point and fits the candidate error
// scaling laws over the collected rows.
func Analyze(q curve.Quadratic, base float64, opts ...sweep.Option) (*analysis.Result, error) {
	rows, err := sweep.Collect(q, base, opts...)
	if err != nil {
		return nil, err
	}

	return analysis.Analyze(rows)
}
