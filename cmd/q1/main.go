// Command q1 prints a tangent-line extrapolation comparison table for a
// quadratic function.
//
// Invocation:
//
//	q1 a b c x
//
// where a, b, and c are the coefficients of f(x) = a·x² + b·x + c and x is
// the base point. The tool walks 1000 step offsets of 0.001 from x and
// prints, for each position x+h, the tangent-line approximation, the
// directly evaluated value, and their difference.
//
// Exit codes: 0 on success, 1 for a wrong argument count, 2 when a is zero.
// Validation messages go to standard output, matching the original tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/numlab/quadex/curve"
	"github.com/numlab/quadex/report"
	"github.com/numlab/quadex/sweep"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run drives the whole program against args and out, returning the process
// exit code. Keeping os.Exit out of here lets tests exercise every path
// in-process.
func run(args []string, out io.Writer) int {
	if len(args) != 4 {
		fmt.Fprint(out, "Invocation: q1 a b c x\n")
		fmt.Fprint(out, "   where a, b, and c are decimal values and a is not 0.\n")

		return 1
	}

	a := atof(args[0])
	b := atof(args[1])
	c := atof(args[2])
	x := atof(args[3])

	q, err := curve.New(a, b, c)
	if err != nil {
		fmt.Fprint(out, "a must not be zero!\n")

		return 2
	}

	w := report.NewWriter(out)
	err = sweep.Run(q, x, func(row sweep.Row) error {
		return w.WriteRow(row.Position, row.Approximation, row.Actual)
	})
	if err != nil {
		// The table stream itself is broken; stdout is no longer usable
		// for reporting, so this one failure goes to stderr.
		fmt.Fprintf(os.Stderr, "q1: %v\n", err)

		return 1
	}

	return 0
}
