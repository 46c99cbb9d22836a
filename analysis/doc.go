// Package analysis quantifies how tangent-line extrapolation error scales
// with the step offset.
//
// The sweep package produces rows pairing an approximation with the directly
// evaluated value at the same position. This package fits candidate scaling
// laws to the signed error column of those rows and ranks the fits, turning
// a printed table into the statement the demo is actually making: the error
// of the asymmetric tangent-line estimate grows with the square of the
// offset.
//
// # Key Features
//
//   - **Multiple Law Types**: Fits linear, quadratic, and cubic laws in h
//   - **Automatic Law Selection**: Ranks fits by R² and exposes the best one
//   - **Through-Origin Fitting**: Exploits error(0) = 0, pinning the intercept
//   - **Distribution Summaries**: Count, extremes, mean, standard deviation
//
// # Usage
//
// Fit every law over a collected sweep:
//
//	rows, err := sweep.Collect(q, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := analysis.Analyze(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit) // quadratic law for any true quadratic
//
// Restrict the candidate laws:
//
//	result, err := analysis.Analyze(rows, analysis.WithLaws(analysis.LawTypeQuadratic))
//
// Summarize the error distribution:
//
//	summary, err := analysis.Summarize(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean=%.3g stddev=%.3g\n", summary.Mean, summary.StdDev)
//
// # Law Types
//
// Each candidate law relates the signed error e to the offset h through one
// coefficient:
//
//   - **Linear**: e = k*h
//   - **Quadratic**: e = k*h² (the law a quadratic curve actually follows)
//   - **Cubic**: e = k*h³
//
// For rows swept from f(x) = A·x² + B·x + C the quadratic law recovers
// k = -A with R² = 1 up to floating-point rounding, because the estimate
// misses the true value by exactly -A·h² in exact arithmetic.
package analysis
