package analysis

import "fmt"

// Fit represents one fitted scaling law with its quality metrics.
//
// Fields:
//   - Law: The law family (linear, quadratic, cubic)
//   - Coefficient: The fitted proportionality constant k
//   - RSquared: Coefficient of determination (higher is better)
//   - RMSE: Root mean square error of the residuals (lower is better)
//   - Formula: Human-readable representation of the fitted law
type Fit struct {
	// Law is the law family this fit belongs to.
	Law LawType
	// Coefficient is the fitted proportionality constant.
	Coefficient float64
	// RSquared is the coefficient of determination (goodness of fit).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the fitted law.
	Formula string
}

// String returns a string representation of the fit.
func (f *Fit) String() string {
	return fmt.Sprintf("Fit{Law: %s, R²: %.4f, RMSE: %.6f, Formula: %s}",
		f.Law, f.RSquared, f.RMSE, f.Formula)
}

// Result represents the outcome of an error-law analysis.
//
// Fields:
//   - BestFit: The fit with the highest R² value (automatically selected)
//   - Fits: All candidate fits ranked by R² (best first)
type Result struct {
	// BestFit is the best fit (highest R²).
	BestFit *Fit
	// Fits contains all candidate fits ranked by R² (best first).
	Fits []*Fit
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalFits: %d}", r.BestFit, len(r.Fits))
}

// Summary describes the distribution of the signed error column of a sweep.
type Summary struct {
	// Count is the number of rows summarized.
	Count int
	// Min is the most negative error observed.
	Min float64
	// Max is the most positive error observed.
	Max float64
	// Mean is the arithmetic mean of the signed errors.
	Mean float64
	// StdDev is the sample standard deviation of the signed errors.
	StdDev float64
	// MeanAbs is the mean of the absolute errors.
	MeanAbs float64
}

// String returns a string representation of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{Count: %d, Min: %.6g, Max: %.6g, Mean: %.6g, StdDev: %.6g, MeanAbs: %.6g}",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.MeanAbs)
}
