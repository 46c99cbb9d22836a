package analysis

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/numlab/quadex/errs"
	"github.com/numlab/quadex/internal/options"
	"github.com/numlab/quadex/sweep"
)

// Analyze fits every candidate law to the rows' signed error column and
// ranks the fits by R², best first.
//
// Rows with a zero offset contribute nothing to a through-origin fit and
// are tolerated; at least two rows with a non-zero offset are required.
//
// Parameters:
//   - rows: Sweep rows to analyze
//   - opts: Optional configuration, e.g. WithLaws to restrict candidates
//
// Returns:
//   - *Result: Ranked fits with the best one selected
//   - error: errs.ErrNotEnoughRows when the rows cannot support a fit
//
// Example:
//
//	rows, _ := sweep.Collect(q, 5)
//	result, err := analysis.Analyze(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula)
func Analyze(rows []sweep.Row, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	usable := 0
	for _, row := range rows {
		if row.Offset != 0 {
			usable++
		}
	}
	if usable < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows with a non-zero offset, got %d",
			errs.ErrNotEnoughRows, usable)
	}

	fits := make([]*Fit, 0, len(cfg.Laws))
	for _, law := range cfg.Laws {
		fit, ok := fitLaw(law, rows)
		if !ok {
			continue
		}
		fits = append(fits, fit)
	}
	if len(fits) == 0 {
		return nil, fmt.Errorf("%w: no candidate law could be fitted", errs.ErrNotEnoughRows)
	}

	slices.SortFunc(fits, func(a, b *Fit) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit: fits[0],
		Fits:    fits,
	}, nil
}

// Summarize computes distribution statistics over the rows' signed error
// column.
func Summarize(rows []sweep.Row) (Summary, error) {
	if len(rows) == 0 {
		return Summary{}, fmt.Errorf("%w: no rows to summarize", errs.ErrNotEnoughRows)
	}

	observed := make([]float64, len(rows))
	sumAbs := 0.0
	for i, row := range rows {
		observed[i] = row.Error
		sumAbs += math.Abs(row.Error)
	}

	summary := Summary{
		Count:   len(rows),
		Min:     slices.Min(observed),
		Max:     slices.Max(observed),
		Mean:    stat.Mean(observed, nil),
		MeanAbs: sumAbs / float64(len(rows)),
	}
	if len(observed) > 1 {
		summary.StdDev = stat.StdDev(observed, nil)
	}

	return summary, nil
}

// fitLaw performs a through-origin least-squares fit of the signed error
// against h raised to the law's power: k = Σ(u·e) / Σ(u²) with u = h^p.
// The intercept is pinned at zero because the error vanishes identically at
// h = 0. Reports ok = false when the fit is degenerate (all offsets zero).
func fitLaw(law LawType, rows []sweep.Row) (*Fit, bool) {
	var sumUE, sumUU float64
	for _, row := range rows {
		u := law.raise(row.Offset)
		sumUE += u * row.Error
		sumUU += u * u
	}
	if sumUU == 0 {
		return nil, false
	}

	k := sumUE / sumUU

	observed := make([]float64, len(rows))
	predicted := make([]float64, len(rows))
	for i, row := range rows {
		observed[i] = row.Error
		predicted[i] = k * law.raise(row.Offset)
	}

	return &Fit{
		Law:         law,
		Coefficient: k,
		RSquared:    calculateRSquared(observed, predicted),
		RMSE:        calculateRMSE(observed, predicted),
		Formula:     fmt.Sprintf("error = %.4f*%s", k, lawTypeTerms[law]),
	}, true
}

// calculateRSquared calculates the coefficient of determination.
//
// R² = 1 - SS_res/SS_tot measures how much of the error column's variance
// the fitted law explains. A constant observed column has no variance to
// explain and reports 0.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error of the residuals.
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
