package sweep

import (
	"fmt"
	"math"

	"github.com/numlab/quadex/curve"
	"github.com/numlab/quadex/errs"
	"github.com/numlab/quadex/internal/options"
)

const (
	// DefaultSteps is the number of offsets a sweep visits.
	DefaultSteps = 1000

	// DefaultStepSize is the amount added to the offset after each step.
	DefaultStepSize = 0.001
)

// Row is the outcome of a single sweep step.
type Row struct {
	// Offset is the displacement h from the base point, starting at 0.
	Offset float64
	// Position is base + Offset, the point both values below describe.
	Position float64
	// Approximation is the tangent-line estimate of f at Position.
	Approximation float64
	// Actual is f evaluated directly at Position.
	Actual float64
	// Error is Actual - Approximation.
	Error float64
}

// Config holds the sweep iteration parameters.
type Config struct {
	Steps    int
	StepSize float64
}

// defaultConfig returns the classic q1 parameters: 1000 steps of 0.001.
func defaultConfig() Config {
	return Config{
		Steps:    DefaultSteps,
		StepSize: DefaultStepSize,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSteps sets the number of offsets to visit. n must be at least 1.
func WithSteps(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidStepCount, n)
		}
		cfg.Steps = n

		return nil
	}
}

// WithStepSize sets the offset increment. s must be positive and finite.
func WithStepSize(s float64) Option {
	return func(cfg *Config) error {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidStepSize, s)
		}
		cfg.StepSize = s

		return nil
	}
}

// Run sweeps q from the base point, calling emit once per step in strictly
// increasing offset order. The first step observes h = 0, where the
// approximation equals the direct evaluation exactly; after each step the
// offset advances by the configured step size.
//
// An error returned by emit aborts the sweep and is returned unchanged.
func Run(q curve.Quadratic, base float64, emit func(Row) error, opts ...Option) error {
	if emit == nil {
		return errs.ErrNilEmit
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	h := 0.0
	for i := 0; i < cfg.Steps; i++ {
		position := base + h

		row := Row{
			Offset:        h,
			Position:      position,
			Approximation: q.Extrapolate(base, h),
			Actual:        q.Eval(position),
		}
		row.Error = row.Actual - row.Approximation

		if err := emit(row); err != nil {
			return err
		}

		h += cfg.StepSize
	}

	return nil
}

// Collect runs a sweep and returns every row it produced.
func Collect(q curve.Quadratic, base float64, opts ...Option) ([]Row, error) {
	rows := make([]Row, 0, DefaultSteps)
	err := Run(q, base, func(row Row) error {
		rows = append(rows, row)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
