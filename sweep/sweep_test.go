package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numlab/quadex/curve"
	"github.com/numlab/quadex/errs"
)

func mustQuadratic(t *testing.T, a, b, c float64) curve.Quadratic {
	t.Helper()

	q, err := curve.New(a, b, c)
	require.NoError(t, err)

	return q
}

func TestRunDefaults(t *testing.T) {
	q := mustQuadratic(t, 1, 2, 3)

	rows, err := Collect(q, 5)
	require.NoError(t, err)
	require.Len(t, rows, DefaultSteps)

	first := rows[0]
	require.Equal(t, 0.0, first.Offset)
	require.Equal(t, 5.0, first.Position)
	require.Equal(t, first.Actual, first.Approximation, "zero offset estimate must equal the direct value")
	require.Equal(t, 0.0, first.Error)

	// Offsets advance by accumulation: recompute them the same way and
	// expect bit-identical values, not merely close ones.
	h := 0.0
	for i, row := range rows {
		require.Equal(t, h, row.Offset, "row %d offset", i)
		require.Equal(t, 5+h, row.Position, "row %d position", i)
		h += DefaultStepSize
	}

	last := rows[len(rows)-1]
	require.InDelta(t, 0.999, last.Offset, 1e-12)
}

func TestRunOffsetsStrictlyIncreasing(t *testing.T) {
	q := mustQuadratic(t, -2, 1, 0)

	rows, err := Collect(q, 1)
	require.NoError(t, err)

	for i := 1; i < len(rows); i++ {
		require.Greater(t, rows[i].Offset, rows[i-1].Offset)
	}
}

func TestRunAccumulatedOffsetDiffersFromMultiple(t *testing.T) {
	// Repeated addition of 0.001 drifts away from i*0.001 by a few ULPs;
	// the sweep must preserve the accumulated value.
	q := mustQuadratic(t, 1, 0, 0)

	rows, err := Collect(q, 0)
	require.NoError(t, err)

	accumulated := 0.0
	for i := 0; i < 700; i++ {
		accumulated += DefaultStepSize
	}
	require.Equal(t, accumulated, rows[700].Offset)
	require.NotEqual(t, 700*DefaultStepSize, rows[700].Offset)
}

func TestRunRowValues(t *testing.T) {
	q := mustQuadratic(t, 1, 2, 3)

	rows, err := Collect(q, 5, WithSteps(3))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for _, row := range rows {
		require.Equal(t, q.Extrapolate(5, row.Offset), row.Approximation)
		require.Equal(t, q.Eval(row.Position), row.Actual)
		require.Equal(t, row.Actual-row.Approximation, row.Error)
		require.InDelta(t, -q.A*row.Offset*row.Offset, row.Error, 1e-9)
	}
}

func TestRunEmitError(t *testing.T) {
	q := mustQuadratic(t, 1, 0, 0)
	sentinel := errors.New("stop here")

	seen := 0
	err := Run(q, 0, func(Row) error {
		seen++
		if seen == 4 {
			return sentinel
		}

		return nil
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 4, seen, "sweep must stop at the failing step")
}

func TestRunNilEmit(t *testing.T) {
	q := mustQuadratic(t, 1, 0, 0)

	err := Run(q, 0, nil)
	require.ErrorIs(t, err, errs.ErrNilEmit)
}

func TestRunCustomStepParameters(t *testing.T) {
	q := mustQuadratic(t, 2, 0, -1)

	rows, err := Collect(q, 10, WithSteps(10), WithStepSize(0.5))
	require.NoError(t, err)
	require.Len(t, rows, 10)

	// 0.5 is exactly representable, so the offsets land on exact halves.
	for i, row := range rows {
		require.Equal(t, float64(i)*0.5, row.Offset)
	}
	require.Equal(t, 4.5, rows[9].Offset)
}

func TestWithStepsValidation(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{name: "single step", n: 1},
		{name: "default count", n: 1000},
		{name: "zero steps", n: 0, wantErr: true},
		{name: "negative steps", n: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			err := WithSteps(tt.n)(&cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidStepCount)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.n, cfg.Steps)
		})
	}
}

func TestWithStepSizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		s       float64
		wantErr bool
	}{
		{name: "default size", s: 0.001},
		{name: "coarse size", s: 0.5},
		{name: "zero", s: 0, wantErr: true},
		{name: "negative", s: -0.001, wantErr: true},
		{name: "NaN", s: math.NaN(), wantErr: true},
		{name: "positive infinity", s: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			err := WithStepSize(tt.s)(&cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidStepSize)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.s, cfg.StepSize)
		})
	}
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	q := mustQuadratic(t, 1, 0, 0)

	err := Run(q, 0, func(Row) error { return nil }, WithSteps(0))
	require.ErrorIs(t, err, errs.ErrInvalidStepCount)

	_, err = Collect(q, 0, WithStepSize(-1))
	require.ErrorIs(t, err, errs.ErrInvalidStepSize)
}

func TestCollectMatchesRun(t *testing.T) {
	q := mustQuadratic(t, -1.5, 0.25, 2)

	var streamed []Row
	require.NoError(t, Run(q, 2, func(row Row) error {
		streamed = append(streamed, row)

		return nil
	}, WithSteps(50)))

	collected, err := Collect(q, 2, WithSteps(50))
	require.NoError(t, err)
	require.Equal(t, streamed, collected)
}
