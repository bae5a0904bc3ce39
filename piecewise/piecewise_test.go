package piecewise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnvidarsen/evlink/piecewise"
)

func mustLinear(t *testing.T, a, b float64) piecewise.LinearPiece {
	t.Helper()
	lp, err := piecewise.NewLinearPiece(a, b)
	require.NoError(t, err)
	return lp
}

// TestPiecewiseEval_FlatConsumption mirrors spec §8 scenario 1:
// f = LinearPiece(0, 5) on [0, ∞).
func TestPiecewiseEval_FlatConsumption(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{mustLinear(t, 0, 5)})
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Eval(0))
	assert.Equal(t, 5.0, f.Eval(1000))
}

// TestPiecewiseEval_SlackConsumption mirrors original_source's
// test_lin_lin_better_linking fixture: f(5) == 0, f(0) == 5, f(10) == 0.
func TestPiecewiseEval_SlackConsumption(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction(
		[]float64{0, 5},
		[]piecewise.SubFunction{mustLinear(t, -1, 5), mustLinear(t, 0, 0)},
	)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Eval(0))
	assert.Equal(t, 0.0, f.Eval(5))
	assert.Equal(t, 0.0, f.Eval(10))
}

func TestShiftThenUnshift(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction(
		[]float64{0, 5},
		[]piecewise.SubFunction{mustLinear(t, -1, 5), mustLinear(t, 0, 0)},
	)
	require.NoError(t, err)

	shifted, err := piecewise.Shift(f, 3)
	require.NoError(t, err)
	unshifted, err := piecewise.Shift(shifted, -3)
	require.NoError(t, err)

	for _, x := range []float64{0, 2, 5, 8} {
		assert.InDelta(t, f.Eval(x), unshifted.Eval(x), 1e-9)
	}
}

func TestMultiplyThenUnmultiply(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{mustLinear(t, 2, 3)})
	require.NoError(t, err)

	scaled, err := piecewise.Multiply(f, 4)
	require.NoError(t, err)
	restored, err := piecewise.Multiply(scaled, 1.0/4.0)
	require.NoError(t, err)

	for _, x := range []float64{0, 1, 10} {
		assert.InDelta(t, f.Eval(x), restored.Eval(x), 1e-9)
	}
}

func TestClipDropsLeftOfX0(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction(
		[]float64{0, 5, 10},
		[]piecewise.SubFunction{mustLinear(t, 0, 1), mustLinear(t, 0, 2), mustLinear(t, 0, 3)},
	)
	require.NoError(t, err)

	clipped, ok := piecewise.Clip(f, 6)
	require.True(t, ok)
	assert.Equal(t, 2.0, clipped.Eval(6))
	assert.Equal(t, 3.0, clipped.Eval(11))

	// The last piece extends to +∞, so clipping past every breakpoint
	// still leaves it.
	_, ok = piecewise.Clip(f, 1000)
	assert.True(t, ok)
}

func TestInvertPiecewiseLinearAscending(t *testing.T) {
	// Charging-ramp shaped: (0,0) -> (10,10), plateau at 10.
	pieces, err := piecewise.FromBreakpoints([]float64{0, 10}, []float64{0, 10})
	require.NoError(t, err)
	subs := []piecewise.SubFunction{pieces[0]}
	cf, err := piecewise.NewPiecewiseFunction([]float64{0, 10}, subs)
	require.NoError(t, err)

	inv, err := piecewise.InvertPiecewiseLinear(cf)
	require.NoError(t, err)
	assert.InDelta(t, 5, inv.Eval(5), 1e-9)
}

func TestCompactRoundTrip(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction(
		[]float64{0, 2, 6},
		[]piecewise.SubFunction{
			mustLinear(t, 0, math.Inf(1)),
			func() piecewise.SubFunction { hp, e := piecewise.NewHypLinPiece(5, 1, 1, 0); require.NoError(t, e); return hp }(),
			mustLinear(t, 0, 1.2),
		},
	)
	require.NoError(t, err)

	text := piecewise.Compact(f)
	parsed, err := piecewise.ParseCompact(text)
	require.NoError(t, err)

	for _, x := range []float64{3, 4, 6, 10} {
		assert.InDelta(t, f.Eval(x), parsed.Eval(x), 1e-9)
	}
}
