package envelope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnvidarsen/evlink/envelope"
	"github.com/arnvidarsen/evlink/piecewise"
)

func lin(t *testing.T, a, b float64) piecewise.SubFunction {
	t.Helper()
	lp, err := piecewise.NewLinearPiece(a, b)
	require.NoError(t, err)
	return lp
}

func hyp(t *testing.T, a, b, c, d float64) piecewise.SubFunction {
	t.Helper()
	hp, err := piecewise.NewHypLinPiece(a, b, c, d)
	require.NoError(t, err)
	return hp
}

// TestSweepEnvelopeRegression1 ports
// original_source/test/python/envelop.py's test_envelop_regression_1: a
// hand-crafted bag of 9 intervals whose lower envelope is known exactly.
// Only the value function (the 4th tuple element in the Python fixture)
// drives the sweep; the witness function carried alongside it is
// irrelevant to the envelope itself.
func TestSweepEnvelopeRegression1(t *testing.T) {
	inf := math.Inf(1)
	candidates := []envelope.Candidate{
		{XMin: 5, XMax: 10, Sub: hyp(t, 4, 4, 0, 0)},
		{XMin: 10, XMax: inf, Sub: lin(t, 0, 0.1111111111111111)},
		{XMin: 7.7132710668902229, XMax: 9.5699066003353366, Sub: lin(t, -0.15625, 1.4952979063023975)},
		{XMin: 9.5699066003353366, XMax: inf, Sub: lin(t, -0.0, 0.0)},
		{XMin: 5, XMax: 9.7999999999999972, Sub: lin(t, -0.3125, 5.562499999999999)},
		{XMin: 9.7999999999999972, XMax: 25.799999999999997, Sub: lin(t, -0.15625, 4.03125)},
		{XMin: 25.799999999999997, XMax: inf, Sub: lin(t, -0.0, 0.0)},
		{XMin: 10, XMax: 10.711111111111109, Sub: lin(t, -0.15625, 1.6736111111111107)},
		{XMin: 10.711111111111109, XMax: inf, Sub: lin(t, -0.0, 0.0)},
	}

	pieces, err := envelope.Sweep(candidates)
	require.NoError(t, err)

	type want struct {
		lo, hi float64
		idx    int
	}
	reference := []want{
		{5, 7.713271066890223, 0},
		{25.08888888888889, 25.799999999999997, 3},
		{7.713271217579087, 9.569906600335337, 2},
		{7.713271066890223, 7.713271217579087, 2},
		{9.799999999999997, 10, 3},
		{10, 10.711111111111109, 3},
		{9.569906600335337, 9.799999999999997, 3},
		{25.799999999999997, math.Inf(1), 3},
		{10.711111111111109, 25.08888888888889, 3},
	}

	assert.Len(t, pieces, len(reference))
	for _, w := range reference {
		found := false
		for _, p := range pieces {
			if approxEqual(p.XMin, w.lo) && approxEqual(p.XMax, w.hi) && p.Index == w.idx {
				found = true
				break
			}
		}
		assert.Truef(t, found, "missing reference piece (%v,%v,%d)", w.lo, w.hi, w.idx)
	}
}

// TestSweepEnvelopeRegression2 ports
// original_source/test/python/envelop.py's test_envelop_regression_2: a
// second hand-crafted bag of 16 overlapping intervals, several sharing
// identical (or near-identical, within floating slop) boundaries, whose
// lower envelope is known exactly.
func TestSweepEnvelopeRegression2(t *testing.T) {
	inf := math.Inf(1)
	candidates := []envelope.Candidate{
		{XMin: 5.0000000000000018, XMax: inf, Sub: lin(t, 0, 6.999999999999986)},
		{XMin: 6.5999999999999996, XMax: inf, Sub: lin(t, 0, 3.5917159763313613)},
		{XMin: 6.5999999999999996, XMax: 7.7132710668902229, Sub: hyp(t, 4, 4, 3.0, 0)},
		{XMin: 7.7132710668902229, XMax: inf, Sub: lin(t, 0, 3.2900993021007987)},
		{XMin: 7.71327115864805, XMax: inf, Sub: lin(t, 0, 3.290099287763639)},
		{XMin: 7.71327115864805, XMax: 9.0, Sub: lin(t, -0.15625, 4.495297906302397)},
		{XMin: 9.0, XMax: inf, Sub: lin(t, 0, 3.0890479063023966)},
		{XMin: 9.0, XMax: 14.6, Sub: lin(t, -0.15625, 4.495297906302397)},
		{XMin: 14.6, XMax: inf, Sub: lin(t, 0, 2.2140479063023966)},
		{XMin: 14.6, XMax: 16.776, Sub: lin(t, -0.15625, 4.495297906302397)},
		{XMin: 16.776, XMax: inf, Sub: lin(t, 0, 1.8740479063023967)},
		{XMin: 16.776, XMax: 22.369906600335334, Sub: lin(t, -0.15625, 4.495297906302397)},
		{XMin: 22.369906600335334, XMax: inf, Sub: lin(t, 0, 1.0000000000000009)},
		{XMin: 22.369906600335334, XMax: inf, Sub: lin(t, 0, 1.0)},
		{XMin: 22.823999999999998, XMax: inf, Sub: lin(t, 0, 1.0)},
		{XMin: 30.600000000000001, XMax: inf, Sub: lin(t, 0, 1.0)},
	}

	pieces, err := envelope.Sweep(candidates)
	require.NoError(t, err)

	type want struct {
		lo, hi float64
		idx    int
	}
	reference := []want{
		{14.6, 16.776, 9},
		{16.776, 22.369906600335334, 11},
		{30.6, math.Inf(1), 12},
		{6.6, 7.713271066890223, 2},
		{22.823999999999998, 30.6, 12},
		{9.0, 14.6, 7},
		{22.369906600335334, 22.823999999999998, 12},
		{5.000000000000002, 6.6, 0},
		{7.713271066890223, 9.0, 5},
	}

	assert.Len(t, pieces, len(reference))
	for _, w := range reference {
		found := false
		for _, p := range pieces {
			if approxEqual(p.XMin, w.lo) && approxEqual(p.XMax, w.hi) && p.Index == w.idx {
				found = true
				break
			}
		}
		assert.Truef(t, found, "missing reference piece (%v,%v,%d)", w.lo, w.hi, w.idx)
	}
}

func approxEqual(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) < 1e-6
}

func TestSweepRejectsDegenerateCandidate(t *testing.T) {
	_, err := envelope.Sweep([]envelope.Candidate{
		{XMin: 0, XMax: 1e-10, Sub: lin(t, 0, 1)},
	})
	assert.ErrorIs(t, err, envelope.ErrDegenerate)
}

func TestSweepRejectsInfeasibleLeftEndpoint(t *testing.T) {
	_, err := envelope.Sweep([]envelope.Candidate{
		{XMin: 0, XMax: 5, Sub: lin(t, 0, math.Inf(1))},
	})
	assert.ErrorIs(t, err, envelope.ErrDegenerate)
}
