package scalar_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnvidarsen/evlink/scalar"
)

// TestCubicRealRoots_ThreeRoots mirrors the first doctest of
// original_source/src/python/utils.py: deg3_real_roots(1, 0, -15, -4).
func TestCubicRealRoots_ThreeRoots(t *testing.T) {
	roots, err := scalar.CubicRealRoots(1, 0, -15, -4)
	assert.NoError(t, err)
	assert.Len(t, roots, 3)

	sort.Float64s(roots)
	want := []float64{-3.7320508075688785, -0.26794919243112153, 4.0}
	sort.Float64s(want)
	for i := range want {
		assert.InDelta(t, want[i], roots[i], 1e-9)
	}
}

// TestCubicRealRoots_SingleRoot mirrors deg3_real_roots(1, -9, 27, -27) = [3.0].
func TestCubicRealRoots_SingleRoot(t *testing.T) {
	roots, err := scalar.CubicRealRoots(1, -9, 27, -27)
	assert.NoError(t, err)
	assert.Len(t, roots, 1)
	assert.InDelta(t, 3.0, roots[0], 1e-9)
}

func TestCubicRealRoots_InvalidLeadingCoefficient(t *testing.T) {
	_, err := scalar.CubicRealRoots(0, 1, 2, 3)
	assert.ErrorIs(t, err, scalar.ErrInvalidCoefficient)
}

func TestIntersect(t *testing.T) {
	iv := scalar.Intersect(scalar.Interval{Lo: 0, Hi: 10}, scalar.Interval{Lo: 5, Hi: 20})
	assert.Equal(t, scalar.Interval{Lo: 5, Hi: 10}, iv)
	assert.False(t, iv.Empty())

	disjoint := scalar.Intersect(scalar.Interval{Lo: 0, Hi: 1}, scalar.Interval{Lo: 5, Hi: 6})
	assert.True(t, disjoint.Empty())
}

func TestMonotonicity(t *testing.T) {
	asc, dsc := scalar.Monotonicity([]float64{1, 2, 2, 3})
	assert.True(t, asc)
	assert.False(t, dsc)

	asc, dsc = scalar.Monotonicity([]float64{5, 5, 5})
	assert.True(t, asc)
	assert.True(t, dsc)

	asc, dsc = scalar.Monotonicity([]float64{1, 3, 2})
	assert.False(t, asc)
	assert.False(t, dsc)
}
