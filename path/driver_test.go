package path_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnvidarsen/evlink/network"
	"github.com/arnvidarsen/evlink/path"
	"github.com/arnvidarsen/evlink/piecewise"
)

func singlePieceLinear(a, b float64) *piecewise.PiecewiseFunction {
	lp := piecewise.MustLinearPiece(a, b)
	pf, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{lp})
	if err != nil {
		panic(err)
	}
	return pf
}

// ExampleTimesFromTotal ports the doctest in
// original_source/src/python/path.py's get_times:
//
//	get_times(10, [Linear(0,0), Linear(0,2), Linear(1,0), Linear(0,3)]) == [2,1,0,7]
func ExampleTimesFromTotal() {
	ds := []*piecewise.PiecewiseFunction{
		singlePieceLinear(0, 0),
		singlePieceLinear(0, 2),
		singlePieceLinear(1, 0),
		singlePieceLinear(0, 3),
	}
	fmt.Println(path.TimesFromTotal(10, ds))
	// Output: [2 1 0 7]
}

func smallFixture(t *testing.T) *network.Graph {
	t.Helper()
	g, err := network.LoadFixture([]byte(`
capacity: 10
vertices: [A, B, C]
edges:
  - from: A
    to: B
    kind: driving
    tradeoff: {tmin: 2, tmax: 6, a: 5, b: 1, c: 1}
  - from: B
    to: C
    kind: charging
    charging: {ts: [0, 10], ys: [0, 10]}
`))
	require.NoError(t, err)
	return g
}

func TestLinkPathOverFixture(t *testing.T) {
	g := smallFixture(t)
	ds, total, err := path.LinkPath(g, []string{"A", "B", "C"}, nil)
	require.NoError(t, err)
	assert.Len(t, ds, 2)
	assert.NotNil(t, total)
}

func TestLinkPathRejectsShortRoute(t *testing.T) {
	g := smallFixture(t)
	_, _, err := path.LinkPath(g, []string{"A"}, nil)
	assert.ErrorIs(t, err, path.ErrPathTooShort)
}

func TestLinkPathRejectsMissingEdge(t *testing.T) {
	g := smallFixture(t)
	_, _, err := path.LinkPath(g, []string{"A", "C"}, nil)
	assert.ErrorIs(t, err, path.ErrEdgeNotFound)
}

func TestLinkPathsConcurrently(t *testing.T) {
	g := smallFixture(t)
	routes := [][]string{
		{"A", "B", "C"},
		{"A", "B"},
	}
	results, err := path.LinkPathsConcurrently(context.Background(), g, routes, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Len(t, results[0].Ds, 2)
	assert.Len(t, results[1].Ds, 1)
}
