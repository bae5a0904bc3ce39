package path

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arnvidarsen/evlink/network"
	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// Result bundles one route's LinkPath output.
type Result struct {
	Route []string
	Ds    []*piecewise.PiecewiseFunction
	Total *piecewise.PiecewiseFunction
}

// LinkPathsConcurrently computes LinkPath for every route in parallel at
// task granularity (spec §4.6: "a higher layer may parallelise
// independent path computations"), since routes over a shared read-only
// Graph share no mutable state. If any route fails, it returns the first
// error and no results; routes already started are not cancelled and run
// to completion before it returns.
func LinkPathsConcurrently(ctx context.Context, net *network.Graph, routes [][]string, initialSOC *float64, opts ...scalar.Option) ([]Result, error) {
	results := make([]Result, len(routes))
	g, _ := errgroup.WithContext(ctx)
	for i, route := range routes {
		i, route := i, route
		g.Go(func() error {
			ds, total, err := LinkPath(net, route, initialSOC, opts...)
			if err != nil {
				return err
			}
			results[i] = Result{Route: route, Ds: ds, Total: total}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
