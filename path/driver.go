package path

import (
	"fmt"

	"github.com/arnvidarsen/evlink/charging"
	"github.com/arnvidarsen/evlink/consumption"
	"github.com/arnvidarsen/evlink/network"
	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// LinkPath folds the consumption and charging linkers over route, a
// sequence of at least two network vertices, starting from initialSOC
// (nil meaning "start fully charged", i.e. at the network's own battery
// capacity). It returns, for every leg, the optimal split/dwell witness
// function and the running total-energy-as-a-function-of-time curve
// after that leg. Grounded on
// original_source/src/python/path.py's link_path.
func LinkPath(net *network.Graph, route []string, initialSOC *float64, opts ...scalar.Option) (ds []*piecewise.PiecewiseFunction, total *piecewise.PiecewiseFunction, err error) {
	if len(route) < 2 {
		return nil, nil, ErrPathTooShort
	}

	m := net.Capacity()
	soc := m
	if initialSOC != nil {
		soc = *initialSOC
	}

	total, err = piecewise.NewPiecewiseFunction(
		[]float64{0},
		[]piecewise.SubFunction{piecewise.MustLinearPiece(m-soc, 0)},
		opts...,
	)
	if err != nil {
		return nil, nil, err
	}

	ds = make([]*piecewise.PiecewiseFunction, 0, len(route)-1)
	for i := 0; i+1 < len(route); i++ {
		u, v := route[i], route[i+1]
		e, ok := net.Edge(u, v)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s -> %s", ErrEdgeNotFound, u, v)
		}

		var d *piecewise.PiecewiseFunction
		switch e.Kind {
		case network.Charging:
			d, total, err = charging.LinkCharging(total, e.Charge, opts...)
		case network.Driving:
			d, total, err = consumption.LinkConsumption(total, e.Consumption, opts...)
		default:
			return nil, nil, ErrUnknownEdgeKind
		}
		if err != nil {
			return nil, nil, fmt.Errorf("path: leg %s -> %s: %w", u, v, err)
		}
		ds = append(ds, d)
	}

	return ds, total, nil
}

// TimesFromTotal decomposes a target total travel time into the time
// spent on each leg, by back-substituting through each leg's witness
// function from the last leg to the first. Grounded on
// original_source/src/python/path.py's get_times.
func TimesFromTotal(totalTime float64, ds []*piecewise.PiecewiseFunction) []float64 {
	ts := make([]float64, 0, len(ds)+1)
	ts = append(ts, totalTime)
	for i := len(ds) - 1; i >= 0; i-- {
		ts = append(ts, ds[i].Eval(ts[len(ts)-1]))
	}
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
	out := make([]float64, len(ts)-1)
	for i := 0; i+1 < len(ts); i++ {
		out[i] = ts[i+1] - ts[i]
	}
	return out
}
