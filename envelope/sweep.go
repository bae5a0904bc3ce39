package envelope

import (
	"fmt"
	"math"
	"sort"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// Candidate is one interval entrant to the sweep: (xmin, xmax, sub). It
// carries no label of its own; an output Piece names its winner by the
// candidate's position in the slice passed to Sweep.
type Candidate struct {
	XMin, XMax float64
	Sub        piecewise.SubFunction
}

// Piece is one output of the sweep: on (XMin, XMax), Index names the
// winning Candidate.
type Piece struct {
	XMin, XMax float64
	Index      int
}

type eventKind int

const (
	eventOpen eventKind = iota
	eventClose
	eventSynthetic
)

type event struct {
	x   float64
	kin eventKind
	idx int
}

// Sweep collapses candidates to their lower envelope (spec §4.3).
func Sweep(candidates []Candidate, opts ...Option) ([]Piece, error) {
	o := resolve(opts...)

	for i, c := range candidates {
		if c.XMax-c.XMin <= o.Epsilon {
			return nil, fmt.Errorf("%w: candidate %d has width <= ε", ErrDegenerate, i)
		}
		if math.IsInf(c.Sub.Eval(c.XMin), 1) {
			return nil, fmt.Errorf("%w: candidate %d is infeasible (+Inf) at its left endpoint", ErrDegenerate, i)
		}
	}

	events := make([]event, 0, 2*len(candidates))
	for i, c := range candidates {
		events = append(events, event{x: c.XMin, kin: eventOpen, idx: i})
		events = append(events, event{x: c.XMax, kin: eventClose, idx: i})
	}
	sortEvents(events)

	active := make(map[int]bool, len(candidates))
	type minPoint struct {
		x   float64
		idx int
	}
	var minima []minPoint

	for len(events) > 0 {
		currentX := events[0].x
		for len(events) > 0 && events[0].x <= currentX+o.Epsilon {
			e := events[0]
			events = events[1:]
			switch e.kin {
			case eventOpen:
				active[e.idx] = true
			case eventClose:
				delete(active, e.idx)
			case eventSynthetic:
				// no-op: its only purpose was forcing a new stop at this x.
			}
		}
		if len(active) == 0 {
			continue
		}

		nextX := math.Inf(1)
		if len(events) > 0 {
			nextX = events[0].x
		}

		type ranked struct {
			y, yNext float64
			idx      int
		}
		order := make([]int, 0, len(active))
		for idx := range active {
			order = append(order, idx)
		}
		// Candidates still tied after both keys keep index order, so the
		// lower index wins.
		sort.Ints(order)
		ranks := make([]ranked, len(order))
		for i, idx := range order {
			ranks[i] = ranked{
				y:     candidates[idx].Sub.Eval(currentX),
				yNext: candidates[idx].Sub.Eval(nextX),
				idx:   idx,
			}
		}
		sort.SliceStable(ranks, func(i, j int) bool {
			yi, yj := scalar.EpsRound(ranks[i].y, scalar.WithEpsilon(o.Epsilon)), scalar.EpsRound(ranks[j].y, scalar.WithEpsilon(o.Epsilon))
			if yi != yj {
				return yi < yj
			}
			yni, ynj := scalar.EpsRound(ranks[i].yNext, scalar.WithEpsilon(o.Epsilon)), scalar.EpsRound(ranks[j].yNext, scalar.WithEpsilon(o.Epsilon))
			return yni < ynj
		})

		minima = append(minima, minPoint{x: currentX, idx: ranks[0].idx})
		o.Logger.Debug().Float64("x", currentX).Int("winner", ranks[0].idx).Int("active", len(active)).Msg("envelope: sweep step")

		for i := 0; i+1 < len(ranks); i++ {
			idx1, idx2 := ranks[i].idx, ranks[i+1].idx
			c1, c2 := candidates[idx1], candidates[idx2]
			iv := scalar.Intersect(
				scalar.Interval{Lo: c1.XMin, Hi: c1.XMax},
				scalar.Interval{Lo: c2.XMin, Hi: c2.XMax},
			)
			lo := math.Max(currentX, iv.Lo)
			if lo >= iv.Hi {
				continue
			}
			xs, err := IntersectFunctions(c1.Sub, c2.Sub, scalar.Interval{Lo: lo, Hi: iv.Hi}, opts...)
			if err != nil {
				return nil, err
			}
			for _, x := range xs {
				events = append(events, event{x: x, kin: eventSynthetic, idx: -1})
			}
		}
		sortEvents(events)
	}

	xs := make([]float64, 0, len(minima)+1)
	idxs := make([]int, 0, len(minima))
	for _, m := range minima {
		xs = append(xs, m.x)
		idxs = append(idxs, m.idx)
	}
	xs = append(xs, math.Inf(1))

	pieces := make([]Piece, len(idxs))
	for i := range idxs {
		pieces[i] = Piece{XMin: xs[i], XMax: xs[i+1], Index: idxs[i]}
	}
	o.Logger.Debug().Int("candidates", len(candidates)).Int("pieces", len(pieces)).Msg("envelope: sweep complete")
	return pieces, nil
}

func sortEvents(events []event) {
	sort.SliceStable(events, func(i, j int) bool { return events[i].x < events[j].x })
}
