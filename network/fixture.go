package network

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arnvidarsen/evlink/charging"
	"github.com/arnvidarsen/evlink/consumption"
)

// fixtureSpec is the on-disk YAML shape for a small road-network fixture,
// used by this package's and path's tests/examples rather than by any
// production code path.
type fixtureSpec struct {
	Capacity float64         `yaml:"capacity"`
	Vertices []string        `yaml:"vertices"`
	Edges    []fixtureEdge   `yaml:"edges"`
}

type fixtureEdge struct {
	From     string             `yaml:"from"`
	To       string             `yaml:"to"`
	Kind     string             `yaml:"kind"` // "driving" or "charging"
	Tradeoff *fixtureTradeoff   `yaml:"tradeoff"`
	Charging *fixtureChargeFunc `yaml:"charging"`
}

type fixtureTradeoff struct {
	TMin float64 `yaml:"tmin"`
	TMax float64 `yaml:"tmax"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	C    float64 `yaml:"c"`
}

type fixtureChargeFunc struct {
	Ts []float64 `yaml:"ts"`
	Ys []float64 `yaml:"ys"`
}

// LoadFixture parses a YAML road-network description into a Graph. It
// exists for tests and example programs to build small networks tersely;
// production callers are expected to construct a Graph programmatically.
func LoadFixture(data []byte) (*Graph, error) {
	var spec fixtureSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("network: parsing fixture: %w", err)
	}

	g := NewGraph(WithCapacity(spec.Capacity))
	for _, v := range spec.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}

	for _, e := range spec.Edges {
		switch e.Kind {
		case "driving":
			if e.Tradeoff == nil {
				return nil, fmt.Errorf("network: edge %s->%s: driving edge missing tradeoff", e.From, e.To)
			}
			tf, err := consumption.NewTradeoff(e.Tradeoff.TMin, e.Tradeoff.TMax, e.Tradeoff.A, e.Tradeoff.B, e.Tradeoff.C)
			if err != nil {
				return nil, err
			}
			if err := g.AddDrivingEdge(e.From, e.To, tf); err != nil {
				return nil, err
			}
		case "charging":
			if e.Charging == nil {
				return nil, fmt.Errorf("network: edge %s->%s: charging edge missing charging curve", e.From, e.To)
			}
			cf, err := charging.NewFunction(e.Charging.Ts, e.Charging.Ys, spec.Capacity)
			if err != nil {
				return nil, err
			}
			if err := g.AddChargingEdge(e.From, e.To, cf); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("network: edge %s->%s: unknown kind %q", e.From, e.To, e.Kind)
		}
	}

	return g, nil
}
