package envelope

import (
	"github.com/rs/zerolog"

	"github.com/arnvidarsen/evlink/scalar"
)

// Options bundles the sweep's tunables: the shared ε (spec §3's single
// process-wide knob) and an optional debug sink.
type Options struct {
	Epsilon float64
	Logger  zerolog.Logger
}

// Option mutates Options in place.
type Option func(*Options)

// DefaultOptions returns ε = scalar.DefaultEpsilon and a no-op logger.
func DefaultOptions() Options {
	return Options{Epsilon: scalar.DefaultEpsilon, Logger: zerolog.Nop()}
}

// WithEpsilon overrides the tolerance for this sweep only.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger attaches a structured debug sink. The sweep never logs above
// Debug level — it is a library, not a service (spec §6: no CLI).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) scalarOpts() []scalar.Option {
	return []scalar.Option{scalar.WithEpsilon(o.Epsilon)}
}
