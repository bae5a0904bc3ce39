package consumption

import "errors"

// ErrUnhandledCase signals the linker reached a piece combination outside
// the enumerated cases — a spec bug, never silenced (spec §7).
var ErrUnhandledCase = errors.New("consumption: unhandled link case")
