package charging

import "errors"

var (
	// ErrUnhandledCase signals the linker reached a piece combination
	// outside the enumerated cases — a spec bug, never silenced (spec §7).
	ErrUnhandledCase = errors.New("charging: unhandled link case")

	// ErrInvalidChargingFunction is returned when a charging curve's
	// endpoints don't satisfy ys[0] == 0 and ys[last] == M (spec §3).
	ErrInvalidChargingFunction = errors.New("charging: curve must start at 0 and end at capacity M")
)
