package envelope

import "errors"

// ErrDegenerate indicates the sweep cannot make progress: a candidate is
// infeasible (+Inf) at its own left endpoint, or has collapsed to
// (near-)zero width.
var ErrDegenerate = errors.New("envelope: cannot make progress on candidate")
