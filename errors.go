package ffpart

import "errors"

// ErrInfeasible indicates the root-signature heap was exhausted without
// ever finding a packing that fits within k bins: the given (tree, k, ε)
// admits no partitioning.
var ErrInfeasible = errors.New("ffpart: no feasible partition exists for the given k and eps")
