package cut

import "errors"

// ErrOverflow indicates cut-cost accumulation would exceed the range of
// int64. A correct caller picks n and edge weights such that
// n * maxEdgeWeight fits comfortably in int64; this is a defensive guard,
// not an expected runtime condition.
var ErrOverflow = errors.New("cut: cost accumulation overflow")

// ErrUnknownSignature indicates Backtrack was asked to recover a target
// root signature that the forward DP never produced.
var ErrUnknownSignature = errors.New("cut: target signature not reachable")
