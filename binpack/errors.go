package binpack

import "errors"

// ErrInfeasiblePerfectPack indicates PackPerfect exhausted its layer bound
// without reducing the residual multiset to zero. The caller (the
// partition driver) treats this as a signal to discard the candidate
// signature and try the next cheapest one, not as a hard failure.
var ErrInfeasiblePerfectPack = errors.New("binpack: no perfect packing found within layer bound")

// ErrExpansionMismatch indicates ExpandPacking was given a size mapping
// whose list for some coarse size holds fewer true sizes than there are
// tokens of that size in the packed bins. Lists longer than needed are
// not reported; their unused entries are ignored.
var ErrExpansionMismatch = errors.New("binpack: expansion size mapping exhausted")
