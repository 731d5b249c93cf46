package sizebound

import "errors"

// ErrInvalidParams indicates n<1, k<2, or ε<=0 was passed to Compute.
var ErrInvalidParams = errors.New("sizebound: invalid parameters")
