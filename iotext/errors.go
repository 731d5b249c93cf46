package iotext

import "errors"

// ErrMalformedFixture indicates a tree or signature fixture violated its
// expected line/field shape.
var ErrMalformedFixture = errors.New("iotext: malformed input")
