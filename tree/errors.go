package tree

import "errors"

// ErrMalformedInput indicates the adjacency map passed to Build does not
// describe a connected, acyclic, undirected tree of at least one node
// relative to the chosen root.
var ErrMalformedInput = errors.New("tree: malformed input")
