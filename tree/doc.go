// Package tree builds and represents the rooted, ordered, level-indexed
// tree that the cut-phase DP (package cut) runs over.
//
// A Tree is pointer-free: nodes live in per-level slices and refer to each
// other by index (ParentIdx) and contiguous child ranges
// ([ChildFirst, ChildLast)), not by pointer. This keeps the structure
// acyclic by construction, makes the bottom-up DP cache-friendly, and lets
// callers release a level's data once it has been consumed.
//
// Build performs a single BFS from a chosen root over an undirected
// adjacency map, assigning levels, parent indices, sibling flags, and
// child ranges, then computes subtree sizes by upward summation.
//
// Errors:
//
//	ErrMalformedInput - the adjacency is empty, names a root it does not
//	                    contain, is disconnected, or contains a cycle
//	                    relative to the chosen root. A single-node tree is
//	                    accepted.
package tree
