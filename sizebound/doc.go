// Package sizebound computes the increasing component-size bound
// sequences (Upper, Lower) used as the coordinate system for
// signatures in package signature and package cut.
//
// Given an imbalance parameter ε, a node count n, and a part count k, it
// derives the sequence of geometrically-growing size classes
// [Lower[i], Upper[i]) that every legal component size falls into exactly
// one of. ε arithmetic is confined here, via package rational; everything
// downstream (cut, binpack) works in plain ints.
//
// Errors:
//
//	ErrInvalidParams - n<1, k<2, or ε<=0.
package sizebound
