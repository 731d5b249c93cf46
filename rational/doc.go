// Package rational provides exact rational arithmetic confined to the
// boundary computation of component-size bounds (see package sizebound).
//
// Rat wraps math/big.Rat rather than reinventing a numerator/denominator
// pair by hand: the size-bound recurrence multiplies (1+ε) by itself
// repeatedly, and only an arbitrary-precision rational keeps that product
// free of drift for pathological ε (e.g. ε with a large denominator). No
// package in the retrieval pack implements rational arithmetic, so this
// is the one place in the module that reaches past it, onto the standard
// library.
//
// Everything past C2 (size-bound table) is integer arithmetic; Rat is not
// used anywhere in the cut-phase DP, the backtracker, or the packer.
package rational
