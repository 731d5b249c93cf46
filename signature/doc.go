// Package signature defines the Signature value type — a fixed-length
// histogram of component-size-class counts — and Map, the per-node
// mapping from (frontier size, signature) to minimum cut cost that the
// cut-phase DP (package cut) builds bottom-up.
//
// Signature is compared and hashed by its coordinates, never by pointer
// identity: two Signatures with equal coordinates must be Equal and must
// Hash to the same value, since Map buckets entries by hash with a linear
// equality scan on collision.
package signature
