// Package ffpart is the partition driver (C9): it wires the size-bound
// table, the cut-phase DP and its backtracker, the component extractor,
// and the bin packer into the single Feldmann–Foschini tree-partitioning
// call described by the specification's §4.8 algorithm.
//
// Partition and PartitionWithDetails take an already-built tree.Tree, a
// target part count k, and an imbalance ratio ε; PartitionFromRequest
// additionally builds the tree and derives ε from a config.PartitionRequest
// for callers that read partition parameters from YAML.
//
// The driver retries: C5 yields every root signature cheap enough to be a
// candidate realization of the partition, and the driver pops them from a
// min-heap keyed by cut cost, cheapest first, discarding any candidate
// whose coarse packing needs more than k bins (either in the exact
// perfect-packing phase or after expansion and first-fit). It fails with
// ErrInfeasible only once every candidate has been discarded.
package ffpart
