// Package cut implements the cut-phase dynamic program (C5) and its
// backtracker (C6): the bottom-up DP over a tree.Tree that computes, for
// every node, the Pareto-optimal set of signatures reachable by cutting a
// subset of edges below that node, and the recovery of a concrete cut-edge
// set realizing a chosen root signature.
//
// Run performs the forward, cost-only pass and returns only the root's
// signature map, freeing every other level's maps as soon as they are no
// longer needed (a level l's maps are read by level l-1 alone, once level
// l-1 has finished building). Backtrack re-runs the DP a second time,
// this time retaining predecessor pointers and pruning any signature that
// is not coordinate-wise <= the target root signature, then walks the
// predecessor chain from the root down to recover the cut edges. This
// trades a second DP pass for not storing predecessors (which would
// double memory) on every candidate.
package cut
