// Package binpack implements the bin packer (C8): an exact DP that packs a
// multiset of coarsened component sizes into bins of capacity OptCapacity,
// followed by expansion of the coarse sizes to true component weights and
// first-fit packing of the "small" components excluded from the exact DP.
//
// The three operations — PackPerfect, ExpandPacking, PackFirstFit — mirror
// a single Packer's lifecycle: a caller runs them in that order against
// the same instance, accumulating bins as it goes.
package binpack
