// Package component implements the component extractor (C7): given a
// tree.Tree and a cut.CutEdges set, it reconstructs the list of connected
// components the cuts leave behind, each a set of node ids with a total
// weight.
package component
