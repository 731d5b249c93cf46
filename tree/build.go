package tree

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// bfsRecord is the raw, pre-finalized form of a node discovered during BFS:
// its level-above parent index is known immediately, but its own child
// range is only known once the next level has been fully expanded.
type bfsRecord struct {
	id               int
	parentEdgeWeight int64
	parentIdx        int
}

// Build performs a single BFS over the undirected adjacency map adj,
// rooted at root (or, if root is nil, at the smallest node id present),
// and returns the resulting level-indexed Tree.
//
// adj is expected to be symmetric (adj[u][v] == adj[v][u] for every tree
// edge) and to describe a connected, acyclic graph spanning every id that
// appears either as a key of adj or as a key of some adj[u]. Build fails
// with ErrMalformedInput when not every id is reachable from the root or
// the adjacency lists do not hold exactly 2(n-1) entries in total. It does
// not compare adj[u][v] with adj[v][u]; a node's ParentEdgeWeight is read
// from its parent's list.
func Build(adj map[int]map[int]int64, root *int) (*Tree, error) {
	ids := collectIDs(adj)
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty adjacency", ErrMalformedInput)
	}

	idToInternal := make(map[int]int, n)
	for i, id := range ids {
		idToInternal[id] = i
	}

	rootID := ids[0]
	if root != nil {
		if _, ok := idToInternal[*root]; !ok {
			return nil, fmt.Errorf("%w: root id %d not present", ErrMalformedInput, *root)
		}
		rootID = *root
	}

	visited := bitset.New(uint(n))
	visited.Set(uint(idToInternal[rootID]))
	visitedCount := 1

	rawLevels := [][]bfsRecord{{{id: rootID, parentEdgeWeight: 0, parentIdx: -1}}}

	for l := 0; l < len(rawLevels); l++ {
		var next []bfsRecord
		for idx, rec := range rawLevels[l] {
			neighbors := sortedNeighbors(adj[rec.id])
			for _, nb := range neighbors {
				ii, ok := idToInternal[nb.id]
				if !ok {
					return nil, fmt.Errorf("%w: neighbor %d of %d has no reverse entry", ErrMalformedInput, nb.id, rec.id)
				}
				if visited.Test(uint(ii)) {
					continue
				}
				visited.Set(uint(ii))
				visitedCount++
				next = append(next, bfsRecord{id: nb.id, parentEdgeWeight: nb.weight, parentIdx: idx})
			}
		}
		if len(next) > 0 {
			rawLevels = append(rawLevels, next)
		}
	}

	if visitedCount != n {
		return nil, fmt.Errorf("%w: graph is disconnected (%d/%d nodes reachable from root %d)", ErrMalformedInput, visitedCount, n, rootID)
	}

	edgeCount := 0
	for _, nbrs := range adj {
		edgeCount += len(nbrs)
	}
	if edgeCount%2 != 0 || edgeCount/2 != n-1 {
		return nil, fmt.Errorf("%w: adjacency is not acyclic (edge count %d, expected %d)", ErrMalformedInput, edgeCount/2, n-1)
	}

	levels := finalizeLevels(rawLevels)
	treeSizes := computeTreeSizes(levels)

	return &Tree{Levels: levels, TreeSizes: treeSizes}, nil
}

type weightedNeighbor struct {
	id     int
	weight int64
}

// sortedNeighbors returns m's entries ordered by neighbor id, so BFS
// expansion (and therefore the resulting left-to-right sibling order) is
// deterministic regardless of Go's randomized map iteration.
func sortedNeighbors(m map[int]int64) []weightedNeighbor {
	out := make([]weightedNeighbor, 0, len(m))
	for id, w := range m {
		out = append(out, weightedNeighbor{id: id, weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// collectIDs returns every node id mentioned by adj (as a key or as a
// neighbor), sorted ascending for deterministic root selection.
func collectIDs(adj map[int]map[int]int64) []int {
	seen := make(map[int]struct{})
	for u, nbrs := range adj {
		seen[u] = struct{}{}
		for v := range nbrs {
			seen[v] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// finalizeLevels converts raw BFS records (which only know their parent)
// into Node records with resolved child ranges and sibling flags. Because
// rawLevels[l+1] was built by scanning rawLevels[l] left to right and
// appending each node's children contiguously, children of the same
// parent are already contiguous in rawLevels[l+1]; finalizeLevels only
// needs to find each parent's first/last child index.
func finalizeLevels(rawLevels [][]bfsRecord) [][]Node {
	levels := make([][]Node, len(rawLevels))
	for l, raw := range rawLevels {
		nodes := make([]Node, len(raw))
		var childFirst, childLast []int
		if l+1 < len(rawLevels) {
			childFirst = make([]int, len(raw))
			childLast = make([]int, len(raw))
			childIdx := 0
			for idx := range raw {
				childFirst[idx] = childIdx
				for childIdx < len(rawLevels[l+1]) && rawLevels[l+1][childIdx].parentIdx == idx {
					childIdx++
				}
				childLast[idx] = childIdx
			}
		}
		for idx, rec := range raw {
			n := Node{
				ID:               rec.id,
				ParentEdgeWeight: rec.parentEdgeWeight,
				ParentIdx:        rec.parentIdx,
			}
			if childFirst != nil {
				n.ChildFirst, n.ChildLast = childFirst[idx], childLast[idx]
			}
			if idx > 0 {
				n.HasLeftSibling = raw[idx-1].parentIdx == rec.parentIdx
			}
			nodes[idx] = n
		}
		levels[l] = nodes
	}

	return levels
}

// computeTreeSizes sums subtree sizes bottom-up: leaves have size 1,
// internal nodes have 1 plus the sum of their children's sizes.
func computeTreeSizes(levels [][]Node) [][]int {
	sizes := make([][]int, len(levels))
	for l := len(levels) - 1; l >= 0; l-- {
		sizes[l] = make([]int, len(levels[l]))
		for idx, n := range levels[l] {
			if n.IsLeaf() {
				sizes[l][idx] = 1
				continue
			}
			total := 1
			for c := n.ChildFirst; c < n.ChildLast; c++ {
				total += sizes[l+1][c]
			}
			sizes[l][idx] = total
		}
	}

	return sizes
}
