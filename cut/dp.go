package cut

import (
	"github.com/katalvlaran/ffpart/signature"
	"github.com/katalvlaran/ffpart/sizebound"
	"github.com/katalvlaran/ffpart/tree"
)

// Run executes the forward cut-phase DP over t and returns only the
// root's signature map: entries at frontier_size == t.N() are the
// candidate root signatures and their minimum cut costs (spec §4.4).
//
// Every level's per-node maps are discarded as soon as the level above
// has finished consuming them, so peak memory is bounded by two adjacent
// levels' worth of signature maps rather than the whole tree's.
func Run(t *tree.Tree, bounds sizebound.Bounds) (*signature.Map, error) {
	n := t.N()
	length := bounds.Len()

	if t.Depth() == 1 {
		// A single-node tree: the root has no children to cut below it,
		// so its only signature is "one component of size n".
		root := signature.NewMap(length)
		i := bounds.CoordOf(n)
		root.Upsert(n, signature.New(length).WithIncrement(i), 0)

		return root, nil
	}

	// levelMaps[l][idx] is node (l,idx)'s own signature map, valid only
	// while level l-1 has not yet finished consuming it.
	levelMaps := make([][]*signature.Map, t.Depth())

	for l := t.Depth() - 1; l >= 1; l-- {
		nodes := t.Levels[l]
		out := make([]*signature.Map, len(nodes))
		for idx, v := range nodes {
			leftSib := signature.EmptyMap(length)
			if v.HasLeftSibling {
				leftSib = out[idx-1]
			}
			lastChild := signature.EmptyMap(length)
			if !v.IsLeaf() {
				lastChild = levelMaps[l+1][v.ChildLast-1]
			}

			nodeMap, err := combine(t.SubtreeSize(l, idx), v.ParentEdgeWeight, bounds, leftSib, lastChild)
			if err != nil {
				return nil, err
			}
			out[idx] = nodeMap
		}
		levelMaps[l] = out

		// Level l+1 has now been fully consumed by level l; release it.
		if l+1 < len(levelMaps) {
			levelMaps[l+1] = nil
		}
	}

	lastChildRoot := signature.EmptyMap(length)
	root := t.Root()
	if !root.IsLeaf() {
		lastChildRoot = levelMaps[1][root.ChildLast-1]
	}

	return finalizeRoot(lastChildRoot, bounds, n)
}

// combine builds node v's own signature map from its left sibling's map
// and its rightmost child's map, per spec §4.4's keep/cut recurrence.
// subtreeSize is v's own subtree size; parentWeight is the weight of the
// edge from v to its parent.
func combine(subtreeSize int, parentWeight int64, bounds sizebound.Bounds, leftSib, lastChild *signature.Map) (*signature.Map, error) {
	length := bounds.Len()
	out := signature.NewMap(length)
	upperBound := bounds.Upper[length-1]

	for _, af := range leftSib.Frontiers() {
		for _, ae := range leftSib.Entries(af) {
			for _, bf := range lastChild.Frontiers() {
				for _, be := range lastChild.Entries(bf) {
					combined := ae.Sig.Add(be.Sig)

					// Case 1: keep the edge (v, parent(v)).
					keepCost, err := addInt64Checked(ae.Cost, be.Cost)
					if err != nil {
						return nil, err
					}
					out.Upsert(af+bf, combined, keepCost)

					// Case 2: cut the edge (v, parent(v)); v's own
					// component seals at size s = subtreeSize - b.
					s := subtreeSize - bf
					if s >= upperBound {
						continue
					}
					i := bounds.CoordOf(s)
					cutCost, err := addInt64Checked(keepCost, parentWeight)
					if err != nil {
						return nil, err
					}
					out.Upsert(af+bf+s, combined.WithIncrement(i), cutCost)
				}
			}
		}
	}

	return out, nil
}

// finalizeRoot folds LastChild(root)'s map into the set of root
// signatures: for each entry (b, sigB, cost), the root's own remaining
// component has size n-b, which is sealed into coordinate i. There is no
// left-sibling combination at the root (it has none) and no edge to cut
// (the root has no parent).
func finalizeRoot(lastChildRoot *signature.Map, bounds sizebound.Bounds, n int) (*signature.Map, error) {
	length := bounds.Len()
	upperBound := bounds.Upper[length-1]
	out := signature.NewMap(length)

	for _, bf := range lastChildRoot.Frontiers() {
		for _, be := range lastChildRoot.Entries(bf) {
			s := n - bf
			if s >= upperBound {
				continue
			}
			i := bounds.CoordOf(s)
			out.Upsert(n, be.Sig.WithIncrement(i), be.Cost)
		}
	}

	return out, nil
}
