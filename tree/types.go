package tree

// Node is one pointer-free record in a Tree's level-indexed representation.
//
// ParentIdx indexes into the level directly above this node's level (it is
// meaningless, and left at -1, for the root). ChildFirst/ChildLast is a
// right-exclusive, contiguous range of indices into the level directly
// below this node's level; an empty range (ChildFirst==ChildLast) means
// the node is a leaf.
type Node struct {
	// ID is the stable external identifier of this node.
	ID int

	// ParentEdgeWeight is the weight of the edge to this node's parent.
	// It is 0 (and unused) at the root.
	ParentEdgeWeight int64

	// ParentIdx indexes the parent in the level above. -1 at the root.
	ParentIdx int

	// ChildFirst, ChildLast describe a right-exclusive index range into
	// the level below.
	ChildFirst int
	ChildLast  int

	// HasLeftSibling is true iff the immediately preceding node in this
	// node's level shares the same parent.
	HasLeftSibling bool
}

// IsLeaf reports whether this node has no children.
func (n Node) IsLeaf() bool { return n.ChildFirst == n.ChildLast }

// Tree is a rooted, ordered, level-indexed tree built by Build.
//
// Levels[0] holds exactly the root. TreeSizes[l][i] is the number of
// vertices in the subtree rooted at Levels[l][i].
type Tree struct {
	Levels    [][]Node
	TreeSizes [][]int
}

// N returns the total number of nodes in the tree.
func (t *Tree) N() int {
	if len(t.TreeSizes) == 0 {
		return 0
	}

	return t.TreeSizes[0][0]
}

// Depth returns the number of levels in the tree (1 for a single-node tree).
func (t *Tree) Depth() int { return len(t.Levels) }

// Root returns the tree's single root node.
func (t *Tree) Root() Node { return t.Levels[0][0] }

// Children returns the index range of v's children within the level below
// v's own level.
func (t *Tree) Children(v Node) (first, last int) {
	return v.ChildFirst, v.ChildLast
}

// SubtreeSize returns the number of vertices in the subtree rooted at
// Levels[level][idx].
func (t *Tree) SubtreeSize(level, idx int) int {
	return t.TreeSizes[level][idx]
}
