package component

import (
	"github.com/katalvlaran/ffpart/cut"
	"github.com/katalvlaran/ffpart/tree"
)

// Extract walks t top-down level by level, starting a new component
// whenever the edge from a node to its child is in cuts, and otherwise
// folding the child into its parent's component. weights supplies each
// node's weight by id; a nil weights (or a missing id) defaults to 1.
func Extract(t *tree.Tree, cuts cut.CutEdges, weights map[int]int64) ([]Component, error) {
	n := t.N()
	if n == 0 {
		return nil, nil
	}

	// compIdx[level][idx] is the component index assigned to that node.
	compIdx := make([][]int, t.Depth())
	for l := range compIdx {
		compIdx[l] = make([]int, len(t.Levels[l]))
	}

	var comps []Component
	newComponent := func() int {
		comps = append(comps, Component{})
		return len(comps) - 1
	}
	addNode := func(idx int, id int) {
		comps[idx].Nodes = append(comps[idx].Nodes, id)
		w := int64(1)
		if weights != nil {
			if ww, ok := weights[id]; ok {
				w = ww
			}
		}
		comps[idx].Weight += w
	}

	root := t.Root()
	rootComp := newComponent()
	compIdx[0][0] = rootComp
	addNode(rootComp, root.ID)

	for l := 0; l < t.Depth()-1; l++ {
		for idx, v := range t.Levels[l] {
			parentComp := compIdx[l][idx]
			for c := v.ChildFirst; c < v.ChildLast; c++ {
				child := t.Levels[l+1][c]
				childComp := parentComp
				if cuts.Has(v.ID, child.ID) {
					childComp = newComponent()
				}
				compIdx[l+1][c] = childComp
				addNode(childComp, child.ID)
			}
		}
	}

	return comps, nil
}
