package ffpart

import (
	"github.com/katalvlaran/ffpart/component"
	"github.com/katalvlaran/ffpart/cut"
)

// Result is the full detail behind one Partition call: the winning root
// signature's cut cost and edges, the components those edges produce,
// and the final per-part node assignment.
type Result struct {
	CutCost    int64
	CutEdges   cut.CutEdges
	Components []component.Component
	Assignment [][]int
}
