package component_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffpart/component"
	"github.com/katalvlaran/ffpart/cut"
	"github.com/katalvlaran/ffpart/tree"
)

func nodeIDs(c component.Component) []int {
	out := append([]int(nil), c.Nodes...)
	sort.Ints(out)

	return out
}

func TestExtract_NoCutsYieldsOneComponent(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1},
		2: {1: 1, 3: 1},
		3: {2: 1},
	}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)

	comps, err := component.Extract(tr, make(cut.CutEdges), nil)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, []int{1, 2, 3}, nodeIDs(comps[0]))
	require.Equal(t, int64(3), comps[0].Weight)
}

func TestExtract_SingleCutSplitsChain(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 2},
		2: {1: 2, 3: 5},
		3: {2: 5},
	}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)

	cuts := make(cut.CutEdges)
	// cut.add is unexported; build the same edge via Has's symmetric
	// normalization by constructing the cut set through a Backtrack-style
	// caller is unnecessary here — Extract only reads cuts.Has, so a
	// directly-populated map of the exported Edge type exercises the
	// same path.
	cuts[cut.Edge{U: 1, V: 2}] = struct{}{}

	comps, err := component.Extract(tr, cuts, nil)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	require.Equal(t, []int{1}, nodeIDs(comps[0]))
	require.Equal(t, int64(1), comps[0].Weight)
	require.Equal(t, []int{2, 3}, nodeIDs(comps[1]))
	require.Equal(t, int64(2), comps[1].Weight)
}

func TestExtract_WeightedNodes(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1, 3: 1},
		2: {1: 1},
		3: {1: 1},
	}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)

	cuts := make(cut.CutEdges)
	cuts[cut.Edge{U: 1, V: 2}] = struct{}{}

	weights := map[int]int64{1: 10, 2: 20, 3: 30}
	comps, err := component.Extract(tr, cuts, weights)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	total := int64(0)
	for _, c := range comps {
		total += c.Weight
	}
	require.Equal(t, int64(60), total)
}

func TestExtract_SingleNodeTree(t *testing.T) {
	adj := map[int]map[int]int64{1: {}}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)

	comps, err := component.Extract(tr, make(cut.CutEdges), nil)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, []int{1}, nodeIDs(comps[0]))
}
