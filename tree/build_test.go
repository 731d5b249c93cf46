package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffpart/tree"
)

func chain3() map[int]map[int]int64 {
	return map[int]map[int]int64{
		1: {2: 4},
		2: {1: 4, 3: 5},
		3: {2: 5},
	}
}

func TestBuild_Chain3(t *testing.T) {
	root := 2
	tr, err := tree.Build(chain3(), &root)
	require.NoError(t, err)
	require.Equal(t, 3, tr.N())
	require.Equal(t, 2, tr.Depth())
	require.Equal(t, 2, tr.Root().ID)

	// level 1 should hold nodes 1 and 3, each a leaf.
	require.Len(t, tr.Levels[1], 2)
	for _, n := range tr.Levels[1] {
		require.True(t, n.IsLeaf())
	}
}

func TestBuild_DefaultRootIsSmallestID(t *testing.T) {
	tr, err := tree.Build(chain3(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Root().ID)
}

func TestBuild_Star(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1, 3: 1, 4: 100},
		2: {1: 1},
		3: {1: 1},
		4: {1: 100},
	}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)
	require.Equal(t, 4, tr.N())
	require.Equal(t, 2, tr.Depth())
	require.Len(t, tr.Levels[1], 3)
	require.Equal(t, 4, tr.SubtreeSize(0, 0))
}

func TestBuild_Disconnected(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1},
		2: {1: 1},
		3: {4: 1},
		4: {3: 1},
	}
	_, err := tree.Build(adj, nil)
	require.ErrorIs(t, err, tree.ErrMalformedInput)
}

func TestBuild_Cycle(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1, 3: 1},
		2: {1: 1, 3: 1},
		3: {1: 1, 2: 1},
	}
	_, err := tree.Build(adj, nil)
	require.ErrorIs(t, err, tree.ErrMalformedInput)
}

func TestBuild_UnknownRoot(t *testing.T) {
	root := 99
	_, err := tree.Build(chain3(), &root)
	require.ErrorIs(t, err, tree.ErrMalformedInput)
}

func TestBuild_SiblingOrderAndHasLeftSibling(t *testing.T) {
	adj := map[int]map[int]int64{
		1: {2: 1, 3: 1, 4: 1},
		2: {1: 1},
		3: {1: 1},
		4: {1: 1},
	}
	root := 1
	tr, err := tree.Build(adj, &root)
	require.NoError(t, err)
	require.False(t, tr.Levels[1][0].HasLeftSibling)
	require.True(t, tr.Levels[1][1].HasLeftSibling)
	require.True(t, tr.Levels[1][2].HasLeftSibling)
}
