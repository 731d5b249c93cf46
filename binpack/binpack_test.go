package binpack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffpart/binpack"
)

func totalSize(bins [][]int64) int64 {
	var total int64
	for _, bin := range bins {
		for _, s := range bin {
			total += s
		}
	}

	return total
}

func TestPackPerfect_ExactFit(t *testing.T) {
	// Four components of size 3 fit exactly two bins of capacity 6.
	p := binpack.NewPacker(6, 6, 0)
	err := p.PackPerfect(map[int64]int64{3: 4})
	require.NoError(t, err)
	require.Equal(t, 2, p.BinCount())
	require.Equal(t, int64(12), totalSize(p.Bins()))
	for _, bin := range p.Bins() {
		var sum int64
		for _, s := range bin {
			sum += s
		}
		require.LessOrEqual(t, sum, int64(6))
	}
}

func TestPackPerfect_MixedSizes(t *testing.T) {
	// Sizes 2 and 3, capacity 5: two bins of {2,3} each pack perfectly.
	p := binpack.NewPacker(5, 5, 0)
	err := p.PackPerfect(map[int64]int64{2: 2, 3: 2})
	require.NoError(t, err)
	require.Equal(t, 2, p.BinCount())
	require.Equal(t, int64(10), totalSize(p.Bins()))
}

func TestPackPerfect_SingleComponent(t *testing.T) {
	p := binpack.NewPacker(10, 10, 0)
	err := p.PackPerfect(map[int64]int64{7: 1})
	require.NoError(t, err)
	require.Equal(t, 1, p.BinCount())
	require.Equal(t, []int64{7}, p.Bins()[0])
}

func TestPackPerfect_Empty(t *testing.T) {
	p := binpack.NewPacker(10, 10, 0)
	err := p.PackPerfect(map[int64]int64{})
	require.NoError(t, err)
	require.Equal(t, 0, p.BinCount())
}

func TestExpandPacking_SubstitutesTrueSizes(t *testing.T) {
	p := binpack.NewPacker(6, 6, 0)
	require.NoError(t, p.PackPerfect(map[int64]int64{3: 2}))
	require.Equal(t, 1, p.BinCount())

	err := p.ExpandPacking(map[int64][]int64{3: {5, 4}})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{4, 5}, p.Bins()[0])
}

func TestExpandPacking_MismatchErrors(t *testing.T) {
	p := binpack.NewPacker(6, 6, 0)
	require.NoError(t, p.PackPerfect(map[int64]int64{3: 2}))

	err := p.ExpandPacking(map[int64][]int64{3: {5}})
	require.ErrorIs(t, err, binpack.ErrExpansionMismatch)
}

func TestPackFirstFit_OpensNewBinWhenNoneFits(t *testing.T) {
	p := binpack.NewPacker(10, 10, 0)
	p.PackFirstFit(map[int64]int64{4: 3})
	require.Equal(t, 2, p.BinCount())
	require.Equal(t, int64(12), totalSize(p.Bins()))
	for _, bin := range p.Bins() {
		var sum int64
		for _, s := range bin {
			sum += s
		}
		require.LessOrEqual(t, sum, int64(10))
	}
}

func TestPackFirstFit_FillsExistingBinsFirst(t *testing.T) {
	p := binpack.NewPacker(10, 10, 0)
	p.PackFirstFit(map[int64]int64{6: 1})
	require.Equal(t, 1, p.BinCount())

	p.PackFirstFit(map[int64]int64{3: 1})
	require.Equal(t, 1, p.BinCount())
	require.ElementsMatch(t, []int64{6, 3}, p.Bins()[0])
}

func TestPackPerfect_InfeasibleWithinLayerBound(t *testing.T) {
	// Capacity 1 cannot hold even a single component of size 2; with a
	// layer bound of 1, the residual never reaches zero.
	p := binpack.NewPacker(1, 1, 1)
	err := p.PackPerfect(map[int64]int64{2: 1})
	require.ErrorIs(t, err, binpack.ErrInfeasiblePerfectPack)
}
