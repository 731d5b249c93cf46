package sizebound_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffpart/rational"
	"github.com/katalvlaran/ffpart/sizebound"
)

func eps(num, denom int64) rational.Rat {
	r, err := rational.FromInts(num, denom)
	if err != nil {
		panic(err)
	}

	return r
}

func TestCompute_UniformWeightsEps1Over2(t *testing.T) {
	b, err := sizebound.Compute(eps(1, 2), 100, 6)
	require.NoError(t, err)
	require.Equal(t, []int{9, 13, 20, 26}, b.Upper)
	require.Equal(t, []int{1, 9, 13, 20}, b.Lower)
}

func TestCompute_Eps3Over10(t *testing.T) {
	b, err := sizebound.Compute(eps(3, 10), 81, 9)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5, 6, 8, 11, 12}, b.Upper)
	require.Equal(t, []int{1, 3, 4, 5, 6, 8, 11}, b.Lower)
}

func TestCompute_InvalidParams(t *testing.T) {
	_, err := sizebound.Compute(eps(1, 2), 0, 6)
	require.ErrorIs(t, err, sizebound.ErrInvalidParams)

	_, err = sizebound.Compute(eps(1, 2), 10, 1)
	require.ErrorIs(t, err, sizebound.ErrInvalidParams)

	_, err = sizebound.Compute(eps(0, 1), 10, 2)
	require.ErrorIs(t, err, sizebound.ErrInvalidParams)
}

// TestCompute_Monotone checks property 1 from the specification: Upper and
// Lower are strictly increasing, Lower[0]==1, Lower[i]==Upper[i-1], and the
// last Upper entry strictly exceeds (1+eps)*ceil(n/k).
func TestCompute_Monotone(t *testing.T) {
	cases := []struct {
		num, denom int64
		n, k       int
	}{
		{1, 2, 100, 6},
		{3, 10, 81, 9},
		{1, 1, 17, 4},
		{1, 100, 1000, 7},
	}
	for _, c := range cases {
		b, err := sizebound.Compute(eps(c.num, c.denom), c.n, c.k)
		require.NoError(t, err)
		require.Equal(t, 1, b.Lower[0])
		require.Equal(t, len(b.Upper), len(b.Lower))
		for i := 1; i < b.Len(); i++ {
			require.Greater(t, b.Upper[i], b.Upper[i-1])
			require.Greater(t, b.Lower[i], b.Lower[i-1])
			require.Equal(t, b.Upper[i-1], b.Lower[i])
		}

		m := (c.n + c.k - 1) / c.k
		e := eps(c.num, c.denom)
		limit := rational.One().Add(e).Mul(rational.FromInt(int64(m)))
		lastUpper := rational.FromInt(int64(b.Upper[b.Len()-1]))
		require.Equal(t, 1, lastUpper.Cmp(limit))
	}
}

func TestBounds_CoordOfAndSmall(t *testing.T) {
	b, err := sizebound.Compute(eps(1, 2), 100, 6)
	require.NoError(t, err)

	require.True(t, b.Small(1))
	require.True(t, b.Small(8))
	require.False(t, b.Small(9))

	require.Equal(t, 1, b.CoordOf(9))
	require.Equal(t, 1, b.CoordOf(12))
	require.Equal(t, 2, b.CoordOf(13))
	require.Equal(t, 3, b.CoordOf(25))
}
