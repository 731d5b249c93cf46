package rational_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ffpart/rational"
)

func TestFromInts_ZeroDenominator(t *testing.T) {
	_, err := rational.FromInts(1, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestArithmetic(t *testing.T) {
	half, err := rational.FromInts(1, 2)
	require.NoError(t, err)
	third, err := rational.FromInts(1, 3)
	require.NoError(t, err)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Sub(third).String())
	require.Equal(t, "1/6", half.Mul(third).String())
	require.Equal(t, "3/2", half.Div(third).String())
}

func TestCmpAndSign(t *testing.T) {
	half, _ := rational.FromInts(1, 2)
	third, _ := rational.FromInts(1, 3)

	require.Equal(t, 1, half.Cmp(third))
	require.Equal(t, -1, third.Cmp(half))
	require.Equal(t, 0, half.Cmp(half))
	require.Equal(t, 1, half.Sign())
	require.Equal(t, 0, rational.Zero().Sign())
}

func TestFloorCeil(t *testing.T) {
	r, _ := rational.FromInts(7, 2) // 3.5
	require.Equal(t, 3, r.FloorInt())
	require.Equal(t, 4, r.CeilInt())

	exact := rational.FromInt(4)
	require.Equal(t, 4, exact.FloorInt())
	require.Equal(t, 4, exact.CeilInt())
}
