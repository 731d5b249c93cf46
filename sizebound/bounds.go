package sizebound

import (
	"fmt"

	"github.com/katalvlaran/ffpart/rational"
)

// maxIterations caps the geometric-growth loop in Compute as a defensive
// bound: for any ε>0 the loop terminates in O(log_{1+ε}(1/ε)) steps, so this
// cap is never reached by valid input and only guards against a future
// arithmetic regression.
const maxIterations = 1 << 20

// Bounds holds the two size-class sequences derived by Compute: Upper[i] is
// exclusive, Lower[i] is inclusive, and coordinate i covers component sizes
// in [Lower[i], Upper[i]). Upper is strictly increasing. Lower is strictly
// increasing too, except when ε·ceil(n/k) <= 1: then Upper[0] is 1,
// coordinate 0 covers the empty range [1,1), and Lower[0] == Lower[1] == 1.
type Bounds struct {
	Upper []int
	Lower []int
}

// Len reports the number of signature coordinates (L in spec terms).
func (b Bounds) Len() int { return len(b.Upper) }

// CoordOf returns the unique coordinate i such that Lower[i] <= size < Upper[i].
// It panics if size >= Upper[len-1], since the caller (package cut) must
// have already rejected such a size as violating the hard upper bound.
func (b Bounds) CoordOf(size int) int {
	for i, u := range b.Upper {
		if size < u {
			return i
		}
	}

	panic(fmt.Sprintf("sizebound: size %d has no coordinate (upper bound %d)", size, b.Upper[len(b.Upper)-1]))
}

// Small reports whether size is below the smallest size class (Upper[0]),
// i.e. whether it must be packed via first-fit rather than the exact
// perfect-packing DP.
func (b Bounds) Small(size int) bool {
	return size < b.Upper[0]
}

// Compute derives Bounds from ε (n/k)-relative imbalance, node count n, and
// part count k, following the recurrence:
//
//	m = ceil(n/k)
//	cur = ε·m
//	while cur < (1+ε)·m: append ceil(cur) to Upper unless it equals the
//	    last entry; cur *= (1+ε)
//	append floor((1+ε)·m)+1 as the sentinel last entry of Upper, unless the
//	    last ceil(cur) already equals it
//	Lower = [1, Upper[0], Upper[1], ..., Upper[len-2]]
func Compute(eps rational.Rat, n, k int) (Bounds, error) {
	if n < 1 || k < 2 || eps.Sign() <= 0 {
		return Bounds{}, fmt.Errorf("%w: n=%d k=%d eps=%s", ErrInvalidParams, n, k, eps.String())
	}

	m := (n + k - 1) / k // ceil(n/k)
	mRat := rational.FromInt(int64(m))
	onePlusEps := rational.One().Add(eps)
	limit := onePlusEps.Mul(mRat)

	cur := eps.Mul(mRat)

	var upper []int
	for i := 0; cur.Cmp(limit) < 0; i++ {
		if i >= maxIterations {
			return Bounds{}, fmt.Errorf("sizebound: geometric growth did not converge for eps=%s", eps.String())
		}
		if c := cur.CeilInt(); len(upper) == 0 || c > upper[len(upper)-1] {
			upper = append(upper, c)
		}
		cur = cur.Mul(onePlusEps)
	}
	if sentinel := limit.FloorInt() + 1; sentinel > upper[len(upper)-1] {
		upper = append(upper, sentinel)
	}

	lower := make([]int, len(upper))
	lower[0] = 1
	for i := 1; i < len(upper); i++ {
		lower[i] = upper[i-1]
	}

	return Bounds{Upper: upper, Lower: lower}, nil
}
