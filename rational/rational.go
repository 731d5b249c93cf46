package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrZeroDenominator indicates a rational was constructed with denom == 0.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// Rat is an exact rational number. The zero value is not valid; use
// FromInts or One/Zero.
type Rat struct {
	r *big.Rat
}

// FromInts builds num/denom, reduced to lowest terms.
func FromInts(num, denom int64) (Rat, error) {
	if denom == 0 {
		return Rat{}, fmt.Errorf("%w: %d/%d", ErrZeroDenominator, num, denom)
	}

	return Rat{r: big.NewRat(num, denom)}, nil
}

// Zero returns the rational 0.
func Zero() Rat { return Rat{r: big.NewRat(0, 1)} }

// One returns the rational 1.
func One() Rat { return Rat{r: big.NewRat(1, 1)} }

// FromInt returns the rational n/1.
func FromInt(n int64) Rat { return Rat{r: big.NewRat(n, 1)} }

func (a Rat) checked() *big.Rat {
	if a.r == nil {
		return big.NewRat(0, 1)
	}

	return a.r
}

// Add returns a+b.
func (a Rat) Add(b Rat) Rat {
	return Rat{r: new(big.Rat).Add(a.checked(), b.checked())}
}

// Sub returns a-b.
func (a Rat) Sub(b Rat) Rat {
	return Rat{r: new(big.Rat).Sub(a.checked(), b.checked())}
}

// Mul returns a*b.
func (a Rat) Mul(b Rat) Rat {
	return Rat{r: new(big.Rat).Mul(a.checked(), b.checked())}
}

// Div returns a/b. Panics if b is zero, mirroring math/big.Rat.Inv.
func (a Rat) Div(b Rat) Rat {
	return Rat{r: new(big.Rat).Quo(a.checked(), b.checked())}
}

// Cmp returns -1, 0, or +1 as a is <, ==, or > b.
func (a Rat) Cmp(b Rat) int {
	return a.checked().Cmp(b.checked())
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Rat) Sign() int {
	return a.checked().Sign()
}

// FloorInt returns ⌊a⌋ as an int. Callers are responsible for ensuring the
// value fits in an int (the size-bound computation only ever deals with
// values bounded by n and k, which always does on a 64-bit platform).
func (a Rat) FloorInt() int {
	// big.Int.Div is Euclidean division; with the always-positive
	// denominator of a big.Rat this is floor, for negative a as well.
	q := new(big.Int).Div(a.checked().Num(), a.checked().Denom())
	return int(q.Int64())
}

// CeilInt returns ⌈a⌉ as an int.
func (a Rat) CeilInt() int {
	num, denom := a.checked().Num(), a.checked().Denom()
	q, m := new(big.Int).DivMod(num, denom, new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}

	return int(q.Int64())
}

// String renders a as "num/denom".
func (a Rat) String() string {
	return a.checked().RatString()
}
