package binpack

import (
	"strconv"
	"strings"
)

// DefaultLayerBound caps the number of bins PackPerfect's partial-packing
// DP will open before giving up as infeasible. It is generous relative to
// any realistic k: a correct candidate signature never needs more than
// roughly n layers.
const DefaultLayerBound = 1 << 16

// Packer accumulates bins under two capacities: OptCapacity bounds the
// exact perfect-packing DP, ApproxCapacity bounds the looser
// expand-and-first-fit phase that follows it.
type Packer struct {
	OptCapacity    int64
	ApproxCapacity int64
	LayerBound     int

	bins [][]int64
}

// NewPacker returns a Packer with the given capacities. A non-positive
// layerBound is replaced with DefaultLayerBound.
func NewPacker(optCapacity, approxCapacity int64, layerBound int) *Packer {
	if layerBound <= 0 {
		layerBound = DefaultLayerBound
	}

	return &Packer{OptCapacity: optCapacity, ApproxCapacity: approxCapacity, LayerBound: layerBound}
}

// Bins returns the current packing: one slice of component sizes per bin.
func (p *Packer) Bins() [][]int64 { return p.bins }

// BinCount returns the number of bins currently open.
func (p *Packer) BinCount() int { return len(p.bins) }

// vec is a fixed-length count vector over a fixed, shared ordering of
// distinct component sizes — the "bin signature" / "packing signature" of
// the original algorithm.
type vec []int64

func (v vec) clone() vec {
	out := make(vec, len(v))
	copy(out, v)

	return out
}

func (v vec) isZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// sub returns max(v-o, 0) coordinate-wise.
func (v vec) sub(o vec) vec {
	out := make(vec, len(v))
	for i := range v {
		d := v[i] - o[i]
		if d < 0 {
			d = 0
		}
		out[i] = d
	}

	return out
}

// key renders v as a map key; vec is never compared across different
// sizes slices, so a plain delimited encoding is sufficient.
func (v vec) key() string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(x, 10))
	}

	return b.String()
}

// less gives vec a total order so map iteration over vecs can be sorted
// into a deterministic sequence.
func (v vec) less(o vec) bool {
	for i := range v {
		if v[i] != o[i] {
			return v[i] < o[i]
		}
	}

	return false
}
