package binpack

import (
	"fmt"
	"sort"
)

// layerEntry records, for one key K' reached at a DP layer, the
// predecessor key K at the previous layer that produced it by removing
// one bin's worth of components.
type layerEntry struct {
	k    vec
	pred vec
}

// PackPerfect packs components (a map of component size to count) exactly
// into bins of OptCapacity, using the brute-force signature DP from spec
// §4.7: enumerate every maximal single-bin packing, then run a
// residual-reduction DP over those bin choices until the residual
// multiset reaches zero. Appends the resulting bins to p's existing bins.
//
// Returns ErrInfeasiblePerfectPack if the residual never reaches zero
// within p.LayerBound bins.
func (p *Packer) PackPerfect(components map[int64]int64) error {
	if len(components) == 0 {
		return nil
	}

	sizes := make([]int64, 0, len(components))
	for s := range components {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	counts := make(vec, len(sizes))
	for i, s := range sizes {
		counts[i] = components[s]
	}

	binSignatures := calculateBinSignatures(sizes, counts, p.OptCapacity)

	layers := []map[string]layerEntry{
		{counts.key(): {k: counts, pred: counts}},
	}

	done := false
	for len(layers) <= p.LayerBound && !done {
		prev := layers[len(layers)-1]
		curr := make(map[string]layerEntry)

		prevKeys := make([]string, 0, len(prev))
		for k := range prev {
			prevKeys = append(prevKeys, k)
		}
		sort.Strings(prevKeys)

	outer:
		for _, pk := range prevKeys {
			K := prev[pk].k
			for _, B := range binSignatures {
				Kp := K.sub(B)
				kpKey := Kp.key()
				if _, exists := curr[kpKey]; !exists {
					curr[kpKey] = layerEntry{k: Kp, pred: K}
				}
				if Kp.isZero() {
					done = true

					break outer
				}
			}
		}

		layers = append(layers, curr)
	}

	if !done {
		return fmt.Errorf("%w: exceeded %d layers", ErrInfeasiblePerfectPack, p.LayerBound)
	}

	zero := make(vec, len(sizes)).key()
	curr := zero
	for binIdx := len(layers) - 1; binIdx > 0; binIdx-- {
		entry, ok := layers[binIdx][curr]
		if !ok {
			return fmt.Errorf("%w: reconstruction lost key at layer %d", ErrInfeasiblePerfectPack, binIdx)
		}

		binSig := make(vec, len(sizes))
		for i := range binSig {
			binSig[i] = entry.pred[i] - entry.k[i]
		}

		var bin []int64
		for idx, cnt := range binSig {
			for c := int64(0); c < cnt; c++ {
				bin = append(bin, sizes[idx])
			}
		}
		p.bins = append(p.bins, bin)

		curr = entry.pred.key()
	}

	return nil
}
