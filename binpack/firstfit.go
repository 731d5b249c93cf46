package binpack

import "sort"

// PackFirstFit places every size in components (a map of size to count,
// repeated for each count) into the first existing bin with enough
// remaining ApproxCapacity, opening a new bin when none fits. Sizes are
// visited in ascending order for determinism.
func (p *Packer) PackFirstFit(components map[int64]int64) {
	remainingCap := make([]int64, len(p.bins))
	for i, bin := range p.bins {
		var filled int64
		for _, s := range bin {
			filled += s
		}
		remainingCap[i] = p.ApproxCapacity - filled
	}

	sizes := make([]int64, 0, len(components))
	for s := range components {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	for _, size := range sizes {
		for c := int64(0); c < components[size]; c++ {
			placed := false
			for i := range p.bins {
				if size <= remainingCap[i] {
					p.bins[i] = append(p.bins[i], size)
					remainingCap[i] -= size
					placed = true

					break
				}
			}
			if !placed {
				p.bins = append(p.bins, []int64{size})
				remainingCap = append(remainingCap, p.ApproxCapacity-size)
			}
		}
	}
}
