package binpack

import "sort"

// sigTotal pairs a partial bin signature with the total size it has
// accumulated so far, so calculateBinSignatures can prune against
// capacity without re-summing on every step.
type sigTotal struct {
	sig   vec
	total int64
}

// calculateBinSignatures enumerates every maximally-filled way to pack a
// single bin of the given capacity from sizes (with per-size availability
// counts), per spec §4.7 step 1: sweep each size's count from 0 up to its
// total availability, keeping only combinations within capacity, then
// discard any combination to which even the smallest still-available size
// could still be added without exceeding capacity.
func calculateBinSignatures(sizes []int64, counts vec, capacity int64) []vec {
	old := map[string]sigTotal{make(vec, len(counts)).key(): {sig: make(vec, len(counts)), total: 0}}

	for idx := range sizes {
		next := make(map[string]sigTotal)
		for _, ot := range old {
			for cnt := int64(0); cnt <= counts[idx]; cnt++ {
				newSig := ot.sig.clone()
				newSig[idx] += cnt
				newTotal := ot.total + cnt*sizes[idx]
				if newTotal <= capacity {
					next[newSig.key()] = sigTotal{sig: newSig, total: newTotal}
				}
			}
		}
		old = next
	}

	var out []vec
	for _, ot := range old {
		fullyPacked := true
		for idx := range counts {
			if ot.sig[idx] < counts[idx] && sizes[idx] <= capacity-ot.total {
				fullyPacked = false

				break
			}
		}
		if fullyPacked {
			out = append(out, ot.sig)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}
