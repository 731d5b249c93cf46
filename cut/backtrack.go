package cut

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ffpart/signature"
	"github.com/katalvlaran/ffpart/sizebound"
	"github.com/katalvlaran/ffpart/tree"
)

// predEntry is a (frontier, signature) -> cost entry augmented with the
// two predecessor entries that produced it, so Backtrack can walk the
// chain back down to the leaves and recover the concrete cut edges.
type predEntry struct {
	sig    signature.Signature
	cost   int64
	aFront int
	aSig   signature.Signature
	bFront int
	bSig   signature.Signature
	wasCut bool
}

// predMap is the predecessor-tracking counterpart of signature.Map, used
// only by the second (backtracking) DP pass.
type predMap struct {
	byFront map[int]map[uint64][]predEntry
}

func newPredMap() *predMap {
	return &predMap{byFront: make(map[int]map[uint64][]predEntry)}
}

// set upserts e into the bucket for frontier, keeping the lower-cost
// entry when one already exists for the same signature.
func (m *predMap) set(frontier int, e predEntry) {
	bucket, ok := m.byFront[frontier]
	if !ok {
		bucket = make(map[uint64][]predEntry)
		m.byFront[frontier] = bucket
	}
	h := e.sig.Hash()
	for i, existing := range bucket[h] {
		if existing.sig.Equal(e.sig) {
			if e.cost < existing.cost {
				bucket[h][i] = e
			}

			return
		}
	}
	bucket[h] = append(bucket[h], e)
}

func (m *predMap) get(frontier int, sig signature.Signature) (predEntry, bool) {
	bucket, ok := m.byFront[frontier]
	if !ok {
		return predEntry{}, false
	}
	for _, e := range bucket[sig.Hash()] {
		if e.sig.Equal(sig) {
			return e, true
		}
	}

	return predEntry{}, false
}

func (m *predMap) frontiers() []int {
	out := make([]int, 0, len(m.byFront))
	for f := range m.byFront {
		out = append(out, f)
	}
	sort.Ints(out)

	return out
}

func (m *predMap) entries(frontier int) []predEntry {
	bucket := m.byFront[frontier]
	out := make([]predEntry, 0, len(bucket))
	for _, es := range bucket {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool {
		for k := range out[i].sig {
			if out[i].sig[k] != out[j].sig[k] {
				return out[i].sig[k] < out[j].sig[k]
			}
		}

		return false
	})

	return out
}

// emptyPredMap is the sentinel predMap for "no left sibling" / "no
// children": the single implicit (frontier=0, signature=0, cost=0) entry,
// with no predecessor of its own (aFront=-1 marks "nothing to recurse
// into").
func emptyPredMap(length int) *predMap {
	m := newPredMap()
	m.set(0, predEntry{sig: signature.New(length), cost: 0, aFront: -1, bFront: -1})

	return m
}

// predCombine mirrors combine() in dp.go, but prunes any signature that
// is not coordinate-wise <= target, and records predecessor pointers
// instead of discarding them.
func predCombine(subtreeSize int, parentWeight int64, bounds sizebound.Bounds, leftSib, lastChild *predMap, target signature.Signature) (*predMap, error) {
	upperBound := bounds.Upper[bounds.Len()-1]
	out := newPredMap()

	for _, af := range leftSib.frontiers() {
		for _, ae := range leftSib.entries(af) {
			for _, bf := range lastChild.frontiers() {
				for _, be := range lastChild.entries(bf) {
					combined := ae.sig.Add(be.sig)

					keepCost, err := addInt64Checked(ae.cost, be.cost)
					if err != nil {
						return nil, err
					}
					if combined.LessEq(target) {
						frontier := af + bf
						if existing, ok := out.get(frontier, combined); !ok || keepCost < existing.cost {
							out.set(frontier, predEntry{
								sig: combined, cost: keepCost,
								aFront: af, aSig: ae.sig,
								bFront: bf, bSig: be.sig,
								wasCut: false,
							})
						}
					}

					s := subtreeSize - bf
					if s >= upperBound {
						continue
					}
					i := bounds.CoordOf(s)
					cutSig := combined.WithIncrement(i)
					if !cutSig.LessEq(target) {
						continue
					}
					cutCost, err := addInt64Checked(keepCost, parentWeight)
					if err != nil {
						return nil, err
					}
					frontier := af + bf + s
					if existing, ok := out.get(frontier, cutSig); !ok || cutCost < existing.cost {
						out.set(frontier, predEntry{
							sig: cutSig, cost: cutCost,
							aFront: af, aSig: ae.sig,
							bFront: bf, bSig: be.sig,
							wasCut: true,
						})
					}
				}
			}
		}
	}

	return out, nil
}

// Backtrack recovers the cut edges realizing target, the caller's chosen
// root signature, by re-running the cut-phase DP pruned to signatures
// coordinate-wise <= target and retaining predecessor pointers.
func Backtrack(t *tree.Tree, bounds sizebound.Bounds, target signature.Signature) (CutEdges, error) {
	n := t.N()
	length := bounds.Len()

	result := make(CutEdges)

	if t.Depth() == 1 {
		i := bounds.CoordOf(n)
		want := signature.New(length).WithIncrement(i)
		if !want.Equal(target) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSignature, target)
		}

		return result, nil
	}

	predMaps := make([][]*predMap, t.Depth())
	for l := t.Depth() - 1; l >= 1; l-- {
		nodes := t.Levels[l]
		out := make([]*predMap, len(nodes))
		for idx, v := range nodes {
			leftSib := emptyPredMap(length)
			if v.HasLeftSibling {
				leftSib = out[idx-1]
			}
			lastChild := emptyPredMap(length)
			if !v.IsLeaf() {
				lastChild = predMaps[l+1][v.ChildLast-1]
			}

			nodeMap, err := predCombine(t.SubtreeSize(l, idx), v.ParentEdgeWeight, bounds, leftSib, lastChild, target)
			if err != nil {
				return nil, err
			}
			out[idx] = nodeMap
		}
		predMaps[l] = out
	}

	root := t.Root()
	lastChildRoot := emptyPredMap(length)
	if !root.IsLeaf() {
		lastChildRoot = predMaps[1][root.ChildLast-1]
	}

	// Several distinct (bf, sigB) pairs can fold into the same final root
	// signature at different costs; keep the cheapest so Backtrack always
	// recovers a minimum-cost realization of target, not an arbitrary one.
	upperBound := bounds.Upper[length-1]
	var rootEntry predEntry
	found := false
	for _, bf := range lastChildRoot.frontiers() {
		for _, be := range lastChildRoot.entries(bf) {
			s := n - bf
			if s >= upperBound {
				continue
			}
			i := bounds.CoordOf(s)
			sig := be.sig.WithIncrement(i)
			if !sig.Equal(target) {
				continue
			}
			if !found || be.cost < rootEntry.cost {
				rootEntry = predEntry{sig: sig, cost: be.cost, bFront: bf, bSig: be.sig, aFront: -1, wasCut: false}
				found = true
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSignature, target)
	}

	type workItem struct {
		level, idx int
		front      int
		sig        signature.Signature
	}

	var queue []workItem
	if !root.IsLeaf() && rootEntry.bFront >= 0 {
		queue = append(queue, workItem{level: 1, idx: root.ChildLast - 1, front: rootEntry.bFront, sig: rootEntry.bSig})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		v := t.Levels[item.level][item.idx]
		entry, ok := predMaps[item.level][item.idx].get(item.front, item.sig)
		if !ok {
			return nil, fmt.Errorf("cut: backtrack lost entry at level %d idx %d", item.level, item.idx)
		}

		if entry.wasCut {
			parent := t.Levels[item.level-1][v.ParentIdx]
			result.add(v.ID, parent.ID)
		}

		if v.HasLeftSibling && entry.aFront >= 0 {
			queue = append(queue, workItem{level: item.level, idx: item.idx - 1, front: entry.aFront, sig: entry.aSig})
		}
		if !v.IsLeaf() && entry.bFront >= 0 {
			queue = append(queue, workItem{level: item.level + 1, idx: v.ChildLast - 1, front: entry.bFront, sig: entry.bSig})
		}
	}

	return result, nil
}
