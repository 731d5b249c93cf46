package signature

import "sort"

// Entry is one (signature, cost) pair stored at a given frontier size.
type Entry struct {
	Sig  Signature
	Cost int64
}

// Map is the per-node signature map from spec §3 (C4): a mapping
// frontier_size -> signature -> minimum cut cost. Entries are bucketed by
// Signature.Hash with a linear-scan fallback on collision, since
// Signature is compared by value, not by identity.
type Map struct {
	length  int
	byFront map[int]map[uint64][]Entry
}

// NewMap returns an empty Map for signatures of the given length.
func NewMap(length int) *Map {
	return &Map{length: length, byFront: make(map[int]map[uint64][]Entry)}
}

// EmptyMap returns the Map conceptually present at a sentinel "no left
// sibling" / "no children" node: the single implicit entry
// (frontier=0, signature=0, cost=0) from spec §3.
func EmptyMap(length int) *Map {
	m := NewMap(length)
	m.Upsert(0, New(length), 0)

	return m
}

// Upsert records (frontier, sig, cost), keeping only the minimum cost ever
// seen for that exact (frontier, sig) pair. Returns true if this call
// changed the stored value (first insertion or a strict improvement).
func (m *Map) Upsert(frontier int, sig Signature, cost int64) bool {
	bucket, ok := m.byFront[frontier]
	if !ok {
		bucket = make(map[uint64][]Entry)
		m.byFront[frontier] = bucket
	}
	h := sig.Hash()
	for i, e := range bucket[h] {
		if e.Sig.Equal(sig) {
			if cost < e.Cost {
				bucket[h][i].Cost = cost

				return true
			}

			return false
		}
	}
	bucket[h] = append(bucket[h], Entry{Sig: sig.Clone(), Cost: cost})

	return true
}

// Get returns the stored minimum cost for (frontier, sig), if any.
func (m *Map) Get(frontier int, sig Signature) (int64, bool) {
	bucket, ok := m.byFront[frontier]
	if !ok {
		return 0, false
	}
	for _, e := range bucket[sig.Hash()] {
		if e.Sig.Equal(sig) {
			return e.Cost, true
		}
	}

	return 0, false
}

// Frontiers returns every frontier size with at least one entry, sorted
// ascending.
func (m *Map) Frontiers() []int {
	out := make([]int, 0, len(m.byFront))
	for f := range m.byFront {
		out = append(out, f)
	}
	sort.Ints(out)

	return out
}

// Entries returns every (signature, cost) pair at the given frontier
// size, in a deterministic order (ascending by hash, then by
// coordinates) so that callers iterating the DP combinations get
// reproducible results across runs.
func (m *Map) Entries(frontier int) []Entry {
	bucket := m.byFront[frontier]
	out := make([]Entry, 0, len(bucket))
	for _, es := range bucket {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := out[i].Sig.Hash(), out[j].Sig.Hash()
		if hi != hj {
			return hi < hj
		}
		for k := range out[i].Sig {
			if out[i].Sig[k] != out[j].Sig[k] {
				return out[i].Sig[k] < out[j].Sig[k]
			}
		}

		return false
	})

	return out
}

// Len returns the total number of (frontier, signature) entries stored.
func (m *Map) Len() int {
	n := 0
	for _, bucket := range m.byFront {
		for _, es := range bucket {
			n += len(es)
		}
	}

	return n
}
