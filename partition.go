package ffpart

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/ffpart/binpack"
	"github.com/katalvlaran/ffpart/component"
	"github.com/katalvlaran/ffpart/config"
	"github.com/katalvlaran/ffpart/cut"
	"github.com/katalvlaran/ffpart/rational"
	"github.com/katalvlaran/ffpart/signature"
	"github.com/katalvlaran/ffpart/sizebound"
	"github.com/katalvlaran/ffpart/tree"
)

// Partition runs the FF13 algorithm on t, returning only the winning cut
// cost and the final node-id assignment (one slice per part).
func Partition(t *tree.Tree, k int, eps rational.Rat, opts ...Option) (int64, [][]int, error) {
	res, err := PartitionWithDetails(t, k, eps, opts...)
	if err != nil {
		return 0, nil, err
	}

	return res.CutCost, res.Assignment, nil
}

// PartitionWithDetails runs the full §4.8 driver algorithm: it builds the
// size-bound table, runs the cut-phase DP, and retries candidate root
// signatures cheapest-first until one of them admits a packing into at
// most k bins, or the candidates are exhausted.
func PartitionWithDetails(t *tree.Tree, k int, eps rational.Rat, opts ...Option) (Result, error) {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	if err := options.Validate(); err != nil {
		return Result{}, err
	}

	n := t.N()
	bounds, err := sizebound.Compute(eps, n, k)
	if err != nil {
		return Result{}, err
	}

	rootMap, err := cut.Run(t, bounds)
	if err != nil {
		return Result{}, err
	}

	pq := make(sigPQ, 0)
	heap.Init(&pq)
	for _, e := range rootMap.Entries(n) {
		heap.Push(&pq, &sigItem{sig: e.Sig, cost: e.Cost})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*sigItem)

		res, ok, err := tryPack(t, bounds, item.sig, item.cost, k, options)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return res, nil
		}
	}

	return Result{}, fmt.Errorf("%w: k=%d eps=%s", ErrInfeasible, k, eps.String())
}

// tryPack attempts to realize candidate root signature sig as a k-part
// assignment: exact perfect-packing of its coarse multiset, then
// expansion to true component weights plus first-fit of the small
// components it excludes. It reports ok=false (with no error) whenever
// sig is simply unworkable for this k, so the caller can move on to the
// next cheapest candidate.
func tryPack(t *tree.Tree, bounds sizebound.Bounds, sig signature.Signature, cost int64, k int, options Options) (Result, bool, error) {
	length := bounds.Len()

	coarse := make(map[int64]int64)
	for i := 1; i < length; i++ {
		if sig[i] > 0 {
			coarse[int64(bounds.Lower[i])] = int64(sig[i])
		}
	}

	optCapacity := int64(bounds.Lower[length-1])
	approxCapacity := int64(bounds.Upper[length-1] - 1)
	packer := binpack.NewPacker(optCapacity, approxCapacity, options.PackLayerBound)

	if err := packer.PackPerfect(coarse); err != nil {
		return Result{}, false, nil
	}
	if packer.BinCount() > k {
		return Result{}, false, nil
	}

	cutEdges, err := cut.Backtrack(t, bounds, sig)
	if err != nil {
		return Result{}, false, err
	}
	comps, err := component.Extract(t, cutEdges, nil)
	if err != nil {
		return Result{}, false, err
	}

	expansion := make(map[int64][]int64)
	small := make(map[int64]int64)
	for _, c := range comps {
		if bounds.Small(int(c.Weight)) {
			small[c.Weight]++
			continue
		}
		i := bounds.CoordOf(int(c.Weight))
		coarseSize := int64(bounds.Lower[i])
		expansion[coarseSize] = append(expansion[coarseSize], c.Weight)
	}

	if err := packer.ExpandPacking(expansion); err != nil {
		return Result{}, false, nil
	}
	packer.PackFirstFit(small)

	if packer.BinCount() > k {
		return Result{}, false, nil
	}

	assignment, err := assignBins(packer.Bins(), comps)
	if err != nil {
		return Result{}, false, err
	}

	return Result{CutCost: cost, CutEdges: cutEdges, Components: comps, Assignment: assignment}, true, nil
}

// assignBins matches each bin's size list back to the concrete
// components that produced it: components are bucketed by weight, and
// each bin slot consumes one component of matching weight from its
// bucket. Buckets are sorted by each component's first node id (the node
// through which component.Extract entered it) so the result is
// deterministic regardless of map iteration order.
func assignBins(bins [][]int64, comps []component.Component) ([][]int, error) {
	byWeight := make(map[int64][]component.Component)
	for _, c := range comps {
		byWeight[c.Weight] = append(byWeight[c.Weight], c)
	}
	for w := range byWeight {
		bucket := byWeight[w]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Nodes[0] < bucket[j].Nodes[0] })
		byWeight[w] = bucket
	}

	assignment := make([][]int, len(bins))
	for bi, bin := range bins {
		var nodes []int
		for _, size := range bin {
			bucket := byWeight[size]
			if len(bucket) == 0 {
				return nil, fmt.Errorf("ffpart: no remaining component of weight %d to fill bin %d", size, bi)
			}
			nodes = append(nodes, bucket[0].Nodes...)
			byWeight[size] = bucket[1:]
		}
		sort.Ints(nodes)
		assignment[bi] = nodes
	}

	return assignment, nil
}

// PartitionFromRequest builds the tree from adj and derives k and ε from
// req, then runs PartitionWithDetails — for callers that read partition
// parameters from a YAML config.PartitionRequest rather than constructing
// rational.Rat by hand.
func PartitionFromRequest(adj map[int]map[int]int64, req config.PartitionRequest) (Result, error) {
	t, err := tree.Build(adj, req.RootID)
	if err != nil {
		return Result{}, err
	}
	eps, err := req.Eps()
	if err != nil {
		return Result{}, err
	}

	return PartitionWithDetails(t, req.KParts, eps, WithPackLayerBound(req.PackLayerBound))
}
