package ffpart

import "github.com/katalvlaran/ffpart/signature"

// sigItem is a candidate root signature and its cut cost, ordered into a
// min-heap by cost so the driver always tries the cheapest realization
// first.
type sigItem struct {
	sig  signature.Signature
	cost int64
}

// sigPQ is a min-heap of *sigItem, ordered by cost ascending, mirroring
// dijkstra's nodePQ.
type sigPQ []*sigItem

func (pq sigPQ) Len() int { return len(pq) }

func (pq sigPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq sigPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *sigPQ) Push(x interface{}) { *pq = append(*pq, x.(*sigItem)) }

func (pq *sigPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
