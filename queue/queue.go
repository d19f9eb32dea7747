// Package queue implements the Solver's open-subproblem priority queue: a
// binary heap keyed by ascending RelaxedValue with deterministic
// insertion-sequence tie-breaks, following the container/heap.Interface
// pattern used elsewhere in the retrieved corpus (e.g. a scheduler's
// work-item heap keyed by a deterministic order key).
package queue

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/mddbb/node"
)

// item pairs a Node with its insertion sequence number, used only to break
// ties between equal RelaxedValues deterministically (FIFO within a key).
type item struct {
	n   *node.Node
	seq uint64
}

type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].n.RelaxedValue != h[j].n.RelaxedValue {
		return h[i].n.RelaxedValue < h[j].n.RelaxedValue
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) {
	*h = append(*h, x.(*item))
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// Queue is the Solver's open-subproblem priority queue, ascending by
// RelaxedValue.
type Queue struct {
	h       itemHeap
	nextSeq uint64
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.h)

	return q
}

// Push enqueues n, stamping it with the next insertion sequence number for
// deterministic tie-breaking.
func (q *Queue) Push(n *node.Node) {
	heap.Push(&q.h, &item{n: n, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the node with the smallest RelaxedValue, or nil
// if the queue is empty.
func (q *Queue) Pop() *node.Node {
	if q.h.Len() == 0 {
		return nil
	}

	return heap.Pop(&q.h).(*item).n
}

// Len reports the number of open subproblems.
func (q *Queue) Len() int {
	return q.h.Len()
}

// MaxRelaxedValue scans the queue for the largest RelaxedValue, used to
// refresh the Solver's global upper bound. The refresh could instead be
// maintained incrementally; this implementation scans, trading an O(Len())
// pass per call for a single-purpose heap with no secondary index to keep
// in sync. Returns -Inf for an empty queue.
func (q *Queue) MaxRelaxedValue() float64 {
	max := math.Inf(-1)
	for _, it := range q.h {
		if it.n.RelaxedValue > max {
			max = it.n.RelaxedValue
		}
	}

	return max
}
