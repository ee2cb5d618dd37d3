package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// PriorityQueue is a min-heap of tree nodes ordered by frequency.  Nodes
// with equal frequency are popped in the order they were pushed.
//
// The zero value is an empty queue ready to use.
type PriorityQueue struct {
	h       nodeHeap
	nextSeq uint64
}

// NewPriorityQueue returns an empty PriorityQueue with room for capacity
// nodes.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{h: nodeHeap{list: make([]queueItem, 0, capacity)}}
}

// Len returns the number of nodes in the queue.
func (q *PriorityQueue) Len() int {
	return q.h.Len()
}

// Push inserts a node.
func (q *PriorityQueue) Push(node *Node) {
	assert.Assertf(node != nil, "PriorityQueue.Push: nil node")
	heap.Push(&q.h, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns a node of minimum frequency.  The queue must not
// be empty.
func (q *PriorityQueue) Pop() *Node {
	assert.Assertf(q.h.Len() != 0, "PriorityQueue.Pop: queue is empty")
	return heap.Pop(&q.h).(queueItem).node
}

// Peek returns a node of minimum frequency without removing it.  The queue
// must not be empty.
func (q *PriorityQueue) Peek() *Node {
	assert.Assertf(q.h.Len() != 0, "PriorityQueue.Peek: queue is empty")
	return q.h.list[0].node
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
