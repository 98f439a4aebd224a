package openlist

import "container/heap"

// entry is one queued handle: a caller-opaque value together with the
// priority it was inserted at and the insertion sequence number used to
// break priority ties in FIFO order.
type entry struct {
	handle   interface{}
	priority float64
	seq      uint64
}

// innerHeap is the container/heap.Interface implementation backing Queue,
// ordered by (priority, seq) lexicographically ascending, mirroring the
// teacher's nodePQ shape: a slice of pointers with Less/Swap/Push/Pop and a
// lazy "push duplicates, skip stale on pop" discipline left to the caller
// (the search layer's closed-set check plays that role here).
type innerHeap []*entry

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is a min-priority queue over opaque handles. Multiple insertions of
// the same handle are permitted; deduplication against a closed set is the
// caller's responsibility.
type Queue struct {
	h       innerHeap
	nextSeq uint64
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Insert adds handle at the given priority.
func (q *Queue) Insert(handle interface{}, priority float64) {
	heap.Push(&q.h, &entry{handle: handle, priority: priority, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the lowest-priority handle. ok is false if the
// queue is empty.
func (q *Queue) Pop() (handle interface{}, ok bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	e := heap.Pop(&q.h).(*entry)
	return e.handle, true
}

// Size returns the number of queued (handle, priority) entries, including
// any stale duplicates not yet popped.
func (q *Queue) Size() int { return q.h.Len() }
