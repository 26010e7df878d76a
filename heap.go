package balltree

import "math"

// boundedHeap is a fixed-capacity max-heap keyed on dist, built directly on
// top of the query's own output slices rather than on
// container/heap: capacity never changes after construction, so there is no
// need for Push/Pop's slice-growth machinery, and the caller wants the raw
// dist/idx buffers back when done, not an intermediate heap.Interface
// wrapper. dist is seeded with +Inf sentinels; idx's initial contents are
// irrelevant until a dist entry stops being +Inf.
//
// The heap invariant (dist[0] is the maximum of the k best distances seen
// so far) is what makes pruning in the query traversal a single comparison.
// The final contents are left in heap order, not sorted —
// callers that need sorted results sort after Query returns.
type boundedHeap struct {
	dist []float64
	idx  []int
}

// newBoundedHeap wraps dist/idx (both length k) as a max-heap, initializing
// dist to +Inf so that the first k candidates are always accepted.
func newBoundedHeap(dist []float64, idx []int) boundedHeap {
	for i := range dist {
		dist[i] = math.Inf(1)
		idx[i] = -1
	}
	return boundedHeap{dist: dist, idx: idx}
}

// max returns the current maximum distance held by the heap (the pruning
// threshold). With k > 0 this is always dist[0].
func (h boundedHeap) max() float64 {
	return h.dist[0]
}

// offer considers a new (distance, index) candidate. If it is smaller than
// the current maximum, it replaces the root and the heap is restored by a
// single sift-down pass — an atomic replace-root update, as opposed to a
// separate pop-then-push.
func (h boundedHeap) offer(d float64, i int) {
	if d >= h.dist[0] {
		return
	}
	h.dist[0] = d
	h.idx[0] = i
	h.siftDown(0)
}

// siftDown restores the max-heap property below position i after its value
// has decreased.
func (h boundedHeap) siftDown(i int) {
	n := len(h.dist)
	for {
		l, r := 2*i+1, 2*i+2
		largest := i
		if l < n && h.dist[l] > h.dist[largest] {
			largest = l
		}
		if r < n && h.dist[r] > h.dist[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		h.dist[i], h.dist[largest] = h.dist[largest], h.dist[i]
		h.idx[i], h.idx[largest] = h.idx[largest], h.idx[i]
		i = largest
	}
}
