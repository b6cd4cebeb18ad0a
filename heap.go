package astar

// heapEntry is one slot of the indexed binary min-heap: a grid offset keyed
// by its current f-score, plus an insertion sequence number used only to
// break ties deterministically within a single search (see DESIGN.md,
// "tie-breaking").
type heapEntry struct {
	offset int
	f      uint64
	seq    uint64
}

// minHeap is a binary min-heap on f-score with an offset->index back
// reference stored directly on the shared cell array, so that a cell's
// priority can be found and re-ordered (decrease-key) in O(log n) instead
// of the O(n) linear scan a plain container/heap.Interface would need to
// locate the element first. This is the "indexed heap" of spec.md §4.1.
type minHeap struct {
	entries []heapEntry
	cells   []cell
	nextSeq uint64
}

func newMinHeap(cells []cell) *minHeap {
	return &minHeap{cells: cells}
}

func (h *minHeap) len() int { return len(h.entries) }

func (h *minHeap) less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (h *minHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.cells[h.entries[i].offset].heapIndex = i
	h.cells[h.entries[j].offset].heapIndex = j
}

// push inserts offset with priority f. The caller must already have set
// cells[offset].state = cellOpen.
func (h *minHeap) push(offset int, f uint64) {
	idx := len(h.entries)
	h.entries = append(h.entries, heapEntry{offset: offset, f: f, seq: h.nextSeq})
	h.nextSeq++
	h.cells[offset].heapIndex = idx
	h.siftUp(idx)
}

// pop removes and returns the offset with the lowest f-score. Undefined
// behavior if the heap is empty; callers must check len() first.
func (h *minHeap) pop() int {
	n := len(h.entries) - 1
	h.swap(0, n)
	top := h.entries[n]
	h.entries = h.entries[:n]
	h.siftDown(0)
	return top.offset
}

// update changes the priority of an already-Open offset and restores heap
// order. Idempotent when newF equals the current key.
func (h *minHeap) update(offset int, newF uint64) {
	idx := h.cells[offset].heapIndex
	old := h.entries[idx].f
	h.entries[idx].f = newF
	switch {
	case newF < old:
		h.siftUp(idx)
	case newF > old:
		h.siftDown(idx)
	}
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *minHeap) clear() {
	h.entries = h.entries[:0]
	h.nextSeq = 0
}
