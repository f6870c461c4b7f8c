package engine

// History holds pre-move snapshots for redo. When the redo limit is positive
// the records live in a fixed arena addressed by a head index, so a long game
// never allocates beyond the limit; an unlimited history grows as a plain
// stack. A limit of zero stores nothing.
type History struct {
	limit   int
	arena   []MoveRecord
	head    int
	size    int
	records []MoveRecord
}

// NewHistory creates a history bounded by limit snapshots. Pass
// RedoUnlimited (-1) for an unbounded stack, or zero to disable storage.
func NewHistory(limit int) *History {
	h := &History{limit: limit}
	if limit > 0 {
		h.arena = make([]MoveRecord, limit)
	}
	return h
}

// Push stores a snapshot, evicting the oldest once the bound is exceeded.
func (h *History) Push(rec MoveRecord) {
	switch {
	case h.limit == 0:
		// Redo disabled; nothing to keep.
	case h.limit < 0:
		h.records = append(h.records, rec)
	default:
		h.arena[(h.head+h.size)%h.limit] = rec
		if h.size < h.limit {
			h.size++
		} else {
			h.head = (h.head + 1) % h.limit
		}
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (MoveRecord, bool) {
	switch {
	case h.limit < 0:
		if len(h.records) == 0 {
			return MoveRecord{}, false
		}
		rec := h.records[len(h.records)-1]
		h.records = h.records[:len(h.records)-1]
		return rec, true
	case h.limit > 0:
		if h.size == 0 {
			return MoveRecord{}, false
		}
		h.size--
		return h.arena[(h.head+h.size)%h.limit], true
	default:
		return MoveRecord{}, false
	}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	if h.limit < 0 {
		return len(h.records)
	}
	return h.size
}

// Clear discards all snapshots.
func (h *History) Clear() {
	h.records = h.records[:0]
	h.head = 0
	h.size = 0
}
