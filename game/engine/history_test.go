package engine

import "testing"

func record(dir Direction, score int) MoveRecord {
	return MoveRecord{Direction: dir, ScoreBefore: score}
}

func TestHistory_BoundedEviction(t *testing.T) {
	h := NewHistory(2)

	h.Push(record(DirectionUp, 1))
	h.Push(record(DirectionLeft, 2))
	h.Push(record(DirectionRight, 3))

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}

	// Newest first; the oldest snapshot was evicted.
	rec, ok := h.Pop()
	if !ok || rec.ScoreBefore != 3 {
		t.Errorf("first pop = %+v, %v, want score 3", rec, ok)
	}
	rec, ok = h.Pop()
	if !ok || rec.ScoreBefore != 2 {
		t.Errorf("second pop = %+v, %v, want score 2", rec, ok)
	}
	if _, ok := h.Pop(); ok {
		t.Error("pop on drained history succeeded")
	}
}

func TestHistory_RefillAfterDrain(t *testing.T) {
	h := NewHistory(2)

	h.Push(record(DirectionUp, 1))
	h.Pop()
	h.Push(record(DirectionDown, 2))
	h.Push(record(DirectionLeft, 3))
	h.Push(record(DirectionRight, 4))

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if rec, _ := h.Pop(); rec.ScoreBefore != 4 {
		t.Errorf("pop = %+v, want score 4", rec)
	}
	if rec, _ := h.Pop(); rec.ScoreBefore != 3 {
		t.Errorf("pop = %+v, want score 3", rec)
	}
}

func TestHistory_Unlimited(t *testing.T) {
	h := NewHistory(RedoUnlimited)

	for i := 1; i <= 100; i++ {
		h.Push(record(DirectionUp, i))
	}
	if h.Len() != 100 {
		t.Fatalf("Len = %d, want 100", h.Len())
	}
	for i := 100; i >= 1; i-- {
		rec, ok := h.Pop()
		if !ok || rec.ScoreBefore != i {
			t.Fatalf("pop %d = %+v, %v", i, rec, ok)
		}
	}
}

func TestHistory_Disabled(t *testing.T) {
	h := NewHistory(RedoDisabled)

	h.Push(record(DirectionUp, 1))
	if h.Len() != 0 {
		t.Errorf("disabled history stored %d records", h.Len())
	}
	if _, ok := h.Pop(); ok {
		t.Error("disabled history popped a record")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(3)
	h.Push(record(DirectionUp, 1))
	h.Push(record(DirectionDown, 2))

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len after Clear = %d", h.Len())
	}
	if _, ok := h.Pop(); ok {
		t.Error("pop after Clear succeeded")
	}
}
