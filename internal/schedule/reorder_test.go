package schedule

import (
	"errors"
	"testing"
	"time"
)

func seededLane(ids ...string) *Lane {
	lane := NewLane()
	for i, id := range ids {
		lane.SetSlot(i, &SlotEntry{ContentID: id, Interval: 1, DistractorTier: 1})
	}
	return lane
}

func laneLayout(lane *Lane) map[int]string {
	layout := make(map[int]string)
	for _, sp := range lane.SlotsInOrder() {
		layout[sp.Slot] = sp.Entry.ContentID
	}
	return layout
}

func TestReorder_AdvanceAndShift(t *testing.T) {
	// {0: A(interval=1), 1: B, 2: C, 3: D}; perfect on A advances its
	// interval to 3 and lands it at slot 3; B, C, D shift down one.
	lane := seededLane("A", "B", "C", "D")
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	res, err := Reorder(lane, Lane1, now)
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := map[int]string{0: "B", 1: "C", 2: "D", 3: "A"}
	got := laneLayout(lane)
	for slot, id := range want {
		if got[slot] != id {
			t.Errorf("slot %d = %q, want %q", slot, got[slot], id)
		}
	}
	if len(got) != len(want) {
		t.Errorf("occupied slots = %d, want %d", len(got), len(want))
	}

	if res.OldInterval != 1 || res.NewInterval != 3 {
		t.Errorf("intervals = (%d, %d), want (1, 3)", res.OldInterval, res.NewInterval)
	}
	if res.NewActiveID != "B" {
		t.Errorf("NewActiveID = %q, want %q", res.NewActiveID, "B")
	}
	if lane.ActiveContentID != "B" {
		t.Errorf("ActiveContentID = %q, want %q", lane.ActiveContentID, "B")
	}

	moved, _ := lane.Slot(3)
	if moved.PerfectCount != 1 {
		t.Errorf("PerfectCount = %d, want 1", moved.PerfectCount)
	}
	if moved.LastCompletedAt == nil || !moved.LastCompletedAt.Equal(now) {
		t.Errorf("LastCompletedAt = %v, want %v", moved.LastCompletedAt, now)
	}
}

func TestReorder_SparseShiftPreservesGaps(t *testing.T) {
	// {0: A(1), 1: B, 5: C}: B shifts to 0, C sits beyond the new
	// interval and stays put, A lands at 3.
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "A", Interval: 1})
	lane.SetSlot(1, &SlotEntry{ContentID: "B", Interval: 1})
	lane.SetSlot(5, &SlotEntry{ContentID: "C", Interval: 1})

	if _, err := Reorder(lane, Lane1, time.Now()); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := map[int]string{0: "B", 3: "A", 5: "C"}
	got := laneLayout(lane)
	if len(got) != len(want) {
		t.Fatalf("layout = %v, want %v", got, want)
	}
	for slot, id := range want {
		if got[slot] != id {
			t.Errorf("slot %d = %q, want %q", slot, got[slot], id)
		}
	}
}

func TestReorder_DestinationOccupantVacatesSlot(t *testing.T) {
	// The occupant of the destination slot is inside 1..k' and shifts
	// down one, so the completed entry never collides with it.
	lane := seededLane("A", "B", "C", "D")
	// A(1) advances to 3; D sits at the destination slot 3.
	if _, err := Reorder(lane, Lane1, time.Now()); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	got := laneLayout(lane)
	if got[2] != "D" || got[3] != "A" {
		t.Errorf("layout = %v, want D at 2 and A at 3", got)
	}
}

func TestReorder_GapAtSlotOneRollsBack(t *testing.T) {
	// {0: A, 3: B}: shifting B to 2 leaves slot 0 empty, which is a
	// structural invariant violation, not something to patch silently.
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "A", Interval: 1})
	lane.SetSlot(3, &SlotEntry{ContentID: "B", Interval: 1})

	_, err := Reorder(lane, Lane1, time.Now())
	var emptyErr *EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}

	got := laneLayout(lane)
	if got[0] != "A" || got[3] != "B" || len(got) != 2 {
		t.Errorf("layout = %v, want pre-operation {0: A, 3: B}", got)
	}
}

func TestReorder_SingleEntryLaneRollsBack(t *testing.T) {
	// With a single entry nothing can bubble into slot 0, so the
	// reorder fails and the lane keeps its pre-operation layout.
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "A", Interval: 1, PerfectCount: 4})

	_, err := Reorder(lane, Lane2, time.Now())
	var emptyErr *EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}
	if emptyErr.Lane != Lane2 {
		t.Errorf("EmptyLaneError.Lane = %d, want %d", emptyErr.Lane, Lane2)
	}

	e, ok := lane.Slot(0)
	if !ok {
		t.Fatal("slot 0 vacated despite rollback")
	}
	if e.ContentID != "A" || e.Interval != 1 || e.PerfectCount != 4 {
		t.Errorf("entry = %+v, want pre-operation values", e)
	}
	if lane.ActiveContentID != "A" {
		t.Errorf("ActiveContentID = %q, want %q", lane.ActiveContentID, "A")
	}
}

func TestReorder_EmptyLane(t *testing.T) {
	lane := NewLane()
	_, err := Reorder(lane, Lane1, time.Now())
	var emptyErr *EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}
}

func TestReorder_CorruptIntervalNormalized(t *testing.T) {
	// 7 is not a vocabulary member: it normalizes down to 5, then
	// advances to 10. The reorder reports the normalization instead of
	// failing, so the learner is never blocked on bad external data.
	lane := seededLane("A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K")
	e, _ := lane.Slot(0)
	e.Interval = 7

	res, err := Reorder(lane, Lane1, time.Now())
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if !res.Normalized {
		t.Error("expected Normalized = true")
	}
	if res.OldInterval != 5 || res.NewInterval != 10 {
		t.Errorf("intervals = (%d, %d), want (5, 10)", res.OldInterval, res.NewInterval)
	}
	if got := laneLayout(lane)[10]; got != "A" {
		t.Errorf("slot 10 = %q, want %q", got, "A")
	}
}

func TestReorder_IntervalMonotoneAndCapped(t *testing.T) {
	ids := make([]string, 120)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	lane := seededLane(ids...)

	for i := 0; i < 40; i++ {
		res, err := Reorder(lane, Lane1, time.Now())
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if res.NewInterval < res.OldInterval {
			t.Errorf("iteration %d: interval shrank %d -> %d", i, res.OldInterval, res.NewInterval)
		}
		if _, ok := lane.Slot(0); !ok {
			t.Fatalf("iteration %d: slot 0 unoccupied in non-empty lane", i)
		}
	}

	for _, sp := range lane.SlotsInOrder() {
		if sp.Entry.Interval > MaxInterval {
			t.Errorf("entry %q interval %d exceeds cap", sp.Entry.ContentID, sp.Entry.Interval)
		}
	}
}

func TestRecordOutcome_NotPerfectLeavesLayout(t *testing.T) {
	st := NewState()
	lane := st.Lane(Lane1)
	lane.SetSlot(0, &SlotEntry{ContentID: "A", Interval: 1})
	lane.SetSlot(1, &SlotEntry{ContentID: "B", Interval: 1})

	before := laneLayout(lane)
	res, err := st.RecordOutcome(false, time.Now())
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if res != nil {
		t.Errorf("result = %+v, want nil for not-perfect", res)
	}

	after := laneLayout(st.Lane(Lane1))
	if len(after) != len(before) {
		t.Fatalf("layout changed: %v -> %v", before, after)
	}
	for slot, id := range before {
		if after[slot] != id {
			t.Errorf("slot %d = %q, want %q", slot, after[slot], id)
		}
	}
	if st.Active != Lane2 {
		t.Errorf("active = %d, want %d (rotation is outcome-independent)", st.Active, Lane2)
	}
}

func TestRecordOutcome_PerfectReordersThenRotates(t *testing.T) {
	st := NewState()
	lane := st.Lane(Lane1)
	for i, id := range []string{"A", "B", "C", "D"} {
		lane.SetSlot(i, &SlotEntry{ContentID: id, Interval: 1})
	}

	res, err := st.RecordOutcome(true, time.Now())
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if res == nil || res.ContentID != "A" {
		t.Fatalf("result = %+v, want reorder of A", res)
	}
	if st.Active != Lane2 {
		t.Errorf("active = %d, want %d", st.Active, Lane2)
	}
	if st.LastMutatedAt.IsZero() {
		t.Error("LastMutatedAt not touched")
	}
}

func TestRecordOutcome_EmptyLaneDoesNotRotate(t *testing.T) {
	st := NewState()
	_, err := st.RecordOutcome(true, time.Now())
	var emptyErr *EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}
	if st.Active != Lane1 {
		t.Errorf("active = %d, want %d after failed mutation", st.Active, Lane1)
	}
}
