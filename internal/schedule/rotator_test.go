package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestAdvanceLane_RoundRobin(t *testing.T) {
	st := NewState()
	want := []LaneID{Lane2, Lane3, Lane1, Lane2, Lane3, Lane1, Lane2}
	for i, w := range want {
		st.AdvanceLane()
		if st.Active != w {
			t.Errorf("advance %d: active = %d, want %d", i+1, st.Active, w)
		}
	}
}

func TestAdvanceLane_CycleCountOnWrap(t *testing.T) {
	st := NewState()
	if st.CycleCount != 0 {
		t.Fatalf("initial CycleCount = %d, want 0", st.CycleCount)
	}
	for i := 0; i < 9; i++ {
		st.AdvanceLane()
	}
	// Three full rotations of three advances each.
	if st.CycleCount != 3 {
		t.Errorf("CycleCount = %d, want 3", st.CycleCount)
	}
}

func TestRecordOutcome_RotationFormula(t *testing.T) {
	// After call i, the active lane is ((i-1) mod 3) + 1 counting the
	// lane played during call 1 as Lane1.
	st := NewState()
	for id := Lane1; id <= Lane3; id++ {
		lane := st.Lane(id)
		for n := 0; n < 5; n++ {
			lane.SetSlot(n, &SlotEntry{ContentID: string(rune('a' + n)), Interval: 1})
		}
	}

	for i := 1; i <= 12; i++ {
		played := st.Active
		want := LaneID((i-1)%3 + 1)
		if played != want {
			t.Errorf("call %d plays lane %d, want %d", i, played, want)
		}
		if _, err := st.RecordOutcome(i%2 == 0, time.Now()); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestCurrentItem_EmptyLane(t *testing.T) {
	st := NewState()
	_, _, err := st.CurrentItem()
	var emptyErr *EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}
	if emptyErr.Lane != Lane1 {
		t.Errorf("lane = %d, want %d", emptyErr.Lane, Lane1)
	}
}

func TestCurrentItem_ReturnsSlotZero(t *testing.T) {
	st := NewState()
	st.Lane(Lane1).SetSlot(0, &SlotEntry{ContentID: "s-42", Interval: 5, DistractorTier: 2})

	lane, entry, err := st.CurrentItem()
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if lane != Lane1 {
		t.Errorf("lane = %d, want %d", lane, Lane1)
	}
	if entry.ContentID != "s-42" || entry.Interval != 5 || entry.DistractorTier != 2 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestReset_ReturnsToInitialStateWithNewGeneration(t *testing.T) {
	st := NewState()
	st.Lane(Lane1).SetSlot(0, &SlotEntry{ContentID: "x", Interval: 1})
	st.AdvanceLane()
	st.AdvanceLane()
	st.AdvanceLane()
	gen := st.Generation

	st.Reset(time.Now())

	if st.Active != Lane1 || st.CycleCount != 0 {
		t.Errorf("after reset active = %d cycles = %d, want lane 1 and 0", st.Active, st.CycleCount)
	}
	if !st.Lane(Lane1).Empty() {
		t.Error("lane 1 not cleared")
	}
	if st.Generation == gen {
		t.Error("generation not reissued on reset")
	}
}
