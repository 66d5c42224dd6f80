package schedule

import "testing"

func TestSetSlot_ZeroRefreshesActiveContentID(t *testing.T) {
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "s-001", Interval: 1})

	if lane.ActiveContentID != "s-001" {
		t.Errorf("ActiveContentID = %q, want %q", lane.ActiveContentID, "s-001")
	}

	lane.SetSlot(0, &SlotEntry{ContentID: "s-002", Interval: 1})
	if lane.ActiveContentID != "s-002" {
		t.Errorf("ActiveContentID = %q, want %q", lane.ActiveContentID, "s-002")
	}
}

func TestSetSlot_NonZeroLeavesActiveContentID(t *testing.T) {
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "s-001", Interval: 1})
	lane.SetSlot(5, &SlotEntry{ContentID: "s-005", Interval: 1})

	if lane.ActiveContentID != "s-001" {
		t.Errorf("ActiveContentID = %q, want %q", lane.ActiveContentID, "s-001")
	}
}

func TestSlot_MissingReturnsFalseNotError(t *testing.T) {
	lane := NewLane()
	if e, ok := lane.Slot(3); ok || e != nil {
		t.Errorf("Slot(3) = (%v, %v), want (nil, false)", e, ok)
	}
}

func TestRemoveSlot_ZeroClearsActiveContentID(t *testing.T) {
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "s-001", Interval: 1})
	lane.RemoveSlot(0)

	if lane.ActiveContentID != "" {
		t.Errorf("ActiveContentID = %q, want empty", lane.ActiveContentID)
	}
	if !lane.Empty() {
		t.Error("expected empty lane")
	}
}

func TestSlotsInOrder_AscendingWithGaps(t *testing.T) {
	lane := NewLane()
	lane.SetSlot(9, &SlotEntry{ContentID: "c"})
	lane.SetSlot(0, &SlotEntry{ContentID: "a"})
	lane.SetSlot(4, &SlotEntry{ContentID: "b"})

	ordered := lane.SlotsInOrder()
	wantSlots := []int{0, 4, 9}
	wantIDs := []string{"a", "b", "c"}
	if len(ordered) != 3 {
		t.Fatalf("len = %d, want 3", len(ordered))
	}
	for i, sp := range ordered {
		if sp.Slot != wantSlots[i] || sp.Entry.ContentID != wantIDs[i] {
			t.Errorf("ordered[%d] = (%d, %q), want (%d, %q)",
				i, sp.Slot, sp.Entry.ContentID, wantSlots[i], wantIDs[i])
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	lane := NewLane()
	lane.SetSlot(0, &SlotEntry{ContentID: "a", Interval: 3})

	c := lane.clone()
	c.SetSlot(0, &SlotEntry{ContentID: "b", Interval: 1})

	if e, _ := lane.Slot(0); e.ContentID != "a" {
		t.Errorf("original mutated through clone: ContentID = %q", e.ContentID)
	}
	if lane.ActiveContentID != "a" {
		t.Errorf("original ActiveContentID = %q, want %q", lane.ActiveContentID, "a")
	}
}
