package schedule

import "time"

// ReorderResult describes what a perfect-completion reorder did to a
// lane. The session layer records it to the mutation log and surfaces
// Normalized as a corrupt-interval warning.
type ReorderResult struct {
	Lane            LaneID
	ContentID       string
	OldInterval     int
	NewInterval     int
	Normalized      bool
	NewActiveID     string
	PerfectCount    int
}

// Reorder applies the advance-and-shift algorithm to the given lane
// after a perfect completion of the item at slot 0:
//
//  1. The slot-0 entry's interval advances one step in the fixed
//     vocabulary (ceiling at 100); its perfect count and completion
//     time are updated.
//  2. Every entry occupying slots 1..k' (k' = the new interval) shifts
//     down by exactly one slot, in ascending slot order. Gaps are
//     preserved: entries bubble down one slot regardless of holes.
//  3. The completed entry is re-inserted at slot k'.
//
// If slot 0 is unoccupied after the shift the lane is restored to its
// pre-operation layout and an EmptyLaneError is returned; silent repair
// here would corrupt the repetition guarantee.
//
// A non-member interval on the slot-0 entry is normalized to the
// nearest lower vocabulary member before advancing; the result reports
// this so the caller can log it. Normalization never fails the reorder.
func Reorder(lane *Lane, id LaneID, now time.Time) (*ReorderResult, error) {
	entry, ok := lane.Slot(0)
	if !ok {
		return nil, &EmptyLaneError{Lane: id}
	}

	snapshot := lane.clone()

	current, normalized := NormalizeInterval(entry.Interval)
	next := NextInterval(current)

	entry.Interval = next
	entry.PerfectCount++
	completed := now
	entry.LastCompletedAt = &completed

	lane.RemoveSlot(0)

	// Shift occupants of 1..next down one slot, lowest first, so no
	// two entries ever contend for the same destination.
	for _, sp := range snapshot.SlotsInOrder() {
		if sp.Slot < 1 || sp.Slot > next {
			continue
		}
		if moved, ok := lane.Slot(sp.Slot); ok {
			lane.RemoveSlot(sp.Slot)
			lane.SetSlot(sp.Slot-1, moved)
		}
	}

	lane.SetSlot(next, entry)

	if _, ok := lane.Slot(0); !ok {
		// Restore the pre-operation layout; the caller decides how to
		// re-seed the lane.
		*lane = *snapshot
		return nil, &EmptyLaneError{Lane: id}
	}

	return &ReorderResult{
		Lane:         id,
		ContentID:    entry.ContentID,
		OldInterval:  current,
		NewInterval:  next,
		Normalized:   normalized,
		NewActiveID:  lane.ActiveContentID,
		PerfectCount: entry.PerfectCount,
	}, nil
}

// RecordOutcome applies an attempt outcome to the active lane and then
// advances rotation. A not-perfect outcome leaves the lane layout
// untouched (the same item replays at slot 0); rotation still advances,
// because lane rotation is orthogonal to the scheduling outcome.
//
// The result is nil for not-perfect outcomes.
func (s *State) RecordOutcome(perfect bool, now time.Time) (*ReorderResult, error) {
	lane := s.ActiveLane()
	if lane == nil {
		return nil, &ErrUnknownLane{Lane: s.Active}
	}

	var res *ReorderResult
	if perfect {
		var err error
		res, err = Reorder(lane, s.Active, now)
		if err != nil {
			return nil, err
		}
	}

	s.AdvanceLane()
	s.Touch(now)
	return res, nil
}
