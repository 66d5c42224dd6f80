package schedule

// AdvanceLane moves the active lane one step in the fixed rotation
// Lane1 → Lane2 → Lane3 → Lane1, incrementing CycleCount on each wrap
// back to Lane1. It is called exactly once per completed attempt,
// regardless of outcome. The rotation runs for the lifetime of a
// session and only a full-state reset returns it to its initial state.
func (s *State) AdvanceLane() {
	next := s.Active.Next()
	if next == Lane1 {
		s.CycleCount++
	}
	s.Active = next
}

// CurrentItem returns the entry at slot 0 of the active lane. An empty
// active lane returns an EmptyLaneError: a session-terminal condition
// that the presentation layer surfaces as content unavailable until the
// lane is re-seeded.
func (s *State) CurrentItem() (LaneID, *SlotEntry, error) {
	lane := s.ActiveLane()
	if lane == nil {
		return s.Active, nil, &ErrUnknownLane{Lane: s.Active}
	}
	entry, ok := lane.Slot(0)
	if !ok {
		return s.Active, nil, &EmptyLaneError{Lane: s.Active}
	}
	return s.Active, entry, nil
}
