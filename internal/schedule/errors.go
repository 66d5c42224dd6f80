package schedule

import "fmt"

// EmptyLaneError reports that a lane has no entry at slot 0 where the
// scheduling invariant requires one. It is fatal to the operation that
// detected it (the mutation is rolled back) but not to the process;
// recovery requires external re-seeding of the lane.
type EmptyLaneError struct {
	Lane LaneID
}

func (e *EmptyLaneError) Error() string {
	return fmt.Sprintf("lane %d has no active entry at slot 0", e.Lane)
}

// ErrUnknownLane reports a lane identifier outside the fixed lane set.
type ErrUnknownLane struct {
	Lane LaneID
}

func (e *ErrUnknownLane) Error() string {
	return fmt.Sprintf("unknown lane %d (valid lanes are 1..%d)", e.Lane, LaneCount)
}
