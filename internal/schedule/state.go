package schedule

import (
	"time"

	"github.com/google/uuid"
)

// State is the aggregate scheduling state for one learner session: the
// three lanes, the active lane, and rotation bookkeeping. It is owned
// explicitly by the session that created it; there is no package-level
// instance.
type State struct {
	lanes map[LaneID]*Lane

	Active     LaneID
	CycleCount int

	// LastMutatedAt is bumped on every slot mutation and rotation.
	// The sync adapter compares it against the last successful save
	// to skip no-op writes.
	LastMutatedAt time.Time

	// Generation identifies the lifetime of this state. A full reset
	// issues a new generation; async work stamped with an older
	// generation discards its result on completion.
	Generation uuid.UUID
}

// NewState returns an empty state with three empty lanes, active lane 1
// and cycle count 0.
func NewState() *State {
	s := &State{
		lanes:      make(map[LaneID]*Lane, LaneCount),
		Active:     Lane1,
		Generation: uuid.New(),
	}
	for id := Lane1; id <= Lane3; id++ {
		s.lanes[id] = NewLane()
	}
	return s
}

// Lane returns the lane for id. Unknown ids return nil.
func (s *State) Lane(id LaneID) *Lane {
	return s.lanes[id]
}

// ActiveLane returns the lane currently being played.
func (s *State) ActiveLane() *Lane {
	return s.lanes[s.Active]
}

// Touch records a mutation time. All mutating operations call it.
func (s *State) Touch(now time.Time) {
	s.LastMutatedAt = now
}

// Reset clears every lane and rotation counter and issues a new
// generation, invalidating in-flight async work issued against the
// previous one.
func (s *State) Reset(now time.Time) {
	for id := Lane1; id <= Lane3; id++ {
		s.lanes[id] = NewLane()
	}
	s.Active = Lane1
	s.CycleCount = 0
	s.Generation = uuid.New()
	s.Touch(now)
}

// Clone returns a deep copy of the state. Rollback snapshots and wire
// encoding work over clones so callers never observe partial writes.
func (s *State) Clone() *State {
	c := &State{
		lanes:         make(map[LaneID]*Lane, len(s.lanes)),
		Active:        s.Active,
		CycleCount:    s.CycleCount,
		LastMutatedAt: s.LastMutatedAt,
		Generation:    s.Generation,
	}
	for id, l := range s.lanes {
		c.lanes[id] = l.clone()
	}
	return c
}
