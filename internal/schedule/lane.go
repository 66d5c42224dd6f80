package schedule

import (
	"sort"
	"time"
)

// LaneID identifies one of the three fixed practice lanes.
type LaneID int

const (
	Lane1 LaneID = 1
	Lane2 LaneID = 2
	Lane3 LaneID = 3
)

// LaneCount is the fixed number of lanes.
const LaneCount = 3

// Next returns the lane that follows l in rotation order, wrapping
// from Lane3 back to Lane1.
func (l LaneID) Next() LaneID {
	if l >= Lane3 {
		return Lane1
	}
	return l + 1
}

// Valid reports whether l is a member of the fixed lane set.
func (l LaneID) Valid() bool {
	return l >= Lane1 && l <= Lane3
}

// SlotEntry is the position record for one content item within a lane.
// It references content by id only; the content body lives outside the
// scheduler and is materialized separately by the buffer manager.
type SlotEntry struct {
	ContentID       string     `json:"content_id"`
	Interval        int        `json:"interval"`
	DistractorTier  int        `json:"distractor_tier"`
	PerfectCount    int        `json:"perfect_count"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func (e *SlotEntry) clone() *SlotEntry {
	c := *e
	if e.LastCompletedAt != nil {
		t := *e.LastCompletedAt
		c.LastCompletedAt = &t
	}
	return &c
}

// SlotPosition pairs a slot number with its entry, for ordered listings.
type SlotPosition struct {
	Slot  int
	Entry *SlotEntry
}

// Lane holds the ordered slot layout for one practice lane. Slot
// numbers are unique and need not be contiguous; slot 0 is always
// occupied while the lane has any entries. Entries are exclusively
// owned by their lane and are mutated only by the reordering engine.
type Lane struct {
	slots map[int]*SlotEntry

	// ActiveContentID mirrors the content id at slot 0. It is a
	// denormalized convenience field refreshed on every slot-0 write.
	ActiveContentID string

	// SourceID optionally groups the lane's content by origin. The
	// scheduler carries it opaquely and never interprets it.
	SourceID string
}

// NewLane returns an empty lane.
func NewLane() *Lane {
	return &Lane{slots: make(map[int]*SlotEntry)}
}

// Slot returns the entry at slot n. A missing slot returns (nil, false),
// never an error.
func (l *Lane) Slot(n int) (*SlotEntry, bool) {
	e, ok := l.slots[n]
	return e, ok
}

// SetSlot places entry at slot n, replacing any existing entry. Writing
// slot 0 refreshes ActiveContentID.
func (l *Lane) SetSlot(n int, entry *SlotEntry) {
	l.slots[n] = entry
	if n == 0 {
		l.ActiveContentID = entry.ContentID
	}
}

// RemoveSlot deletes the entry at slot n if present. Removing slot 0
// clears ActiveContentID until a new slot-0 write occurs.
func (l *Lane) RemoveSlot(n int) {
	delete(l.slots, n)
	if n == 0 {
		l.ActiveContentID = ""
	}
}

// SlotsInOrder returns all occupied slots in ascending slot order.
func (l *Lane) SlotsInOrder() []SlotPosition {
	nums := make([]int, 0, len(l.slots))
	for n := range l.slots {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	ordered := make([]SlotPosition, len(nums))
	for i, n := range nums {
		ordered[i] = SlotPosition{Slot: n, Entry: l.slots[n]}
	}
	return ordered
}

// ContentIDsInOrder returns the content ids of all occupied slots in
// ascending slot order. Used by the buffer manager to plan prefetches
// without touching lane internals.
func (l *Lane) ContentIDsInOrder() []string {
	ordered := l.SlotsInOrder()
	ids := make([]string, len(ordered))
	for i, sp := range ordered {
		ids[i] = sp.Entry.ContentID
	}
	return ids
}

// Len returns the number of occupied slots.
func (l *Lane) Len() int {
	return len(l.slots)
}

// Empty reports whether the lane has no entries.
func (l *Lane) Empty() bool {
	return len(l.slots) == 0
}

// clone returns a deep copy, used for rollback snapshots.
func (l *Lane) clone() *Lane {
	c := &Lane{
		slots:           make(map[int]*SlotEntry, len(l.slots)),
		ActiveContentID: l.ActiveContentID,
		SourceID:        l.SourceID,
	}
	for n, e := range l.slots {
		c.slots[n] = e.clone()
	}
	return c
}
