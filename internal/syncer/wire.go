// Package syncer reconciles the in-memory scheduling state with a
// remote copy. It owns the minimal wire representation (ids and
// positions only, never content bodies), normalizes the legacy shapes
// older clients persisted, and debounces saves so at most one write is
// in flight at a time.
package syncer

import (
	"fmt"
	"time"

	"github.com/abhisek/trihelix/internal/schedule"
)

// WireVersion is the canonical wire format version written on save.
const WireVersion = 2

// Default values filled in for fields a legacy source omitted.
const (
	DefaultInterval       = 1
	DefaultDistractorTier = 1
)

// WireEntry is one slot position on the wire.
type WireEntry struct {
	Slot            int    `json:"slot"`
	ContentID       string `json:"content_id"`
	Interval        int    `json:"interval"`
	DistractorTier  int    `json:"distractor_tier"`
	PerfectCount    int    `json:"perfect_count,omitempty"`
	LastCompletedAt string `json:"last_completed_at,omitempty"`
}

// WireLane is one lane's ordered layout on the wire.
type WireLane struct {
	Lane            int         `json:"lane"`
	SourceID        string      `json:"source_id,omitempty"`
	ActiveContentID string      `json:"active_content_id"`
	Entries         []WireEntry `json:"entries"`
}

// WireState is the minimal persisted representation of the scheduler:
// rotation bookkeeping plus per-lane slot layouts. Content bodies are
// never included.
type WireState struct {
	Version       int        `json:"version"`
	ActiveLane    int        `json:"active_lane"`
	CycleCount    int        `json:"cycle_count"`
	LastMutatedAt time.Time  `json:"last_mutated_at"`
	Lanes         []WireLane `json:"lanes"`
}

// Encode produces the wire representation of st. Lanes appear in lane
// order and entries in ascending slot order.
func Encode(st *schedule.State) WireState {
	w := WireState{
		Version:       WireVersion,
		ActiveLane:    int(st.Active),
		CycleCount:    st.CycleCount,
		LastMutatedAt: st.LastMutatedAt,
		Lanes:         make([]WireLane, 0, schedule.LaneCount),
	}
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		lane := st.Lane(id)
		wl := WireLane{
			Lane:            int(id),
			SourceID:        lane.SourceID,
			ActiveContentID: lane.ActiveContentID,
			Entries:         make([]WireEntry, 0, lane.Len()),
		}
		for _, sp := range lane.SlotsInOrder() {
			we := WireEntry{
				Slot:           sp.Slot,
				ContentID:      sp.Entry.ContentID,
				Interval:       sp.Entry.Interval,
				DistractorTier: sp.Entry.DistractorTier,
				PerfectCount:   sp.Entry.PerfectCount,
			}
			if sp.Entry.LastCompletedAt != nil {
				we.LastCompletedAt = sp.Entry.LastCompletedAt.Format(time.RFC3339)
			}
			wl.Entries = append(wl.Entries, we)
		}
		w.Lanes = append(w.Lanes, wl)
	}
	return w
}

// Decode builds scheduler state from a wire snapshot. Absent interval
// and distractor-tier values take their defaults; malformed timestamps
// are dropped rather than failing the load. A non-empty lane whose
// slot 0 is unoccupied is rejected: such a layout could only serve
// EmptyLaneError later, so the bad snapshot fails here instead.
func Decode(w WireState) (*schedule.State, error) {
	st := schedule.NewState()

	active := schedule.LaneID(w.ActiveLane)
	if w.ActiveLane == 0 {
		active = schedule.Lane1
	}
	if !active.Valid() {
		return nil, fmt.Errorf("wire state: invalid active lane %d", w.ActiveLane)
	}
	st.Active = active
	st.CycleCount = w.CycleCount
	st.LastMutatedAt = w.LastMutatedAt

	for _, wl := range w.Lanes {
		id := schedule.LaneID(wl.Lane)
		if !id.Valid() {
			return nil, fmt.Errorf("wire state: invalid lane %d", wl.Lane)
		}
		lane := st.Lane(id)
		lane.SourceID = wl.SourceID
		for _, we := range wl.Entries {
			if we.Slot < 0 {
				return nil, fmt.Errorf("wire state: lane %d has negative slot %d", wl.Lane, we.Slot)
			}
			entry := &schedule.SlotEntry{
				ContentID:      we.ContentID,
				Interval:       we.Interval,
				DistractorTier: we.DistractorTier,
				PerfectCount:   we.PerfectCount,
			}
			if entry.Interval == 0 {
				entry.Interval = DefaultInterval
			}
			if entry.DistractorTier == 0 {
				entry.DistractorTier = DefaultDistractorTier
			}
			if we.LastCompletedAt != "" {
				if t, err := time.Parse(time.RFC3339, we.LastCompletedAt); err == nil {
					entry.LastCompletedAt = &t
				}
			}
			lane.SetSlot(we.Slot, entry)
		}
		if !lane.Empty() {
			if _, ok := lane.Slot(0); !ok {
				return nil, fmt.Errorf("wire state: lane %d is non-empty but slot 0 is unoccupied", wl.Lane)
			}
		}
	}
	return st, nil
}
