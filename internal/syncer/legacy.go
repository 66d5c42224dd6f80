package syncer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Older clients persisted a lane's ordering in one of three legacy
// shapes besides the canonical slotted-entry list:
//
//   - an explicit slot map: {"0": {...}, "3": {...}}
//   - an ordered array with an embedded position field
//   - a bare ordered array of content ids
//
// Each shape is modeled as an explicit variant of a tagged union. A
// lane's raw entries value is tagged by validating it against one
// declared JSON schema per variant and then decoded by that variant's
// conversion function; no variant is ever guessed by probing properties
// at runtime.

type entriesShape int

const (
	shapeCanonical entriesShape = iota
	shapeSlotMap
	shapePositioned
	shapeIDList
)

func (s entriesShape) String() string {
	switch s {
	case shapeCanonical:
		return "canonical"
	case shapeSlotMap:
		return "slot-map"
	case shapePositioned:
		return "positioned-array"
	case shapeIDList:
		return "id-list"
	}
	return "unknown"
}

type rawWireLane struct {
	Lane            int             `json:"lane"`
	SourceID        string          `json:"source_id"`
	ActiveContentID string          `json:"active_content_id"`
	Entries         json.RawMessage `json:"entries"`
}

type rawWireState struct {
	Version       int           `json:"version"`
	ActiveLane    int           `json:"active_lane"`
	CycleCount    int           `json:"cycle_count"`
	LastMutatedAt time.Time     `json:"last_mutated_at"`
	Lanes         []rawWireLane `json:"lanes"`
}

// DecodeRaw parses a wire document that may carry lane entries in the
// canonical shape or any of the legacy shapes, and returns the
// normalized canonical WireState.
func DecodeRaw(raw []byte) (WireState, error) {
	var doc rawWireState
	if err := json.Unmarshal(raw, &doc); err != nil {
		return WireState{}, fmt.Errorf("parse wire state: %w", err)
	}

	w := WireState{
		Version:       doc.Version,
		ActiveLane:    doc.ActiveLane,
		CycleCount:    doc.CycleCount,
		LastMutatedAt: doc.LastMutatedAt,
		Lanes:         make([]WireLane, 0, len(doc.Lanes)),
	}

	for _, rl := range doc.Lanes {
		entries, err := normalizeEntries(rl.Entries)
		if err != nil {
			return WireState{}, fmt.Errorf("lane %d: %w", rl.Lane, err)
		}
		w.Lanes = append(w.Lanes, WireLane{
			Lane:            rl.Lane,
			SourceID:        rl.SourceID,
			ActiveContentID: rl.ActiveContentID,
			Entries:         entries,
		})
	}
	return w, nil
}

// normalizeEntries tags the raw entries value and converts it through
// the matching variant's decoder.
func normalizeEntries(raw json.RawMessage) ([]WireEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	shape, err := detectEntriesShape(raw)
	if err != nil {
		return nil, err
	}
	switch shape {
	case shapeCanonical:
		return decodeCanonicalEntries(raw)
	case shapeSlotMap:
		return decodeSlotMapEntries(raw)
	case shapePositioned:
		return decodePositionedEntries(raw)
	case shapeIDList:
		return decodeIDListEntries(raw)
	}
	return nil, fmt.Errorf("unhandled entries shape %v", shape)
}

func decodeCanonicalEntries(raw json.RawMessage) ([]WireEntry, error) {
	var entries []WireEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode canonical entries: %w", err)
	}
	fillEntryDefaults(entries)
	return entries, nil
}

// legacyEntry carries the position-record fields shared by the slot-map
// and positioned-array shapes.
type legacyEntry struct {
	Position        int    `json:"position"`
	ContentID       string `json:"content_id"`
	Interval        int    `json:"interval"`
	DistractorTier  int    `json:"distractor_tier"`
	PerfectCount    int    `json:"perfect_count"`
	LastCompletedAt string `json:"last_completed_at"`
}

func (le legacyEntry) toWire(slot int) WireEntry {
	return WireEntry{
		Slot:            slot,
		ContentID:       le.ContentID,
		Interval:        le.Interval,
		DistractorTier:  le.DistractorTier,
		PerfectCount:    le.PerfectCount,
		LastCompletedAt: le.LastCompletedAt,
	}
}

func decodeSlotMapEntries(raw json.RawMessage) ([]WireEntry, error) {
	var m map[string]legacyEntry
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode slot-map entries: %w", err)
	}
	entries := make([]WireEntry, 0, len(m))
	for key, le := range m {
		slot, err := strconv.Atoi(key)
		if err != nil || slot < 0 {
			return nil, fmt.Errorf("slot-map key %q is not a non-negative slot", key)
		}
		entries = append(entries, le.toWire(slot))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slot < entries[j].Slot })
	fillEntryDefaults(entries)
	return entries, nil
}

func decodePositionedEntries(raw json.RawMessage) ([]WireEntry, error) {
	var list []legacyEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode positioned entries: %w", err)
	}
	entries := make([]WireEntry, 0, len(list))
	for _, le := range list {
		if le.Position < 0 {
			return nil, fmt.Errorf("entry %q has negative position %d", le.ContentID, le.Position)
		}
		entries = append(entries, le.toWire(le.Position))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slot < entries[j].Slot })
	fillEntryDefaults(entries)
	return entries, nil
}

func decodeIDListEntries(raw json.RawMessage) ([]WireEntry, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode id-list entries: %w", err)
	}
	entries := make([]WireEntry, len(ids))
	for i, id := range ids {
		entries[i] = WireEntry{Slot: i, ContentID: id}
	}
	fillEntryDefaults(entries)
	return entries, nil
}

func fillEntryDefaults(entries []WireEntry) {
	for i := range entries {
		if entries[i].Interval == 0 {
			entries[i].Interval = DefaultInterval
		}
		if entries[i].DistractorTier == 0 {
			entries[i].DistractorTier = DefaultDistractorTier
		}
	}
}
