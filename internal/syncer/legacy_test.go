package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRaw_CanonicalShape(t *testing.T) {
	raw := []byte(`{
		"version": 2,
		"active_lane": 1,
		"cycle_count": 7,
		"last_mutated_at": "2026-03-01T12:00:00Z",
		"lanes": [
			{"lane": 1, "active_content_id": "a", "entries": [
				{"slot": 0, "content_id": "a", "interval": 3, "distractor_tier": 2, "perfect_count": 1},
				{"slot": 3, "content_id": "b", "interval": 1, "distractor_tier": 1}
			]}
		]
	}`)

	w, err := DecodeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, w.CycleCount)
	require.Len(t, w.Lanes, 1)
	require.Len(t, w.Lanes[0].Entries, 2)
	assert.Equal(t, 3, w.Lanes[0].Entries[0].Interval)
	assert.Equal(t, 3, w.Lanes[0].Entries[1].Slot)
}

func TestDecodeRaw_SlotMapShape(t *testing.T) {
	raw := []byte(`{
		"active_lane": 1,
		"lanes": [
			{"lane": 2, "entries": {
				"10": {"content_id": "c", "interval": 5},
				"0": {"content_id": "a"},
				"3": {"content_id": "b", "distractor_tier": 3}
			}}
		]
	}`)

	w, err := DecodeRaw(raw)
	require.NoError(t, err)
	entries := w.Lanes[0].Entries
	require.Len(t, entries, 3)

	// Ascending slot order, defaults filled where the source was silent.
	assert.Equal(t, []int{0, 3, 10}, []int{entries[0].Slot, entries[1].Slot, entries[2].Slot})
	assert.Equal(t, "a", entries[0].ContentID)
	assert.Equal(t, DefaultInterval, entries[0].Interval)
	assert.Equal(t, DefaultDistractorTier, entries[0].DistractorTier)
	assert.Equal(t, 3, entries[1].DistractorTier)
	assert.Equal(t, 5, entries[2].Interval)
}

func TestDecodeRaw_PositionedArrayShape(t *testing.T) {
	raw := []byte(`{
		"active_lane": 1,
		"lanes": [
			{"lane": 1, "entries": [
				{"position": 2, "content_id": "c", "interval": 10},
				{"position": 0, "content_id": "a"},
				{"position": 1, "content_id": "b"}
			]}
		]
	}`)

	w, err := DecodeRaw(raw)
	require.NoError(t, err)
	entries := w.Lanes[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ContentID)
	assert.Equal(t, "b", entries[1].ContentID)
	assert.Equal(t, "c", entries[2].ContentID)
	assert.Equal(t, 10, entries[2].Interval)
	assert.Equal(t, DefaultInterval, entries[0].Interval)
}

func TestDecodeRaw_IDListShape(t *testing.T) {
	raw := []byte(`{
		"active_lane": 3,
		"lanes": [
			{"lane": 3, "entries": ["s-1", "s-2", "s-3"]}
		]
	}`)

	w, err := DecodeRaw(raw)
	require.NoError(t, err)
	entries := w.Lanes[0].Entries
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.Slot)
		assert.Equal(t, DefaultInterval, e.Interval)
		assert.Equal(t, DefaultDistractorTier, e.DistractorTier)
	}
	assert.Equal(t, "s-2", entries[1].ContentID)
}

func TestDecodeRaw_UnknownShapeRejected(t *testing.T) {
	raw := []byte(`{
		"active_lane": 1,
		"lanes": [{"lane": 1, "entries": 42}]
	}`)
	_, err := DecodeRaw(raw)
	assert.Error(t, err)
}

func TestDecodeRaw_SlotMapBadKeyRejected(t *testing.T) {
	raw := []byte(`{
		"active_lane": 1,
		"lanes": [{"lane": 1, "entries": {"-1": {"content_id": "a"}}}]
	}`)
	_, err := DecodeRaw(raw)
	assert.Error(t, err)
}

func TestDetectEntriesShape_Disjoint(t *testing.T) {
	cases := []struct {
		raw  string
		want entriesShape
	}{
		{`[{"slot": 0, "content_id": "a"}]`, shapeCanonical},
		{`{"0": {"content_id": "a"}}`, shapeSlotMap},
		{`[{"position": 0, "content_id": "a"}]`, shapePositioned},
		{`["a", "b"]`, shapeIDList},
		{`[]`, shapeCanonical}, // ambiguous empty array resolves by detection order
	}
	for _, c := range cases {
		got, err := detectEntriesShape([]byte(c.raw))
		require.NoError(t, err, c.raw)
		assert.Equal(t, c.want, got, c.raw)
	}
}
