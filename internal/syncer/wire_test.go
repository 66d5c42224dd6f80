package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trihelix/internal/schedule"
)

func buildState(t *testing.T) *schedule.State {
	t.Helper()
	st := schedule.NewState()
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		lane := st.Lane(id)
		lane.SourceID = "pack-7"
		for n := 0; n < 4; n++ {
			lane.SetSlot(n, &schedule.SlotEntry{
				ContentID:      string(rune('a'+int(id))) + "-" + string(rune('0'+n)),
				Interval:       1,
				DistractorTier: 1,
			})
		}
	}
	st.Touch(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return st
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	st := buildState(t)
	// Mutate a little so the state is not pristine.
	_, err := st.RecordOutcome(true, time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = st.RecordOutcome(false, time.Date(2026, 3, 1, 12, 6, 0, 0, time.UTC))
	require.NoError(t, err)

	restored, err := Decode(Encode(st))
	require.NoError(t, err)

	assert.Equal(t, st.Active, restored.Active)
	assert.Equal(t, st.CycleCount, restored.CycleCount)
	assert.True(t, st.LastMutatedAt.Equal(restored.LastMutatedAt))

	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		want := st.Lane(id).SlotsInOrder()
		got := restored.Lane(id).SlotsInOrder()
		require.Len(t, got, len(want), "lane %d", id)
		for i := range want {
			assert.Equal(t, want[i].Slot, got[i].Slot, "lane %d", id)
			assert.Equal(t, want[i].Entry.ContentID, got[i].Entry.ContentID, "lane %d slot %d", id, want[i].Slot)
			assert.Equal(t, want[i].Entry.Interval, got[i].Entry.Interval)
			assert.Equal(t, want[i].Entry.PerfectCount, got[i].Entry.PerfectCount)
		}
		assert.Equal(t, st.Lane(id).ActiveContentID, restored.Lane(id).ActiveContentID, "lane %d", id)
		assert.Equal(t, st.Lane(id).SourceID, restored.Lane(id).SourceID, "lane %d", id)
	}
}

func TestEncode_OmitsContentBodies(t *testing.T) {
	// The wire shape carries position records only; there is nowhere
	// to put a content body.
	w := Encode(buildState(t))
	require.Len(t, w.Lanes, 3)
	for _, lane := range w.Lanes {
		for _, e := range lane.Entries {
			assert.NotEmpty(t, e.ContentID)
		}
	}
	assert.Equal(t, WireVersion, w.Version)
}

func TestDecode_FillsDefaults(t *testing.T) {
	w := WireState{
		ActiveLane: 2,
		Lanes: []WireLane{
			{Lane: 1, Entries: []WireEntry{{Slot: 0, ContentID: "x"}}},
		},
	}
	st, err := Decode(w)
	require.NoError(t, err)

	e, ok := st.Lane(schedule.Lane1).Slot(0)
	require.True(t, ok)
	assert.Equal(t, DefaultInterval, e.Interval)
	assert.Equal(t, DefaultDistractorTier, e.DistractorTier)
	assert.Equal(t, schedule.Lane2, st.Active)
}

func TestDecode_RejectsInvalidLane(t *testing.T) {
	_, err := Decode(WireState{ActiveLane: 5})
	assert.Error(t, err)

	_, err = Decode(WireState{ActiveLane: 1, Lanes: []WireLane{{Lane: 9}}})
	assert.Error(t, err)
}

func TestDecode_RejectsNonEmptyLaneWithoutSlotZero(t *testing.T) {
	w := WireState{
		ActiveLane: 1,
		Lanes: []WireLane{
			{Lane: 1, Entries: []WireEntry{
				{Slot: 1, ContentID: "a", Interval: 1, DistractorTier: 1},
				{Slot: 2, ContentID: "b", Interval: 3, DistractorTier: 1},
			}},
		},
	}
	_, err := Decode(w)
	assert.Error(t, err, "a lane with entries but no slot 0 has no servable item")

	// An entirely empty lane stays acceptable.
	w.Lanes[0].Entries = nil
	_, err = Decode(w)
	assert.NoError(t, err)
}

func TestDecode_SlotZeroRefreshesActiveContentID(t *testing.T) {
	w := WireState{
		ActiveLane: 1,
		Lanes: []WireLane{
			{Lane: 1, ActiveContentID: "stale", Entries: []WireEntry{
				{Slot: 0, ContentID: "fresh", Interval: 1, DistractorTier: 1},
			}},
		},
	}
	st, err := Decode(w)
	require.NoError(t, err)
	assert.Equal(t, "fresh", st.Lane(schedule.Lane1).ActiveContentID)
}
