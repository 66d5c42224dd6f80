package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/trihelix/internal/buffer"
	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/schedule"
	"github.com/abhisek/trihelix/internal/syncer"
)

// stubSource serves every id it is asked for.
type stubSource struct {
	mu      sync.Mutex
	batches int
}

func (s *stubSource) FetchBatch(_ context.Context, ids []string) (map[string]content.Body, error) {
	s.mu.Lock()
	s.batches++
	s.mu.Unlock()
	got := make(map[string]content.Body, len(ids))
	for _, id := range ids {
		got[id] = content.Body{ContentID: id, Question: "q:" + id, Answer: "42"}
	}
	return got, nil
}

// stubRemote keeps the latest save in memory.
type stubRemote struct {
	mu    sync.Mutex
	saves int
	raw   json.RawMessage
}

func (r *stubRemote) Load(_ context.Context, _ string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.raw, nil
}

func (r *stubRemote) Save(_ context.Context, _ string, w syncer.WireState) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.raw = b
	return nil
}

func (r *stubRemote) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func seedAll(s *Session) {
	ids := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = prefix + "-" + string(rune('a'+i))
		}
		return out
	}
	s.Seed(schedule.Lane1, "pack-1", ids("l1", 6))
	s.Seed(schedule.Lane2, "pack-1", ids("l2", 6))
	s.Seed(schedule.Lane3, "pack-2", ids("l3", 6))
}

func TestCurrentItem_MaterializesBody(t *testing.T) {
	src := &stubSource{}
	s := New(Options{Source: src})
	seedAll(s)

	item, err := s.CurrentItem(context.Background())
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if item.Lane != schedule.Lane1 {
		t.Errorf("lane = %d, want %d", item.Lane, schedule.Lane1)
	}
	if item.ContentID != "l1-a" {
		t.Errorf("content id = %q, want %q", item.ContentID, "l1-a")
	}
	if item.Body.Question != "q:l1-a" {
		t.Errorf("body question = %q", item.Body.Question)
	}

	waitUntil(t, "phase 1 load", func() bool {
		return s.Buffer().PhaseLoaded(schedule.Lane1, buffer.Phase1)
	})
}

func TestCurrentItem_EmptyLane(t *testing.T) {
	s := New(Options{Source: &stubSource{}})

	_, err := s.CurrentItem(context.Background())
	var emptyErr *schedule.EmptyLaneError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want *EmptyLaneError", err)
	}
}

func TestRecordOutcome_RotatesAndPrefetchesNextLane(t *testing.T) {
	src := &stubSource{}
	s := New(Options{Source: src})
	seedAll(s)
	ctx := context.Background()

	if _, err := s.RecordOutcome(ctx, false); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	item, err := s.CurrentItem(ctx)
	if err != nil {
		t.Fatalf("CurrentItem: %v", err)
	}
	if item.Lane != schedule.Lane2 {
		t.Errorf("lane = %d, want %d", item.Lane, schedule.Lane2)
	}

	waitUntil(t, "lane 2 phase 1 load", func() bool {
		return s.Buffer().PhaseLoaded(schedule.Lane2, buffer.Phase1)
	})
}

func TestRecordOutcome_TriggersDebouncedSync(t *testing.T) {
	remote := &stubRemote{}
	s := New(Options{Source: &stubSource{}, Remote: remote, LearnerID: "kid-1"})
	seedAll(s)

	if _, err := s.RecordOutcome(context.Background(), true); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	waitUntil(t, "background sync", func() bool { return remote.saveCount() >= 1 })
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s := New(Options{Source: &stubSource{}})
	seedAll(s)
	ctx := context.Background()

	for _, perfect := range []bool{true, false, true, true} {
		if _, err := s.RecordOutcome(ctx, perfect); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	snap := s.Snapshot()

	restored := New(Options{Source: &stubSource{}})
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	a, b := s.StateSnapshot(), restored.StateSnapshot()
	if a.Active != b.Active || a.CycleCount != b.CycleCount {
		t.Errorf("rotation mismatch: (%d, %d) vs (%d, %d)", a.Active, a.CycleCount, b.Active, b.CycleCount)
	}
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		wantSlots := a.Lane(id).SlotsInOrder()
		gotSlots := b.Lane(id).SlotsInOrder()
		if len(wantSlots) != len(gotSlots) {
			t.Fatalf("lane %d: %d slots vs %d", id, len(wantSlots), len(gotSlots))
		}
		for i := range wantSlots {
			w, g := wantSlots[i], gotSlots[i]
			if w.Slot != g.Slot || w.Entry.ContentID != g.Entry.ContentID || w.Entry.Interval != g.Entry.Interval {
				t.Errorf("lane %d slot %d: (%q, %d) vs (%q, %d)",
					id, w.Slot, w.Entry.ContentID, w.Entry.Interval, g.Entry.ContentID, g.Entry.Interval)
			}
		}
	}
}

func TestIdleTick_DeepensAfterQuietPeriod(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := New(Options{Source: &stubSource{}, Clock: clock})
	seedAll(s)
	ctx := context.Background()

	if _, err := s.RecordOutcome(ctx, false); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	waitUntil(t, "phase 1 load", func() bool {
		return s.Buffer().PhaseLoaded(schedule.Lane2, buffer.Phase1)
	})

	// Still inside the quiet period: nothing deepens.
	s.IdleTick(ctx)
	if s.Buffer().PhaseLoaded(schedule.Lane2, buffer.Phase2) {
		t.Fatal("phase 2 loaded before quiet period elapsed")
	}

	now = now.Add(6 * time.Second)
	s.IdleTick(ctx)
	if !s.Buffer().PhaseLoaded(schedule.Lane2, buffer.Phase2) {
		t.Error("phase 2 not loaded after quiet period")
	}
}

func TestLoadRemote_AdoptsRemoteForFreshSession(t *testing.T) {
	remote := &stubRemote{}
	ctx := context.Background()

	first := New(Options{Source: &stubSource{}, Remote: remote, LearnerID: "kid-1"})
	seedAll(first)
	if _, err := first.RecordOutcome(ctx, true); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	// The post-outcome state is stable, so any completed save carries it.
	waitUntil(t, "first session sync", func() bool { return remote.saveCount() >= 1 })

	resumed := New(Options{Source: &stubSource{}, Remote: remote, LearnerID: "kid-1"})
	conflict, err := resumed.LoadRemote(ctx)
	if err != nil {
		t.Fatalf("LoadRemote: %v", err)
	}
	if conflict != nil {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}

	a, b := first.StateSnapshot(), resumed.StateSnapshot()
	if a.Active != b.Active || a.CycleCount != b.CycleCount {
		t.Errorf("rotation mismatch after resume")
	}
	if got := b.Lane(schedule.Lane1).ActiveContentID; got != a.Lane(schedule.Lane1).ActiveContentID {
		t.Errorf("lane 1 active id = %q, want %q", got, a.Lane(schedule.Lane1).ActiveContentID)
	}
}
