package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trihelix/internal/schedule"
	"github.com/abhisek/trihelix/internal/syncer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// wireFixture builds a small but non-trivial wire state.
func wireFixture(t *testing.T, cycles int) syncer.WireState {
	t.Helper()
	st := schedule.NewState()
	lane := st.Lane(schedule.Lane1)
	lane.SourceID = "pack-1"
	lane.SetSlot(0, &schedule.SlotEntry{ContentID: "a", Interval: 1, DistractorTier: 1})
	lane.SetSlot(1, &schedule.SlotEntry{ContentID: "b", Interval: 3, DistractorTier: 2})
	st.CycleCount = cycles
	st.Touch(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(cycles) * time.Minute))
	return syncer.Encode(st)
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "kid-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	if err := repo.Save(ctx, "kid-1", wireFixture(t, 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, "kid-1", wireFixture(t, 2)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err = repo.Latest(ctx, "kid-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.State.CycleCount != 2 {
		t.Errorf("cycle count = %d, want 2", snap.State.CycleCount)
	}
	if got := len(snap.State.Lanes); got != schedule.LaneCount {
		t.Errorf("lanes = %d, want %d", got, schedule.LaneCount)
	}

	// Other learners see nothing.
	other, err := repo.Latest(ctx, "kid-2")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if other != nil {
		t.Errorf("expected nil snapshot for other learner, got %+v", other)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := repo.Save(ctx, "kid-1", wireFixture(t, i)); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "kid-1", 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}

	// The survivors are the most recent ones.
	snap, err := repo.Latest(ctx, "kid-1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap.State.CycleCount != 5 {
		t.Errorf("latest cycle count = %d, want 5", snap.State.CycleCount)
	}
}

func TestMutationLogAppendPendingClear(t *testing.T) {
	s := openTestStore(t)
	log := s.MutationLog("kid-1")
	ctx := context.Background()

	pending, err := log.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending = %d, want 0", len(pending))
	}

	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	want := []syncer.Mutation{
		{ID: uuid.New(), Lane: 1, Perfect: true, At: at},
		{ID: uuid.New(), Lane: 2, Perfect: false, At: at.Add(time.Minute)},
		{ID: uuid.New(), Lane: 3, Perfect: true, At: at.Add(2 * time.Minute)},
	}
	for _, m := range want {
		if err := log.Append(ctx, m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	pending, err = log.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != len(want) {
		t.Fatalf("pending = %d, want %d", len(pending), len(want))
	}
	for i := range want {
		if pending[i].ID != want[i].ID {
			t.Errorf("pending[%d].ID = %s, want %s", i, pending[i].ID, want[i].ID)
		}
		if pending[i].Lane != want[i].Lane || pending[i].Perfect != want[i].Perfect {
			t.Errorf("pending[%d] = %+v, want %+v", i, pending[i], want[i])
		}
	}

	// Another learner's log is independent.
	otherPending, err := s.MutationLog("kid-2").Pending(ctx)
	if err != nil {
		t.Fatalf("Pending (other): %v", err)
	}
	if len(otherPending) != 0 {
		t.Errorf("other learner pending = %d, want 0", len(otherPending))
	}

	if err := log.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	pending, err = log.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after clear = %d, want 0", len(pending))
	}
}

func TestRemoteStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RemoteStateRepo()
	ctx := context.Background()

	raw, err := repo.Load(ctx, "kid-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil payload, got %s", raw)
	}

	if err := repo.Save(ctx, "kid-1", wireFixture(t, 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Saving again exercises the upsert path.
	if err := repo.Save(ctx, "kid-1", wireFixture(t, 7)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err = repo.Load(ctx, "kid-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if raw == nil {
		t.Fatal("expected payload")
	}

	w, err := syncer.DecodeRaw(raw)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if w.CycleCount != 7 {
		t.Errorf("cycle count = %d, want 7", w.CycleCount)
	}
}
