package buffer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/schedule"
)

// fakeSource serves bodies from a fixed set and records every batch.
type fakeSource struct {
	mu      sync.Mutex
	known   map[string]content.Body
	batches [][]string
	err     error

	// block, when non-nil, is received from before each fetch returns.
	block chan struct{}
}

func newFakeSource(ids ...string) *fakeSource {
	known := make(map[string]content.Body, len(ids))
	for _, id := range ids {
		known[id] = content.Body{ContentID: id, Question: "q:" + id, Answer: "a"}
	}
	return &fakeSource{known: known}
}

func (f *fakeSource) FetchBatch(_ context.Context, ids []string) (map[string]content.Body, error) {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), ids...))
	block := f.block
	err := f.err
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	got := make(map[string]content.Body)
	f.mu.Lock()
	for _, id := range ids {
		if b, ok := f.known[id]; ok {
			got[id] = b
		}
	}
	f.mu.Unlock()
	return got, err
}

func (f *fakeSource) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "s-" + string(rune('a'+i/26)) + string(rune('a'+i%26))
	}
	return out
}

func TestEnsureActive_FetchesOnceAndCaches(t *testing.T) {
	src := newFakeSource("s-aa")
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	if err := m.EnsureActive(ctx, schedule.Lane1, "s-aa"); err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if err := m.EnsureActive(ctx, schedule.Lane1, "s-aa"); err != nil {
		t.Fatalf("EnsureActive (cached): %v", err)
	}
	if src.batchCount() != 1 {
		t.Errorf("batch calls = %d, want 1", src.batchCount())
	}
	if _, ok := m.Body("s-aa"); !ok {
		t.Error("body not cached")
	}
}

func TestEnsureActive_MissingBodyFails(t *testing.T) {
	src := newFakeSource() // knows nothing
	m := NewManager(src, DefaultConfig())

	err := m.EnsureActive(context.Background(), schedule.Lane2, "s-zz")
	var partial *FetchPartialError
	if !errors.As(err, &partial) {
		t.Fatalf("err = %v, want *FetchPartialError", err)
	}
	if partial.Lane != schedule.Lane2 {
		t.Errorf("error lane = %d, want %d", partial.Lane, schedule.Lane2)
	}
	if partial.Phase != Phase0 {
		t.Errorf("error phase = %d, want %d", partial.Phase, Phase0)
	}
}

func TestPrefetch_Phase1Idempotent(t *testing.T) {
	all := ids(20)
	src := newFakeSource(all...)
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("Prefetch (repeat): %v", err)
	}

	if src.batchCount() != 1 {
		t.Errorf("batch calls = %d, want 1", src.batchCount())
	}
	if !m.PhaseLoaded(schedule.Lane1, Phase1) {
		t.Error("phase 1 not marked loaded")
	}
	if got := len(src.batches[0]); got != 10 {
		t.Errorf("batch size = %d, want 10", got)
	}
}

func TestPrefetch_BatchExcludesMaterialized(t *testing.T) {
	all := ids(20)
	src := newFakeSource(all...)
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	if err := m.EnsureActive(ctx, schedule.Lane1, all[0]); err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("Prefetch: %v", err)
	}

	// Second call covers slots 0..9; slot 0 is already cached.
	last := src.batches[len(src.batches)-1]
	if len(last) != 9 {
		t.Errorf("batch size = %d, want 9 (active item excluded)", len(last))
	}
}

func TestPrefetch_InFlightCallIgnored(t *testing.T) {
	all := ids(10)
	src := newFakeSource(all...)
	src.block = make(chan struct{})
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- m.Prefetch(ctx, schedule.Lane1, Phase1, all) }()

	// Wait for the first fetch to be issued, then re-enter.
	for src.batchCount() == 0 {
		time.Sleep(time.Millisecond)
	}
	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("re-entrant Prefetch: %v", err)
	}
	if src.batchCount() != 1 {
		t.Errorf("batch calls = %d, want 1 (re-entrant call ignored)", src.batchCount())
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
}

func TestPrefetch_PartialKeepsBodiesAndStaysRetryable(t *testing.T) {
	all := ids(10)
	src := newFakeSource(all[:6]...) // last four unknown
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	err := m.Prefetch(ctx, schedule.Lane1, Phase1, all)
	var partial *FetchPartialError
	if !errors.As(err, &partial) {
		t.Fatalf("err = %v, want *FetchPartialError", err)
	}
	if len(partial.Missing) != 4 {
		t.Errorf("missing = %v, want 4 ids", partial.Missing)
	}
	if m.PhaseLoaded(schedule.Lane1, Phase1) {
		t.Error("phase flag set despite partial fetch")
	}
	// Partial success is a success for the items that landed.
	if _, ok := m.Body(all[0]); !ok {
		t.Error("materialized body dropped on partial failure")
	}

	// Retry fetches only the still-missing tail and completes the phase.
	src.mu.Lock()
	for _, id := range all[6:] {
		src.known[id] = content.Body{ContentID: id}
	}
	src.mu.Unlock()

	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("retry Prefetch: %v", err)
	}
	last := src.batches[len(src.batches)-1]
	if len(last) != 4 {
		t.Errorf("retry batch size = %d, want 4", len(last))
	}
	if !m.PhaseLoaded(schedule.Lane1, Phase1) {
		t.Error("phase 1 not loaded after retry")
	}
}

func TestPrefetch_Phase2DepthAndSeparateFlag(t *testing.T) {
	all := ids(60)
	src := newFakeSource(all...)
	m := NewManager(src, DefaultConfig())
	ctx := context.Background()

	if err := m.Prefetch(ctx, schedule.Lane2, Phase1, all); err != nil {
		t.Fatalf("phase 1: %v", err)
	}
	if err := m.Prefetch(ctx, schedule.Lane2, Phase2, all); err != nil {
		t.Fatalf("phase 2: %v", err)
	}

	last := src.batches[len(src.batches)-1]
	if len(last) != 40 {
		t.Errorf("phase 2 batch size = %d, want 40 (50 minus 10 already cached)", len(last))
	}
	if !m.PhaseLoaded(schedule.Lane2, Phase2) {
		t.Error("phase 2 not marked loaded")
	}
}

func TestPrefetch_ShortLaneLoadsWithoutPadding(t *testing.T) {
	all := ids(4) // fewer entries than the phase depth
	src := newFakeSource(all...)
	m := NewManager(src, DefaultConfig())

	if err := m.Prefetch(context.Background(), schedule.Lane3, Phase1, all); err != nil {
		t.Fatalf("Prefetch: %v", err)
	}
	if got := len(src.batches[0]); got != 4 {
		t.Errorf("batch size = %d, want 4", got)
	}
	if !m.PhaseLoaded(schedule.Lane3, Phase1) {
		t.Error("phase 1 not loaded for short lane")
	}
}

func TestIdlePhase2Due(t *testing.T) {
	all := ids(10)
	src := newFakeSource(all...)
	cfg := DefaultConfig()
	m := NewManager(src, cfg)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.Touch(base)

	// Quiet period not yet elapsed.
	if m.IdlePhase2Due(schedule.Lane1, base.Add(2*time.Second)) {
		t.Error("due before quiet period elapsed")
	}

	// Quiet, but phase 1 incomplete.
	if m.IdlePhase2Due(schedule.Lane1, base.Add(6*time.Second)) {
		t.Error("due before phase 1 loaded")
	}

	if err := m.Prefetch(ctx, schedule.Lane1, Phase1, all); err != nil {
		t.Fatalf("phase 1: %v", err)
	}
	if !m.IdlePhase2Due(schedule.Lane1, base.Add(6*time.Second)) {
		t.Error("not due despite quiet period and loaded phase 1")
	}

	if err := m.Prefetch(ctx, schedule.Lane1, Phase2, all); err != nil {
		t.Fatalf("phase 2: %v", err)
	}
	if m.IdlePhase2Due(schedule.Lane1, base.Add(10*time.Second)) {
		t.Error("due after phase 2 already loaded")
	}
}

func TestReset_DiscardsInFlightResult(t *testing.T) {
	all := ids(10)
	src := newFakeSource(all...)
	src.block = make(chan struct{})
	m := NewManager(src, DefaultConfig())

	done := make(chan error, 1)
	go func() { done <- m.Prefetch(context.Background(), schedule.Lane1, Phase1, all) }()
	for src.batchCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	m.Reset()
	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("Prefetch: %v", err)
	}

	if _, ok := m.Body(all[0]); ok {
		t.Error("stale fetch result kept after reset")
	}
	if m.PhaseLoaded(schedule.Lane1, Phase1) {
		t.Error("phase flag set from a superseded fetch")
	}
}
