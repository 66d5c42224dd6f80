package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trihelix/internal/schedule"
)

// fakeRemote is an in-memory RemoteStore recording every save.
type fakeRemote struct {
	mu            sync.Mutex
	saved         []WireState
	raw           json.RawMessage
	block         chan struct{}
	entered       chan struct{}
	failRemaining int
}

func (f *fakeRemote) Load(_ context.Context, _ string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw, nil
}

func (f *fakeRemote) Save(_ context.Context, _ string, state WireState) error {
	f.mu.Lock()
	block := f.block
	entered := f.entered
	f.entered = nil
	f.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if block != nil {
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemaining > 0 {
		f.failRemaining--
		return errors.New("remote unavailable")
	}
	f.saved = append(f.saved, state)
	b, _ := json.Marshal(state)
	f.raw = b
	return nil
}

func (f *fakeRemote) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

// memLog is an in-memory MutationLog.
type memLog struct {
	mu      sync.Mutex
	pending []Mutation
	cleared int
}

func (l *memLog) Append(_ context.Context, m Mutation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, m)
	return nil
}

func (l *memLog) Pending(_ context.Context) ([]Mutation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Mutation(nil), l.pending...), nil
}

func (l *memLog) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = nil
	l.cleared++
	return nil
}

func seededState(t *testing.T, mutatedAt time.Time) *schedule.State {
	t.Helper()
	st := schedule.NewState()
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		for n := 0; n < 5; n++ {
			st.Lane(id).SetSlot(n, &schedule.SlotEntry{
				ContentID:      string(rune('a'+int(id))) + "-" + string(rune('0'+n)),
				Interval:       1,
				DistractorTier: 1,
			})
		}
	}
	st.Touch(mutatedAt)
	return st
}

func TestSave_NoOpWhenUnchanged(t *testing.T) {
	remote := &fakeRemote{}
	a := NewAdapter(remote, nil, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, st.Clone))
	require.NoError(t, a.Save(ctx, st.Clone))

	assert.Equal(t, 1, remote.saveCount(), "unchanged state must not issue a second write")
}

func TestSave_AfterMutationWritesAgain(t *testing.T) {
	remote := &fakeRemote{}
	a := NewAdapter(remote, nil, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, st.Clone))
	_, err := st.RecordOutcome(true, time.Date(2026, 3, 1, 8, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, st.Clone))

	assert.Equal(t, 2, remote.saveCount())
}

func TestSave_CoalescesWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	remote := &fakeRemote{block: make(chan struct{}), entered: entered}
	a := NewAdapter(remote, nil, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- a.Save(ctx, st.Clone) }()
	<-entered // first save is in flight

	// Mutate and request another save while the first is in flight:
	// it must return immediately and fold into a follow-up write.
	_, err := st.RecordOutcome(true, time.Date(2026, 3, 1, 8, 2, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, st.Clone))
	assert.Equal(t, 0, remote.saveCount(), "coalesced request must not write directly")

	close(remote.block)
	require.NoError(t, <-done)

	assert.Equal(t, 2, remote.saveCount(), "in-flight save plus one coalesced follow-up")
}

func TestSave_CoalescedRequestSurvivesFailedFlight(t *testing.T) {
	entered := make(chan struct{})
	remote := &fakeRemote{block: make(chan struct{}), entered: entered, failRemaining: 1}
	a := NewAdapter(remote, nil, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- a.Save(ctx, st.Clone) }()
	<-entered // first save is in flight, and will fail

	mutated := time.Date(2026, 3, 1, 8, 2, 0, 0, time.UTC)
	_, err := st.RecordOutcome(true, mutated)
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, st.Clone))

	close(remote.block)
	require.NoError(t, <-done, "the follow-up write succeeded, so the call does")

	// The failed flight wrote nothing; the coalesced follow-up carries
	// the post-mutation state.
	require.Equal(t, 1, remote.saveCount())
	assert.True(t, remote.saved[0].LastMutatedAt.Equal(mutated))
	a.mu.Lock()
	assert.True(t, a.lastSavedAt.Equal(mutated))
	a.mu.Unlock()
}

func TestSave_ClearsMutationLogOnConfirm(t *testing.T) {
	remote := &fakeRemote{}
	log := &memLog{}
	a := NewAdapter(remote, log, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, a.Record(ctx, schedule.Lane1, true, st.LastMutatedAt))
	require.NoError(t, a.Save(ctx, st.Clone))

	pending, err := log.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 1, log.cleared)
}

func TestSave_ResetDuringFlightDiscardsResult(t *testing.T) {
	entered := make(chan struct{})
	remote := &fakeRemote{block: make(chan struct{}), entered: entered}
	log := &memLog{}
	a := NewAdapter(remote, log, "learner-1")
	st := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, a.Record(ctx, schedule.Lane1, true, st.LastMutatedAt))

	done := make(chan error, 1)
	go func() { done <- a.Save(ctx, st.Clone) }()
	<-entered // first save is in flight

	// Full reset supersedes the in-flight save.
	st.Reset(time.Date(2026, 3, 1, 8, 3, 0, 0, time.UTC))
	close(remote.block)
	require.NoError(t, <-done)

	// The write completed but its confirmation was discarded: the log
	// survives and the next save is not treated as a no-op.
	pending, err := log.Pending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	a.mu.Lock()
	assert.True(t, a.lastSavedAt.IsZero())
	a.mu.Unlock()
}

func TestLoad_NoRemoteKeepsLocal(t *testing.T) {
	a := NewAdapter(&fakeRemote{}, nil, "learner-1")
	local := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	got, conflict, err := a.Load(context.Background(), local)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	assert.Same(t, local, got)
}

func TestLoad_LastWriteWins_LocalNewer(t *testing.T) {
	remote := &fakeRemote{}
	a := NewAdapter(remote, nil, "learner-1")
	ctx := context.Background()

	older := seededState(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, a.Save(ctx, older.Clone))

	local := seededState(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	got, conflict, err := a.Load(ctx, local)
	require.NoError(t, err)
	require.NotNil(t, conflict, "ignored remote snapshot must be reported")
	assert.Same(t, local, got)
	assert.True(t, conflict.LocalMutatedAt.After(conflict.RemoteMutatedAt))
}

func TestLoad_RemoteNewerAdoptedAndPendingReplayed(t *testing.T) {
	remote := &fakeRemote{}
	log := &memLog{}
	a := NewAdapter(remote, log, "learner-1")
	ctx := context.Background()

	server := seededState(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, a.Save(ctx, server.Clone))

	// One perfect outcome happened offline on lane 1 after the remote
	// snapshot was taken.
	at := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	require.NoError(t, a.Record(ctx, schedule.Lane1, true, at))

	local := seededState(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	got, conflict, err := a.Load(ctx, local)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	require.NotSame(t, local, got)

	// The replayed perfect outcome reordered lane 1 and rotated.
	assert.Equal(t, schedule.Lane2, got.Active)
	e, ok := got.Lane(schedule.Lane1).Slot(3)
	require.True(t, ok)
	assert.Equal(t, 3, e.Interval)
	assert.Equal(t, 1, e.PerfectCount)
}

func TestReplay_SkipsLaneMismatch(t *testing.T) {
	st := seededState(t, time.Now())
	// Active lane is 1; a mutation recorded against lane 3 predates the
	// snapshot and must not re-apply.
	applied := Replay(st, []Mutation{{Lane: 3, Perfect: true, At: time.Now()}})
	assert.Equal(t, 0, applied)
	assert.Equal(t, schedule.Lane1, st.Active)
}
