// Package session owns the per-learner scheduling session: one
// explicitly constructed scheduler state plus the buffer manager and
// sync adapter around it. The presentation layer talks only to this
// facade: CurrentItem, RecordOutcome, Snapshot, Restore.
package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/trihelix/internal/buffer"
	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/schedule"
	"github.com/abhisek/trihelix/internal/syncer"
)

// Options configures a Session. Source is required; Remote and Log are
// optional (without them the session runs purely local).
type Options struct {
	LearnerID    string
	Source       content.Source
	Remote       syncer.RemoteStore
	Log          syncer.MutationLog
	BufferConfig buffer.Config

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Item is everything the presentation layer needs to play the current
// question. Body is the materialized content, fetched before return.
type Item struct {
	Lane           schedule.LaneID
	ContentID      string
	Interval       int
	DistractorTier int
	Body           content.Body
}

// Session serializes all scheduler mutations. Completion events arrive
// one at a time from the presentation layer, so the mutex is contended
// only by background prefetch and sync completions.
type Session struct {
	mu    sync.Mutex
	state *schedule.State

	buf     *buffer.Manager
	adapter *syncer.Adapter
	clock   func() time.Time
}

// New builds an empty session. Call Seed or Restore before playing.
func New(opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		state: schedule.NewState(),
		buf:   buffer.NewManager(opts.Source, opts.BufferConfig),
		clock: clock,
	}
	if opts.Remote != nil {
		s.adapter = syncer.NewAdapter(opts.Remote, opts.Log, opts.LearnerID)
	}
	return s
}

// Buffer exposes the content buffer, for the presentation layer to read
// materialized bodies and for idle-driven deepening.
func (s *Session) Buffer() *buffer.Manager {
	return s.buf
}

// Seed fills a lane with a contiguous starter layout: ids take slots
// 0..n-1 with the default interval and tier.
func (s *Session) Seed(laneID schedule.LaneID, sourceID string, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lane := s.state.Lane(laneID)
	lane.SourceID = sourceID
	for i, id := range ids {
		lane.SetSlot(i, &schedule.SlotEntry{
			ContentID:      id,
			Interval:       syncer.DefaultInterval,
			DistractorTier: syncer.DefaultDistractorTier,
		})
	}
	s.state.Touch(s.clock())
}

// CurrentItem returns the active item with its content materialized.
// The phase-0 fetch blocks: the learner cannot start a question whose
// body has not arrived. On success the phase-1 prefetch for the active
// lane kicks off in the background.
func (s *Session) CurrentItem(ctx context.Context) (*Item, error) {
	s.mu.Lock()
	laneID, entry, err := s.state.CurrentItem()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	item := &Item{
		Lane:           laneID,
		ContentID:      entry.ContentID,
		Interval:       entry.Interval,
		DistractorTier: entry.DistractorTier,
	}
	ids := s.state.Lane(laneID).ContentIDsInOrder()
	s.mu.Unlock()

	if err := s.buf.EnsureActive(ctx, laneID, item.ContentID); err != nil {
		return nil, err
	}
	body, ok := s.buf.Body(item.ContentID)
	if !ok {
		// A reset raced the fetch; the caller re-requests the item.
		return nil, &buffer.FetchPartialError{Lane: laneID, Phase: buffer.Phase0, Missing: []string{item.ContentID}}
	}
	item.Body = body

	go s.prefetch(ctx, laneID, buffer.Phase1, ids)
	return item, nil
}

// RecordOutcome applies one attempt outcome: the reordering engine
// mutates the active lane (perfect outcomes only), the rotator advances
// to the next lane, the buffer manager is told about the new active
// slots, and a debounced background sync is requested. The returned
// result is nil for not-perfect outcomes.
func (s *Session) RecordOutcome(ctx context.Context, perfect bool) (*schedule.ReorderResult, error) {
	s.mu.Lock()
	now := s.clock()
	played := s.state.Active
	res, err := s.state.RecordOutcome(perfect, now)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	next := s.state.Active
	nextIDs := s.state.Lane(next).ContentIDsInOrder()
	s.mu.Unlock()

	if res != nil && res.Normalized {
		fmt.Fprintf(os.Stderr, "warning: corrupt interval on %s normalized to %d\n",
			res.ContentID, res.OldInterval)
	}

	if s.adapter != nil {
		if logErr := s.adapter.Record(ctx, played, perfect, now); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record mutation: %v\n", logErr)
		}
	}

	s.notifyActiveSlotChanged(ctx, next, nextIDs, now)
	s.requestSync(ctx)
	return res, nil
}

// notifyActiveSlotChanged is the explicit rotation-to-buffer message:
// it marks learner activity and starts the phase-1 prefetch for the
// newly active lane if it is not already covered.
func (s *Session) notifyActiveSlotChanged(ctx context.Context, lane schedule.LaneID, ids []string, now time.Time) {
	s.buf.Touch(now)
	go s.prefetch(ctx, lane, buffer.Phase1, ids)
}

func (s *Session) prefetch(ctx context.Context, lane schedule.LaneID, phase buffer.Phase, ids []string) {
	if err := s.buf.Prefetch(ctx, lane, phase, ids); err != nil {
		fmt.Fprintf(os.Stderr, "warning: lane %d phase %d prefetch: %v\n", lane, phase, err)
	}
}

// IdleTick runs the idle heuristic once: any lane whose quiet period
// has elapsed with phase 1 complete gets its phase-2 prefetch. Callers
// drive this from a ticker or an explicit deepen request.
func (s *Session) IdleTick(ctx context.Context) {
	now := s.clock()
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		if !s.buf.IdlePhase2Due(id, now) {
			continue
		}
		s.mu.Lock()
		ids := s.state.Lane(id).ContentIDsInOrder()
		s.mu.Unlock()
		s.prefetch(ctx, id, buffer.Phase2, ids)
	}
}

// Deepen forces the phase-2 prefetch for every lane, regardless of the
// idle heuristic.
func (s *Session) Deepen(ctx context.Context) {
	for id := schedule.Lane1; id <= schedule.Lane3; id++ {
		s.mu.Lock()
		ids := s.state.Lane(id).ContentIDsInOrder()
		s.mu.Unlock()
		s.prefetch(ctx, id, buffer.Phase2, ids)
	}
}

// Snapshot returns the wire representation of the current state.
func (s *Session) Snapshot() syncer.WireState {
	return syncer.Encode(s.StateSnapshot())
}

// StateSnapshot returns a deep copy of the scheduler state. It is the
// snapshot source handed to the sync adapter.
func (s *Session) StateSnapshot() *schedule.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Restore replaces the session state from a wire snapshot and clears
// the buffer, which re-materializes against the restored layout.
func (s *Session) Restore(w syncer.WireState) error {
	st, err := syncer.Decode(w)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.buf.Reset()
	return nil
}

// Reset wipes the session to its initial state: empty lanes, lane 1
// active, cycle count zero, empty buffer, new generation.
func (s *Session) Reset() {
	s.mu.Lock()
	s.state.Reset(s.clock())
	s.mu.Unlock()
	s.buf.Reset()
}

// Sync pushes the current state to the remote store, debounced by the
// adapter.
func (s *Session) Sync(ctx context.Context) error {
	if s.adapter == nil {
		return nil
	}
	return s.adapter.Save(ctx, s.StateSnapshot)
}

// LoadRemote reconciles with the remote copy and adopts the winner.
func (s *Session) LoadRemote(ctx context.Context) (*syncer.Conflict, error) {
	if s.adapter == nil {
		return nil, nil
	}
	local := s.StateSnapshot()
	chosen, conflict, err := s.adapter.Load(ctx, local)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		fmt.Fprintf(os.Stderr, "info: remote snapshot ignored (local newer: %s > %s)\n",
			conflict.LocalMutatedAt.Format(time.RFC3339),
			conflict.RemoteMutatedAt.Format(time.RFC3339))
	}
	s.mu.Lock()
	s.state = chosen
	s.mu.Unlock()
	if chosen != local {
		s.buf.Reset()
	}
	return conflict, nil
}

func (s *Session) requestSync(ctx context.Context) {
	if s.adapter == nil {
		return
	}
	go func() {
		if err := s.adapter.Save(ctx, s.StateSnapshot); err != nil {
			fmt.Fprintf(os.Stderr, "warning: background sync: %v\n", err)
		}
	}()
}
