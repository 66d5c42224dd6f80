// Package buffer keeps upcoming content materialized ahead of need.
// It runs a two-phase prefetch protocol against a content source:
// phase 1 covers the near horizon per lane, phase 2 deepens the buffer
// when the learner goes quiet. Fetches are strictly additive: the
// buffer caches bodies keyed by content id and never touches slot
// layout.
package buffer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/schedule"
)

// Phase identifies a prefetch depth tier.
type Phase int

const (
	// Phase0 is the blocking fetch of the active item; it has no depth
	// or loaded flag and appears only in errors.
	Phase0 Phase = 0

	Phase1 Phase = 1
	Phase2 Phase = 2
)

// Config sets prefetch depths and the idle trigger.
type Config struct {
	// Phase1Depth is the number of slots per lane materialized right
	// after the active item is ready.
	Phase1Depth int

	// Phase2Depth is the deeper horizon filled during idle time or on
	// explicit request.
	Phase2Depth int

	// QuietPeriod is how long the learner must be inactive before an
	// idle check may start phase 2.
	QuietPeriod time.Duration
}

// DefaultConfig returns the standard prefetch configuration.
func DefaultConfig() Config {
	return Config{
		Phase1Depth: 10,
		Phase2Depth: 50,
		QuietPeriod: 5 * time.Second,
	}
}

// FetchPartialError reports that a batch fetch resolved only some of
// its ids. Bodies that did arrive are kept; the phase flag stays unset
// so the fetch is safe to retry.
type FetchPartialError struct {
	Lane    schedule.LaneID
	Phase   Phase
	Missing []string
}

func (e *FetchPartialError) Error() string {
	return fmt.Sprintf("lane %d phase %d fetch incomplete: missing %s",
		e.Lane, e.Phase, strings.Join(e.Missing, ", "))
}

type laneState struct {
	phase1Loaded bool
	phase2Loaded bool
	inFlight     map[Phase]bool
}

// Manager is the two-phase prefetch controller. It is the only
// concurrent actor around the scheduler: prefetches may run while the
// learner keeps answering, so all internal state is mutex-guarded.
type Manager struct {
	src content.Source
	cfg Config

	mu           sync.Mutex
	bodies       map[string]content.Body
	lanes        map[schedule.LaneID]*laneState
	lastActivity time.Time
	generation   uuid.UUID
}

// NewManager returns a Manager fetching from src.
func NewManager(src content.Source, cfg Config) *Manager {
	if cfg.Phase1Depth <= 0 {
		cfg.Phase1Depth = DefaultConfig().Phase1Depth
	}
	if cfg.Phase2Depth <= 0 {
		cfg.Phase2Depth = DefaultConfig().Phase2Depth
	}
	if cfg.QuietPeriod <= 0 {
		cfg.QuietPeriod = DefaultConfig().QuietPeriod
	}
	m := &Manager{
		src:        src,
		cfg:        cfg,
		bodies:     make(map[string]content.Body),
		lanes:      make(map[schedule.LaneID]*laneState),
		generation: uuid.New(),
	}
	return m
}

func (m *Manager) lane(id schedule.LaneID) *laneState {
	ls := m.lanes[id]
	if ls == nil {
		ls = &laneState{inFlight: make(map[Phase]bool)}
		m.lanes[id] = ls
	}
	return ls
}

// Body returns the materialized body for id, if cached.
func (m *Manager) Body(id string) (content.Body, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bodies[id]
	return b, ok
}

// PhaseLoaded reports whether the given phase completed for the lane.
func (m *Manager) PhaseLoaded(lane schedule.LaneID, phase Phase) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ls := m.lane(lane)
	if phase == Phase1 {
		return ls.phase1Loaded
	}
	return ls.phase2Loaded
}

// EnsureActive materializes the body for the current active item. This
// is the phase-0 fetch: it blocks, and the learner cannot begin a
// question until it succeeds.
func (m *Manager) EnsureActive(ctx context.Context, lane schedule.LaneID, id string) error {
	m.mu.Lock()
	if _, ok := m.bodies[id]; ok {
		m.mu.Unlock()
		return nil
	}
	gen := m.generation
	m.mu.Unlock()

	got, err := m.src.FetchBatch(ctx, []string{id})
	if err != nil {
		return fmt.Errorf("fetch active item %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		// Superseded by a reset; the result is stale.
		return nil
	}
	body, ok := got[id]
	if !ok {
		return &FetchPartialError{Lane: lane, Phase: Phase0, Missing: []string{id}}
	}
	m.bodies[id] = body
	return nil
}

// Prefetch runs one batched fetch for the given phase over the lane's
// ordered content ids. It is idempotent: a completed phase is a no-op,
// and a call while the same phase is already in flight for the lane is
// ignored rather than queued. Only ids in the phase's slot range that
// are not yet materialized go into the batch. Partial responses keep
// whatever arrived and return a FetchPartialError; the phase flag is
// set only when the whole range is materialized.
func (m *Manager) Prefetch(ctx context.Context, lane schedule.LaneID, phase Phase, orderedIDs []string) error {
	depth := m.cfg.Phase1Depth
	if phase == Phase2 {
		depth = m.cfg.Phase2Depth
	}
	if depth > len(orderedIDs) {
		depth = len(orderedIDs)
	}
	target := orderedIDs[:depth]

	m.mu.Lock()
	ls := m.lane(lane)
	if (phase == Phase1 && ls.phase1Loaded) || (phase == Phase2 && ls.phase2Loaded) {
		m.mu.Unlock()
		return nil
	}
	if ls.inFlight[phase] {
		m.mu.Unlock()
		return nil
	}

	var missing []string
	for _, id := range target {
		if _, ok := m.bodies[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		m.markLoaded(ls, phase)
		m.mu.Unlock()
		return nil
	}

	ls.inFlight[phase] = true
	gen := m.generation
	m.mu.Unlock()

	got, fetchErr := m.src.FetchBatch(ctx, missing)

	m.mu.Lock()
	defer m.mu.Unlock()
	ls.inFlight[phase] = false

	if m.generation != gen {
		return nil
	}

	for id, body := range got {
		m.bodies[id] = body
	}
	if fetchErr != nil {
		return fmt.Errorf("lane %d phase %d fetch: %w", lane, phase, fetchErr)
	}

	var stillMissing []string
	for _, id := range missing {
		if _, ok := m.bodies[id]; !ok {
			stillMissing = append(stillMissing, id)
		}
	}
	if len(stillMissing) > 0 {
		sort.Strings(stillMissing)
		return &FetchPartialError{Lane: lane, Phase: phase, Missing: stillMissing}
	}

	m.markLoaded(ls, phase)
	return nil
}

func (m *Manager) markLoaded(ls *laneState, phase Phase) {
	if phase == Phase1 {
		ls.phase1Loaded = true
	} else {
		ls.phase2Loaded = true
	}
}

// Touch records learner activity for the idle heuristic.
func (m *Manager) Touch(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = now
}

// IdlePhase2Due reports whether an idle-triggered phase-2 prefetch
// should start for the lane: the quiet period has elapsed, phase 1 is
// complete, and phase 2 is neither loaded nor in flight.
func (m *Manager) IdlePhase2Due(lane schedule.LaneID, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastActivity.IsZero() || now.Sub(m.lastActivity) < m.cfg.QuietPeriod {
		return false
	}
	ls := m.lane(lane)
	return ls.phase1Loaded && !ls.phase2Loaded && !ls.inFlight[Phase2]
}

// Reset discards all materialized content and phase flags and issues a
// new generation, so in-flight fetches from the previous state drop
// their results on completion.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = make(map[string]content.Body)
	m.lanes = make(map[schedule.LaneID]*laneState)
	m.generation = uuid.New()
}
