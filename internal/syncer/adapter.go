package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trihelix/internal/schedule"
)

// RemoteStore is the transport-owned remote copy of scheduler state.
// Load returns nil bytes when no state exists for the learner. Timeout
// policy belongs to the implementation, not to this adapter.
type RemoteStore interface {
	Load(ctx context.Context, learnerID string) (json.RawMessage, error)
	Save(ctx context.Context, learnerID string, state WireState) error
}

// Mutation is one locally applied outcome not yet confirmed persisted
// remotely. The log of these keeps the scheduler usable offline: local
// state stays authoritative and the mutations replay once a remote
// snapshot is adopted.
type Mutation struct {
	ID      uuid.UUID `json:"id"`
	Lane    int       `json:"lane"`
	Perfect bool      `json:"perfect"`
	At      time.Time `json:"at"`
}

// MutationLog is append-only storage for pending mutations. It is
// cleared only after a confirmed successful remote save.
type MutationLog interface {
	Append(ctx context.Context, m Mutation) error
	Pending(ctx context.Context) ([]Mutation, error)
	Clear(ctx context.Context) error
}

// Conflict records a load where the local snapshot outranked the remote
// one. Resolution is last-write-wins at whole-state granularity by
// design; the conflict is informational, never an error.
type Conflict struct {
	LocalMutatedAt  time.Time
	RemoteMutatedAt time.Time
}

// Adapter reconciles a local scheduler state with a RemoteStore. At
// most one save is in flight at a time; save requests arriving during
// a flight coalesce into one follow-up save rather than queueing.
type Adapter struct {
	remote    RemoteStore
	log       MutationLog
	learnerID string

	mu          sync.Mutex
	lastSavedAt time.Time
	inFlight    bool
	coalesced   bool
}

// NewAdapter returns an Adapter for the given learner. log may be nil
// when pending-mutation persistence is not wanted (tests, tooling).
func NewAdapter(remote RemoteStore, log MutationLog, learnerID string) *Adapter {
	return &Adapter{remote: remote, log: log, learnerID: learnerID}
}

// Record appends an outcome to the pending mutation log.
func (a *Adapter) Record(ctx context.Context, lane schedule.LaneID, perfect bool, at time.Time) error {
	if a.log == nil {
		return nil
	}
	m := Mutation{ID: uuid.New(), Lane: int(lane), Perfect: perfect, At: at}
	if err := a.log.Append(ctx, m); err != nil {
		return fmt.Errorf("append mutation: %w", err)
	}
	return nil
}

// SnapshotFunc returns a consistent copy of the current scheduler
// state. The owner of the state clones under its own serialization, so
// the adapter never reads live state while the scheduler mutates.
type SnapshotFunc func() *schedule.State

// Save pushes a snapshot to the remote store. If nothing mutated since
// the last confirmed save the call is a no-op success. A request
// arriving while a save is in flight returns immediately; the in-flight
// call runs one follow-up save on completion, taken from a fresh
// snapshot, so the newer mutations are included, not dropped; the
// follow-up runs even when the first flight failed. A result
// from a save issued against a generation that has since been reset is
// discarded.
func (a *Adapter) Save(ctx context.Context, snapshot SnapshotFunc) error {
	for {
		st := snapshot()

		a.mu.Lock()
		if st.LastMutatedAt.Equal(a.lastSavedAt) {
			a.mu.Unlock()
			return nil
		}
		if a.inFlight {
			a.coalesced = true
			a.mu.Unlock()
			return nil
		}
		a.inFlight = true
		a.mu.Unlock()

		err := a.remote.Save(ctx, a.learnerID, Encode(st))

		current := snapshot()
		a.mu.Lock()
		a.inFlight = false
		rerun := a.coalesced
		a.coalesced = false
		confirmed := err == nil && current.Generation == st.Generation
		if confirmed {
			a.lastSavedAt = st.LastMutatedAt
		}
		a.mu.Unlock()

		if err != nil {
			if !rerun {
				return fmt.Errorf("save remote state: %w", err)
			}
			// A request coalesced during the failed flight still gets
			// its write; the retry reports its own result.
			fmt.Fprintf(os.Stderr, "warning: save remote state: %v\n", err)
			continue
		}
		if confirmed && a.log != nil {
			if clearErr := a.log.Clear(ctx); clearErr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to clear mutation log: %v\n", clearErr)
			}
		}
		if !rerun {
			return nil
		}
	}
}

// Load fetches the remote snapshot and decides, by timestamp, whose
// copy is authoritative. A newer local copy wins and the remote one is
// ignored (the returned Conflict says so); otherwise the remote copy is
// adopted and any pending local mutations replay on top of it.
func (a *Adapter) Load(ctx context.Context, local *schedule.State) (*schedule.State, *Conflict, error) {
	raw, err := a.remote.Load(ctx, a.learnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load remote state: %w", err)
	}
	if raw == nil {
		return local, nil, nil
	}

	wire, err := DecodeRaw(raw)
	if err != nil {
		return nil, nil, err
	}
	remote, err := Decode(wire)
	if err != nil {
		return nil, nil, err
	}

	if local != nil && local.LastMutatedAt.After(remote.LastMutatedAt) {
		conflict := &Conflict{
			LocalMutatedAt:  local.LastMutatedAt,
			RemoteMutatedAt: remote.LastMutatedAt,
		}
		return local, conflict, nil
	}

	if a.log != nil {
		pending, err := a.log.Pending(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("read pending mutations: %w", err)
		}
		Replay(remote, pending)
	}
	return remote, nil, nil
}

// Replay re-applies pending mutations to st in log order. Rotation is
// deterministic, so a mutation whose recorded lane does not match the
// active lane means the snapshot already includes it (or the histories
// diverged); such mutations are skipped, as is any mutation that fails
// structurally. Returns how many mutations applied.
func Replay(st *schedule.State, pending []Mutation) int {
	applied := 0
	for _, m := range pending {
		if int(st.Active) != m.Lane {
			continue
		}
		if _, err := st.RecordOutcome(m.Perfect, m.At); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping mutation %s: %v\n", m.ID, err)
			continue
		}
		applied++
	}
	return applied
}
