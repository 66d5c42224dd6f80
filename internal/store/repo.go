package store

import (
	"context"
	"time"

	"github.com/abhisek/trihelix/internal/syncer"
)

// Snapshot is a point-in-time capture of a learner's scheduler state.
// Snapshots enable fast restore without replaying the mutation log.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	TakenAt   time.Time
	State     syncer.WireState
}

// SnapshotRepo manages scheduler state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, stamping it with the next global
	// sequence number.
	Save(ctx context.Context, learnerID string, state syncer.WireState) error

	// Latest returns the most recent snapshot for the learner, or nil
	// if none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots for the learner.
	Prune(ctx context.Context, learnerID string, keep int) error
}
