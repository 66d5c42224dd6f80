package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/trihelix/ent"
	"github.com/abhisek/trihelix/ent/remotestate"
	"github.com/abhisek/trihelix/internal/syncer"
)

// RemoteStateRepo is a syncer.RemoteStore backed by the local database:
// one row per learner holding the last saved wire-format state. Offline
// installs point the sync adapter here so the full save/load/replay
// path runs against a real store.
type RemoteStateRepo struct {
	client *ent.Client
}

// Load returns the saved state for the learner, or nil bytes when no
// state has ever been saved.
func (r *RemoteStateRepo) Load(ctx context.Context, learnerID string) (json.RawMessage, error) {
	row, err := r.client.RemoteState.Query().
		Where(remotestate.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query remote state: %w", err)
	}
	return row.Payload, nil
}

// Save upserts the learner's state row.
func (r *RemoteStateRepo) Save(ctx context.Context, learnerID string, state syncer.WireState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal remote state: %w", err)
	}

	err = r.client.RemoteState.Create().
		SetLearnerID(learnerID).
		SetPayload(payload).
		OnConflictColumns(remotestate.FieldLearnerID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert remote state: %w", err)
	}
	return nil
}
