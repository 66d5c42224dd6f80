package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/trihelix/ent"
	"github.com/abhisek/trihelix/ent/mutationevent"
	"github.com/abhisek/trihelix/internal/syncer"
)

// MutationLogRepo is the durable pending-mutation log for one learner.
// It satisfies syncer.MutationLog: appended outcomes survive restarts
// and replay on top of an adopted remote state.
type MutationLogRepo struct {
	client    *ent.Client
	seq       *sequenceCounter
	learnerID string
}

func (r *MutationLogRepo) Append(ctx context.Context, m syncer.Mutation) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MutationEvent.Create().
		SetSequence(seqNum).
		SetMutationID(m.ID.String()).
		SetLearnerID(r.learnerID).
		SetLane(m.Lane).
		SetPerfect(m.Perfect).
		SetOccurredAt(m.At).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mutation event: %w", err)
	}
	return nil
}

func (r *MutationLogRepo) Pending(ctx context.Context) ([]syncer.Mutation, error) {
	rows, err := r.client.MutationEvent.Query().
		Where(mutationevent.LearnerID(r.learnerID)).
		Order(ent.Asc(mutationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending mutations: %w", err)
	}

	out := make([]syncer.Mutation, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.MutationID)
		if err != nil {
			return nil, fmt.Errorf("parse mutation id %q: %w", row.MutationID, err)
		}
		out = append(out, syncer.Mutation{
			ID:      id,
			Lane:    row.Lane,
			Perfect: row.Perfect,
			At:      row.OccurredAt,
		})
	}
	return out, nil
}

func (r *MutationLogRepo) Clear(ctx context.Context) error {
	_, err := r.client.MutationEvent.Delete().
		Where(mutationevent.LearnerID(r.learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear mutation log: %w", err)
	}
	return nil
}
