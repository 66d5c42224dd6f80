package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures the full scheduler state for a learner at a point
// in time, enabling fast restore without replaying the mutation log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner this snapshot belongs to"),
		field.Int64("sequence").
			Comment("Mutation sequence number at the time of snapshot"),
		field.Time("taken_at").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Wire-format scheduler state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "taken_at"),
		index.Fields("sequence"),
	}
}
