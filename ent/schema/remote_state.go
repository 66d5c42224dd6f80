package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RemoteState is the local stand-in for the remote persistence service:
// one row per learner holding the last saved wire-format state. It lets
// a single machine host several learner profiles and keeps the sync
// path exercisable without a network.
type RemoteState struct {
	ent.Schema
}

func (RemoteState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Comment("Learner this state belongs to"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Wire-format scheduler state as last saved"),
		field.Time("saved_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the state was last saved"),
	}
}

func (RemoteState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
