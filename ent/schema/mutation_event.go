package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MutationEvent records a single attempt outcome that has mutated the
// scheduler but may not yet be confirmed by the remote store. Pending
// events are replayed on top of an adopted remote state.
type MutationEvent struct {
	ent.Schema
}

func (MutationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MutationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mutation_id").
			NotEmpty().
			Unique().
			Comment("Client-issued UUID for this mutation"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the outcome belongs to"),
		field.Int("lane").
			Comment("Lane that was active when the outcome was recorded"),
		field.Bool("perfect").
			Comment("Whether the attempt was a first-try perfect"),
		field.Time("occurred_at").
			Comment("UTC wall-clock time of the attempt"),
	}
}

func (MutationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("mutation_id"),
	}
}
