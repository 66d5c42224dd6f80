package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Stitch is one unit of practice content: a question, its canonical
// answer, and distractor pools keyed by difficulty tier. Bodies are
// synced down in bulk and served locally so sessions work offline.
type Stitch struct {
	ent.Schema
}

func (Stitch) Fields() []ent.Field {
	return []ent.Field{
		field.String("content_id").
			NotEmpty().
			Unique().
			Comment("Stable content identifier"),
		field.String("question").
			NotEmpty().
			Comment("The prompt shown to the learner"),
		field.String("answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.JSON("distractors", map[int][]string{}).
			Optional().
			Comment("Wrong-answer pools keyed by difficulty tier"),
		field.String("source_id").
			Comment("Opaque content-pack identifier"),
	}
}

func (Stitch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id"),
		index.Fields("source_id"),
	}
}
