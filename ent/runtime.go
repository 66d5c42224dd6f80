// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/trihelix/ent/mutationevent"
	"github.com/abhisek/trihelix/ent/remotestate"
	"github.com/abhisek/trihelix/ent/schema"
	"github.com/abhisek/trihelix/ent/snapshot"
	"github.com/abhisek/trihelix/ent/stitch"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	mutationeventMixin := schema.MutationEvent{}.Mixin()
	mutationeventMixinFields0 := mutationeventMixin[0].Fields()
	_ = mutationeventMixinFields0
	mutationeventFields := schema.MutationEvent{}.Fields()
	_ = mutationeventFields
	// mutationeventDescTimestamp is the schema descriptor for timestamp field.
	mutationeventDescTimestamp := mutationeventMixinFields0[1].Descriptor()
	// mutationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mutationevent.DefaultTimestamp = mutationeventDescTimestamp.Default.(func() time.Time)
	// mutationeventDescMutationID is the schema descriptor for mutation_id field.
	mutationeventDescMutationID := mutationeventFields[0].Descriptor()
	// mutationevent.MutationIDValidator is a validator for the "mutation_id" field. It is called by the builders before save.
	mutationevent.MutationIDValidator = mutationeventDescMutationID.Validators[0].(func(string) error)
	// mutationeventDescLearnerID is the schema descriptor for learner_id field.
	mutationeventDescLearnerID := mutationeventFields[1].Descriptor()
	// mutationevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	mutationevent.LearnerIDValidator = mutationeventDescLearnerID.Validators[0].(func(string) error)
	remotestateFields := schema.RemoteState{}.Fields()
	_ = remotestateFields
	// remotestateDescLearnerID is the schema descriptor for learner_id field.
	remotestateDescLearnerID := remotestateFields[0].Descriptor()
	// remotestate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	remotestate.LearnerIDValidator = remotestateDescLearnerID.Validators[0].(func(string) error)
	// remotestateDescSavedAt is the schema descriptor for saved_at field.
	remotestateDescSavedAt := remotestateFields[2].Descriptor()
	// remotestate.DefaultSavedAt holds the default value on creation for the saved_at field.
	remotestate.DefaultSavedAt = remotestateDescSavedAt.Default.(func() time.Time)
	// remotestate.UpdateDefaultSavedAt holds the default value on update for the saved_at field.
	remotestate.UpdateDefaultSavedAt = remotestateDescSavedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[0].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
	// snapshotDescTakenAt is the schema descriptor for taken_at field.
	snapshotDescTakenAt := snapshotFields[2].Descriptor()
	// snapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	snapshot.DefaultTakenAt = snapshotDescTakenAt.Default.(func() time.Time)
	stitchFields := schema.Stitch{}.Fields()
	_ = stitchFields
	// stitchDescContentID is the schema descriptor for content_id field.
	stitchDescContentID := stitchFields[0].Descriptor()
	// stitch.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	stitch.ContentIDValidator = stitchDescContentID.Validators[0].(func(string) error)
	// stitchDescQuestion is the schema descriptor for question field.
	stitchDescQuestion := stitchFields[1].Descriptor()
	// stitch.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	stitch.QuestionValidator = stitchDescQuestion.Validators[0].(func(string) error)
	// stitchDescAnswer is the schema descriptor for answer field.
	stitchDescAnswer := stitchFields[2].Descriptor()
	// stitch.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	stitch.AnswerValidator = stitchDescAnswer.Validators[0].(func(string) error)
}
