// Code generated by ent, DO NOT EDIT.

package mutationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/trihelix/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// MutationID applies equality check predicate on the "mutation_id" field. It's identical to MutationIDEQ.
func MutationID(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldMutationID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Lane applies equality check predicate on the "lane" field. It's identical to LaneEQ.
func Lane(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldLane, v))
}

// Perfect applies equality check predicate on the "perfect" field. It's identical to PerfectEQ.
func Perfect(v bool) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldPerfect, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// MutationIDEQ applies the EQ predicate on the "mutation_id" field.
func MutationIDEQ(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldMutationID, v))
}

// MutationIDNEQ applies the NEQ predicate on the "mutation_id" field.
func MutationIDNEQ(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldMutationID, v))
}

// MutationIDIn applies the In predicate on the "mutation_id" field.
func MutationIDIn(vs ...string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldMutationID, vs...))
}

// MutationIDNotIn applies the NotIn predicate on the "mutation_id" field.
func MutationIDNotIn(vs ...string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldMutationID, vs...))
}

// MutationIDGT applies the GT predicate on the "mutation_id" field.
func MutationIDGT(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldMutationID, v))
}

// MutationIDGTE applies the GTE predicate on the "mutation_id" field.
func MutationIDGTE(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldMutationID, v))
}

// MutationIDLT applies the LT predicate on the "mutation_id" field.
func MutationIDLT(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldMutationID, v))
}

// MutationIDLTE applies the LTE predicate on the "mutation_id" field.
func MutationIDLTE(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldMutationID, v))
}

// MutationIDContains applies the Contains predicate on the "mutation_id" field.
func MutationIDContains(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldContains(FieldMutationID, v))
}

// MutationIDHasPrefix applies the HasPrefix predicate on the "mutation_id" field.
func MutationIDHasPrefix(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldHasPrefix(FieldMutationID, v))
}

// MutationIDHasSuffix applies the HasSuffix predicate on the "mutation_id" field.
func MutationIDHasSuffix(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldHasSuffix(FieldMutationID, v))
}

// MutationIDEqualFold applies the EqualFold predicate on the "mutation_id" field.
func MutationIDEqualFold(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEqualFold(FieldMutationID, v))
}

// MutationIDContainsFold applies the ContainsFold predicate on the "mutation_id" field.
func MutationIDContainsFold(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldContainsFold(FieldMutationID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldLane, vs...))
}

// LaneGT applies the GT predicate on the "lane" field.
func LaneGT(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldLane, v))
}

// LaneGTE applies the GTE predicate on the "lane" field.
func LaneGTE(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldLane, v))
}

// LaneLT applies the LT predicate on the "lane" field.
func LaneLT(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldLane, v))
}

// LaneLTE applies the LTE predicate on the "lane" field.
func LaneLTE(v int) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldLane, v))
}

// PerfectEQ applies the EQ predicate on the "perfect" field.
func PerfectEQ(v bool) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldPerfect, v))
}

// PerfectNEQ applies the NEQ predicate on the "perfect" field.
func PerfectNEQ(v bool) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldPerfect, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.MutationEvent {
	return predicate.MutationEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MutationEvent) predicate.MutationEvent {
	return predicate.MutationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MutationEvent) predicate.MutationEvent {
	return predicate.MutationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MutationEvent) predicate.MutationEvent {
	return predicate.MutationEvent(sql.NotPredicates(p))
}
