// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/trihelix/ent/mutationevent"
	"github.com/abhisek/trihelix/ent/predicate"
)

// MutationEventUpdate is the builder for updating MutationEvent entities.
type MutationEventUpdate struct {
	config
	hooks    []Hook
	mutation *MutationEventMutation
}

// Where appends a list predicates to the MutationEventUpdate builder.
func (_u *MutationEventUpdate) Where(ps ...predicate.MutationEvent) *MutationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMutationID sets the "mutation_id" field.
func (_u *MutationEventUpdate) SetMutationID(v string) *MutationEventUpdate {
	_u.mutation.SetMutationID(v)
	return _u
}

// SetNillableMutationID sets the "mutation_id" field if the given value is not nil.
func (_u *MutationEventUpdate) SetNillableMutationID(v *string) *MutationEventUpdate {
	if v != nil {
		_u.SetMutationID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MutationEventUpdate) SetLearnerID(v string) *MutationEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MutationEventUpdate) SetNillableLearnerID(v *string) *MutationEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *MutationEventUpdate) SetLane(v int) *MutationEventUpdate {
	_u.mutation.ResetLane()
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *MutationEventUpdate) SetNillableLane(v *int) *MutationEventUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// AddLane adds value to the "lane" field.
func (_u *MutationEventUpdate) AddLane(v int) *MutationEventUpdate {
	_u.mutation.AddLane(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *MutationEventUpdate) SetPerfect(v bool) *MutationEventUpdate {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *MutationEventUpdate) SetNillablePerfect(v *bool) *MutationEventUpdate {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *MutationEventUpdate) SetOccurredAt(v time.Time) *MutationEventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *MutationEventUpdate) SetNillableOccurredAt(v *time.Time) *MutationEventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the MutationEventMutation object of the builder.
func (_u *MutationEventUpdate) Mutation() *MutationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MutationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MutationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MutationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MutationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MutationEventUpdate) check() error {
	if v, ok := _u.mutation.MutationID(); ok {
		if err := mutationevent.MutationIDValidator(v); err != nil {
			return &ValidationError{Name: "mutation_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.mutation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := mutationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MutationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mutationevent.Table, mutationevent.Columns, sqlgraph.NewFieldSpec(mutationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MutationID(); ok {
		_spec.SetField(mutationevent.FieldMutationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(mutationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(mutationevent.FieldLane, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLane(); ok {
		_spec.AddField(mutationevent.FieldLane, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(mutationevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(mutationevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mutationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MutationEventUpdateOne is the builder for updating a single MutationEvent entity.
type MutationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MutationEventMutation
}

// SetMutationID sets the "mutation_id" field.
func (_u *MutationEventUpdateOne) SetMutationID(v string) *MutationEventUpdateOne {
	_u.mutation.SetMutationID(v)
	return _u
}

// SetNillableMutationID sets the "mutation_id" field if the given value is not nil.
func (_u *MutationEventUpdateOne) SetNillableMutationID(v *string) *MutationEventUpdateOne {
	if v != nil {
		_u.SetMutationID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MutationEventUpdateOne) SetLearnerID(v string) *MutationEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MutationEventUpdateOne) SetNillableLearnerID(v *string) *MutationEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *MutationEventUpdateOne) SetLane(v int) *MutationEventUpdateOne {
	_u.mutation.ResetLane()
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *MutationEventUpdateOne) SetNillableLane(v *int) *MutationEventUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// AddLane adds value to the "lane" field.
func (_u *MutationEventUpdateOne) AddLane(v int) *MutationEventUpdateOne {
	_u.mutation.AddLane(v)
	return _u
}

// SetPerfect sets the "perfect" field.
func (_u *MutationEventUpdateOne) SetPerfect(v bool) *MutationEventUpdateOne {
	_u.mutation.SetPerfect(v)
	return _u
}

// SetNillablePerfect sets the "perfect" field if the given value is not nil.
func (_u *MutationEventUpdateOne) SetNillablePerfect(v *bool) *MutationEventUpdateOne {
	if v != nil {
		_u.SetPerfect(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *MutationEventUpdateOne) SetOccurredAt(v time.Time) *MutationEventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *MutationEventUpdateOne) SetNillableOccurredAt(v *time.Time) *MutationEventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// Mutation returns the MutationEventMutation object of the builder.
func (_u *MutationEventUpdateOne) Mutation() *MutationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MutationEventUpdate builder.
func (_u *MutationEventUpdateOne) Where(ps ...predicate.MutationEvent) *MutationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MutationEventUpdateOne) Select(field string, fields ...string) *MutationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MutationEvent entity.
func (_u *MutationEventUpdateOne) Save(ctx context.Context) (*MutationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MutationEventUpdateOne) SaveX(ctx context.Context) *MutationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MutationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MutationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MutationEventUpdateOne) check() error {
	if v, ok := _u.mutation.MutationID(); ok {
		if err := mutationevent.MutationIDValidator(v); err != nil {
			return &ValidationError{Name: "mutation_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.mutation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := mutationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MutationEventUpdateOne) sqlSave(ctx context.Context) (_node *MutationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mutationevent.Table, mutationevent.Columns, sqlgraph.NewFieldSpec(mutationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MutationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mutationevent.FieldID)
		for _, f := range fields {
			if !mutationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mutationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MutationID(); ok {
		_spec.SetField(mutationevent.FieldMutationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(mutationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(mutationevent.FieldLane, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLane(); ok {
		_spec.AddField(mutationevent.FieldLane, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Perfect(); ok {
		_spec.SetField(mutationevent.FieldPerfect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(mutationevent.FieldOccurredAt, field.TypeTime, value)
	}
	_node = &MutationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mutationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
