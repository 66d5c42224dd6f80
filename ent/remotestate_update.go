// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/trihelix/ent/predicate"
	"github.com/abhisek/trihelix/ent/remotestate"
)

// RemoteStateUpdate is the builder for updating RemoteState entities.
type RemoteStateUpdate struct {
	config
	hooks    []Hook
	mutation *RemoteStateMutation
}

// Where appends a list predicates to the RemoteStateUpdate builder.
func (_u *RemoteStateUpdate) Where(ps ...predicate.RemoteState) *RemoteStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RemoteStateUpdate) SetLearnerID(v string) *RemoteStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RemoteStateUpdate) SetNillableLearnerID(v *string) *RemoteStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RemoteStateUpdate) SetPayload(v json.RawMessage) *RemoteStateUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *RemoteStateUpdate) AppendPayload(v json.RawMessage) *RemoteStateUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *RemoteStateUpdate) SetSavedAt(v time.Time) *RemoteStateUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// Mutation returns the RemoteStateMutation object of the builder.
func (_u *RemoteStateUpdate) Mutation() *RemoteStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RemoteStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemoteStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RemoteStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemoteStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RemoteStateUpdate) defaults() {
	if _, ok := _u.mutation.SavedAt(); !ok {
		v := remotestate.UpdateDefaultSavedAt()
		_u.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemoteStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := remotestate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemoteState.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RemoteStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remotestate.Table, remotestate.Columns, sqlgraph.NewFieldSpec(remotestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(remotestate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(remotestate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, remotestate.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(remotestate.FieldSavedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remotestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RemoteStateUpdateOne is the builder for updating a single RemoteState entity.
type RemoteStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemoteStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *RemoteStateUpdateOne) SetLearnerID(v string) *RemoteStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RemoteStateUpdateOne) SetNillableLearnerID(v *string) *RemoteStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RemoteStateUpdateOne) SetPayload(v json.RawMessage) *RemoteStateUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *RemoteStateUpdateOne) AppendPayload(v json.RawMessage) *RemoteStateUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *RemoteStateUpdateOne) SetSavedAt(v time.Time) *RemoteStateUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// Mutation returns the RemoteStateMutation object of the builder.
func (_u *RemoteStateUpdateOne) Mutation() *RemoteStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the RemoteStateUpdate builder.
func (_u *RemoteStateUpdateOne) Where(ps ...predicate.RemoteState) *RemoteStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RemoteStateUpdateOne) Select(field string, fields ...string) *RemoteStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RemoteState entity.
func (_u *RemoteStateUpdateOne) Save(ctx context.Context) (*RemoteState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemoteStateUpdateOne) SaveX(ctx context.Context) *RemoteState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RemoteStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemoteStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RemoteStateUpdateOne) defaults() {
	if _, ok := _u.mutation.SavedAt(); !ok {
		v := remotestate.UpdateDefaultSavedAt()
		_u.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemoteStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := remotestate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemoteState.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RemoteStateUpdateOne) sqlSave(ctx context.Context) (_node *RemoteState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remotestate.Table, remotestate.Columns, sqlgraph.NewFieldSpec(remotestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RemoteState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remotestate.FieldID)
		for _, f := range fields {
			if !remotestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != remotestate.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(remotestate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(remotestate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, remotestate.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(remotestate.FieldSavedAt, field.TypeTime, value)
	}
	_node = &RemoteState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remotestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
