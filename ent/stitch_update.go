// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/trihelix/ent/predicate"
	"github.com/abhisek/trihelix/ent/stitch"
)

// StitchUpdate is the builder for updating Stitch entities.
type StitchUpdate struct {
	config
	hooks    []Hook
	mutation *StitchMutation
}

// Where appends a list predicates to the StitchUpdate builder.
func (_u *StitchUpdate) Where(ps ...predicate.Stitch) *StitchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *StitchUpdate) SetContentID(v string) *StitchUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *StitchUpdate) SetNillableContentID(v *string) *StitchUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *StitchUpdate) SetQuestion(v string) *StitchUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *StitchUpdate) SetNillableQuestion(v *string) *StitchUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *StitchUpdate) SetAnswer(v string) *StitchUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *StitchUpdate) SetNillableAnswer(v *string) *StitchUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *StitchUpdate) SetDistractors(v map[int][]string) *StitchUpdate {
	_u.mutation.SetDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *StitchUpdate) ClearDistractors() *StitchUpdate {
	_u.mutation.ClearDistractors()
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *StitchUpdate) SetSourceID(v string) *StitchUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *StitchUpdate) SetNillableSourceID(v *string) *StitchUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// Mutation returns the StitchMutation object of the builder.
func (_u *StitchUpdate) Mutation() *StitchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StitchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StitchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StitchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StitchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StitchUpdate) check() error {
	if v, ok := _u.mutation.ContentID(); ok {
		if err := stitch.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Stitch.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := stitch.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Stitch.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := stitch.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Stitch.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *StitchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stitch.Table, stitch.Columns, sqlgraph.NewFieldSpec(stitch.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(stitch.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(stitch.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(stitch.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(stitch.FieldDistractors, field.TypeJSON, value)
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(stitch.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(stitch.FieldSourceID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stitch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StitchUpdateOne is the builder for updating a single Stitch entity.
type StitchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StitchMutation
}

// SetContentID sets the "content_id" field.
func (_u *StitchUpdateOne) SetContentID(v string) *StitchUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *StitchUpdateOne) SetNillableContentID(v *string) *StitchUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *StitchUpdateOne) SetQuestion(v string) *StitchUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *StitchUpdateOne) SetNillableQuestion(v *string) *StitchUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *StitchUpdateOne) SetAnswer(v string) *StitchUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *StitchUpdateOne) SetNillableAnswer(v *string) *StitchUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *StitchUpdateOne) SetDistractors(v map[int][]string) *StitchUpdateOne {
	_u.mutation.SetDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *StitchUpdateOne) ClearDistractors() *StitchUpdateOne {
	_u.mutation.ClearDistractors()
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *StitchUpdateOne) SetSourceID(v string) *StitchUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *StitchUpdateOne) SetNillableSourceID(v *string) *StitchUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// Mutation returns the StitchMutation object of the builder.
func (_u *StitchUpdateOne) Mutation() *StitchMutation {
	return _u.mutation
}

// Where appends a list predicates to the StitchUpdate builder.
func (_u *StitchUpdateOne) Where(ps ...predicate.Stitch) *StitchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StitchUpdateOne) Select(field string, fields ...string) *StitchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stitch entity.
func (_u *StitchUpdateOne) Save(ctx context.Context) (*Stitch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StitchUpdateOne) SaveX(ctx context.Context) *Stitch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StitchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StitchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StitchUpdateOne) check() error {
	if v, ok := _u.mutation.ContentID(); ok {
		if err := stitch.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Stitch.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := stitch.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Stitch.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := stitch.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Stitch.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *StitchUpdateOne) sqlSave(ctx context.Context) (_node *Stitch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stitch.Table, stitch.Columns, sqlgraph.NewFieldSpec(stitch.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stitch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stitch.FieldID)
		for _, f := range fields {
			if !stitch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stitch.FieldID {
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
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(stitch.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(stitch.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(stitch.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(stitch.FieldDistractors, field.TypeJSON, value)
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(stitch.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(stitch.FieldSourceID, field.TypeString, value)
	}
	_node = &Stitch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stitch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
