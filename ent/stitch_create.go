// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/trihelix/ent/stitch"
)

// StitchCreate is the builder for creating a Stitch entity.
type StitchCreate struct {
	config
	mutation *StitchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContentID sets the "content_id" field.
func (_c *StitchCreate) SetContentID(v string) *StitchCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *StitchCreate) SetQuestion(v string) *StitchCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *StitchCreate) SetAnswer(v string) *StitchCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetDistractors sets the "distractors" field.
func (_c *StitchCreate) SetDistractors(v map[int][]string) *StitchCreate {
	_c.mutation.SetDistractors(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *StitchCreate) SetSourceID(v string) *StitchCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// Mutation returns the StitchMutation object of the builder.
func (_c *StitchCreate) Mutation() *StitchMutation {
	return _c.mutation
}

// Save creates the Stitch in the database.
func (_c *StitchCreate) Save(ctx context.Context) (*Stitch, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StitchCreate) SaveX(ctx context.Context) *Stitch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StitchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StitchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StitchCreate) check() error {
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "Stitch.content_id"`)}
	}
	if v, ok := _c.mutation.ContentID(); ok {
		if err := stitch.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Stitch.content_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Stitch.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := stitch.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Stitch.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Stitch.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := stitch.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Stitch.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Stitch.source_id"`)}
	}
	return nil
}

func (_c *StitchCreate) sqlSave(ctx context.Context) (*Stitch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StitchCreate) createSpec() (*Stitch, *sqlgraph.CreateSpec) {
	var (
		_node = &Stitch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stitch.Table, sqlgraph.NewFieldSpec(stitch.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(stitch.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(stitch.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(stitch.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Distractors(); ok {
		_spec.SetField(stitch.FieldDistractors, field.TypeJSON, value)
		_node.Distractors = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(stitch.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stitch.Create().
//		SetContentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StitchUpsert) {
//			SetContentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StitchCreate) OnConflict(opts ...sql.ConflictOption) *StitchUpsertOne {
	_c.conflict = opts
	return &StitchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stitch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StitchCreate) OnConflictColumns(columns ...string) *StitchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StitchUpsertOne{
		create: _c,
	}
}

type (
	// StitchUpsertOne is the builder for "upsert"-ing
	//  one Stitch node.
	StitchUpsertOne struct {
		create *StitchCreate
	}

	// StitchUpsert is the "OnConflict" setter.
	StitchUpsert struct {
		*sql.UpdateSet
	}
)

// SetContentID sets the "content_id" field.
func (u *StitchUpsert) SetContentID(v string) *StitchUpsert {
	u.Set(stitch.FieldContentID, v)
	return u
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *StitchUpsert) UpdateContentID() *StitchUpsert {
	u.SetExcluded(stitch.FieldContentID)
	return u
}

// SetQuestion sets the "question" field.
func (u *StitchUpsert) SetQuestion(v string) *StitchUpsert {
	u.Set(stitch.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StitchUpsert) UpdateQuestion() *StitchUpsert {
	u.SetExcluded(stitch.FieldQuestion)
	return u
}

// SetAnswer sets the "answer" field.
func (u *StitchUpsert) SetAnswer(v string) *StitchUpsert {
	u.Set(stitch.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StitchUpsert) UpdateAnswer() *StitchUpsert {
	u.SetExcluded(stitch.FieldAnswer)
	return u
}

// SetDistractors sets the "distractors" field.
func (u *StitchUpsert) SetDistractors(v map[int][]string) *StitchUpsert {
	u.Set(stitch.FieldDistractors, v)
	return u
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *StitchUpsert) UpdateDistractors() *StitchUpsert {
	u.SetExcluded(stitch.FieldDistractors)
	return u
}

// ClearDistractors clears the value of the "distractors" field.
func (u *StitchUpsert) ClearDistractors() *StitchUpsert {
	u.SetNull(stitch.FieldDistractors)
	return u
}

// SetSourceID sets the "source_id" field.
func (u *StitchUpsert) SetSourceID(v string) *StitchUpsert {
	u.Set(stitch.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *StitchUpsert) UpdateSourceID() *StitchUpsert {
	u.SetExcluded(stitch.FieldSourceID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Stitch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StitchUpsertOne) UpdateNewValues() *StitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stitch.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StitchUpsertOne) Ignore() *StitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StitchUpsertOne) DoNothing() *StitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StitchCreate.OnConflict
// documentation for more info.
func (u *StitchUpsertOne) Update(set func(*StitchUpsert)) *StitchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StitchUpsert{UpdateSet: update})
	}))
	return u
}

// SetContentID sets the "content_id" field.
func (u *StitchUpsertOne) SetContentID(v string) *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.SetContentID(v)
	})
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *StitchUpsertOne) UpdateContentID() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateContentID()
	})
}

// SetQuestion sets the "question" field.
func (u *StitchUpsertOne) SetQuestion(v string) *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StitchUpsertOne) UpdateQuestion() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *StitchUpsertOne) SetAnswer(v string) *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StitchUpsertOne) UpdateAnswer() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateAnswer()
	})
}

// SetDistractors sets the "distractors" field.
func (u *StitchUpsertOne) SetDistractors(v map[int][]string) *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.SetDistractors(v)
	})
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *StitchUpsertOne) UpdateDistractors() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateDistractors()
	})
}

// ClearDistractors clears the value of the "distractors" field.
func (u *StitchUpsertOne) ClearDistractors() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.ClearDistractors()
	})
}

// SetSourceID sets the "source_id" field.
func (u *StitchUpsertOne) SetSourceID(v string) *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *StitchUpsertOne) UpdateSourceID() *StitchUpsertOne {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateSourceID()
	})
}

// Exec executes the query.
func (u *StitchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StitchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StitchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StitchUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StitchUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StitchCreateBulk is the builder for creating many Stitch entities in bulk.
type StitchCreateBulk struct {
	config
	err      error
	builders []*StitchCreate
	conflict []sql.ConflictOption
}

// Save creates the Stitch entities in the database.
func (_c *StitchCreateBulk) Save(ctx context.Context) ([]*Stitch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stitch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StitchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StitchCreateBulk) SaveX(ctx context.Context) []*Stitch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StitchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StitchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stitch.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StitchUpsert) {
//			SetContentID(v+v).
//		}).
//		Exec(ctx)
func (_c *StitchCreateBulk) OnConflict(opts ...sql.ConflictOption) *StitchUpsertBulk {
	_c.conflict = opts
	return &StitchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stitch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StitchCreateBulk) OnConflictColumns(columns ...string) *StitchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StitchUpsertBulk{
		create: _c,
	}
}

// StitchUpsertBulk is the builder for "upsert"-ing
// a bulk of Stitch nodes.
type StitchUpsertBulk struct {
	create *StitchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Stitch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StitchUpsertBulk) UpdateNewValues() *StitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stitch.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StitchUpsertBulk) Ignore() *StitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StitchUpsertBulk) DoNothing() *StitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StitchCreateBulk.OnConflict
// documentation for more info.
func (u *StitchUpsertBulk) Update(set func(*StitchUpsert)) *StitchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StitchUpsert{UpdateSet: update})
	}))
	return u
}

// SetContentID sets the "content_id" field.
func (u *StitchUpsertBulk) SetContentID(v string) *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.SetContentID(v)
	})
}

// UpdateContentID sets the "content_id" field to the value that was provided on create.
func (u *StitchUpsertBulk) UpdateContentID() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateContentID()
	})
}

// SetQuestion sets the "question" field.
func (u *StitchUpsertBulk) SetQuestion(v string) *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StitchUpsertBulk) UpdateQuestion() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateQuestion()
	})
}

// SetAnswer sets the "answer" field.
func (u *StitchUpsertBulk) SetAnswer(v string) *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *StitchUpsertBulk) UpdateAnswer() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateAnswer()
	})
}

// SetDistractors sets the "distractors" field.
func (u *StitchUpsertBulk) SetDistractors(v map[int][]string) *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.SetDistractors(v)
	})
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *StitchUpsertBulk) UpdateDistractors() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateDistractors()
	})
}

// ClearDistractors clears the value of the "distractors" field.
func (u *StitchUpsertBulk) ClearDistractors() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.ClearDistractors()
	})
}

// SetSourceID sets the "source_id" field.
func (u *StitchUpsertBulk) SetSourceID(v string) *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *StitchUpsertBulk) UpdateSourceID() *StitchUpsertBulk {
	return u.Update(func(s *StitchUpsert) {
		s.UpdateSourceID()
	})
}

// Exec executes the query.
func (u *StitchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StitchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StitchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StitchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
