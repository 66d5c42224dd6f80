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
	"entgo.io/ent/schema/field"
	"github.com/abhisek/trihelix/ent/remotestate"
)

// RemoteStateCreate is the builder for creating a RemoteState entity.
type RemoteStateCreate struct {
	config
	mutation *RemoteStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *RemoteStateCreate) SetLearnerID(v string) *RemoteStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RemoteStateCreate) SetPayload(v json.RawMessage) *RemoteStateCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *RemoteStateCreate) SetSavedAt(v time.Time) *RemoteStateCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *RemoteStateCreate) SetNillableSavedAt(v *time.Time) *RemoteStateCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// Mutation returns the RemoteStateMutation object of the builder.
func (_c *RemoteStateCreate) Mutation() *RemoteStateMutation {
	return _c.mutation
}

// Save creates the RemoteState in the database.
func (_c *RemoteStateCreate) Save(ctx context.Context) (*RemoteState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RemoteStateCreate) SaveX(ctx context.Context) *RemoteState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemoteStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemoteStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RemoteStateCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := remotestate.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RemoteStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "RemoteState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := remotestate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemoteState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "RemoteState.payload"`)}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "RemoteState.saved_at"`)}
	}
	return nil
}

func (_c *RemoteStateCreate) sqlSave(ctx context.Context) (*RemoteState, error) {
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

func (_c *RemoteStateCreate) createSpec() (*RemoteState, *sqlgraph.CreateSpec) {
	var (
		_node = &RemoteState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(remotestate.Table, sqlgraph.NewFieldSpec(remotestate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(remotestate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(remotestate.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(remotestate.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RemoteState.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RemoteStateUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *RemoteStateCreate) OnConflict(opts ...sql.ConflictOption) *RemoteStateUpsertOne {
	_c.conflict = opts
	return &RemoteStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RemoteStateCreate) OnConflictColumns(columns ...string) *RemoteStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RemoteStateUpsertOne{
		create: _c,
	}
}

type (
	// RemoteStateUpsertOne is the builder for "upsert"-ing
	//  one RemoteState node.
	RemoteStateUpsertOne struct {
		create *RemoteStateCreate
	}

	// RemoteStateUpsert is the "OnConflict" setter.
	RemoteStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *RemoteStateUpsert) SetLearnerID(v string) *RemoteStateUpsert {
	u.Set(remotestate.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *RemoteStateUpsert) UpdateLearnerID() *RemoteStateUpsert {
	u.SetExcluded(remotestate.FieldLearnerID)
	return u
}

// SetPayload sets the "payload" field.
func (u *RemoteStateUpsert) SetPayload(v json.RawMessage) *RemoteStateUpsert {
	u.Set(remotestate.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RemoteStateUpsert) UpdatePayload() *RemoteStateUpsert {
	u.SetExcluded(remotestate.FieldPayload)
	return u
}

// SetSavedAt sets the "saved_at" field.
func (u *RemoteStateUpsert) SetSavedAt(v time.Time) *RemoteStateUpsert {
	u.Set(remotestate.FieldSavedAt, v)
	return u
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *RemoteStateUpsert) UpdateSavedAt() *RemoteStateUpsert {
	u.SetExcluded(remotestate.FieldSavedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RemoteStateUpsertOne) UpdateNewValues() *RemoteStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RemoteStateUpsertOne) Ignore() *RemoteStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RemoteStateUpsertOne) DoNothing() *RemoteStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RemoteStateCreate.OnConflict
// documentation for more info.
func (u *RemoteStateUpsertOne) Update(set func(*RemoteStateUpsert)) *RemoteStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RemoteStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *RemoteStateUpsertOne) SetLearnerID(v string) *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *RemoteStateUpsertOne) UpdateLearnerID() *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdateLearnerID()
	})
}

// SetPayload sets the "payload" field.
func (u *RemoteStateUpsertOne) SetPayload(v json.RawMessage) *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RemoteStateUpsertOne) UpdatePayload() *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdatePayload()
	})
}

// SetSavedAt sets the "saved_at" field.
func (u *RemoteStateUpsertOne) SetSavedAt(v time.Time) *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetSavedAt(v)
	})
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *RemoteStateUpsertOne) UpdateSavedAt() *RemoteStateUpsertOne {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdateSavedAt()
	})
}

// Exec executes the query.
func (u *RemoteStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RemoteStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RemoteStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RemoteStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RemoteStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RemoteStateCreateBulk is the builder for creating many RemoteState entities in bulk.
type RemoteStateCreateBulk struct {
	config
	err      error
	builders []*RemoteStateCreate
	conflict []sql.ConflictOption
}

// Save creates the RemoteState entities in the database.
func (_c *RemoteStateCreateBulk) Save(ctx context.Context) ([]*RemoteState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RemoteState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemoteStateMutation)
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
func (_c *RemoteStateCreateBulk) SaveX(ctx context.Context) []*RemoteState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemoteStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemoteStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RemoteState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RemoteStateUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *RemoteStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *RemoteStateUpsertBulk {
	_c.conflict = opts
	return &RemoteStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RemoteStateCreateBulk) OnConflictColumns(columns ...string) *RemoteStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RemoteStateUpsertBulk{
		create: _c,
	}
}

// RemoteStateUpsertBulk is the builder for "upsert"-ing
// a bulk of RemoteState nodes.
type RemoteStateUpsertBulk struct {
	create *RemoteStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RemoteStateUpsertBulk) UpdateNewValues() *RemoteStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RemoteState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RemoteStateUpsertBulk) Ignore() *RemoteStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RemoteStateUpsertBulk) DoNothing() *RemoteStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RemoteStateCreateBulk.OnConflict
// documentation for more info.
func (u *RemoteStateUpsertBulk) Update(set func(*RemoteStateUpsert)) *RemoteStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RemoteStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *RemoteStateUpsertBulk) SetLearnerID(v string) *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *RemoteStateUpsertBulk) UpdateLearnerID() *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdateLearnerID()
	})
}

// SetPayload sets the "payload" field.
func (u *RemoteStateUpsertBulk) SetPayload(v json.RawMessage) *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RemoteStateUpsertBulk) UpdatePayload() *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdatePayload()
	})
}

// SetSavedAt sets the "saved_at" field.
func (u *RemoteStateUpsertBulk) SetSavedAt(v time.Time) *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.SetSavedAt(v)
	})
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *RemoteStateUpsertBulk) UpdateSavedAt() *RemoteStateUpsertBulk {
	return u.Update(func(s *RemoteStateUpsert) {
		s.UpdateSavedAt()
	})
}

// Exec executes the query.
func (u *RemoteStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RemoteStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RemoteStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RemoteStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
