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
)

// MutationEventCreate is the builder for creating a MutationEvent entity.
type MutationEventCreate struct {
	config
	mutation *MutationEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *MutationEventCreate) SetSequence(v int64) *MutationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MutationEventCreate) SetTimestamp(v time.Time) *MutationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MutationEventCreate) SetNillableTimestamp(v *time.Time) *MutationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMutationID sets the "mutation_id" field.
func (_c *MutationEventCreate) SetMutationID(v string) *MutationEventCreate {
	_c.mutation.SetMutationID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *MutationEventCreate) SetLearnerID(v string) *MutationEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLane sets the "lane" field.
func (_c *MutationEventCreate) SetLane(v int) *MutationEventCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetPerfect sets the "perfect" field.
func (_c *MutationEventCreate) SetPerfect(v bool) *MutationEventCreate {
	_c.mutation.SetPerfect(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *MutationEventCreate) SetOccurredAt(v time.Time) *MutationEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// Mutation returns the MutationEventMutation object of the builder.
func (_c *MutationEventCreate) Mutation() *MutationEventMutation {
	return _c.mutation
}

// Save creates the MutationEvent in the database.
func (_c *MutationEventCreate) Save(ctx context.Context) (*MutationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MutationEventCreate) SaveX(ctx context.Context) *MutationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MutationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MutationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MutationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mutationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MutationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MutationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MutationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.MutationID(); !ok {
		return &ValidationError{Name: "mutation_id", err: errors.New(`ent: missing required field "MutationEvent.mutation_id"`)}
	}
	if v, ok := _c.mutation.MutationID(); ok {
		if err := mutationevent.MutationIDValidator(v); err != nil {
			return &ValidationError{Name: "mutation_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.mutation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MutationEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := mutationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MutationEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lane(); !ok {
		return &ValidationError{Name: "lane", err: errors.New(`ent: missing required field "MutationEvent.lane"`)}
	}
	if _, ok := _c.mutation.Perfect(); !ok {
		return &ValidationError{Name: "perfect", err: errors.New(`ent: missing required field "MutationEvent.perfect"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "MutationEvent.occurred_at"`)}
	}
	return nil
}

func (_c *MutationEventCreate) sqlSave(ctx context.Context) (*MutationEvent, error) {
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

func (_c *MutationEventCreate) createSpec() (*MutationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MutationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mutationevent.Table, sqlgraph.NewFieldSpec(mutationevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(mutationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mutationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.MutationID(); ok {
		_spec.SetField(mutationevent.FieldMutationID, field.TypeString, value)
		_node.MutationID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(mutationevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(mutationevent.FieldLane, field.TypeInt, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.Perfect(); ok {
		_spec.SetField(mutationevent.FieldPerfect, field.TypeBool, value)
		_node.Perfect = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(mutationevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MutationEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MutationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *MutationEventCreate) OnConflict(opts ...sql.ConflictOption) *MutationEventUpsertOne {
	_c.conflict = opts
	return &MutationEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MutationEventCreate) OnConflictColumns(columns ...string) *MutationEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MutationEventUpsertOne{
		create: _c,
	}
}

type (
	// MutationEventUpsertOne is the builder for "upsert"-ing
	//  one MutationEvent node.
	MutationEventUpsertOne struct {
		create *MutationEventCreate
	}

	// MutationEventUpsert is the "OnConflict" setter.
	MutationEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetMutationID sets the "mutation_id" field.
func (u *MutationEventUpsert) SetMutationID(v string) *MutationEventUpsert {
	u.Set(mutationevent.FieldMutationID, v)
	return u
}

// UpdateMutationID sets the "mutation_id" field to the value that was provided on create.
func (u *MutationEventUpsert) UpdateMutationID() *MutationEventUpsert {
	u.SetExcluded(mutationevent.FieldMutationID)
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *MutationEventUpsert) SetLearnerID(v string) *MutationEventUpsert {
	u.Set(mutationevent.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MutationEventUpsert) UpdateLearnerID() *MutationEventUpsert {
	u.SetExcluded(mutationevent.FieldLearnerID)
	return u
}

// SetLane sets the "lane" field.
func (u *MutationEventUpsert) SetLane(v int) *MutationEventUpsert {
	u.Set(mutationevent.FieldLane, v)
	return u
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *MutationEventUpsert) UpdateLane() *MutationEventUpsert {
	u.SetExcluded(mutationevent.FieldLane)
	return u
}

// AddLane adds v to the "lane" field.
func (u *MutationEventUpsert) AddLane(v int) *MutationEventUpsert {
	u.Add(mutationevent.FieldLane, v)
	return u
}

// SetPerfect sets the "perfect" field.
func (u *MutationEventUpsert) SetPerfect(v bool) *MutationEventUpsert {
	u.Set(mutationevent.FieldPerfect, v)
	return u
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *MutationEventUpsert) UpdatePerfect() *MutationEventUpsert {
	u.SetExcluded(mutationevent.FieldPerfect)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *MutationEventUpsert) SetOccurredAt(v time.Time) *MutationEventUpsert {
	u.Set(mutationevent.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *MutationEventUpsert) UpdateOccurredAt() *MutationEventUpsert {
	u.SetExcluded(mutationevent.FieldOccurredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MutationEventUpsertOne) UpdateNewValues() *MutationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(mutationevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(mutationevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MutationEventUpsertOne) Ignore() *MutationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MutationEventUpsertOne) DoNothing() *MutationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MutationEventCreate.OnConflict
// documentation for more info.
func (u *MutationEventUpsertOne) Update(set func(*MutationEventUpsert)) *MutationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MutationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMutationID sets the "mutation_id" field.
func (u *MutationEventUpsertOne) SetMutationID(v string) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetMutationID(v)
	})
}

// UpdateMutationID sets the "mutation_id" field to the value that was provided on create.
func (u *MutationEventUpsertOne) UpdateMutationID() *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateMutationID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *MutationEventUpsertOne) SetLearnerID(v string) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MutationEventUpsertOne) UpdateLearnerID() *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLane sets the "lane" field.
func (u *MutationEventUpsertOne) SetLane(v int) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetLane(v)
	})
}

// AddLane adds v to the "lane" field.
func (u *MutationEventUpsertOne) AddLane(v int) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.AddLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *MutationEventUpsertOne) UpdateLane() *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateLane()
	})
}

// SetPerfect sets the "perfect" field.
func (u *MutationEventUpsertOne) SetPerfect(v bool) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetPerfect(v)
	})
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *MutationEventUpsertOne) UpdatePerfect() *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdatePerfect()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *MutationEventUpsertOne) SetOccurredAt(v time.Time) *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *MutationEventUpsertOne) UpdateOccurredAt() *MutationEventUpsertOne {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *MutationEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MutationEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MutationEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MutationEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MutationEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MutationEventCreateBulk is the builder for creating many MutationEvent entities in bulk.
type MutationEventCreateBulk struct {
	config
	err      error
	builders []*MutationEventCreate
	conflict []sql.ConflictOption
}

// Save creates the MutationEvent entities in the database.
func (_c *MutationEventCreateBulk) Save(ctx context.Context) ([]*MutationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MutationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MutationEventMutation)
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
func (_c *MutationEventCreateBulk) SaveX(ctx context.Context) []*MutationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MutationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MutationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MutationEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MutationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *MutationEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *MutationEventUpsertBulk {
	_c.conflict = opts
	return &MutationEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MutationEventCreateBulk) OnConflictColumns(columns ...string) *MutationEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MutationEventUpsertBulk{
		create: _c,
	}
}

// MutationEventUpsertBulk is the builder for "upsert"-ing
// a bulk of MutationEvent nodes.
type MutationEventUpsertBulk struct {
	create *MutationEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MutationEventUpsertBulk) UpdateNewValues() *MutationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(mutationevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(mutationevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MutationEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MutationEventUpsertBulk) Ignore() *MutationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MutationEventUpsertBulk) DoNothing() *MutationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MutationEventCreateBulk.OnConflict
// documentation for more info.
func (u *MutationEventUpsertBulk) Update(set func(*MutationEventUpsert)) *MutationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MutationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetMutationID sets the "mutation_id" field.
func (u *MutationEventUpsertBulk) SetMutationID(v string) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetMutationID(v)
	})
}

// UpdateMutationID sets the "mutation_id" field to the value that was provided on create.
func (u *MutationEventUpsertBulk) UpdateMutationID() *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateMutationID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *MutationEventUpsertBulk) SetLearnerID(v string) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MutationEventUpsertBulk) UpdateLearnerID() *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLane sets the "lane" field.
func (u *MutationEventUpsertBulk) SetLane(v int) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetLane(v)
	})
}

// AddLane adds v to the "lane" field.
func (u *MutationEventUpsertBulk) AddLane(v int) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.AddLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *MutationEventUpsertBulk) UpdateLane() *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateLane()
	})
}

// SetPerfect sets the "perfect" field.
func (u *MutationEventUpsertBulk) SetPerfect(v bool) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetPerfect(v)
	})
}

// UpdatePerfect sets the "perfect" field to the value that was provided on create.
func (u *MutationEventUpsertBulk) UpdatePerfect() *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdatePerfect()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *MutationEventUpsertBulk) SetOccurredAt(v time.Time) *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *MutationEventUpsertBulk) UpdateOccurredAt() *MutationEventUpsertBulk {
	return u.Update(func(s *MutationEventUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *MutationEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MutationEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MutationEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MutationEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
