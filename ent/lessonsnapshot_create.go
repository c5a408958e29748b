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
	"github.com/tutorflow/engine/ent/lessonsnapshot"
)

// LessonSnapshotCreate is the builder for creating a LessonSnapshot entity.
type LessonSnapshotCreate struct {
	config
	mutation *LessonSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *LessonSnapshotCreate) SetLearnerID(v string) *LessonSnapshotCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLessonKey sets the "lesson_key" field.
func (_c *LessonSnapshotCreate) SetLessonKey(v string) *LessonSnapshotCreate {
	_c.mutation.SetLessonKey(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *LessonSnapshotCreate) SetSignature(v string) *LessonSnapshotCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonSnapshotCreate) SetUpdatedAt(v time.Time) *LessonSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *LessonSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *LessonSnapshotCreate) SetData(v map[string]interface{}) *LessonSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the LessonSnapshotMutation object of the builder.
func (_c *LessonSnapshotCreate) Mutation() *LessonSnapshotMutation {
	return _c.mutation
}

// Save creates the LessonSnapshot in the database.
func (_c *LessonSnapshotCreate) Save(ctx context.Context) (*LessonSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonSnapshotCreate) SaveX(ctx context.Context) *LessonSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonSnapshotCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonsnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonSnapshotCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LessonSnapshot.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := lessonsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonKey(); !ok {
		return &ValidationError{Name: "lesson_key", err: errors.New(`ent: missing required field "LessonSnapshot.lesson_key"`)}
	}
	if v, ok := _c.mutation.LessonKey(); ok {
		if err := lessonsnapshot.LessonKeyValidator(v); err != nil {
			return &ValidationError{Name: "lesson_key", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.lesson_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Signature(); !ok {
		return &ValidationError{Name: "signature", err: errors.New(`ent: missing required field "LessonSnapshot.signature"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonSnapshot.updated_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "LessonSnapshot.data"`)}
	}
	return nil
}

func (_c *LessonSnapshotCreate) sqlSave(ctx context.Context) (*LessonSnapshot, error) {
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

func (_c *LessonSnapshotCreate) createSpec() (*LessonSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonsnapshot.Table, sqlgraph.NewFieldSpec(lessonsnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(lessonsnapshot.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LessonKey(); ok {
		_spec.SetField(lessonsnapshot.FieldLessonKey, field.TypeString, value)
		_node.LessonKey = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(lessonsnapshot.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(lessonsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonSnapshot.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonSnapshotUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *LessonSnapshotUpsertOne {
	_c.conflict = opts
	return &LessonSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonSnapshotCreate) OnConflictColumns(columns ...string) *LessonSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// LessonSnapshotUpsertOne is the builder for "upsert"-ing
	//  one LessonSnapshot node.
	LessonSnapshotUpsertOne struct {
		create *LessonSnapshotCreate
	}

	// LessonSnapshotUpsert is the "OnConflict" setter.
	LessonSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *LessonSnapshotUpsert) SetLearnerID(v string) *LessonSnapshotUpsert {
	u.Set(lessonsnapshot.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonSnapshotUpsert) UpdateLearnerID() *LessonSnapshotUpsert {
	u.SetExcluded(lessonsnapshot.FieldLearnerID)
	return u
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonSnapshotUpsert) SetLessonKey(v string) *LessonSnapshotUpsert {
	u.Set(lessonsnapshot.FieldLessonKey, v)
	return u
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonSnapshotUpsert) UpdateLessonKey() *LessonSnapshotUpsert {
	u.SetExcluded(lessonsnapshot.FieldLessonKey)
	return u
}

// SetSignature sets the "signature" field.
func (u *LessonSnapshotUpsert) SetSignature(v string) *LessonSnapshotUpsert {
	u.Set(lessonsnapshot.FieldSignature, v)
	return u
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *LessonSnapshotUpsert) UpdateSignature() *LessonSnapshotUpsert {
	u.SetExcluded(lessonsnapshot.FieldSignature)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonSnapshotUpsert) SetUpdatedAt(v time.Time) *LessonSnapshotUpsert {
	u.Set(lessonsnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonSnapshotUpsert) UpdateUpdatedAt() *LessonSnapshotUpsert {
	u.SetExcluded(lessonsnapshot.FieldUpdatedAt)
	return u
}

// SetData sets the "data" field.
func (u *LessonSnapshotUpsert) SetData(v map[string]interface{}) *LessonSnapshotUpsert {
	u.Set(lessonsnapshot.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LessonSnapshotUpsert) UpdateData() *LessonSnapshotUpsert {
	u.SetExcluded(lessonsnapshot.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonSnapshotUpsertOne) UpdateNewValues() *LessonSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonSnapshotUpsertOne) Ignore() *LessonSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonSnapshotUpsertOne) DoNothing() *LessonSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonSnapshotCreate.OnConflict
// documentation for more info.
func (u *LessonSnapshotUpsertOne) Update(set func(*LessonSnapshotUpsert)) *LessonSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonSnapshotUpsertOne) SetLearnerID(v string) *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonSnapshotUpsertOne) UpdateLearnerID() *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonSnapshotUpsertOne) SetLessonKey(v string) *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetLessonKey(v)
	})
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonSnapshotUpsertOne) UpdateLessonKey() *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateLessonKey()
	})
}

// SetSignature sets the "signature" field.
func (u *LessonSnapshotUpsertOne) SetSignature(v string) *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *LessonSnapshotUpsertOne) UpdateSignature() *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateSignature()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonSnapshotUpsertOne) SetUpdatedAt(v time.Time) *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonSnapshotUpsertOne) UpdateUpdatedAt() *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetData sets the "data" field.
func (u *LessonSnapshotUpsertOne) SetData(v map[string]interface{}) *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LessonSnapshotUpsertOne) UpdateData() *LessonSnapshotUpsertOne {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *LessonSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonSnapshotCreateBulk is the builder for creating many LessonSnapshot entities in bulk.
type LessonSnapshotCreateBulk struct {
	config
	err      error
	builders []*LessonSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonSnapshot entities in the database.
func (_c *LessonSnapshotCreateBulk) Save(ctx context.Context) ([]*LessonSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonSnapshotMutation)
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
func (_c *LessonSnapshotCreateBulk) SaveX(ctx context.Context) []*LessonSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonSnapshotUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonSnapshotUpsertBulk {
	_c.conflict = opts
	return &LessonSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonSnapshotCreateBulk) OnConflictColumns(columns ...string) *LessonSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonSnapshotUpsertBulk{
		create: _c,
	}
}

// LessonSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonSnapshot nodes.
type LessonSnapshotUpsertBulk struct {
	create *LessonSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonSnapshotUpsertBulk) UpdateNewValues() *LessonSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonSnapshotUpsertBulk) Ignore() *LessonSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonSnapshotUpsertBulk) DoNothing() *LessonSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *LessonSnapshotUpsertBulk) Update(set func(*LessonSnapshotUpsert)) *LessonSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonSnapshotUpsertBulk) SetLearnerID(v string) *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonSnapshotUpsertBulk) UpdateLearnerID() *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonSnapshotUpsertBulk) SetLessonKey(v string) *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetLessonKey(v)
	})
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonSnapshotUpsertBulk) UpdateLessonKey() *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateLessonKey()
	})
}

// SetSignature sets the "signature" field.
func (u *LessonSnapshotUpsertBulk) SetSignature(v string) *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *LessonSnapshotUpsertBulk) UpdateSignature() *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateSignature()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LessonSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LessonSnapshotUpsertBulk) UpdateUpdatedAt() *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetData sets the "data" field.
func (u *LessonSnapshotUpsertBulk) SetData(v map[string]interface{}) *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LessonSnapshotUpsertBulk) UpdateData() *LessonSnapshotUpsertBulk {
	return u.Update(func(s *LessonSnapshotUpsert) {
		s.UpdateData()
	})
}

// Exec executes the query.
func (u *LessonSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
