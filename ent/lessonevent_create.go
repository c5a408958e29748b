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
	"github.com/tutorflow/engine/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *LessonEventCreate) SetSessionID(v string) *LessonEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *LessonEventCreate) SetLearnerID(v string) *LessonEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLessonKey sets the "lesson_key" field.
func (_c *LessonEventCreate) SetLessonKey(v string) *LessonEventCreate {
	_c.mutation.SetLessonKey(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *LessonEventCreate) SetKind(v string) *LessonEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *LessonEventCreate) SetDetail(v string) *LessonEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableDetail(v *string) *LessonEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonEventCreate) SetTimestamp(v time.Time) *LessonEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableTimestamp(v *time.Time) *LessonEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the LessonEventMutation object of the builder.
func (_c *LessonEventCreate) Mutation() *LessonEventMutation {
	return _c.mutation
}

// Save creates the LessonEvent in the database.
func (_c *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LessonEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LessonEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := lessonevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonKey(); !ok {
		return &ValidationError{Name: "lesson_key", err: errors.New(`ent: missing required field "LessonEvent.lesson_key"`)}
	}
	if v, ok := _c.mutation.LessonKey(); ok {
		if err := lessonevent.LessonKeyValidator(v); err != nil {
			return &ValidationError{Name: "lesson_key", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "LessonEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := lessonevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	return nil
}

func (_c *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
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

func (_c *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(lessonevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LessonKey(); ok {
		_spec.SetField(lessonevent.FieldLessonKey, field.TypeString, value)
		_node.LessonKey = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(lessonevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(lessonevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonEventCreate) OnConflict(opts ...sql.ConflictOption) *LessonEventUpsertOne {
	_c.conflict = opts
	return &LessonEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonEventCreate) OnConflictColumns(columns ...string) *LessonEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonEventUpsertOne{
		create: _c,
	}
}

type (
	// LessonEventUpsertOne is the builder for "upsert"-ing
	//  one LessonEvent node.
	LessonEventUpsertOne struct {
		create *LessonEventCreate
	}

	// LessonEventUpsert is the "OnConflict" setter.
	LessonEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *LessonEventUpsert) SetSessionID(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateSessionID() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldSessionID)
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonEventUpsert) SetLearnerID(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateLearnerID() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldLearnerID)
	return u
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonEventUpsert) SetLessonKey(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldLessonKey, v)
	return u
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateLessonKey() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldLessonKey)
	return u
}

// SetKind sets the "kind" field.
func (u *LessonEventUpsert) SetKind(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateKind() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldKind)
	return u
}

// SetDetail sets the "detail" field.
func (u *LessonEventUpsert) SetDetail(v string) *LessonEventUpsert {
	u.Set(lessonevent.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LessonEventUpsert) UpdateDetail() *LessonEventUpsert {
	u.SetExcluded(lessonevent.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *LessonEventUpsert) ClearDetail() *LessonEventUpsert {
	u.SetNull(lessonevent.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonEventUpsertOne) UpdateNewValues() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(lessonevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LessonEventUpsertOne) Ignore() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonEventUpsertOne) DoNothing() *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonEventCreate.OnConflict
// documentation for more info.
func (u *LessonEventUpsertOne) Update(set func(*LessonEventUpsert)) *LessonEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LessonEventUpsertOne) SetSessionID(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateSessionID() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonEventUpsertOne) SetLearnerID(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateLearnerID() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonEventUpsertOne) SetLessonKey(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetLessonKey(v)
	})
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateLessonKey() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateLessonKey()
	})
}

// SetKind sets the "kind" field.
func (u *LessonEventUpsertOne) SetKind(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateKind() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateKind()
	})
}

// SetDetail sets the "detail" field.
func (u *LessonEventUpsertOne) SetDetail(v string) *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LessonEventUpsertOne) UpdateDetail() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *LessonEventUpsertOne) ClearDetail() *LessonEventUpsertOne {
	return u.Update(func(s *LessonEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *LessonEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LessonEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LessonEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
	conflict []sql.ConflictOption
}

// Save creates the LessonEvent entities in the database.
func (_c *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
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
func (_c *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LessonEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LessonEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LessonEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *LessonEventUpsertBulk {
	_c.conflict = opts
	return &LessonEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LessonEventCreateBulk) OnConflictColumns(columns ...string) *LessonEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LessonEventUpsertBulk{
		create: _c,
	}
}

// LessonEventUpsertBulk is the builder for "upsert"-ing
// a bulk of LessonEvent nodes.
type LessonEventUpsertBulk struct {
	create *LessonEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LessonEventUpsertBulk) UpdateNewValues() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(lessonevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LessonEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LessonEventUpsertBulk) Ignore() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LessonEventUpsertBulk) DoNothing() *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LessonEventCreateBulk.OnConflict
// documentation for more info.
func (u *LessonEventUpsertBulk) Update(set func(*LessonEventUpsert)) *LessonEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LessonEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *LessonEventUpsertBulk) SetSessionID(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateSessionID() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetLearnerID sets the "learner_id" field.
func (u *LessonEventUpsertBulk) SetLearnerID(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateLearnerID() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetLessonKey sets the "lesson_key" field.
func (u *LessonEventUpsertBulk) SetLessonKey(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetLessonKey(v)
	})
}

// UpdateLessonKey sets the "lesson_key" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateLessonKey() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateLessonKey()
	})
}

// SetKind sets the "kind" field.
func (u *LessonEventUpsertBulk) SetKind(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateKind() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateKind()
	})
}

// SetDetail sets the "detail" field.
func (u *LessonEventUpsertBulk) SetDetail(v string) *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *LessonEventUpsertBulk) UpdateDetail() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *LessonEventUpsertBulk) ClearDetail() *LessonEventUpsertBulk {
	return u.Update(func(s *LessonEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *LessonEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LessonEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LessonEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LessonEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
