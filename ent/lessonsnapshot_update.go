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
	"github.com/tutorflow/engine/ent/predicate"
)

// LessonSnapshotUpdate is the builder for updating LessonSnapshot entities.
type LessonSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *LessonSnapshotMutation
}

// Where appends a list predicates to the LessonSnapshotUpdate builder.
func (_u *LessonSnapshotUpdate) Where(ps ...predicate.LessonSnapshot) *LessonSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonSnapshotUpdate) SetLearnerID(v string) *LessonSnapshotUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonSnapshotUpdate) SetNillableLearnerID(v *string) *LessonSnapshotUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonKey sets the "lesson_key" field.
func (_u *LessonSnapshotUpdate) SetLessonKey(v string) *LessonSnapshotUpdate {
	_u.mutation.SetLessonKey(v)
	return _u
}

// SetNillableLessonKey sets the "lesson_key" field if the given value is not nil.
func (_u *LessonSnapshotUpdate) SetNillableLessonKey(v *string) *LessonSnapshotUpdate {
	if v != nil {
		_u.SetLessonKey(*v)
	}
	return _u
}

// SetSignature sets the "signature" field.
func (_u *LessonSnapshotUpdate) SetSignature(v string) *LessonSnapshotUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *LessonSnapshotUpdate) SetNillableSignature(v *string) *LessonSnapshotUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonSnapshotUpdate) SetUpdatedAt(v time.Time) *LessonSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *LessonSnapshotUpdate) SetData(v map[string]interface{}) *LessonSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LessonSnapshotMutation object of the builder.
func (_u *LessonSnapshotUpdate) Mutation() *LessonSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSnapshotUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonKey(); ok {
		if err := lessonsnapshot.LessonKeyValidator(v); err != nil {
			return &ValidationError{Name: "lesson_key", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.lesson_key": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsnapshot.Table, lessonsnapshot.Columns, sqlgraph.NewFieldSpec(lessonsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(lessonsnapshot.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonKey(); ok {
		_spec.SetField(lessonsnapshot.FieldLessonKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(lessonsnapshot.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonSnapshotUpdateOne is the builder for updating a single LessonSnapshot entity.
type LessonSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonSnapshotMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonSnapshotUpdateOne) SetLearnerID(v string) *LessonSnapshotUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonSnapshotUpdateOne) SetNillableLearnerID(v *string) *LessonSnapshotUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonKey sets the "lesson_key" field.
func (_u *LessonSnapshotUpdateOne) SetLessonKey(v string) *LessonSnapshotUpdateOne {
	_u.mutation.SetLessonKey(v)
	return _u
}

// SetNillableLessonKey sets the "lesson_key" field if the given value is not nil.
func (_u *LessonSnapshotUpdateOne) SetNillableLessonKey(v *string) *LessonSnapshotUpdateOne {
	if v != nil {
		_u.SetLessonKey(*v)
	}
	return _u
}

// SetSignature sets the "signature" field.
func (_u *LessonSnapshotUpdateOne) SetSignature(v string) *LessonSnapshotUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *LessonSnapshotUpdateOne) SetNillableSignature(v *string) *LessonSnapshotUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonSnapshotUpdateOne) SetUpdatedAt(v time.Time) *LessonSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *LessonSnapshotUpdateOne) SetData(v map[string]interface{}) *LessonSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the LessonSnapshotMutation object of the builder.
func (_u *LessonSnapshotUpdateOne) Mutation() *LessonSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonSnapshotUpdate builder.
func (_u *LessonSnapshotUpdateOne) Where(ps ...predicate.LessonSnapshot) *LessonSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonSnapshotUpdateOne) Select(field string, fields ...string) *LessonSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonSnapshot entity.
func (_u *LessonSnapshotUpdateOne) Save(ctx context.Context) (*LessonSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonSnapshotUpdateOne) SaveX(ctx context.Context) *LessonSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonKey(); ok {
		if err := lessonsnapshot.LessonKeyValidator(v); err != nil {
			return &ValidationError{Name: "lesson_key", err: fmt.Errorf(`ent: validator failed for field "LessonSnapshot.lesson_key": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *LessonSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonsnapshot.Table, lessonsnapshot.Columns, sqlgraph.NewFieldSpec(lessonsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonsnapshot.FieldID)
		for _, f := range fields {
			if !lessonsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonsnapshot.FieldID {
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
		_spec.SetField(lessonsnapshot.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonKey(); ok {
		_spec.SetField(lessonsnapshot.FieldLessonKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(lessonsnapshot.FieldSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &LessonSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
