// Code generated by ent, DO NOT EDIT.

package lessonsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorflow/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldLearnerID, v))
}

// LessonKey applies equality check predicate on the "lesson_key" field. It's identical to LessonKeyEQ.
func LessonKey(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldLessonKey, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldSignature, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContainsFold(FieldLearnerID, v))
}

// LessonKeyEQ applies the EQ predicate on the "lesson_key" field.
func LessonKeyEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldLessonKey, v))
}

// LessonKeyNEQ applies the NEQ predicate on the "lesson_key" field.
func LessonKeyNEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNEQ(FieldLessonKey, v))
}

// LessonKeyIn applies the In predicate on the "lesson_key" field.
func LessonKeyIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldIn(FieldLessonKey, vs...))
}

// LessonKeyNotIn applies the NotIn predicate on the "lesson_key" field.
func LessonKeyNotIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNotIn(FieldLessonKey, vs...))
}

// LessonKeyGT applies the GT predicate on the "lesson_key" field.
func LessonKeyGT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGT(FieldLessonKey, v))
}

// LessonKeyGTE applies the GTE predicate on the "lesson_key" field.
func LessonKeyGTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGTE(FieldLessonKey, v))
}

// LessonKeyLT applies the LT predicate on the "lesson_key" field.
func LessonKeyLT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLT(FieldLessonKey, v))
}

// LessonKeyLTE applies the LTE predicate on the "lesson_key" field.
func LessonKeyLTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLTE(FieldLessonKey, v))
}

// LessonKeyContains applies the Contains predicate on the "lesson_key" field.
func LessonKeyContains(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContains(FieldLessonKey, v))
}

// LessonKeyHasPrefix applies the HasPrefix predicate on the "lesson_key" field.
func LessonKeyHasPrefix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasPrefix(FieldLessonKey, v))
}

// LessonKeyHasSuffix applies the HasSuffix predicate on the "lesson_key" field.
func LessonKeyHasSuffix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasSuffix(FieldLessonKey, v))
}

// LessonKeyEqualFold applies the EqualFold predicate on the "lesson_key" field.
func LessonKeyEqualFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEqualFold(FieldLessonKey, v))
}

// LessonKeyContainsFold applies the ContainsFold predicate on the "lesson_key" field.
func LessonKeyContainsFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContainsFold(FieldLessonKey, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldContainsFold(FieldSignature, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonSnapshot) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonSnapshot) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonSnapshot) predicate.LessonSnapshot {
	return predicate.LessonSnapshot(sql.NotPredicates(p))
}
