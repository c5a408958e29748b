// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tutorflow/engine/ent/lessonevent"
	"github.com/tutorflow/engine/ent/lessonsnapshot"
	"github.com/tutorflow/engine/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescLearnerID is the schema descriptor for learner_id field.
	lessoneventDescLearnerID := lessoneventFields[1].Descriptor()
	// lessonevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lessonevent.LearnerIDValidator = lessoneventDescLearnerID.Validators[0].(func(string) error)
	// lessoneventDescLessonKey is the schema descriptor for lesson_key field.
	lessoneventDescLessonKey := lessoneventFields[2].Descriptor()
	// lessonevent.LessonKeyValidator is a validator for the "lesson_key" field. It is called by the builders before save.
	lessonevent.LessonKeyValidator = lessoneventDescLessonKey.Validators[0].(func(string) error)
	// lessoneventDescKind is the schema descriptor for kind field.
	lessoneventDescKind := lessoneventFields[3].Descriptor()
	// lessonevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	lessonevent.KindValidator = lessoneventDescKind.Validators[0].(func(string) error)
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	lessonsnapshotFields := schema.LessonSnapshot{}.Fields()
	_ = lessonsnapshotFields
	// lessonsnapshotDescLearnerID is the schema descriptor for learner_id field.
	lessonsnapshotDescLearnerID := lessonsnapshotFields[0].Descriptor()
	// lessonsnapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lessonsnapshot.LearnerIDValidator = lessonsnapshotDescLearnerID.Validators[0].(func(string) error)
	// lessonsnapshotDescLessonKey is the schema descriptor for lesson_key field.
	lessonsnapshotDescLessonKey := lessonsnapshotFields[1].Descriptor()
	// lessonsnapshot.LessonKeyValidator is a validator for the "lesson_key" field. It is called by the builders before save.
	lessonsnapshot.LessonKeyValidator = lessonsnapshotDescLessonKey.Validators[0].(func(string) error)
	// lessonsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	lessonsnapshotDescUpdatedAt := lessonsnapshotFields[3].Descriptor()
	// lessonsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonsnapshot.DefaultUpdatedAt = lessonsnapshotDescUpdatedAt.Default.(func() time.Time)
	// lessonsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonsnapshot.UpdateDefaultUpdatedAt = lessonsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
