package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records a session milestone (phase transition, completion)
// for facilitator-facing analytics. Append-only.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.String("lesson_key").NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("Event kind: phase-transition, completion"),
		field.String("detail").
			Optional().
			Comment("Kind-specific detail, e.g. the phase entered or the score"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "lesson_key"),
		index.Fields("timestamp"),
	}
}
