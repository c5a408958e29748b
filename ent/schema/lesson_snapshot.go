package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonSnapshot captures the full session state for one (learner, lesson)
// pair, enabling bit-for-bit restore after a reload or device switch.
// Exactly one row exists per pair; saves upsert it.
type LessonSnapshot struct {
	ent.Schema
}

func (LessonSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the snapshot belongs to"),
		field.String("lesson_key").
			NotEmpty().
			Comment("Canonical lesson key (prefix/extension stripped)"),
		field.String("signature").
			Comment("Content signature of the payload at write time"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
		field.JSON("data", map[string]any{}).
			Comment("Full session payload as JSON"),
	}
}

func (LessonSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lesson_key").Unique(),
		index.Fields("updated_at"),
	}
}
