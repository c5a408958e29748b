// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_key", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_learner_id_lesson_key",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[6]},
			},
		},
	}
	// LessonSnapshotsColumns holds the columns for the "lesson_snapshots" table.
	LessonSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_key", Type: field.TypeString},
		{Name: "signature", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// LessonSnapshotsTable holds the schema information for the "lesson_snapshots" table.
	LessonSnapshotsTable = &schema.Table{
		Name:       "lesson_snapshots",
		Columns:    LessonSnapshotsColumns,
		PrimaryKey: []*schema.Column{LessonSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonsnapshot_learner_id_lesson_key",
				Unique:  true,
				Columns: []*schema.Column{LessonSnapshotsColumns[1], LessonSnapshotsColumns[2]},
			},
			{
				Name:    "lessonsnapshot_updated_at",
				Unique:  false,
				Columns: []*schema.Column{LessonSnapshotsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonEventsTable,
		LessonSnapshotsTable,
	}
)

func init() {
}
