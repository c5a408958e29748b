// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// LessonSnapshot is the predicate function for lessonsnapshot builders.
type LessonSnapshot func(*sql.Selector)
