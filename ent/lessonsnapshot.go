// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorflow/engine/ent/lessonsnapshot"
)

// LessonSnapshot is the model entity for the LessonSnapshot schema.
type LessonSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner the snapshot belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Canonical lesson key (prefix/extension stripped)
	LessonKey string `json:"lesson_key,omitempty"`
	// Content signature of the payload at write time
	Signature string `json:"signature,omitempty"`
	// When the snapshot was last written
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Full session payload as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonsnapshot.FieldData:
			values[i] = new([]byte)
		case lessonsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case lessonsnapshot.FieldLearnerID, lessonsnapshot.FieldLessonKey, lessonsnapshot.FieldSignature:
			values[i] = new(sql.NullString)
		case lessonsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonSnapshot fields.
func (_m *LessonSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonsnapshot.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case lessonsnapshot.FieldLessonKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_key", values[i])
			} else if value.Valid {
				_m.LessonKey = value.String
			}
		case lessonsnapshot.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = value.String
			}
		case lessonsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case lessonsnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *LessonSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonSnapshot.
// Note that you need to call LessonSnapshot.Unwrap() before calling this method if this LessonSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonSnapshot) Update() *LessonSnapshotUpdateOne {
	return NewLessonSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonSnapshot) Unwrap() *LessonSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("LessonSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("lesson_key=")
	builder.WriteString(_m.LessonKey)
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(_m.Signature)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// LessonSnapshots is a parsable slice of LessonSnapshot.
type LessonSnapshots []*LessonSnapshot
