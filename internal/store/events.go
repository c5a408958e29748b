package store

import (
	"context"
	"fmt"

	"github.com/tutorflow/engine/ent"
)

// Event kinds recorded in the lesson event log.
const (
	EventPhaseTransition = "phase-transition"
	EventCompletion      = "completion"
)

// EventLog appends session milestones for facilitator analytics.
// Best-effort: callers log append failures and move on.
type EventLog struct {
	client *ent.Client
}

// Append records one event.
func (l *EventLog) Append(ctx context.Context, sessionID, learnerID, lessonKey, kind, detail string) error {
	err := l.client.LessonEvent.Create().
		SetSessionID(sessionID).
		SetLearnerID(learnerID).
		SetLessonKey(lessonKey).
		SetKind(kind).
		SetDetail(detail).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append lesson event: %w", err)
	}
	return nil
}
