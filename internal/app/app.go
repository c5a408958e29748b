// Package app wires the session engine together for a host application:
// content loading, assessment generation, snapshot persistence with
// restore, and the tutor/speech services.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tutorflow/engine/internal/assessment"
	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/engine"
	"github.com/tutorflow/engine/internal/snapshot"
	"github.com/tutorflow/engine/internal/speech"
	"github.com/tutorflow/engine/internal/store"
	"github.com/tutorflow/engine/internal/tutor"
)

// Default assessment sizes.
const (
	DefaultWorksheetSize = 10
	DefaultTestSize      = 10
)

// Pool sizes for the comprehension and exercise phases. These pools are
// drawn from the banks in content order, never shuffled, so a restored
// session lands on the same questions without persisting them.
const (
	comprehensionPoolSize = 5
	exercisePoolSize      = 8
)

// Config configures a Session.
type Config struct {
	LearnerID     string
	DBPath        string // "" resolves via store.DefaultDBPath
	FallbackDir   string // "" resolves via store.DefaultFallbackDir
	WorksheetSize int
	TestSize      int
	Tutor         tutor.Provider     // nil disables narration
	Speech        speech.Synthesizer // nil uses synthetic playback
	Log           zerolog.Logger
}

// Session is one learner's run through one lesson.
type Session struct {
	State    *engine.State
	Content  *content.LessonContent
	Saver    *snapshot.Saver
	Teaching *engine.TeachingController

	db     *store.Store
	events *store.EventLog
	log    zerolog.Logger
}

// Start creates or resumes the session for (learner, lesson). The durable
// store is opened best-effort: when it cannot be opened at all the session
// runs on the local fallback from the start.
func Start(ctx context.Context, cfg Config, src content.Source, lessonRef string) (*Session, error) {
	if cfg.LearnerID == "" {
		return nil, fmt.Errorf("learner id is required")
	}
	if cfg.WorksheetSize == 0 {
		cfg.WorksheetSize = DefaultWorksheetSize
	}
	if cfg.TestSize == 0 {
		cfg.TestSize = DefaultTestSize
	}

	lc, err := src.LoadLessonContent(lessonRef)
	if err != nil {
		return nil, fmt.Errorf("load lesson content: %w", err)
	}

	key := snapshot.CanonicalKey(lessonRef, "", lc.ID)
	state := engine.NewState(cfg.LearnerID, key)

	var durable snapshot.Store
	var db *store.Store
	var events *store.EventLog

	dbPath := cfg.DBPath
	var dbErr error
	if dbPath == "" {
		dbPath, dbErr = store.DefaultDBPath()
	}
	if dbErr == nil {
		db, dbErr = store.Open(dbPath)
	}
	if dbErr != nil {
		cfg.Log.Warn().Err(dbErr).Msg("durable store unavailable, local fallback only")
	} else {
		durable = db.Snapshots()
		events = db.Events()
	}

	fallbackDir := cfg.FallbackDir
	if fallbackDir == "" {
		fallbackDir, _ = store.DefaultFallbackDir()
	}
	var fallback snapshot.Store
	if fallbackDir != "" {
		if fs, fsErr := store.NewFileStore(fallbackDir); fsErr == nil {
			fallback = fs
		} else {
			cfg.Log.Warn().Err(fsErr).Msg("local fallback store unavailable")
		}
	}

	saver := snapshot.NewSaver(durable, fallback, state, func() string { return state.LessonKey },
		cfg.Log, snapshot.SaverOptions{})

	s := &Session{
		State:   state,
		Content: lc,
		Saver:   saver,
		Teaching: &engine.TeachingController{
			Tutor:  cfg.Tutor,
			Speech: speech.WithFallback{Primary: cfg.Speech},
			Log:    cfg.Log,
		},
		db:     db,
		events: events,
		log:    cfg.Log,
	}

	derivePools(state, lc)

	payload, err := saver.Restore(ctx)
	if err != nil {
		cfg.Log.Warn().Err(err).Msg("snapshot restore failed, starting fresh")
	}
	if payload != nil {
		payload.Apply(state)
		saver.MarkRestored()
		cfg.Log.Info().
			Str("lessonKey", key).
			Str("phase", state.Phase.String()).
			Msg("session resumed from snapshot")
	} else {
		numeric := len(lc.WordProblems) > 0
		pair := assessment.GeneratePair(lc, cfg.WorksheetSize, cfg.TestSize, numeric)
		state.Worksheet = pair.Worksheet
		state.Test = pair.Test
		engine.StartTeaching(state)
	}

	saver.ScheduleSave("session-start")
	return s, nil
}

// derivePools fills the comprehension and exercise question pools from the
// banks in content order.
func derivePools(s *engine.State, lc *content.LessonContent) {
	banks := lc.Banks()
	n := min(comprehensionPoolSize, len(banks))
	s.Comprehension = banks[:n]

	rest := banks[n:]
	n = min(exercisePoolSize, len(rest))
	s.Exercise = rest[:n]
}

// RunTeachingStage narrates the current teaching stage and lands on its
// gate. Cancel ctx to let the learner skip narration.
func (s *Session) RunTeachingStage(ctx context.Context) error {
	if err := s.Teaching.RunStage(ctx, s.State, s.Content); err != nil {
		return err
	}
	s.Saver.ScheduleSave("teaching-stage")
	return nil
}

// AnswerGate processes the learner's Yes/No at a teaching gate.
func (s *Session) AnswerGate(ctx context.Context, choice engine.GateChoice) (repeat bool, err error) {
	before := s.State.Phase
	repeat, err = engine.HandleGate(s.State, choice)
	if err != nil {
		return false, err
	}
	s.noteTransition(ctx, before)
	s.Saver.ScheduleSave("gate-answer")
	return repeat, nil
}

// BeginPhase starts the current phase's question loop from its entrance.
func (s *Session) BeginPhase(ctx context.Context) error {
	if err := engine.BeginPhase(s.State); err != nil {
		return err
	}
	s.Saver.ScheduleSave(fmt.Sprintf("entered-%s", s.State.Phase))
	return nil
}

// SubmitAnswer grades the learner's answer for the active question.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (*engine.AnswerResult, error) {
	before := s.State.Phase
	res, err := engine.SubmitAnswer(s.State, answer)
	if err != nil {
		return nil, err
	}
	if res.PhaseDone {
		s.noteTransition(ctx, before)
		s.Saver.ScheduleSave("phase-exit")
		s.Saver.Flush()
	} else {
		s.Saver.ScheduleSave(snapshot.LabelStateChange)
	}
	return res, nil
}

// Complete finishes the session and deletes its snapshot so a revisit
// starts fresh.
func (s *Session) Complete(ctx context.Context) error {
	if err := engine.Complete(s.State); err != nil {
		return err
	}
	if err := s.Saver.Delete(ctx); err != nil {
		s.log.Warn().Err(err).Msg("snapshot delete failed")
	}
	if s.events != nil {
		if err := s.events.Append(ctx, s.State.SessionID, s.State.LearnerID, s.State.LessonKey,
			store.EventCompletion, fmt.Sprintf("score=%d", s.State.TestFinalPercent)); err != nil {
			s.log.Debug().Err(err).Msg("completion event not recorded")
		}
	}
	return nil
}

// Close flushes any pending save and releases the store.
func (s *Session) Close() error {
	s.Saver.Flush()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// noteTransition appends a phase-transition event when the phase changed.
// Best effort; the event log never blocks the session.
func (s *Session) noteTransition(ctx context.Context, before engine.Phase) {
	if s.events == nil || before == s.State.Phase {
		return
	}
	if err := s.events.Append(ctx, s.State.SessionID, s.State.LearnerID, s.State.LessonKey,
		store.EventPhaseTransition, s.State.Phase.String()); err != nil {
		s.log.Debug().Err(err).Msg("phase event not recorded")
	}
}
