// Package engine drives a lesson session through its phases: teaching,
// comprehension, exercise, worksheet, test. It owns the session state the
// other components read and mutate, and derives the resume pointer the
// snapshot layer persists.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tutorflow/engine/internal/content"
)

// Phase is the top-level lesson stage. Transitions are monotonic forward;
// only the teaching phase loops internally (definitions/examples repeats).
type Phase int

const (
	PhaseTeaching Phase = iota
	PhaseComprehension
	PhaseExercise
	PhaseWorksheet
	PhaseTest
	PhaseCongrats
	PhaseComplete
)

var phaseNames = map[Phase]string{
	PhaseTeaching:      "teaching",
	PhaseComprehension: "comprehension",
	PhaseExercise:      "exercise",
	PhaseWorksheet:     "worksheet",
	PhaseTest:          "test",
	PhaseCongrats:      "congrats",
	PhaseComplete:      "complete",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePhase maps a persisted phase name back to its Phase.
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return PhaseTeaching, fmt.Errorf("unknown phase %q", s)
}

// phaseSuccessor is the closed transition table. A phase may only advance
// to its successor; anything else is rejected by AdvancePhase.
var phaseSuccessor = map[Phase]Phase{
	PhaseTeaching:      PhaseComprehension,
	PhaseComprehension: PhaseExercise,
	PhaseExercise:      PhaseWorksheet,
	PhaseWorksheet:     PhaseTest,
	PhaseTest:          PhaseCongrats,
	PhaseCongrats:      PhaseComplete,
}

// SubPhase is the finer state within a phase.
type SubPhase int

const (
	SubNone SubPhase = iota
	SubAwaitingGate
	SubTeachingActive
	SubComprehensionStart
	SubComprehensionActive
	SubExerciseAwaitingBegin
	SubExerciseActive
	SubWorksheetAwaitingBegin
	SubWorksheetActive
	SubTestAwaitingBegin
	SubTestActive
)

var subPhaseNames = map[SubPhase]string{
	SubNone:                   "",
	SubAwaitingGate:           "awaiting-gate",
	SubTeachingActive:         "teaching-3stage",
	SubComprehensionStart:     "comprehension-start",
	SubComprehensionActive:    "comprehension-active",
	SubExerciseAwaitingBegin:  "exercise-awaiting-begin",
	SubExerciseActive:         "exercise-active",
	SubWorksheetAwaitingBegin: "worksheet-awaiting-begin",
	SubWorksheetActive:        "worksheet-active",
	SubTestAwaitingBegin:      "test-awaiting-begin",
	SubTestActive:             "test-active",
}

func (s SubPhase) String() string {
	return subPhaseNames[s]
}

// ParseSubPhase maps a persisted sub-phase name back to its SubPhase.
func ParseSubPhase(s string) (SubPhase, error) {
	for sp, name := range subPhaseNames {
		if name == s {
			return sp, nil
		}
	}
	return SubNone, fmt.Errorf("unknown sub-phase %q", s)
}

// entrance reports whether the sub-phase is an un-begun phase entrance
// (start screen or awaiting-begin).
func (s SubPhase) entrance() bool {
	switch s {
	case SubComprehensionStart, SubExerciseAwaitingBegin,
		SubWorksheetAwaitingBegin, SubTestAwaitingBegin:
		return true
	}
	return false
}

// TeachingStage is the two-stage teaching sequence marker.
type TeachingStage int

const (
	StageIdle TeachingStage = iota
	StageDefinitions
	StageExamples
)

var stageNames = map[TeachingStage]string{
	StageIdle:        "idle",
	StageDefinitions: "definitions",
	StageExamples:    "examples",
}

func (t TeachingStage) String() string {
	return stageNames[t]
}

// ParseTeachingStage maps a persisted stage name back to its TeachingStage.
func ParseTeachingStage(s string) (TeachingStage, error) {
	for st, name := range stageNames {
		if name == s {
			return st, nil
		}
	}
	return StageIdle, fmt.Errorf("unknown teaching stage %q", s)
}

// GateFlags tracks the per-gate interaction state: whether free-text Q&A
// is unlocked, and the one-shot enrichment requests already spent at the
// current gate.
type GateFlags struct {
	QAAnswersUnlocked bool `json:"qaAnswersUnlocked"`
	JokeUsed          bool `json:"jokeUsed"`
	RiddleUsed        bool `json:"riddleUsed"`
	PoemUsed          bool `json:"poemUsed"`
	StoryUsed         bool `json:"storyUsed"`
}

// ResetOneShots clears the one-shot flags when a new gate is entered.
func (g *GateFlags) ResetOneShots() {
	g.JokeUsed = false
	g.RiddleUsed = false
	g.PoemUsed = false
	g.StoryUsed = false
}

// State is the mutable session entity. It is created empty when a lesson
// session starts, hydrated from a snapshot if one exists, and mutated
// continuously until the learner completes or abandons the lesson.
// Not safe for concurrent mutation; the session model is single-threaded
// event handling.
type State struct {
	SessionID string
	LearnerID string
	LessonKey string

	Phase         Phase
	SubPhase      SubPhase
	TeachingStage TeachingStage

	// StageRepeats counts "Yes, repeat" loops per teaching stage.
	StageRepeats map[TeachingStage]int

	// Per-phase cursors, 0-based. A cursor of 0 with an entrance sub-phase
	// means no question has been unlocked yet.
	CompIndex      int
	ExIndex        int
	WorksheetIndex int
	TestIndex      int

	Gate GateFlags

	// Generated content. Lengths are fixed at generation time.
	Worksheet []content.Question
	Test      []content.Question

	// Comprehension and Exercise pools are derived deterministically from
	// lesson content at start and are not persisted.
	Comprehension []content.Question
	Exercise      []content.Question

	TestAnswers      []string
	TestCorrectness  []bool
	TestFinalPercent int // -1 until the test is scored

	// Captions is the ordered transcript of narrated lines.
	Captions     []string
	CaptionIndex int

	// CanSend gates the free-text input surface. False while a Yes/No gate
	// or narration is in progress.
	CanSend bool

	// Ticker disambiguates re-entrant saves; no meaning beyond "changed".
	Ticker int
}

// NewState creates an empty session state positioned at the start of the
// teaching phase.
func NewState(learnerID, lessonKey string) *State {
	return &State{
		SessionID:        uuid.NewString(),
		LearnerID:        learnerID,
		LessonKey:        lessonKey,
		Phase:            PhaseTeaching,
		SubPhase:         SubTeachingActive,
		TeachingStage:    StageIdle,
		StageRepeats:     make(map[TeachingStage]int),
		TestFinalPercent: -1,
		CanSend:          true,
	}
}

// AdvancePhase moves the session to the next phase per the transition
// table and positions it at that phase's entrance sub-phase. Returns an
// error for transitions the table does not allow.
func (s *State) AdvancePhase() error {
	next, ok := phaseSuccessor[s.Phase]
	if !ok {
		return fmt.Errorf("phase %s has no successor", s.Phase)
	}
	s.Phase = next
	s.TeachingStage = StageIdle
	s.CanSend = true
	s.Ticker++

	switch next {
	case PhaseComprehension:
		s.SubPhase = SubComprehensionStart
	case PhaseExercise:
		s.SubPhase = SubExerciseAwaitingBegin
	case PhaseWorksheet:
		s.SubPhase = SubWorksheetAwaitingBegin
	case PhaseTest:
		s.SubPhase = SubTestAwaitingBegin
	default:
		s.SubPhase = SubNone
	}
	return nil
}

// AppendCaption adds a narrated line to the transcript.
func (s *State) AppendCaption(line string) {
	if line == "" {
		return
	}
	s.Captions = append(s.Captions, line)
}
