package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/speech"
	"github.com/tutorflow/engine/internal/tutor"
)

// GateChoice is one of the two inputs a teaching gate accepts.
type GateChoice int

const (
	// GateYes repeats the current teaching stage.
	GateYes GateChoice = iota
	// GateNo advances to the next stage or phase.
	GateNo
)

// StartTeaching positions a fresh session at the definitions stage.
func StartTeaching(s *State) {
	s.Phase = PhaseTeaching
	s.SubPhase = SubTeachingActive
	s.TeachingStage = StageDefinitions
	s.CanSend = false
	s.Ticker++
}

// EnterGate moves the session into the Yes/No gate after a stage's
// narration completes. Free-text input stays disabled; the host must
// honor CanSend=false and offer only the two gate buttons.
func EnterGate(s *State) {
	s.SubPhase = SubAwaitingGate
	s.CanSend = false
	s.Gate.ResetOneShots()
	s.Ticker++
}

// OneShot identifies a gate enrichment request the learner can spend once
// per gate.
type OneShot int

const (
	OneShotJoke OneShot = iota
	OneShotRiddle
	OneShotPoem
	OneShotStory
)

// UseOneShot spends an enrichment request at the current gate. Returns
// false when the session is not at a gate or the request was already
// spent there; the host offers the enrichment only when this returns true.
func UseOneShot(s *State, o OneShot) bool {
	if s.SubPhase != SubAwaitingGate {
		return false
	}
	var used *bool
	switch o {
	case OneShotJoke:
		used = &s.Gate.JokeUsed
	case OneShotRiddle:
		used = &s.Gate.RiddleUsed
	case OneShotPoem:
		used = &s.Gate.PoemUsed
	case OneShotStory:
		used = &s.Gate.StoryUsed
	default:
		return false
	}
	if *used {
		return false
	}
	*used = true
	s.Ticker++
	return true
}

// UnlockQA opens the free-text question surface at the current gate. The
// unlock persists across later gates in the same session.
func UnlockQA(s *State) error {
	if s.SubPhase != SubAwaitingGate {
		return fmt.Errorf("QA unlock outside a gate (sub-phase %q)", s.SubPhase)
	}
	s.Gate.QAAnswersUnlocked = true
	s.Ticker++
	return nil
}

// HandleGate processes a gate choice. Yes re-runs the same stage and bumps
// its repeat counter; No advances definitions→examples→comprehension.
// Returns true when the choice repeats the current stage.
func HandleGate(s *State, choice GateChoice) (repeat bool, err error) {
	if s.SubPhase != SubAwaitingGate {
		return false, fmt.Errorf("gate input outside a gate (sub-phase %q)", s.SubPhase)
	}

	if choice == GateYes {
		s.StageRepeats[s.TeachingStage]++
		s.SubPhase = SubTeachingActive
		s.Ticker++
		return true, nil
	}

	switch s.TeachingStage {
	case StageDefinitions:
		s.TeachingStage = StageExamples
		s.SubPhase = SubTeachingActive
		s.Ticker++
		return false, nil
	case StageExamples:
		return false, s.AdvancePhase()
	default:
		return false, fmt.Errorf("gate input with teaching stage %q", s.TeachingStage)
	}
}

// TeachingController narrates teaching stages through the external tutor
// and TTS services. Both are degradable: tutor failures fall back to
// locally composed narration, TTS failures to synthetic playback.
type TeachingController struct {
	Tutor  tutor.Provider
	Speech speech.Synthesizer
	Log    zerolog.Logger
}

// RunStage narrates the current teaching stage and enters its gate.
// Aborts (context cancellation, e.g. the learner pressed skip) also land
// on the gate so the session is never left with CanSend stuck false and
// nothing pending.
func (c *TeachingController) RunStage(ctx context.Context, s *State, lc *content.LessonContent) error {
	if s.Phase != PhaseTeaching || s.SubPhase != SubTeachingActive {
		return fmt.Errorf("RunStage outside teaching (phase %s, sub-phase %q)", s.Phase, s.SubPhase)
	}
	s.CanSend = false

	text, err := c.narrate(ctx, s, lc)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			EnterGate(s)
			return nil
		}
		c.Log.Warn().Err(err).Str("stage", s.TeachingStage.String()).
			Msg("tutor narration failed, using fallback")
		text = fallbackNarration(s.TeachingStage, lc)
	}

	s.AppendCaption(text)

	if err := c.play(ctx, s, text); err != nil && !errors.Is(err, context.Canceled) {
		c.Log.Warn().Err(err).Msg("speech synthesis failed, synthetic playback")
	}
	// Captions advance whether or not audio played.
	s.CaptionIndex = len(s.Captions)

	EnterGate(s)
	return nil
}

// narrate asks the tutor for the stage's narration text.
func (c *TeachingController) narrate(ctx context.Context, s *State, lc *content.LessonContent) (string, error) {
	if c.Tutor == nil {
		return "", fmt.Errorf("no tutor configured")
	}

	res, err := c.Tutor.Call(ctx, tutor.Request{
		Instruction: stageInstruction(s.TeachingStage),
		Context: tutor.Context{
			Phase:         s.Phase.String(),
			Subject:       lc.Subject,
			Difficulty:    lc.Difficulty,
			Lesson:        s.LessonKey,
			LessonTitle:   lc.Title,
			Step:          s.SubPhase.String(),
			Stage:         s.TeachingStage.String(),
			TeachingNotes: lc.TeachingNotes,
			Vocab:         vocabList(lc),
		},
	})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// play synthesizes and "plays" the narration. A nil synthesizer or a
// synthesis failure degrades to caption-only playback.
func (c *TeachingController) play(ctx context.Context, s *State, text string) error {
	if c.Speech == nil {
		return nil
	}
	_, err := c.Speech.Synthesize(ctx, text)
	return err
}

func stageInstruction(stage TeachingStage) string {
	switch stage {
	case StageDefinitions:
		return "Teach the lesson vocabulary: introduce each term, define it simply, and check the learner is following."
	case StageExamples:
		return "Walk through worked examples that use the vocabulary just taught, one step at a time."
	default:
		return "Continue the lesson."
	}
}

// fallbackNarration composes stage text locally when the tutor is down,
// so the session still advances.
func fallbackNarration(stage TeachingStage, lc *content.LessonContent) string {
	var b strings.Builder
	switch stage {
	case StageExamples:
		fmt.Fprintf(&b, "Let's look at some examples for %s.", lc.Title)
		for _, v := range lc.Vocabulary {
			if v.Example != "" {
				fmt.Fprintf(&b, " %s: %s.", v.Term, v.Example)
			}
		}
	default:
		fmt.Fprintf(&b, "Let's learn the key terms for %s.", lc.Title)
		for _, v := range lc.Vocabulary {
			fmt.Fprintf(&b, " %s means %s.", v.Term, v.Definition)
		}
	}
	return b.String()
}

func vocabList(lc *content.LessonContent) []string {
	out := make([]string, 0, len(lc.Vocabulary))
	for _, v := range lc.Vocabulary {
		out = append(out, v.Term)
	}
	return out
}
