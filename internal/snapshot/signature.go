package snapshot

import (
	"fmt"
	"strings"

	"github.com/tutorflow/engine/internal/engine"
)

// Signature computes a compact content signature of the state fields a
// save would persist. Two states with equal signatures would produce
// equivalent snapshots, so passive saves with an unchanged signature are
// skipped.
func Signature(s *engine.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s|%s|%s", s.Phase, s.SubPhase, s.TeachingStage)
	fmt.Fprintf(&b, "|%d.%d.%d.%d", s.CompIndex, s.ExIndex, s.WorksheetIndex, s.TestIndex)
	fmt.Fprintf(&b, "|%t%t%t%t%t",
		s.Gate.QAAnswersUnlocked, s.Gate.JokeUsed, s.Gate.RiddleUsed, s.Gate.PoemUsed, s.Gate.StoryUsed)

	if q := s.CurrentQuestion(); q != nil {
		fmt.Fprintf(&b, "|%s", q.Prompt)
	} else {
		b.WriteString("|-")
	}

	fmt.Fprintf(&b, "|%d.%d|%d", len(s.TestAnswers), len(s.TestCorrectness), s.TestFinalPercent)

	return b.String()
}
