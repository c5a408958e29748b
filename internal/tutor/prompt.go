package tutor

import (
	"fmt"
	"strings"
)

// systemPrompt sets the tutor's role. Narration is spoken aloud, so it
// must come back as plain prose with no markup.
const systemPrompt = `You are a warm, patient tutor guiding a learner through a lesson one step at a time.
Speak directly to the learner in short, clear sentences.
Return plain prose only: no markdown, no lists, no stage directions.
Stay on the current lesson step; do not skip ahead.`

// buildUserMessage folds the instruction, session context, and learner
// utterance into a single prompt message.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson: %s (%s", req.Context.LessonTitle, req.Context.Subject)
	if req.Context.Difficulty != "" {
		fmt.Fprintf(&b, ", %s", req.Context.Difficulty)
	}
	b.WriteString(")\n")

	fmt.Fprintf(&b, "Phase: %s", req.Context.Phase)
	if req.Context.Step != "" {
		fmt.Fprintf(&b, " / %s", req.Context.Step)
	}
	if req.Context.Stage != "" {
		fmt.Fprintf(&b, " (stage: %s)", req.Context.Stage)
	}
	b.WriteString("\n")

	if len(req.Context.Vocab) > 0 {
		fmt.Fprintf(&b, "Vocabulary: %s\n", strings.Join(req.Context.Vocab, ", "))
	}
	if req.Context.TeachingNotes != "" {
		fmt.Fprintf(&b, "Teaching notes: %s\n", req.Context.TeachingNotes)
	}

	fmt.Fprintf(&b, "\nInstruction: %s\n", req.Instruction)

	if req.Utterance != "" {
		fmt.Fprintf(&b, "\nThe learner said: %q\n", req.Utterance)
	}

	return b.String()
}
