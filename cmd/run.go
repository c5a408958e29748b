package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorflow/engine/internal/app"
	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/engine"
	"github.com/tutorflow/engine/internal/speech"
	"github.com/tutorflow/engine/internal/tutor"
)

var runCmd = &cobra.Command{
	Use:   "run <lesson-file>",
	Short: "Run a lesson session, resuming from its snapshot if one exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := newLogger()

	learner, _ := cmd.Flags().GetString("learner")
	lessonsDir, _ := cmd.Flags().GetString("lessons")
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	cfg := app.Config{
		LearnerID: learner,
		DBPath:    dbPath,
		Log:       log,
	}

	tutorCfg := tutor.ConfigFromEnv()
	if err := tutorCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Tutor not configured:", err)
		fmt.Fprintln(os.Stderr, "Teaching will use locally composed narration.")
	} else if provider, perr := tutor.NewProvider(ctx, tutorCfg); perr != nil {
		fmt.Fprintln(os.Stderr, "Tutor provider:", perr)
	} else {
		cfg.Tutor = provider
	}

	if key := os.Getenv("TUTORFLOW_OPENAI_API_KEY"); key != "" {
		if tts, terr := speech.NewOpenAISynthesizer(key, os.Getenv("TUTORFLOW_TTS_VOICE")); terr == nil {
			cfg.Speech = tts
		}
	}

	session, err := app.Start(ctx, cfg, &content.FileSource{Base: lessonsDir}, args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	fmt.Printf("── %s ──\n\n", session.Content.Title)

	scanner := bufio.NewScanner(os.Stdin)
	for session.State.Phase != engine.PhaseComplete {
		if err := stepSession(cmd, session, scanner); err != nil {
			return err
		}
	}

	fmt.Printf("\nLesson complete! Final score: %d%%\n", session.State.TestFinalPercent)
	return nil
}

// stepSession advances the session by one interaction based on where the
// state machine currently sits.
func stepSession(cmd *cobra.Command, s *app.Session, scanner *bufio.Scanner) error {
	ctx := cmd.Context()
	st := s.State

	switch {
	case st.Phase == engine.PhaseTeaching && st.SubPhase == engine.SubTeachingActive:
		fmt.Printf("[%s]\n", st.TeachingStage)
		if err := s.RunTeachingStage(ctx); err != nil {
			return err
		}
		if n := len(st.Captions); n > 0 {
			fmt.Println(st.Captions[n-1])
		}

	case st.SubPhase == engine.SubAwaitingGate:
		answer, ok := prompt(scanner, "\nWould you like to hear that again? (y/n, or joke/riddle/poem/story): ")
		if !ok {
			return fmt.Errorf("input closed")
		}
		if enrich, found := oneShots[strings.ToLower(answer)]; found {
			if !engine.UseOneShot(st, enrich) {
				fmt.Println("Just one of those per stop!")
				return nil
			}
			fmt.Println(gateEnrichment(cmd, s, strings.ToLower(answer)))
			return nil
		}
		choice := engine.GateNo
		if strings.HasPrefix(strings.ToLower(answer), "y") {
			choice = engine.GateYes
		}
		if _, err := s.AnswerGate(ctx, choice); err != nil {
			return err
		}

	case st.SubPhase == engine.SubComprehensionStart,
		st.SubPhase == engine.SubExerciseAwaitingBegin,
		st.SubPhase == engine.SubWorksheetAwaitingBegin,
		st.SubPhase == engine.SubTestAwaitingBegin:
		if _, ok := prompt(scanner, fmt.Sprintf("\n── %s ── press Enter to begin ", st.Phase)); !ok {
			return fmt.Errorf("input closed")
		}
		if err := s.BeginPhase(ctx); err != nil {
			return err
		}

	case st.Phase == engine.PhaseCongrats:
		return s.Complete(ctx)

	default:
		return askQuestion(cmd, s, scanner)
	}
	return nil
}

// askQuestion shows the active question, reads an answer, and grades it.
func askQuestion(cmd *cobra.Command, s *app.Session, scanner *bufio.Scanner) error {
	q := s.State.CurrentQuestion()
	if q == nil {
		return fmt.Errorf("no active question in phase %s", s.State.Phase)
	}

	fmt.Printf("\n%s\n", q.Prompt)
	if q.QuestionType == content.TypeMultipleChoice {
		for i, c := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, c)
		}
	}

	answer, ok := prompt(scanner, "Your answer: ")
	if !ok {
		return fmt.Errorf("input closed")
	}
	if answer == "" {
		return nil
	}

	res, err := s.SubmitAnswer(cmd.Context(), answer)
	if err != nil {
		return err
	}
	if res.Correct {
		fmt.Println("\033[32m✓ Correct!\033[0m")
	} else {
		fmt.Printf("\033[31m✗ Not quite.\033[0m Answer: %s\n", q.Answer)
	}
	return nil
}

// oneShots maps gate input words to the once-per-gate enrichments.
var oneShots = map[string]engine.OneShot{
	"joke":   engine.OneShotJoke,
	"riddle": engine.OneShotRiddle,
	"poem":   engine.OneShotPoem,
	"story":  engine.OneShotStory,
}

// gateEnrichment asks the tutor for the requested extra. A missing or
// failing tutor degrades to a canned line so the gate never stalls.
func gateEnrichment(cmd *cobra.Command, s *app.Session, kind string) string {
	t := s.Teaching.Tutor
	if t == nil {
		return fmt.Sprintf("No %s today, my tutor brain is offline. Let's keep going!", kind)
	}
	res, err := t.Call(cmd.Context(), tutor.Request{
		Instruction: fmt.Sprintf("Tell the learner one short, friendly %s about this subject, then hand back to the lesson.", kind),
		Context: tutor.Context{
			Phase:       s.State.Phase.String(),
			Subject:     s.Content.Subject,
			LessonTitle: s.Content.Title,
		},
	})
	if err != nil {
		return fmt.Sprintf("My %s machine jammed. Let's keep going!", kind)
	}
	return res.Text
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
