package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorflow/engine/internal/assessment"
	"github.com/tutorflow/engine/internal/content"
)

var previewCmd = &cobra.Command{
	Use:   "preview <lesson-file>",
	Short: "Preview generated worksheet and test for a lesson (no database)",
	Long: `Generate and print the worksheet and test a session would receive.

This is a stateless developer tool: no database, no snapshot, no tutor.
Useful for evaluating question mix when authoring lesson content.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("worksheet", 10, "Worksheet size")
	previewCmd.Flags().Int("test", 10, "Test size")
}

func runPreview(cmd *cobra.Command, args []string) error {
	lessonsDir, _ := cmd.Flags().GetString("lessons")
	worksheetSize, _ := cmd.Flags().GetInt("worksheet")
	testSize, _ := cmd.Flags().GetInt("test")

	src := &content.FileSource{Base: lessonsDir}
	lc, err := src.LoadLessonContent(args[0])
	if err != nil {
		return err
	}

	numeric := len(lc.WordProblems) > 0
	pair := assessment.GeneratePair(lc, worksheetSize, testSize, numeric)

	fmt.Printf("%s (%s)\n", lc.Title, lc.Subject)
	printAssessment("Worksheet", pair.Worksheet)
	printAssessment("Test", pair.Test)
	return nil
}

func printAssessment(name string, qs []content.Question) {
	fmt.Printf("\n── %s (%d questions) ──\n", name, len(qs))
	for i, q := range qs {
		fmt.Printf("%2d. [%s/%s] %s\n", i+1, q.QuestionType, q.SourceType, q.Prompt)
		if q.QuestionType == content.TypeMultipleChoice {
			for j, c := range q.Choices {
				fmt.Printf("      %d) %s\n", j+1, c)
			}
		}
		fmt.Printf("      answer: %s\n", q.Answer)
	}
}
