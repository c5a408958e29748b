package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorflow/engine/internal/snapshot"
	"github.com/tutorflow/engine/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <lesson-ref>",
	Short: "Delete the saved snapshot for a lesson so it starts fresh",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	learner, _ := cmd.Flags().GetString("learner")
	key := snapshot.CanonicalKey(args[0], "", "")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.Snapshots().Delete(ctx, learner, key); err != nil && !snapshot.IsKind(err, snapshot.KindNotFound) {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	if dir, derr := store.DefaultFallbackDir(); derr == nil {
		if fs, ferr := store.NewFileStore(dir); ferr == nil {
			if err := fs.Delete(ctx, learner, key); err != nil && !snapshot.IsKind(err, snapshot.KindNotFound) {
				return fmt.Errorf("delete fallback snapshot: %w", err)
			}
		}
	}

	fmt.Printf("Snapshot cleared for learner %q, lesson %q\n", learner, key)
	return nil
}
