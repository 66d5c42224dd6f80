package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/session"
	"github.com/abhisek/trihelix/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "trihelix",
	Short: "Three-lane spaced repetition scheduler",
	Long: "Trihelix rotates practice through three content lanes, spacing " +
		"each item by how often the learner nails it on the first try.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRIHELIX_DB env var)")
	rootCmd.PersistentFlags().String("learner", "default", "Learner profile to operate on")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TRIHELIX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildSession wires a session over the store: the stitch catalog as
// content source, the local remote-state table as the sync target, and
// the durable mutation log. The latest snapshot, if any, is restored.
func buildSession(ctx context.Context, cmd *cobra.Command, st *store.Store) (*session.Session, string, error) {
	learnerID, _ := cmd.Flags().GetString("learner")

	s := session.New(session.Options{
		LearnerID: learnerID,
		Source:    content.NewCatalog(st.Client()),
		Remote:    st.RemoteStateRepo(),
		Log:       st.MutationLog(learnerID),
	})

	snap, err := st.SnapshotRepo().Latest(ctx, learnerID)
	if err != nil {
		return nil, "", fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		if err := s.Restore(snap.State); err != nil {
			return nil, "", fmt.Errorf("restore snapshot: %w", err)
		}
	}

	// Adopt the remote copy when it is newer than the local snapshot.
	if _, err := s.LoadRemote(ctx); err != nil {
		return nil, "", fmt.Errorf("load remote state: %w", err)
	}
	return s, learnerID, nil
}

// persistSession snapshots the session locally and pushes it remotely.
func persistSession(ctx context.Context, st *store.Store, s *session.Session, learnerID string) error {
	if err := st.SnapshotRepo().Save(ctx, learnerID, s.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := st.SnapshotRepo().Prune(ctx, learnerID, 10); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if err := s.Sync(ctx); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}
