package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile local state with the remote store",
	Long: "Pulls the remote copy, adopts it when it is newer, replays any " +
		"pending local outcomes on top, then pushes the result back.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// buildSession already pulls; conflicts resolve last-write-wins.
		s, learnerID, err := buildSession(ctx, cmd, st)
		if err != nil {
			return err
		}

		if err := persistSession(ctx, st, s, learnerID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), stylePerfect.Render("synced "+learnerID))
		return nil
	},
}
