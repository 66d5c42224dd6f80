package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trihelix/internal/schedule"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scheduler state per lane",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, learnerID, err := buildSession(ctx, cmd, st)
		if err != nil {
			return err
		}

		state := s.StateSnapshot()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, styleTitle.Render("trihelix · "+learnerID))
		fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("cycles completed: %d", state.CycleCount)))

		for id := schedule.Lane1; id <= schedule.Lane3; id++ {
			lane := state.Lane(id)
			header := fmt.Sprintf("lane %d (%s) · %d items", id, lane.SourceID, lane.Len())
			if id == state.Active {
				fmt.Fprintln(out, styleLaneActive.Render("▶ "+header))
			} else {
				fmt.Fprintln(out, styleLane.Render("  "+header))
			}
			for _, sp := range lane.SlotsInOrder() {
				fmt.Fprintln(out, styleDim.Render(fmt.Sprintf(
					"    slot %-4d %-20s interval %-4d perfects %d",
					sp.Slot, truncate(sp.Entry.ContentID, 20), sp.Entry.Interval, sp.Entry.PerfectCount)))
			}
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-1]) + "…"
}
