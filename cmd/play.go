package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trihelix/internal/schedule"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a practice session",
	Long: "Serves items lane by lane and records outcomes. With --outcomes, " +
		"runs a scripted session (P = perfect, anything else = not perfect); " +
		"without it, serves --count items and prompts on stdin.",
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

		script, _ := cmd.Flags().GetString("outcomes")
		count, _ := cmd.Flags().GetInt("count")
		if script != "" {
			count = len(script)
		}

		out := cmd.OutOrStdout()
		for i := 0; i < count; i++ {
			item, err := s.CurrentItem(ctx)
			if err != nil {
				var empty *schedule.EmptyLaneError
				if errors.As(err, &empty) {
					fmt.Fprintln(out, styleMiss.Render(fmt.Sprintf(
						"lane %d has no active item: run 'trihelix reset --seed' to refill", empty.Lane)))
					break
				}
				return fmt.Errorf("current item: %w", err)
			}

			fmt.Fprintln(out, styleCard.Render(
				styleDim.Render(fmt.Sprintf("lane %d · interval %d", item.Lane, item.Interval))+
					"\n"+styleLane.Render(item.Body.Question)))

			perfect, err := readOutcome(cmd, script, i, item.Body.Answer)
			if err != nil {
				return err
			}

			if perfect {
				fmt.Fprintln(out, stylePerfect.Render("perfect!"))
			} else {
				fmt.Fprintln(out, styleMiss.Render("answer: "+item.Body.Answer))
			}
			if _, err := s.RecordOutcome(ctx, perfect); err != nil {
				return fmt.Errorf("record outcome: %w", err)
			}
			fmt.Fprintln(out, renderLaneLayout(item.Lane, s.StateSnapshot().Lane(item.Lane)))
			s.IdleTick(ctx)
		}

		return persistSession(ctx, st, s, learnerID)
	},
}

// renderLaneLayout prints the lane's slot occupancy on one dim line.
func renderLaneLayout(id schedule.LaneID, lane *schedule.Lane) string {
	parts := make([]string, 0, lane.Len())
	for _, sp := range lane.SlotsInOrder() {
		parts = append(parts, fmt.Sprintf("%d:%s", sp.Slot, sp.Entry.ContentID))
	}
	return styleDim.Render(fmt.Sprintf("lane %d  %s", id, strings.Join(parts, "  ")))
}

// readOutcome resolves one outcome: scripted when a script is given,
// otherwise by comparing a stdin line against the canonical answer.
func readOutcome(cmd *cobra.Command, script string, i int, answer string) (bool, error) {
	if script != "" {
		return script[i] == 'P' || script[i] == 'p', nil
	}
	fmt.Fprint(cmd.OutOrStdout(), styleDim.Render("> "))
	var line string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &line); err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}
	return line == answer, nil
}

func init() {
	playCmd.Flags().String("outcomes", "", "Scripted outcomes, one letter per item (P = perfect)")
	playCmd.Flags().Int("count", 10, "Number of items to serve when not scripted")
}
