package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/trihelix/internal/content"
	"github.com/abhisek/trihelix/internal/schedule"
	"github.com/abhisek/trihelix/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the learner's scheduler state",
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

		s.Reset()

		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			catalog := content.NewCatalog(st.Client())
			if err := seedStarterPack(cmd, s, catalog); err != nil {
				return fmt.Errorf("seed starter pack: %w", err)
			}
		}

		if err := persistSession(ctx, st, s, learnerID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), stylePerfect.Render("reset "+learnerID))
		return nil
	},
}

// starterPack describes one lane's worth of generated arithmetic items.
type starterPack struct {
	lane     schedule.LaneID
	sourceID string
	op       string
	apply    func(a, b int) int
}

var starterPacks = []starterPack{
	{schedule.Lane1, "starter-addition", "+", func(a, b int) int { return a + b }},
	{schedule.Lane2, "starter-subtraction", "-", func(a, b int) int { return a - b }},
	{schedule.Lane3, "starter-multiplication", "×", func(a, b int) int { return a * b }},
}

// seedStarterPack fills the catalog with a small arithmetic pack and
// seeds each lane with its items in slot order.
func seedStarterPack(cmd *cobra.Command, s *session.Session, catalog *content.Catalog) error {
	ctx := cmd.Context()
	for _, pack := range starterPacks {
		var ids []string
		for i := 0; i < 12; i++ {
			a, b := 7+i, 3+i%5
			if pack.op == "-" {
				a += 5 // keep answers positive
			}
			answer := pack.apply(a, b)
			body := content.Body{
				ContentID: fmt.Sprintf("%s-%02d", pack.sourceID, i),
				Question:  fmt.Sprintf("%d %s %d = ?", a, pack.op, b),
				Answer:    strconv.Itoa(answer),
				Distractors: map[int][]string{
					1: {strconv.Itoa(answer + 10), strconv.Itoa(answer - 10)},
					2: {strconv.Itoa(answer + 1), strconv.Itoa(answer - 1)},
				},
				SourceID: pack.sourceID,
			}
			if err := catalog.Put(ctx, body); err != nil {
				return err
			}
			ids = append(ids, body.ContentID)
		}
		s.Seed(pack.lane, pack.sourceID, ids)
	}
	return nil
}

func init() {
	resetCmd.Flags().Bool("seed", false, "Refill all three lanes with the starter arithmetic pack")
}
