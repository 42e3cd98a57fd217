package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newTimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the full rank ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			points := svc.Ledger().TotalPoints()
			current, _ := engine.ResolveRank(points)
			pct := engine.RankProgress(points)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Rank Timeline"))
			for _, rank := range engine.Ranks {
				bound := fmt.Sprintf("%d+", rank.Min)
				if rank.Max != engine.RankMaxInfinity {
					bound = fmt.Sprintf("%d-%d", rank.Min, rank.Max)
				}
				line := fmt.Sprintf("%-16s %s", rank.Label, ui.Muted.Render(bound))
				switch {
				case rank.Label == current.Label:
					fmt.Fprintf(out, "%s %s %d%%\n", ui.Gold.Render("▶ "+line), ui.ProgressBar(pct, 20), pct)
				case rank.Max < points:
					fmt.Fprintln(out, ui.Good.Render("✓ "+line))
				default:
					fmt.Fprintln(out, ui.Muted.Render("  "+line))
				}
			}
			return nil
		},
	}

	return cmd
}
