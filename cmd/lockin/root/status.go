package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rank, progress and today's tallies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			led := svc.Ledger()
			rank, next := engine.ResolveRank(led.TotalPoints())
			pct := engine.RankProgress(led.TotalPoints())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Lock In"))
			fmt.Fprintln(out, ui.LabelValue("Rank", rank.Label))
			fmt.Fprintln(out, ui.LabelValue("Points", led.TotalPoints()))
			if next != nil {
				fmt.Fprintf(out, "%s %s %d%% %s\n", ui.Key.Render("Progress:"), ui.ProgressBar(pct, 30), pct, ui.Muted.Render(fmt.Sprintf("(next %s at %d)", next.Label, next.Min)))
			} else {
				fmt.Fprintf(out, "%s %s 100%% %s\n", ui.Key.Render("Progress:"), ui.ProgressBar(100, 30), ui.Gold.Render("Max Rank"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconDay+" Today ("+led.TodayDate()+")"))
			fmt.Fprintln(out, ui.LabelValue("Points today", ui.Signed(led.TodayPoints())))
			nextPrayer := ui.Good.Render("Complete! ✓")
			if led.PrayersLoggedToday() < engine.MaxPrayersPerDay {
				nextPrayer = engine.PrayerNames[led.PrayersLoggedToday()]
			}
			fmt.Fprintf(out, "%s %d/5 %s\n", ui.Key.Render("Prayers:"), led.PrayersLoggedToday(), ui.Muted.Render(fmt.Sprintf("(next: %v)", nextPrayer)))
			fmt.Fprintln(out, ui.LabelValue("Study", fmt.Sprintf("%gh", led.TodayStudyHours())))
			fmt.Fprintln(out, ui.LabelValue("Clean streak", fmt.Sprintf("%d day(s)", led.CleanDays())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Deeds"))
			for _, deed := range []engine.GoodDeed{engine.DeedGhusl, engine.DeedQuran, engine.DeedExercise} {
				state := ui.Good.Render("available")
				if led.DoneToday(string(deed)) {
					state = ui.Muted.Render("done today")
				}
				fmt.Fprintf(out, "- %s: %s %s\n", deed, state, ui.Muted.Render(fmt.Sprintf("(lifetime %d)", led.Count(string(deed)))))
			}

			return nil
		},
	}

	return cmd
}
