package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newDetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Show per-category totals and lifetime counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			led := svc.Ledger()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Breakdown"))
			fmt.Fprintln(out, ui.LabelValue("Total", led.TotalPoints()))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("By category"))
			for _, c := range []engine.Category{
				engine.CategoryPrayer,
				engine.CategoryStudy,
				engine.CategoryGood,
				engine.CategoryClean,
				engine.CategoryRelapse,
			} {
				fmt.Fprintf(out, "%s %-8s %s\n", ui.CategoryIcon(string(c)), c, ui.Signed(led.CategoryTotal(c)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Lifetime counters"))
			counters := []struct {
				label string
				key   string
			}{
				{"Qadaa prayers", string(engine.PrayerQadaa)},
				{"On-time prayers", string(engine.PrayerOnTime)},
				{"Mosque prayers", string(engine.PrayerInMosque)},
				{"Ghusl", string(engine.DeedGhusl)},
				{"Quran", string(engine.DeedQuran)},
				{"Exercise", string(engine.DeedExercise)},
				{"Minor relapses", string(engine.RelapseMinor)},
				{"Major relapses", string(engine.RelapseMajor)},
			}
			for _, c := range counters {
				fmt.Fprintf(out, "%-16s %d\n", c.label, led.Count(c.key))
			}
			return nil
		},
	}

	return cmd
}
