package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newPrayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pray <qadaa|ontime|mosque>",
		Short: "Log the next prayer slot",
		Long:  "Logs the next of the five daily prayers. The kind decides the reward: qadaa (made up later), ontime, or mosque (in congregation).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParsePrayerKind(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := svc.LogPrayer(ctx, kind)
			if err != nil {
				var gate engine.GateClosedError
				if errors.As(err, &gate) {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconInfo+" "+gate.Reason))
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.IconMosque, res.Description, ui.Signed(res.Points))
			led := svc.Ledger()
			if left := engine.MaxPrayersPerDay - led.PrayersLoggedToday(); left > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d prayer(s) remaining today (next: %s)", left, engine.PrayerNames[led.PrayersLoggedToday()])))
			} else {
				fmt.Fprintln(out, ui.Good.Render("All 5 prayers logged "+ui.IconCheck))
			}
			return nil
		},
	}

	return cmd
}
