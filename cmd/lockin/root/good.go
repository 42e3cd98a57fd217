package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newGoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "good <ghusl|quran|exercise>",
		Short: "Log a once-per-day good deed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deed, err := engine.ParseGoodDeed(args[0])
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
			res, err := svc.LogGoodDeed(ctx, deed)
			if err != nil {
				var gate engine.GateClosedError
				if errors.As(err, &gate) {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconInfo+" "+gate.Reason))
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "%s %s %s %s\n", ui.IconSparkle, res.Description, ui.Signed(res.Points), ui.Muted.Render(fmt.Sprintf("(lifetime %d)", res.Count)))
			return nil
		},
	}

	return cmd
}
