package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newStudyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study <hours>",
		Short: "Record today's study hours",
		Long:  "Records (or corrects) today's total study hours. Re-running replaces the earlier value and only the point difference is applied.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return engine.ValidationError{Msg: "Please enter valid hours (0-24)"}
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := svc.SubmitStudy(ctx, hours)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s Study set to %gh %s\n", ui.IconStudy, res.Hours, ui.Signed(res.Delta))
			if res.BelowThreshold {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("Under %gh: penalty applied. Day total %d.", engine.StudyThresholdHours, res.DayTotal)))
			} else {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Day total %d point(s) for study.", res.DayTotal)))
			}
			return nil
		},
	}

	return cmd
}
