package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lockin/internal/ui"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the recent activity feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			history := svc.Ledger().History()
			if len(history) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No activity yet."))
				return nil
			}
			if limit > 0 && len(history) > limit {
				history = history[:limit]
			}

			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Activity"))
			for _, rec := range history {
				ts := time.UnixMilli(rec.Timestamp).Format("Jan 02 15:04")
				cat := ""
				if rec.Category != nil {
					cat = *rec.Category
				}
				fmt.Fprintf(out, "%s %s  %s %s\n", ui.Muted.Render(ts), ui.CategoryIcon(cat), rec.Description, ui.Signed(rec.Points))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Max entries to show (0 for all kept)")
	return cmd
}
