package root

import (
	"context"

	"github.com/spf13/cobra"

	"lockin/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive dashboard",
		Long:  "Opens the full-screen dashboard. Keys: 1/2/3 log a prayer (qadaa/on time/mosque), g/u/e log a deed, m/x log a relapse, r refresh, q quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, cfg.TickInterval(), cmd.OutOrStdout())
		},
	}

	return cmd
}
