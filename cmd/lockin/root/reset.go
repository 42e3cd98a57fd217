package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lockin/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" This erases all points, history and counters."))
				fmt.Fprint(out, "Type 'reset' to confirm: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				if strings.TrimSpace(strings.ToLower(line)) != "reset" {
					fmt.Fprintln(out, ui.Muted.Render("Cancelled."))
					return nil
				}
			}

			if err := svc.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.IconCheck+" Fresh start. Day one begins now.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
