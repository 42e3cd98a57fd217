package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newRelapseCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "relapse <minor|major>",
		Short: "Log a relapse (asks for confirmation)",
		Long:  "Logs a relapse, deducting the penalty and resetting the clean streak. Shows the cost first and asks before applying; pass --yes to skip the prompt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseRelapseKind(args[0])
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
			preview := svc.PreviewRelapse(kind)
			if !yes {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconRelapse+" "+preview.Message))
				fmt.Fprint(out, "Confirm? [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				switch strings.TrimSpace(strings.ToLower(line)) {
				case "y", "yes":
				default:
					fmt.Fprintln(out, ui.Muted.Render("Cancelled."))
					return nil
				}
			}

			res, err := svc.ConfirmRelapse(ctx, kind)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.IconRelapse, res.Description, ui.Signed(res.Points))
			fmt.Fprintln(out, ui.Muted.Render("Clean streak reset. Back on track starts now."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply without asking")
	return cmd
}
