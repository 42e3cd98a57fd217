package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lockin/internal/engine"
	"lockin/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the point values",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd(), newSettingsResetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current point values",
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
			fmt.Fprintln(out, ui.Heading("⚙️", "Point Values"))
			for _, key := range engine.SettingKeys() {
				fmt.Fprintf(out, "%-14s %d\n", key, led.CustomPoint(key))
			}
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key=value> [key=value ...]",
		Short: "Change point values",
		Long:  "Changes one or more point values, e.g. `lockin settings set quran=20 studyPerHour=10`. All pairs are validated before any is applied.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := make(map[string]int, len(args))
			for _, arg := range args {
				key, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return engine.ValidationError{Msg: fmt.Sprintf("expected key=value, got %q", arg)}
				}
				v, err := strconv.Atoi(raw)
				if err != nil {
					return engine.ValidationError{Msg: fmt.Sprintf("setting %q: %q is not a number", key, raw)}
				}
				updates[key] = v
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetPointValues(ctx, updates); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range engine.SettingKeys() {
				if v, ok := updates[key]; ok {
					fmt.Fprintf(out, "%s %s = %d\n", ui.IconCheck, key, v)
				}
			}
			return nil
		},
	}
}

func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default point values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.ResetPointValues(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconCheck+" Point values restored to defaults.")
			return nil
		},
	}
}
