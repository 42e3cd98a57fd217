package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lockin/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON",
		Long:  "Writes the full ledger document as indented JSON, to stdout or to --out. The file re-imports on any machine.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := svc.Export()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(doc))
				return nil
			}
			if err := os.WriteFile(outPath, append(doc, '\n'), 0o644); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconCheck+" Exported to "+outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}
