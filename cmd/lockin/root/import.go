package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lockin/internal/storage"
	"lockin/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a ledger backup",
		Long:  "Replaces the current ledger with a previously exported JSON document. Older schema generations are migrated on the way in; an invalid file changes nothing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Import(ctx, raw); err != nil {
				if errors.Is(err, storage.ErrInvalidImport) {
					return errors.New("Invalid or outdated backup file")
				}
				return err
			}

			led := svc.Ledger()
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconCheck+" Imported. "+ui.LabelValue("Points", led.TotalPoints()))
			return nil
		},
	}

	return cmd
}
