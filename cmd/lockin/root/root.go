package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lockin/internal/ui"
)

const Version = "3.0.0"

var (
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "lockin",
	Short:         "Lock In, a local-first discipline tracker",
	Long:          "Lock In is a local-first CLI/TUI habit and discipline tracker: prayers, study, good deeds and relapses feed a point ledger mapped onto a rank ladder.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (default ~/.lockin.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.lockin.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(
		newStatusCmd(),
		newPrayCmd(),
		newStudyCmd(),
		newGoodCmd(),
		newRelapseCmd(),
		newLogCmd(),
		newDetailsCmd(),
		newTimelineCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
