package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sharkfolio/sharkgen/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "sharkgen",
		Short:   "Generate investor portfolio data from Shark Tank India pitch tables",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	rootCmd.AddCommand(newGenerateCommand(&verbose))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRosterCommand())

	return rootCmd
}

// newLogger returns a text logger for diagnostics. Operator-facing progress
// goes to the command's stdout instead.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
