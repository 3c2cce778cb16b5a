// Package cli is a thin cobra harness over the line disambiguation engine:
// argument parsing and output only, all real work delegated to the runtime
// packages.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Harness owns the root cobra command and global flags.
type Harness struct {
	rootCmd *cobra.Command
	verbose bool
}

// New creates the CLI harness with all subcommands registered.
func New(name, version string) *Harness {
	rootCmd := &cobra.Command{
		Use:           name,
		Short:         "Line-level subprocess disambiguation for the hysh command language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	h := &Harness{rootCmd: rootCmd}
	rootCmd.PersistentFlags().BoolVar(&h.verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if h.verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}

	rootCmd.AddCommand(
		h.wrapCommand(),
		h.breakCommand(),
		h.scanCommand(),
		h.commandsCommand(),
	)
	return h
}

// Execute runs the CLI.
func (h *Harness) Execute() error {
	return h.rootCmd.Execute()
}

// GetRootCommand returns the root cobra command for customization.
func (h *Harness) GetRootCommand() *cobra.Command {
	return h.rootCmd
}
