// Package cobra provides the Cobra-based CLI command tree for cmdkit.
package cobra

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/cmdkit/internal/banner"
	"github.com/NielsdaWheelz/cmdkit/internal/buildinfo"
	"github.com/NielsdaWheelz/cmdkit/internal/cmdtree"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose bool
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for cmdkit.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmdkit",
		Short: "Identifier rules and startup banner for command-line tools",
		Long: `cmdkit - identifier rules and startup banner for command-line tools

cmdkit checks command names, aliases and flag shorthands before they are
registered, and prints the program banner built from build-time metadata.
Every command tree is checked against the same rules before it runs.`,
		Version:       buildinfo.FullVersion(),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cmdtree.Validate(cmd.Root())
		},
	}

	// --version prints the full banner rather than cobra's one-liner. The
	// banner text is a template function result, never parsed as a template.
	cobra.AddTemplateFunc("banner", func() string {
		return banner.Render(buildinfo.Current())
	})
	rootCmd.SetVersionTemplate("{{banner}}")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "V", false, "show detailed error context")

	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newCheckCmd(),
		newCompletionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
