// Command cmdkit checks identifiers against the cmdkit naming rules and
// prints the program banner.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/NielsdaWheelz/cmdkit/internal/cli/cobra"
	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

func main() {
	// Optional: CMDKIT_* banner overrides may live in ./.env
	_ = godotenv.Load()

	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
