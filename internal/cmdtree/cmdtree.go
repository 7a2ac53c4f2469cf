// Package cmdtree checks a cobra command tree against the cmdkit identifier
// rules before it is executed.
package cmdtree

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/NielsdaWheelz/cmdkit/internal/core"
	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

// reservedFlags are injected by cobra itself and keep their lowercase shorthands.
var reservedFlags = map[string]bool{
	"help":    true,
	"version": true,
}

// isReserved reports whether f is cobra's own -h/--help or -v/--version.
func isReserved(f *pflag.Flag) bool {
	return reservedFlags[f.Name] && f.Shorthand == f.Name[:1]
}

// Walk calls fn for root and every descendant, depth-first, parents before
// children. It stops at the first error.
func Walk(root *cobra.Command, fn func(*cobra.Command) error) error {
	if root == nil {
		return nil
	}
	if err := fn(root); err != nil {
		return err
	}
	for _, child := range root.Commands() {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every command name, alias and flag shorthand under root.
// The first violation is returned as E_INVALID_ARGUMENT with the offending
// command path in the "command" detail.
func Validate(root *cobra.Command) error {
	if root == nil {
		return errors.NewWithDetails(
			errors.ENullArgument,
			"command tree is required",
			map[string]string{"argument": "root", "reason": core.ReasonNull},
		)
	}
	return Walk(root, validateCommand)
}

func validateCommand(cmd *cobra.Command) error {
	path := cmd.CommandPath()

	if err := core.ValidateName("command", cmd.Name(), false); err != nil {
		return errors.WithDetails(err, map[string]string{"command": path})
	}
	for _, alias := range cmd.Aliases {
		if err := core.ValidateName("alias", alias, false); err != nil {
			return errors.WithDetails(err, map[string]string{"command": path})
		}
	}

	// Persistent flags are checked on the command that declares them.
	var flagErr error
	check := func(f *pflag.Flag) {
		if flagErr != nil || f.Shorthand == "" || isReserved(f) {
			return
		}
		if err := core.ValidateFlagShorthand("shorthand", f.Shorthand); err != nil {
			flagErr = errors.WithDetails(err, map[string]string{
				"command": path,
				"flag":    "--" + f.Name,
			})
		}
	}
	cmd.LocalNonPersistentFlags().VisitAll(check)
	cmd.PersistentFlags().VisitAll(check)
	return flagErr
}
