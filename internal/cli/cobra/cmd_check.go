package cobra

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/cmdkit/internal/core"
	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check identifiers against the naming rules",
		Long: `Check identifiers against the naming rules.

Subcommands:
  name    check a command or alias name
  flag    check a short flag name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.NewWithDetails(errors.EUsage, "specify a subcommand: cmdkit check <name|flag>",
				map[string]string{"command": cmd.CommandPath()})
		},
	}

	cmd.AddCommand(newCheckNameCmd(), newCheckFlagCmd())

	return cmd
}

func newCheckNameCmd() *cobra.Command {
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "name <value>",
		Short: "Check a command or alias name",
		Long: `Check a command or alias name.
Names may contain letters, digits, '-' and '_' (any script).
Prints "ok" when the name is accepted.

Arguments:
  value    candidate name (may be "" with --allow-empty)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := core.ValidateName("name", args[0], allowEmpty); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&allowEmpty, "allow-empty", "E", false, "accept the empty name")

	return cmd
}

func newCheckFlagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flag <char>",
		Short: "Check a short flag name",
		Long: `Check a short flag name.
Short flags must be a single uppercase letter (any script).
Prints "ok" when the flag name is accepted.

Arguments:
  char    candidate flag character`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]
			r, size := utf8.DecodeRuneInString(value)
			var err error
			if size == len(value) {
				err = core.ValidateFlagName("flag", r)
			} else {
				// more than one rune: may still compose to a single letter
				err = core.ValidateFlagShorthand("flag", value)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	return cmd
}
