package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

// noArgs rejects positional arguments with a hint towards the check command.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf(`%s accepts no arguments, received %d: %w

To classify individual numbers use:
  %s check %s`, cmd.CommandPath(), len(args), lynchbell.ErrUsage, cmd.Root().Name(), strings.Join(args, " "))
}

// RequireNumbers validates that at least one number argument is provided.
// Returns a helpful error message with usage and examples if missing.
func RequireNumbers(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <number>: %w

Usage: %s

Example:
  %s 135 45 1223`, lynchbell.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// parseNumbers converts check arguments to integers.
func parseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", arg, lynchbell.ErrUsage)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
