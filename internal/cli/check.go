package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/lynchbell/internal/digits"
)

var checkCmd = &cobra.Command{
	Use:   "check <number>...",
	Short: "Classify individual numbers",
	Long: `Check applies the Lynch-Bell predicates to each argument and prints one line per number:

  <n>: lynch-bell                 distinct nonzero digits, divisible by each of them
  <n>: candidate                  distinct nonzero digits, not divisible by all of them
  <n>: rejected (<reason>)        zero digit, repeated digit, or not positive

Examples:
  lynchbell check 135
  lynchbell check 45 1223 9867312`,
	Args: RequireNumbers,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	out := cmd.OutOrStdout()
	for _, n := range numbers {
		v := digits.Classify(n)
		logger.Verbose("%d: kind=%s reason=%s", n, v.Kind, v.Reason)
		if _, err := fmt.Fprintln(out, v); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}
