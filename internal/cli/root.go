package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = ` _                      _       _          _ _
| |_   _ _ __   ___| |__   | |__   ___| | |
| | | | | '_ \ / __| '_ \  | '_ \ / _ \ | |
| | |_| | | | | (__| | | | | |_) |  __/ | |
|_|\__, |_| |_|\___|_| |_| |_.__/ \___|_|_|
   |___/`

var rootCmd = &cobra.Command{
	Use:   "lynchbell",
	Short: "Enumerate Lynch-Bell numbers",
	Long: asciiLogo + `

lynchbell scans an integer range for Lynch-Bell numbers: positive integers
whose decimal digits are distinct, nonzero, and each divide the number evenly.

Run without arguments it scans [1, 98764321] and prints every Lynch-Bell
number it finds. No configuration or environment is read unless a flag
asks for it.

Exit Codes:
  0  - Success
  1  - General error (output could not be written)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, range or output format`,
	Args:         noArgs,
	RunE:         runScan,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
