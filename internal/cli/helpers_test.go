package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

// executeRoot runs the root command with args and captured output.
// Flag state is reset first because cobra commands are package-level.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetScanFlags()
	reset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
	_ = rootCmd.PersistentFlags().Set("verbose", "false")
	rootCmd.PersistentFlags().Lookup("verbose").Changed = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
