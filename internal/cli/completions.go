package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

// completeFormats provides shell completion for --format values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range lynchbell.Formats() {
		if strings.HasPrefix(string(f), toComplete) {
			matches = append(matches, string(f))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeConfigFiles restricts --config completion to YAML files.
func completeConfigFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}
