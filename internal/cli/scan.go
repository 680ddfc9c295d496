package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/lynchbell/internal/config"
	"github.com/vvka-141/lynchbell/internal/logging"
	"github.com/vvka-141/lynchbell/internal/report"
	"github.com/vvka-141/lynchbell/internal/scanner"
	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

type scanFlagValues struct {
	configPath string
	envFiles   []string
	first      int
	last       int
	format     string
}

var scanFlags scanFlagValues

func resetScanFlags() {
	scanFlags = scanFlagValues{}
}

func init() {
	rootCmd.Flags().StringVarP(&scanFlags.configPath, "config", "c", "",
		"Load settings from a YAML file (or a directory containing "+lynchbell.ConfigFileName+")")
	rootCmd.Flags().StringSliceVar(&scanFlags.envFiles, "env-file", nil,
		"Load LYNCHBELL_FIRST, LYNCHBELL_LAST and LYNCHBELL_FORMAT from .env files\n"+
			"(can be specified multiple times, later files override earlier ones)")
	rootCmd.Flags().IntVar(&scanFlags.first, "first", 0,
		fmt.Sprintf("First integer to scan (default %d)", lynchbell.FirstCandidate))
	rootCmd.Flags().IntVar(&scanFlags.last, "last", 0,
		fmt.Sprintf("Last integer to scan, at most %d (default %d)", lynchbell.MaxDistinctDigits, lynchbell.LastCandidate))
	rootCmd.Flags().StringVarP(&scanFlags.format, "format", "f", "",
		"Output format: text|yaml|json (default text)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = rootCmd.RegisterFlagCompletionFunc("config", completeConfigFiles)
}

// newLogger builds the diagnostics logger for cmd's stderr.
func newLogger(cmd *cobra.Command) lynchbell.Logger {
	verbose := getVerboseFlag(cmd)
	w := cmd.ErrOrStderr()
	color := false
	if f, ok := w.(*os.File); ok && verbose {
		color = logging.ColorEnabled(f)
	}
	return logging.NewConsoleLoggerTo(w, verbose, color)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	opts := config.Options{
		ConfigPath: scanFlags.configPath,
		EnvFiles:   scanFlags.envFiles,
		Format:     scanFlags.format,
	}
	if cmd.Flags().Changed("first") {
		opts.First = &scanFlags.first
	}
	if cmd.Flags().Changed("last") {
		opts.Last = &scanFlags.last
	}

	settings, err := config.Resolve(opts, logger)
	if err != nil {
		return err
	}
	logger.Verbose("Range: %s, format: %s", settings.Range, settings.Format)

	rend, err := report.New(settings.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	result, err := scanner.New(settings.Range, logger, rend).Scan()
	if err != nil {
		return err
	}
	if err := rend.Finish(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Verbose("Scanned %d integers in %v", result.Stats.Scanned, result.Stats.Duration)
	logger.Verbose("Result digest: sha256:%s", result.Digest)
	return nil
}
