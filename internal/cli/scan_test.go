package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

func TestScan_TextOutput(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "--last", "50")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 4+14)
	assert.Equal(t, "Loading numbers...", lines[0])
	assert.Equal(t, "Found 41 candidates", lines[1])
	assert.Equal(t, "Searching for Lynch-Bell numbers...", lines[2])
	assert.Equal(t, "Found 14 Lynch-Bell numbers", lines[3])
	assert.Equal(t, "Found: 1", lines[4])
	assert.Equal(t, "Found: 48", lines[len(lines)-1])
}

func TestScan_FirstAndLast(t *testing.T) {
	stdout, _, err := executeRoot(t, "--first", "100", "--last", "130")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 3 Lynch-Bell numbers\nFound: 124\nFound: 126\nFound: 128\n")
}

func TestScan_JSONFormat(t *testing.T) {
	stdout, _, err := executeRoot(t, "--last", "20", "--format", "json")
	require.NoError(t, err)

	var got lynchbell.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, lynchbell.Range{First: 1, Last: 20}, got.Range)
	assert.Equal(t, 17, got.Candidates)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 15}, got.Numbers)
}

func TestScan_ConfigAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, lynchbell.ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan:\n  first: 100\n  last: 9999\noutput:\n  format: json\n"), 0644))
	envPath := filepath.Join(dir, "scan.env")
	require.NoError(t, os.WriteFile(envPath, []byte("LYNCHBELL_LAST=130\nLYNCHBELL_FORMAT=yaml\n"), 0644))

	stdout, _, err := executeRoot(t, "--config", cfgPath, "--env-file", envPath)
	require.NoError(t, err)

	var got lynchbell.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, lynchbell.Range{First: 100, Last: 130}, got.Range)
	assert.Equal(t, []int{124, 126, 128}, got.Numbers)
}

func TestScan_VerboseGoesToStderr(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "--last", "20", "-v")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Loading numbers...\n"))
	assert.Contains(t, stderr, "[VERBOSE] Range: [1, 20], format: text")
	assert.Contains(t, stderr, "[VERBOSE] Result digest: sha256:")
	assert.NotContains(t, stdout, "[VERBOSE]")
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		sentinel error
		exit     int
	}{
		{"explicit zero first", []string{"--first", "0", "--last", "10"}, lynchbell.ErrInvalidRange, lynchbell.ExitConfigError},
		{"reversed range", []string{"--first", "50", "--last", "10"}, lynchbell.ErrInvalidRange, lynchbell.ExitConfigError},
		{"unknown format", []string{"--last", "10", "--format", "xml"}, lynchbell.ErrUnknownFormat, lynchbell.ExitConfigError},
		{"missing config", []string{"--config", "/nonexistent/lynchbell.yaml"}, lynchbell.ErrInvalidConfig, lynchbell.ExitConfigError},
		{"positional argument", []string{"135"}, lynchbell.ErrUsage, lynchbell.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "expected %v, got: %v", tt.sentinel, err)
			assert.Equal(t, tt.exit, lynchbell.ExitCodeForError(err))
			assert.NotContains(t, stdout, "Loading numbers...")
		})
	}
}

func TestScan_UnknownFlagIsUsageError(t *testing.T) {
	_, _, err := executeRoot(t, "--nope")
	require.Error(t, err)
	assert.Equal(t, lynchbell.ExitUsageError, lynchbell.ExitCodeForError(err))
}

func TestNoArgs_SuggestsCheck(t *testing.T) {
	err := noArgs(rootCmd, []string{"135", "45"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lynchbell check 135 45")
}
