package logging

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorVerbose = lipgloss.Color("245") // Gray
	colorError   = lipgloss.Color("196") // Red
)

// Styles holds the prefix styles a ConsoleLogger renders with.
type Styles struct {
	Verbose lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the colored prefix styles.
func DefaultStyles() Styles {
	return Styles{
		Verbose: lipgloss.NewStyle().Foreground(colorVerbose),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Verbose: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

// ColorEnabled reports whether f is a terminal that should receive colored output.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - f is not a terminal (redirected or piped)
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
