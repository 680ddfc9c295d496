package lynchbell

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := config.Resolve(opts)
//	if errors.Is(err, lynchbell.ErrInvalidRange) {
//	    // Handle a bad --first/--last combination
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRange indicates the scan bounds are out of order or out of range.
	ErrInvalidRange = errors.New("invalid scan range")

	// ErrUnknownFormat indicates an output format that no renderer handles.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")
)

// usagePatterns are substrings of the errors cobra and pflag return for
// command line misuse. They carry no sentinel, so they are matched by text.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidRange),
		errors.Is(err, ErrUnknownFormat):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
