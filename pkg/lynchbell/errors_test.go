package lynchbell_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --foo"), lynchbell.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), lynchbell.ExitUsageError},
		{"unknown command", errors.New(`unknown command "scna" for "lynchbell"`), lynchbell.ExitUsageError},
		{"accepts args", errors.New("accepts 0 arg(s), received 1"), lynchbell.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--first"`), lynchbell.ExitUsageError},
		{"wrapped usage sentinel", fmt.Errorf("bad value: %w", lynchbell.ErrUsage), lynchbell.ExitUsageError},
		{"general error", errors.New("something went wrong"), lynchbell.ExitGeneralError},
		{"nil error", nil, lynchbell.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lynchbell.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_ConfigErrors(t *testing.T) {
	for _, sentinel := range []error{
		lynchbell.ErrInvalidConfig,
		lynchbell.ErrInvalidRange,
		lynchbell.ErrUnknownFormat,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("loading: %w", sentinel)
			if got := lynchbell.ExitCodeForError(wrapped); got != lynchbell.ExitConfigError {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", wrapped, got, lynchbell.ExitConfigError)
			}
		})
	}
}
