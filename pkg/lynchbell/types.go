package lynchbell

import (
	"fmt"
	"strings"
	"time"
)

// Range is an inclusive interval of integers to scan.
type Range struct {
	First int `yaml:"first" json:"first"`
	Last  int `yaml:"last" json:"last"`
}

// DefaultRange returns the interval a bare invocation scans.
func DefaultRange() Range {
	return Range{First: FirstCandidate, Last: LastCandidate}
}

// Validate reports whether r can be scanned.
// Zero and negative values are excluded because they have no nonzero digits to test.
func (r Range) Validate() error {
	if r.First < 1 {
		return fmt.Errorf("first must be at least 1, got %d: %w", r.First, ErrInvalidRange)
	}
	if r.Last > MaxDistinctDigits {
		return fmt.Errorf("last must not exceed %d, got %d: %w", MaxDistinctDigits, r.Last, ErrInvalidRange)
	}
	if r.First > r.Last {
		return fmt.Errorf("first (%d) is greater than last (%d): %w", r.First, r.Last, ErrInvalidRange)
	}
	return nil
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.First, r.Last)
}

// Stats describes the work a scan performed.
type Stats struct {
	Scanned  int
	Duration time.Duration
}

// Report is the outcome of a full scan.
// Digest is the SHA-256 fingerprint of Numbers.
type Report struct {
	Range      Range  `yaml:"range" json:"range"`
	Candidates int    `yaml:"candidates" json:"candidates"`
	Numbers    []int  `yaml:"numbers" json:"numbers"`
	Digest     string `yaml:"digest" json:"digest"`
	Stats      Stats  `yaml:"-" json:"-"`
}

// Format names an output rendering of a Report.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatText, FormatYAML, FormatJSON}
}

// ParseFormat resolves a format name case-insensitively. An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%q (supported: %v): %w", name, Formats(), ErrUnknownFormat)
}
