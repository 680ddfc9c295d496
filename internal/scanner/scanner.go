package scanner

import (
	"fmt"
	"sort"
	"time"

	"github.com/vvka-141/lynchbell/internal/checksum"
	"github.com/vvka-141/lynchbell/internal/digits"
	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

// Observer is notified as a scan moves through its phases.
type Observer interface {
	// Collecting is called before candidate collection starts.
	Collecting(r lynchbell.Range)
	// Collected is called with the size of the candidate set.
	Collected(candidates int)
	// Selecting is called before the divisibility filter runs.
	Selecting()
	// Selected is called with the ascending result set.
	Selected(numbers []int)
}

// Collect returns every viable candidate in r.
func Collect(r lynchbell.Range) CandidateSet {
	set := NewCandidateSet()
	for v := r.First; v <= r.Last; v++ {
		if c, ok := digits.NewCandidate(v); ok {
			set.Add(c)
		}
	}
	return set
}

// Select returns the members of set divisible by all of their digits, ascending.
func Select(set CandidateSet) []int {
	numbers := make([]int, 0, 64)
	for c := range set {
		if digits.IsDivisibleByAllDigits(c) {
			numbers = append(numbers, c.Int())
		}
	}
	sort.Ints(numbers)
	return numbers
}

// Scanner runs a full two-phase scan over a fixed range.
type Scanner struct {
	rng      lynchbell.Range
	logger   lynchbell.Logger
	observer Observer
}

// New creates a Scanner for r. A nil observer is allowed.
func New(r lynchbell.Range, logger lynchbell.Logger, observer Observer) *Scanner {
	return &Scanner{rng: r, logger: logger, observer: observer}
}

// Range returns the interval the scanner covers.
func (s *Scanner) Range() lynchbell.Range {
	return s.rng
}

// Collect runs the first phase over the scanner's range.
func (s *Scanner) Collect() CandidateSet {
	return Collect(s.rng)
}

// Scan validates the range, runs both phases and returns the report.
func (s *Scanner) Scan() (*lynchbell.Report, error) {
	if err := s.rng.Validate(); err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", s.rng, err)
	}

	start := time.Now()
	s.logger.Verbose("Scanning %d integers in %s", s.rng.Len(), s.rng)

	if s.observer != nil {
		s.observer.Collecting(s.rng)
	}
	candidates := s.Collect()
	s.logger.Verbose("Collected %d candidates in %v", candidates.Len(), time.Since(start).Round(time.Millisecond))
	if s.observer != nil {
		s.observer.Collected(candidates.Len())
		s.observer.Selecting()
	}

	numbers := Select(candidates)
	if s.observer != nil {
		s.observer.Selected(numbers)
	}

	stats := lynchbell.Stats{Scanned: s.rng.Len(), Duration: time.Since(start)}
	s.logger.Verbose("Selected %d Lynch-Bell numbers in %v", len(numbers), stats.Duration.Round(time.Millisecond))

	return &lynchbell.Report{
		Range:      s.rng,
		Candidates: candidates.Len(),
		Numbers:    numbers,
		Digest:     checksum.New().Digest(numbers),
		Stats:      stats,
	}, nil
}
