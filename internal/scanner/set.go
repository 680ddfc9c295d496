package scanner

import "github.com/vvka-141/lynchbell/internal/digits"

// CandidateSet is an unordered set of viable candidates.
type CandidateSet map[digits.Candidate]struct{}

// NewCandidateSet returns an empty set.
func NewCandidateSet() CandidateSet {
	return make(CandidateSet)
}

// Add inserts c into the set.
func (s CandidateSet) Add(c digits.Candidate) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s CandidateSet) Has(c digits.Candidate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of candidates in the set.
func (s CandidateSet) Len() int {
	return len(s)
}
