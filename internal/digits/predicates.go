package digits

import (
	"fmt"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

const radix = lynchbell.DecimalRadix

// Candidate is an integer whose decimal digits are distinct and nonzero.
// The zero value holds no digits and divides trivially.
type Candidate struct {
	value int
}

// Int returns the candidate's integer value.
func (c Candidate) Int() int {
	return c.value
}

func (c Candidate) String() string {
	return fmt.Sprint(c.value)
}

// Reason explains why a value is not a viable candidate.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotPositive
	ReasonZeroDigit
	ReasonRepeatedDigit
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotPositive:
		return "not positive"
	case ReasonZeroDigit:
		return "zero digit"
	case ReasonRepeatedDigit:
		return "repeated digit"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// rejection walks v least-significant digit first and returns the first
// reason it fails viability along with the offending digit.
func rejection(v int) (Reason, int) {
	if v < 1 {
		return ReasonNotPositive, 0
	}
	var seen DigitSet
	for w := v; w != 0; w /= radix {
		d := w % radix
		if d == 0 {
			return ReasonZeroDigit, 0
		}
		if seen.Contains(d) {
			return ReasonRepeatedDigit, d
		}
		seen = seen.Add(d)
	}
	return ReasonNone, 0
}

// NewCandidate returns v as a Candidate if its digits are distinct and nonzero.
func NewCandidate(v int) (Candidate, bool) {
	if r, _ := rejection(v); r != ReasonNone {
		return Candidate{}, false
	}
	return Candidate{value: v}, true
}

// IsViable reports whether v has pairwise distinct, nonzero decimal digits.
func IsViable(v int) bool {
	r, _ := rejection(v)
	return r == ReasonNone
}

// IsDivisibleByAllDigits reports whether c is evenly divisible by each of its digits.
func IsDivisibleByAllDigits(c Candidate) bool {
	v := c.value
	for w := v; w != 0; w /= radix {
		if v%(w%radix) != 0 {
			return false
		}
	}
	return true
}

// IsLynchBell reports whether v is a Lynch-Bell number.
func IsLynchBell(v int) bool {
	c, ok := NewCandidate(v)
	return ok && IsDivisibleByAllDigits(c)
}
