package digits

import "fmt"

// Kind is the classification of a single value.
type Kind int

const (
	// KindRejected values have a zero digit, a repeated digit, or are not positive.
	KindRejected Kind = iota
	// KindCandidate values are viable but not divisible by all of their digits.
	KindCandidate
	// KindLynchBell values pass both predicates.
	KindLynchBell
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindCandidate:
		return "candidate"
	case KindLynchBell:
		return "lynch-bell"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Verdict is the result of Classify.
type Verdict struct {
	Value  int
	Kind   Kind
	Reason Reason
	// Digit is the repeated digit when Reason is ReasonRepeatedDigit.
	Digit int
}

// Classify applies both predicates to v and explains the outcome.
func Classify(v int) Verdict {
	reason, d := rejection(v)
	if reason != ReasonNone {
		return Verdict{Value: v, Kind: KindRejected, Reason: reason, Digit: d}
	}
	if IsDivisibleByAllDigits(Candidate{value: v}) {
		return Verdict{Value: v, Kind: KindLynchBell}
	}
	return Verdict{Value: v, Kind: KindCandidate}
}

// String renders the verdict the way the check command prints it.
func (v Verdict) String() string {
	switch {
	case v.Kind != KindRejected:
		return fmt.Sprintf("%d: %s", v.Value, v.Kind)
	case v.Reason == ReasonRepeatedDigit:
		return fmt.Sprintf("%d: %s (%s %d)", v.Value, v.Kind, v.Reason, v.Digit)
	default:
		return fmt.Sprintf("%d: %s (%s)", v.Value, v.Kind, v.Reason)
	}
}
