// Package digits implements the decimal digit predicates behind Lynch-Bell
// number enumeration.
//
// A value is a viable candidate when its decimal digits are pairwise distinct
// and none of them is zero. A viable candidate is a Lynch-Bell number when it
// is evenly divisible by each of its digits.
//
// # Construction Guarantee
//
// IsDivisibleByAllDigits accepts a Candidate, not an int. A Candidate can only
// be obtained from NewCandidate, which applies the viability predicate, so a
// zero digit can never reach the modulo in the divisibility test.
//
//	c, ok := digits.NewCandidate(135)
//	if ok && digits.IsDivisibleByAllDigits(c) {
//	    // 135 is a Lynch-Bell number
//	}
package digits
