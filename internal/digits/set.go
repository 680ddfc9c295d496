package digits

import "math/bits"

// DigitSet records which decimal digits have been seen, one bit per digit.
// The zero value is an empty set.
type DigitSet uint16

// Add returns s with d included.
func (s DigitSet) Add(d int) DigitSet {
	return s | 1<<uint(d)
}

// Contains reports whether d is in s.
func (s DigitSet) Contains(d int) bool {
	return s&(1<<uint(d)) != 0
}

// Len returns the number of digits in s.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}
