package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
)

// Calculator computes result-set fingerprints.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// Digest computes a checksum of the canonical rendering of numbers.
	Digest(numbers []int) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Digest computes SHA-256 of numbers in canonical form.
// Order and duplicates in the input do not affect the result.
func (c SHA256) Digest(numbers []int) string {
	return c.CalculateRaw(canonical(numbers))
}

// canonical renders the distinct values of numbers ascending, one per line.
func canonical(numbers []int) []byte {
	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	buf := make([]byte, 0, len(sorted)*8)
	for i, n := range sorted {
		if i > 0 && n == sorted[i-1] {
			continue
		}
		buf = strconv.AppendInt(buf, int64(n), 10)
		buf = append(buf, '\n')
	}
	return buf
}
