// Package checksum fingerprints Lynch-Bell result sets.
//
// A digest is the SHA-256 of the canonical rendering of a result set: each
// number in ascending decimal form followed by a newline. Two scans that found
// the same numbers share a digest regardless of output format, which makes
// runs over different ranges or configurations easy to compare.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest := calculator.Digest(report.Numbers)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
