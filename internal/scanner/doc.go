// Package scanner enumerates Lynch-Bell numbers over an inclusive range.
//
// A scan runs in two sequential phases:
//
//  1. Collect tests every integer in the range for viability (distinct,
//     nonzero digits) and keeps the survivors in a CandidateSet.
//  2. Select keeps the candidates divisible by each of their own digits and
//     returns them in ascending order.
//
// Scanner ties both phases together, notifies an Observer between them and
// produces a lynchbell.Report.
package scanner
