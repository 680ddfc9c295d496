// Package logging provides concrete implementations of the lynchbell.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr, styling the
//     [VERBOSE] and [ERROR] prefixes when stderr is a color terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// Scan results never go through a Logger; they are written to stdout by the
// report package so that diagnostics and output can be piped separately.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
