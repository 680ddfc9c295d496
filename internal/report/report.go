// Package report renders scan progress and results.
//
// The text renderer reproduces the classic console output line for line and
// writes each progress line as soon as the scan reaches it. The YAML and JSON
// renderers stay silent during the scan and emit one document at the end.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/lynchbell/internal/scanner"
	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

// Renderer observes a scan and writes its output.
type Renderer interface {
	scanner.Observer

	// Finish writes anything still pending and returns the first write error.
	Finish(r *lynchbell.Report) error
}

// New returns the renderer for format writing to w.
func New(format lynchbell.Format, w io.Writer) (Renderer, error) {
	switch format {
	case lynchbell.FormatText:
		return &Text{w: bufio.NewWriter(w)}, nil
	case lynchbell.FormatYAML:
		return &Document{w: w, encode: encodeYAML}, nil
	case lynchbell.FormatJSON:
		return &Document{w: w, encode: encodeJSON}, nil
	}
	return nil, fmt.Errorf("%q: %w", format, lynchbell.ErrUnknownFormat)
}

// Text writes the plain console report.
type Text struct {
	w   *bufio.Writer
	err error
}

func (t *Text) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Text) flush() {
	if t.err == nil {
		t.err = t.w.Flush()
	}
}

func (t *Text) Collecting(lynchbell.Range) {
	t.printf("Loading numbers...\n")
	t.flush()
}

func (t *Text) Collected(candidates int) {
	t.printf("Found %d candidates\n", candidates)
}

func (t *Text) Selecting() {
	t.printf("Searching for Lynch-Bell numbers...\n")
	t.flush()
}

func (t *Text) Selected(numbers []int) {
	t.printf("Found %d Lynch-Bell numbers\n", len(numbers))
	for _, n := range numbers {
		t.printf("Found: %d\n", n)
	}
}

func (t *Text) Finish(*lynchbell.Report) error {
	t.flush()
	return t.err
}

// Document writes the whole report as one structured document.
type Document struct {
	w      io.Writer
	encode func(io.Writer, *lynchbell.Report) error
}

func (d *Document) Collecting(lynchbell.Range) {}
func (d *Document) Collected(int)              {}
func (d *Document) Selecting()                 {}
func (d *Document) Selected([]int)             {}

func (d *Document) Finish(r *lynchbell.Report) error {
	return d.encode(d.w, r)
}

func encodeYAML(w io.Writer, r *lynchbell.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return enc.Close()
}

func encodeJSON(w io.Writer, r *lynchbell.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return nil
}
