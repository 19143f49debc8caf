// Package diag collects parse and translation diagnostics with source
// line context. A Reporter operates in one of two modes: Fatal, where
// the first recorded diagnostic halts translation, and Warning, where
// diagnostics accumulate and are raised together at the end.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the diagnostic discipline of a Reporter.
type Mode int

const (
	// Fatal halts translation on the first recorded diagnostic.
	Fatal Mode = iota
	// Warning accumulates diagnostics and reports them all at the end.
	Warning
)

// Diagnostic is a single recorded problem: the source line number, the
// text of the offending line, and a short message.
type Diagnostic struct {
	Line    int
	Context string
	Message string
}

// String formats the diagnostic for human consumption.
func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("line %d: %s\n    %s", d.Line, d.Message, d.Context)
}

// Reporter is the diagnostic sink shared by the token buffer and the
// parser during a single translation. It is not safe for concurrent
// use; every translation constructs its own.
type Reporter struct {
	mode  Mode
	diags []Diagnostic
}

// NewReporter creates a reporter in the given mode.
func NewReporter(mode Mode) *Reporter {
	return &Reporter{mode: mode}
}

// Mode returns the reporter's mode.
func (r *Reporter) Mode() Mode {
	return r.mode
}

// Report records a diagnostic. In Fatal mode it returns the diagnostic
// as an error so the caller can unwind; in Warning mode it returns nil
// and parsing continues on a best-effort basis.
func (r *Reporter) Report(d Diagnostic) error {
	r.diags = append(r.diags, d)
	if r.mode == Fatal {
		return errors.New(d.String())
	}
	return nil
}

// Reportf records a diagnostic built from a format string.
func (r *Reporter) Reportf(line int, context, format string, args ...any) error {
	return r.Report(Diagnostic{
		Line:    line,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasDiagnostics reports whether anything has been recorded.
func (r *Reporter) HasDiagnostics() bool {
	return len(r.diags) > 0
}

// Diagnostics returns a copy of the recorded diagnostics.
func (r *Reporter) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Err returns nil when nothing was recorded, otherwise a single error
// whose message is the concatenated human-readable payload.
func (r *Reporter) Err() error {
	if len(r.diags) == 0 {
		return nil
	}
	parts := make([]string, len(r.diags))
	for i, d := range r.diags {
		parts[i] = d.String()
	}
	return errors.New(strings.Join(parts, "\n"))
}
