// Package j2py translates a small statically-typed class-based source
// language (a Java subset) into Python source text.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/j2pylang/j2py"
//	)
//
//	func main() {
//		input := `class Ex { int x = 3; int foo() { return x; } }`
//
//		output, err := j2py.Translate(input)
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(output)
//	}
package j2py

import (
	"github.com/j2pylang/j2py/compiler"
	"github.com/j2pylang/j2py/diag"
	"github.com/j2pylang/j2py/parser"
)

// Version is the current version of j2py
const Version = "0.1.0"

// Options configures one translation.
type Options struct {
	// Fatal selects the diagnostic discipline: true halts on the first
	// diagnostic, false accumulates warnings and reports them together
	// at the end of parsing.
	Fatal bool
	// Private prefixes emitted names of private variables with a
	// single underscore.
	Private bool
	// PlainEquality emits == instead of the default is for source
	// equality comparisons.
	PlainEquality bool
}

// DefaultOptions returns the default translation options: fatal
// diagnostics, no private prefix, equality as `is`.
func DefaultOptions() Options {
	return Options{Fatal: true}
}

// Translate converts source text with default options.
func Translate(source string) (string, error) {
	return TranslateWithOptions(source, DefaultOptions())
}

// TranslateWithOptions converts source text into target text. One call
// constructs its own buffer, class model, and diagnostic sink; output
// is deterministic and depends only on the input and the options. On
// failure the error message is the diagnostic payload: the first
// diagnostic in fatal mode, every accumulated diagnostic otherwise.
func TranslateWithOptions(source string, opts Options) (string, error) {
	mode := diag.Fatal
	if !opts.Fatal {
		mode = diag.Warning
	}
	reporter := diag.NewReporter(mode)

	classes, err := parser.Parse(source, reporter)
	if err != nil {
		if rerr := reporter.Err(); rerr != nil {
			return "", rerr
		}
		return "", err
	}
	if err := reporter.Err(); err != nil {
		return "", err
	}

	c := compiler.New()
	if opts.Private {
		c = c.WithPrivatePrefix()
	}
	if opts.PlainEquality {
		c = c.WithPlainEquality()
	}
	return c.Compile(classes), nil
}
