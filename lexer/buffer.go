package lexer

import (
	"errors"
	"strings"

	"github.com/j2pylang/j2py/diag"
	"github.com/j2pylang/j2py/token"
)

// ErrUnexpectedEOF is returned by Shift when the buffer is exhausted.
// Running out of tokens is always fatal: parsing cannot proceed.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Buffer wraps a Lexer with the consumption primitives the parser
// needs: single-token lookahead, one-token pushback for backtracking,
// and diagnostic reporting with source line context.
type Buffer struct {
	lex      *Lexer
	reporter *diag.Reporter
	lines    []string
	next     token.Token
	pushback []token.Token
	lastLine int
}

// NewBuffer creates a buffer over the given source text. The reporter
// receives every diagnostic the buffer records.
func NewBuffer(input string, reporter *diag.Reporter) *Buffer {
	b := &Buffer{
		lex:      New(input),
		reporter: reporter,
		lines:    strings.Split(input, "\n"),
		lastLine: 1,
	}
	b.next = b.lex.NextToken()
	return b
}

// Peek returns the next token without consuming it. At end of input it
// returns an EOF token.
func (b *Buffer) Peek() token.Token {
	if n := len(b.pushback); n > 0 {
		return b.pushback[n-1]
	}
	return b.next
}

// Shift consumes and returns the next token. When the buffer is
// exhausted it records a diagnostic naming what was expected and
// returns ErrUnexpectedEOF.
func (b *Buffer) Shift(expect string) (token.Token, error) {
	if n := len(b.pushback); n > 0 {
		tok := b.pushback[n-1]
		b.pushback = b.pushback[:n-1]
		b.lastLine = tok.Line
		return tok, nil
	}
	tok := b.next
	if tok.Type == token.EOF {
		msg := "unexpected end of input"
		if expect != "" {
			msg += ", expected " + expect
		}
		_ = b.reporter.Reportf(b.lastLine, b.LineText(b.lastLine), "%s", msg)
		return tok, ErrUnexpectedEOF
	}
	b.lastLine = tok.Line
	b.next = b.lex.NextToken()
	return tok, nil
}

// Unshift pushes a token back onto the buffer. It must be the inverse
// of the most recent Shift.
func (b *Buffer) Unshift(tok token.Token) {
	b.pushback = append(b.pushback, tok)
}

// Empty reports whether any tokens remain.
func (b *Buffer) Empty() bool {
	return b.Peek().Type == token.EOF
}

// Line returns the source line of the next token, or of the last
// consumed token once the input is exhausted.
func (b *Buffer) Line() int {
	if tok := b.Peek(); tok.Type != token.EOF {
		return tok.Line
	}
	return b.lastLine
}

// LineText returns the raw source text of the given 1-based line.
func (b *Buffer) LineText(line int) string {
	if line < 1 || line > len(b.lines) {
		return ""
	}
	return strings.TrimSpace(b.lines[line-1])
}

// Expect records a diagnostic when tok's literal does not match the
// expected text. It does not consume anything; in Fatal mode the
// returned error carries the diagnostic.
func (b *Buffer) Expect(expected string, tok token.Token) error {
	if tok.Literal == expected {
		return nil
	}
	got := tok.Literal
	if tok.Type == token.EOF {
		got = "end of input"
	}
	return b.reporter.Reportf(tok.Line, b.LineText(tok.Line),
		"unexpected %s, expected %s", got, expected)
}

// Validate records a diagnostic when tok is not a usable identifier:
// keywords, datatypes, and malformed names are rejected.
func (b *Buffer) Validate(tok token.Token) error {
	if token.IsIdentifier(tok.Literal) {
		return nil
	}
	if _, ok := token.Keywords[tok.Literal]; ok {
		return b.reporter.Reportf(tok.Line, b.LineText(tok.Line),
			"%s is a keyword", tok.Literal)
	}
	return b.reporter.Reportf(tok.Line, b.LineText(tok.Line),
		"unexpected %s, expected an identifier", tok.Literal)
}

// Reporter returns the diagnostic sink this buffer records into.
func (b *Buffer) Reporter() *diag.Reporter {
	return b.reporter
}
