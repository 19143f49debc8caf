// Package compiler emits target source text from the class model. It
// performs all semantic rewrites: overload dispatch on argument count,
// identifier rewriting, literal translation, special method mapping,
// and entry-point synthesis.
package compiler

import "github.com/j2pylang/j2py/ast"

// Compiler turns a parsed class model into target source text. The
// zero value emits with default behavior; the With* methods configure
// the documented switches.
type Compiler struct {
	privatePrefix bool
	plainEquality bool
}

// New creates a compiler with default behavior: private names are
// emitted unchanged and `==` is translated to `is`.
func New() *Compiler {
	return &Compiler{}
}

// WithPrivatePrefix makes the compiler prefix emitted names of private
// variables with a single underscore.
func (c *Compiler) WithPrivatePrefix() *Compiler {
	c.privatePrefix = true
	return c
}

// WithPlainEquality makes the compiler emit `==` instead of the
// default `is` for source equality comparisons.
func (c *Compiler) WithPlainEquality() *Compiler {
	c.plainEquality = true
	return c
}

// Compile emits the classes in source order, followed by the
// entry-point block when any class declares a main method. Output is
// deterministic: it depends only on the model and the configured
// switches.
func (c *Compiler) Compile(classes []*ast.Class) string {
	e := &emitter{privatePrefix: c.privatePrefix, plainEquality: c.plainEquality}
	w := &writer{}
	for i, cls := range classes {
		if i > 0 {
			w.blank()
		}
		e.writeClass(w, cls)
	}
	e.writeTrailer(w, classes)
	return w.String()
}

// emitter carries the configured switches through one emission walk.
type emitter struct {
	privatePrefix bool
	plainEquality bool
}

// scope is the resolution context of one emitted suite: the enclosing
// class and the lexical locals set, seeded by parameter names and
// extended by declarations. classLevel marks class-body scope, where
// members resolve to bare names instead of self/classname prefixes.
type scope struct {
	class      *ast.Class
	locals     map[string]bool
	classLevel bool
}

func newScope(c *ast.Class, classLevel bool) *scope {
	return &scope{class: c, locals: make(map[string]bool), classLevel: classLevel}
}
