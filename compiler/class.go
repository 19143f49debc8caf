package compiler

import (
	"strings"

	"github.com/j2pylang/j2py/ast"
)

// writeClass emits one class: nested classes first (so class-level
// initializers can refer to them), then static variable assignments,
// the synthesized __init__, and every method in insertion order. An
// empty body becomes `pass`.
func (e *emitter) writeClass(w *writer, c *ast.Class) {
	w.linef("class %s(%s):", c.Name, c.Super)
	w.in()
	mark := w.len()

	for _, nested := range c.NestedClasses() {
		e.writeClass(w, nested)
	}

	classScope := newScope(c, true)
	for _, v := range c.StaticVariables() {
		if v.Init == nil {
			continue
		}
		w.linef("%s = %s", e.varName(v), e.expr(classScope, v.Init, false))
	}

	e.writeInit(w, c)
	for _, name := range c.MethodNames() {
		e.writeMethod(w, c, name)
	}

	if w.len() == mark {
		w.line("pass")
	}
	w.out()
}

// writeInit synthesizes __init__ from the constructors and the
// initialized instance variables. A class with neither gets no
// __init__ at all.
func (e *emitter) writeInit(w *writer, c *ast.Class) {
	ctors := c.Constructors()
	var inits []*ast.Variable
	for _, v := range c.InstanceVariables() {
		if v.Init != nil {
			inits = append(inits, v)
		}
	}
	if len(ctors) == 0 && len(inits) == 0 {
		return
	}
	e.writeCallable(w, c, ast.InitName, ctors, inits, false)
}

// writeMethod emits all overloads of one method name as a single def,
// applying the special renames: equals becomes the equality dunder and
// main gains a @classmethod decorator.
func (e *emitter) writeMethod(w *writer, c *ast.Class, name string) {
	overloads := c.LookupMethod(name)
	pyName := name
	if name == "equals" {
		pyName = "__eq__"
	}
	e.writeCallable(w, c, pyName, overloads, nil, name == "main")
}

// writeCallable emits one def. With zero or one overload the original
// parameter names appear in the signature; with several the signature
// is (self, *args) and the body dispatches on len(args), unpacking
// into the original parameter names per branch.
func (e *emitter) writeCallable(w *writer, c *ast.Class, pyName string, overloads []*ast.Method, inits []*ast.Variable, classmethod bool) {
	if classmethod {
		w.line("@classmethod")
	}
	if len(overloads) > 1 {
		w.linef("def %s(self, *args):", pyName)
	} else {
		params := ""
		if len(overloads) == 1 && len(overloads[0].Params) > 0 {
			params = ", " + strings.Join(overloads[0].Params, ", ")
		}
		w.linef("def %s(self%s):", pyName, params)
	}
	w.in()
	mark := w.len()

	if len(overloads) > 1 {
		sc := newScope(c, false)
		sc.locals["args"] = true
		e.writeInstanceInits(w, sc, inits)
		for i, m := range overloads {
			kw := "if"
			if i > 0 {
				kw = "elif"
			}
			w.linef("%s len(args) == %d:", kw, m.Arity())
			w.in()
			branchMark := w.len()
			branch := newScope(c, false)
			branch.locals["args"] = true
			for _, p := range m.Params {
				branch.locals[p] = true
			}
			if m.Arity() > 0 {
				w.linef("(%s,) = args", strings.Join(m.Params, ", "))
			}
			for _, stmt := range m.Body {
				e.writeStatement(w, branch, stmt)
			}
			if w.len() == branchMark {
				w.line("pass")
			}
			w.out()
		}
	} else {
		sc := newScope(c, false)
		if len(overloads) == 1 {
			for _, p := range overloads[0].Params {
				sc.locals[p] = true
			}
		}
		e.writeInstanceInits(w, sc, inits)
		if len(overloads) == 1 {
			for _, stmt := range overloads[0].Body {
				e.writeStatement(w, sc, stmt)
			}
		}
	}

	if w.len() == mark {
		w.line("pass")
	}
	w.out()
}

// writeInstanceInits emits the self.NAME = EXPR lines that begin every
// synthesized __init__.
func (e *emitter) writeInstanceInits(w *writer, sc *scope, inits []*ast.Variable) {
	for _, v := range inits {
		w.linef("self.%s = %s", e.varName(v), e.expr(sc, v.Init, false))
	}
}

// varName applies the optional private underscore prefix to a
// variable's emitted name.
func (e *emitter) varName(v *ast.Variable) string {
	if e.privatePrefix && !v.Mods.Public {
		return "_" + v.Name
	}
	return v.Name
}

// writeTrailer synthesizes the entry-point block dispatching
// sys.argv[1] to the matching class's main. Classes without a main do
// not appear; with no main anywhere the block is omitted entirely.
func (e *emitter) writeTrailer(w *writer, classes []*ast.Class) {
	var mains []*ast.Class
	for _, c := range classes {
		if c.LookupMethod("main") != nil {
			mains = append(mains, c)
		}
	}
	if len(mains) == 0 {
		return
	}
	w.blank()
	w.line(`if __name__ == "__main__":`)
	w.in()
	w.line("import sys")
	w.line("assert len(sys.argv) > 1")
	for i, c := range mains {
		kw := "if"
		if i > 0 {
			kw = "elif"
		}
		w.linef(`%s sys.argv[1] == "%s":`, kw, c.Name)
		w.in()
		w.linef("%s.main(sys.argv[2:])", c.Name)
		w.out()
	}
	w.out()
}
