package compiler

import "github.com/j2pylang/j2py/ast"

// writeStatement emits one statement at the writer's current depth.
func (e *emitter) writeStatement(w *writer, sc *scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		if s.Value == nil {
			w.line("return")
		} else {
			w.linef("return %s", e.expr(sc, s.Value, false))
		}
	case *ast.DeclareStatement:
		for _, v := range s.Vars {
			if v.Init != nil {
				w.linef("%s = %s", v.Name, e.expr(sc, v.Init, false))
			}
			sc.locals[v.Name] = true
		}
	case *ast.AssignStatement:
		w.linef("%s = %s", e.chain(sc, s.Target, false), e.expr(sc, s.Value, false))
	case *ast.CallStatement:
		w.line(e.expr(sc, s.Expr, false))
	case *ast.BlockStatement:
		// braces have no target equivalent: the contained statements
		// inherit the current indentation
		for _, child := range s.Statements {
			e.writeStatement(w, sc, child)
		}
	case *ast.IfStatement:
		e.writeIf(w, sc, s, "if")
	case *ast.WhileStatement:
		w.linef("while %s:", e.expr(sc, s.Condition, false))
		e.writeSuite(w, sc, s.Body, nil)
	case *ast.ForStatement:
		e.writeFor(w, sc, s)
	case *ast.ForEachStatement:
		sc.locals[s.Name] = true
		w.linef("for %s in %s:", s.Name, e.expr(sc, s.Collection, false))
		e.writeSuite(w, sc, s.Body, nil)
	case *ast.BreakStatement:
		w.line("break")
	case *ast.ContinueStatement:
		w.line("continue")
	}
}

// writeIf emits an if statement, collapsing `else if` chains to elif.
func (e *emitter) writeIf(w *writer, sc *scope, s *ast.IfStatement, kw string) {
	w.linef("%s %s:", kw, e.expr(sc, s.Condition, false))
	e.writeSuite(w, sc, s.Then, nil)
	if s.Else == nil {
		return
	}
	if chained, ok := s.Else.(*ast.IfStatement); ok {
		e.writeIf(w, sc, chained, "elif")
		return
	}
	w.line("else:")
	e.writeSuite(w, sc, s.Else, nil)
}

// writeFor emits a C-style for loop as the documented while rewrite:
// the initializer precedes the loop and the update closes each
// iteration.
func (e *emitter) writeFor(w *writer, sc *scope, s *ast.ForStatement) {
	if s.Init != nil {
		e.writeStatement(w, sc, s.Init)
	}
	if s.Condition != nil {
		w.linef("while %s:", e.expr(sc, s.Condition, false))
	} else {
		w.line("while True:")
	}
	e.writeSuite(w, sc, s.Body, s.Update)
}

// writeSuite emits an indented suite from a body statement plus an
// optional trailing statement, writing `pass` when nothing comes out.
func (e *emitter) writeSuite(w *writer, sc *scope, body ast.Statement, trailing ast.Statement) {
	w.in()
	mark := w.len()
	if body != nil {
		e.writeStatement(w, sc, body)
	}
	if trailing != nil {
		e.writeStatement(w, sc, trailing)
	}
	if w.len() == mark {
		w.line("pass")
	}
	w.out()
}
