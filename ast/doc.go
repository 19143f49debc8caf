/*
Package ast defines the intermediate class model for the J2PY translator.

This package provides the in-memory representation built by the parser and
walked by the emitter: classes with their variables, methods, constructors,
and nested classes, plus the statement and expression node types.

Node Types

The model defines three main categories:

- Class model: Class, Variable, Method, Modifiers
- Statements: return, declare, assign, call, block, if/else, while,
  for, enhanced for, break, continue
- Expressions: literals, identifier chains, array literals, new
  expressions, unary and binary operations, parenthesized groups

The class model is a strict tree: nested classes are owned by their
enclosing class and no cross-class references exist beyond recorded
string names. Classes are built append-only during parsing; duplicate
member names and duplicate overload arities are rejected at insertion
time. During emission the model is read-only.

Example:

	c := ast.NewClass("Example", "")
	err := c.AddVariable(&ast.Variable{
		Mods: ast.Modifiers{Public: true},
		Name: "x",
		Init: &ast.NumberLiteral{Value: "4"},
	})
*/
package ast
