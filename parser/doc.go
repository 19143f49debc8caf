/*
Package parser provides syntax analysis for the J2PY translator.

The parser is recursive descent over the lexer's token buffer. It builds
the intermediate class model in the ast package and never evaluates
anything. It looks ahead one token and backtracks by at most one
Unshift.

# Accepted subset

Declarations: classes (with optional extends), static and instance
variables, methods, constructors, nested classes. Statements: variable
declare/assign, return, if/else, while, both for forms, break/continue,
method and constructor calls, new expressions.

Binary expressions are recognized in a right-recursive
"primary (OP expression)?" style: operator precedence and associativity
are not modeled, so the structure of emitted expressions follows source
left-to-right textual order. Inputs that rely on precedence must
parenthesize.

# Diagnostics

The parser records every problem in the shared diag.Reporter. In fatal
mode the first diagnostic unwinds parsing through the returned errors;
in warning mode the parser continues on a best-effort basis and the
accumulated diagnostics are reported together by the driver. Running
out of tokens is fatal in both modes.
*/
package parser
