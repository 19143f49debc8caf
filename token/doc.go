/*
Package token defines the token types and structures used by the J2PY lexer and parser.

This package provides all the token types recognized in the accepted source
subset, including literals, operators, keywords, and delimiters. It also
includes the identifier and number predicates shared by the parser and the
emitter.

# Token Types

The following token types are supported:

- Literals: IDENT, INT, FLOAT, STRING
- Operators: +, -, *, /, ==, !=, <, >, <=, >=, &&, ||, &, |, !, ++, --
- Keywords: class, extends, public, private, protected, static, new,
  return, if, else, while, for, break, continue, this, true, false, null
- Datatypes: boolean, byte, char, double, float, int, long, short
  (all lexed as DATATYPE; the literal carries the concrete name)
- Delimiters: (, ), {, }, [, ], ,, ;, :, .

Keywords the translator recognizes but does not support (switch, try,
final, ...) are lexed as RESERVED so the parser can report them.
*/
package token
