/*
Package lexer provides lexical analysis functionality for the J2PY translator.

The lexer tokenizes source code into a sequence of tokens. The Buffer
type wraps a Lexer with the consumption primitives the parser uses:
single-token lookahead, one-token pushback, and diagnostic reporting
with the raw text of the offending source line.

Example:

	input := `class Ex { int x = 5; }`

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		fmt.Println(tok)
		if tok.Type == token.EOF {
			break
		}
	}

# Position Tracking

The lexer tracks line and column positions for each token. The buffer's
line number is monotonically non-decreasing as tokens are consumed.

# Lexing rules

- // line comments are stripped up to end-of-line; there is no block
  comment support
- a '.' adjacent to a digit stays inside the number, so decimal
  literals survive intact
- double-character operators (++, --, ==, !=, <=, >=, &&, ||) are
  recognized before their single-character prefixes
- string literals are read as one atomic token with inner whitespace
  preserved
*/
package lexer
