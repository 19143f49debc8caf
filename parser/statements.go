package parser

import (
	"github.com/j2pylang/j2py/ast"
	"github.com/j2pylang/j2py/token"
)

// parseStatement parses one statement, selected by its leading token.
// It returns a nil statement (and nil error) when the input had to be
// skipped in warning mode.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.buf.Peek()
	switch tok.Type {
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		return &ast.BreakStatement{Line: tok.Line}, p.expectShift(";")
	case token.CONTINUE:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{Line: tok.Line}, p.expectShift(";")
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		// empty statement
		_, err := p.buf.Shift("")
		return nil, err
	case token.NEW:
		expr, err := p.parseNew()
		if err != nil {
			return nil, err
		}
		return &ast.CallStatement{Line: tok.Line, Expr: expr}, p.expectShift(";")
	case token.RESERVED:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		if err := p.reportAt(tok.Line, "%s is not supported", tok.Literal); err != nil {
			return nil, err
		}
		return nil, p.syncStatement()
	case token.DATATYPE:
		return p.parseDeclare()
	case token.IDENT, token.THIS:
		return p.parseChainStatement()
	default:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		return nil, p.reportAt(tok.Line, "unexpected %s", tok.Literal)
	}
}

// syncStatement skips tokens up to and including the next semicolon so
// warning-mode parsing can resume at a statement boundary.
func (p *Parser) syncStatement() error {
	for {
		tok := p.buf.Peek()
		if tok.Type == token.EOF || tok.Type == token.RBRACE {
			return nil
		}
		if _, err := p.buf.Shift(""); err != nil {
			return err
		}
		if tok.Type == token.SEMICOLON {
			return nil
		}
	}
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok, err := p.buf.Shift("")
	if err != nil {
		return nil, err
	}
	stmt := &ast.ReturnStatement{Line: tok.Line}
	if p.buf.Peek().Type == token.SEMICOLON {
		_, err := p.buf.Shift("")
		return stmt, err
	}
	stmt.Value, err = p.parseExpression()
	if err != nil {
		return stmt, err
	}
	return stmt, p.expectShift(";")
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok, err := p.buf.Shift("")
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Line: tok.Line}
	if err := p.expectShift("("); err != nil {
		return stmt, err
	}
	stmt.Condition, err = p.parseExpression()
	if err != nil {
		return stmt, err
	}
	if err := p.expectShift(")"); err != nil {
		return stmt, err
	}
	stmt.Then, err = p.parseStatement()
	if err != nil {
		return stmt, err
	}
	if p.buf.Peek().Type == token.ELSE {
		if _, err := p.buf.Shift(""); err != nil {
			return stmt, err
		}
		stmt.Else, err = p.parseStatement()
		if err != nil {
			return stmt, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok, err := p.buf.Shift("")
	if err != nil {
		return nil, err
	}
	stmt := &ast.WhileStatement{Line: tok.Line}
	if err := p.expectShift("("); err != nil {
		return stmt, err
	}
	stmt.Condition, err = p.parseExpression()
	if err != nil {
		return stmt, err
	}
	if err := p.expectShift(")"); err != nil {
		return stmt, err
	}
	stmt.Body, err = p.parseStatement()
	return stmt, err
}

// parseFor parses both loop forms behind the `for` keyword: the
// enhanced form `for (T x : col) body` and the C-style form
// `for (init; cond; update) body`.
func (p *Parser) parseFor() (ast.Statement, error) {
	forTok, err := p.buf.Shift("")
	if err != nil {
		return nil, err
	}
	if err := p.expectShift("("); err != nil {
		return nil, err
	}

	var init ast.Statement
	tok := p.buf.Peek()
	switch tok.Type {
	case token.SEMICOLON:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
	case token.DATATYPE:
		if _, _, _, err := p.parseDatatype(); err != nil {
			return nil, err
		}
		nameTok, err := p.buf.Shift("a variable name")
		if err != nil {
			return nil, err
		}
		if err := p.buf.Validate(nameTok); err != nil {
			return nil, err
		}
		if p.buf.Peek().Type == token.COLON {
			return p.parseForEachTail(forTok.Line, nameTok.Literal)
		}
		init, err = p.parseForInitDecl(nameTok.Literal, nameTok.Line)
		if err != nil {
			return nil, err
		}
	case token.IDENT:
		rootTok, err := p.buf.Shift("an identifier")
		if err != nil {
			return nil, err
		}
		chain := &ast.IdentifierChain{Line: rootTok.Line, Parts: []ast.ChainPart{{Kind: ast.PartName, Name: rootTok.Literal}}}
		for p.buf.Peek().Type == token.DOT {
			if _, err := p.buf.Shift(""); err != nil {
				return nil, err
			}
			part, err := p.buf.Shift("an identifier")
			if err != nil {
				return nil, err
			}
			chain.Parts = append(chain.Parts, ast.ChainPart{Kind: ast.PartName, Name: part.Literal})
		}
		if p.buf.Peek().Type == token.IDENT {
			// datatype-then-name: the chain so far was a type
			nameTok, err := p.buf.Shift("a variable name")
			if err != nil {
				return nil, err
			}
			if err := p.buf.Validate(nameTok); err != nil {
				return nil, err
			}
			if p.buf.Peek().Type == token.COLON {
				return p.parseForEachTail(forTok.Line, nameTok.Literal)
			}
			init, err = p.parseForInitDecl(nameTok.Literal, nameTok.Line)
			if err != nil {
				return nil, err
			}
		} else {
			if err := p.parseAttributes(chain); err != nil {
				return nil, err
			}
			init, err = p.finishSimpleStatement(chain)
			if err != nil {
				return nil, err
			}
			if err := p.expectShift(";"); err != nil {
				return nil, err
			}
		}
	default:
		if err := p.reportAt(tok.Line, "unexpected %s", tok.Literal); err != nil {
			return nil, err
		}
		if err := p.syncStatement(); err != nil {
			return nil, err
		}
	}

	var cond ast.Expression
	if p.buf.Peek().Type != token.SEMICOLON {
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectShift(";"); err != nil {
		return nil, err
	}

	var update ast.Statement
	if p.buf.Peek().Type != token.RPAREN {
		rootTok, err := p.buf.Shift("an identifier")
		if err != nil {
			return nil, err
		}
		chain := &ast.IdentifierChain{Line: rootTok.Line, Parts: []ast.ChainPart{{Kind: ast.PartName, Name: rootTok.Literal}}}
		if err := p.parseAttributes(chain); err != nil {
			return nil, err
		}
		update, err = p.finishSimpleStatement(chain)
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectShift(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{
		Line:      forTok.Line,
		Init:      init,
		Condition: cond,
		Update:    update,
		Body:      body,
	}, nil
}

// parseForEachTail finishes an enhanced for once `T name :` has been
// consumed.
func (p *Parser) parseForEachTail(line int, name string) (ast.Statement, error) {
	if _, err := p.buf.Shift(""); err != nil {
		return nil, err
	}
	coll, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectShift(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForEachStatement{Line: line, Name: name, Collection: coll, Body: body}, nil
}

// parseForInitDecl finishes a single-variable declaration used as a
// for-loop initializer.
func (p *Parser) parseForInitDecl(name string, line int) (ast.Statement, error) {
	decl := &ast.DeclaredVar{Name: name}
	if p.buf.Peek().Type == token.ASSIGN {
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	stmt := &ast.DeclareStatement{Line: line, Vars: []*ast.DeclaredVar{decl}}
	return stmt, p.expectShift(";")
}

func (p *Parser) parseBlock() (ast.Statement, error) {
	tok := p.buf.Peek()
	stmts, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Line: tok.Line, Statements: stmts}, nil
}

// parseDeclare parses a declaration whose type starts with a primitive
// datatype keyword.
func (p *Parser) parseDeclare() (ast.Statement, error) {
	if _, _, _, err := p.parseDatatype(); err != nil {
		return nil, err
	}
	nameTok, err := p.buf.Shift("a variable name")
	if err != nil {
		return nil, err
	}
	if err := p.buf.Validate(nameTok); err != nil {
		return nil, err
	}
	return p.parseDeclareList(nameTok.Literal, nameTok.Line)
}

// parseDeclareList parses `name (= expr)? (, name (= expr)?)* ;` once
// the first name has been consumed.
func (p *Parser) parseDeclareList(first string, line int) (ast.Statement, error) {
	stmt := &ast.DeclareStatement{Line: line}
	name := first
	for {
		decl := &ast.DeclaredVar{Name: name}
		if p.buf.Peek().Type == token.ASSIGN {
			if _, err := p.buf.Shift(""); err != nil {
				return stmt, err
			}
			init, err := p.parseExpression()
			if err != nil {
				return stmt, err
			}
			decl.Init = init
		}
		stmt.Vars = append(stmt.Vars, decl)
		if p.buf.Peek().Type != token.COMMA {
			break
		}
		if _, err := p.buf.Shift(""); err != nil {
			return stmt, err
		}
		nameTok, err := p.buf.Shift("a variable name")
		if err != nil {
			return stmt, err
		}
		if err := p.buf.Validate(nameTok); err != nil {
			return stmt, err
		}
		name = nameTok.Literal
	}
	return stmt, p.expectShift(";")
}

// parseChainStatement disambiguates the statements that begin with an
// identifier: a declaration (datatype-then-name), an assignment, an
// increment, or a bare call.
func (p *Parser) parseChainStatement() (ast.Statement, error) {
	rootTok, err := p.buf.Shift("an identifier")
	if err != nil {
		return nil, err
	}
	chain := &ast.IdentifierChain{Line: rootTok.Line, Parts: []ast.ChainPart{{Kind: ast.PartName, Name: rootTok.Literal}}}

	// consume the leading run of dotted names; the token after it
	// decides between declaration and expression forms
	for p.buf.Peek().Type == token.DOT {
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		nameTok, err := p.buf.Shift("an identifier")
		if err != nil {
			return nil, err
		}
		chain.Parts = append(chain.Parts, ast.ChainPart{Kind: ast.PartName, Name: nameTok.Literal})
	}

	next := p.buf.Peek()
	if next.Type == token.IDENT && rootTok.Type != token.THIS {
		// datatype-then-name: the chain so far was a type
		nameTok, err := p.buf.Shift("a variable name")
		if err != nil {
			return nil, err
		}
		if err := p.buf.Validate(nameTok); err != nil {
			return nil, err
		}
		return p.parseDeclareList(nameTok.Literal, nameTok.Line)
	}
	if next.Type == token.LBRACKET {
		open, err := p.buf.Shift("")
		if err != nil {
			return nil, err
		}
		if p.buf.Peek().Type == token.RBRACKET {
			// empty brackets: an array-typed declaration
			if _, err := p.buf.Shift(""); err != nil {
				return nil, err
			}
			for p.buf.Peek().Type == token.LBRACKET {
				if _, err := p.buf.Shift(""); err != nil {
					return nil, err
				}
				if err := p.expectShift("]"); err != nil {
					return nil, err
				}
			}
			nameTok, err := p.buf.Shift("a variable name")
			if err != nil {
				return nil, err
			}
			if err := p.buf.Validate(nameTok); err != nil {
				return nil, err
			}
			return p.parseDeclareList(nameTok.Literal, nameTok.Line)
		}
		// it was an index after all
		p.buf.Unshift(open)
	}

	if err := p.parseAttributes(chain); err != nil {
		return nil, err
	}
	stmt, err := p.finishSimpleStatement(chain)
	if err != nil {
		return nil, err
	}
	return stmt, p.expectShift(";")
}

// finishSimpleStatement turns a fully parsed chain into an assignment,
// an increment rewrite, or a bare call. It does not consume the
// trailing semicolon.
func (p *Parser) finishSimpleStatement(chain *ast.IdentifierChain) (ast.Statement, error) {
	tok := p.buf.Peek()
	switch tok.Type {
	case token.ASSIGN:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStatement{Line: chain.Line, Target: chain, Value: value}, nil
	case token.INCREMENT, token.DECREMENT:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		op := "+"
		if tok.Type == token.DECREMENT {
			op = "-"
		}
		// i++ is sugar for i = i + 1
		return &ast.AssignStatement{
			Line:   chain.Line,
			Target: chain,
			Value: &ast.BinaryExpression{
				Left:     chain,
				Operator: op,
				Right:    &ast.NumberLiteral{Value: "1"},
			},
		}, nil
	default:
		return &ast.CallStatement{Line: chain.Line, Expr: chain}, nil
	}
}
