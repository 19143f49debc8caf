package parser

import (
	"github.com/j2pylang/j2py/ast"
	"github.com/j2pylang/j2py/token"
)

// binaryOps is the set of tokens accepted as binary operators.
var binaryOps = map[token.Type]bool{
	token.PLUS:     true,
	token.MINUS:    true,
	token.MULTIPLY: true,
	token.DIVIDE:   true,
	token.LT:       true,
	token.GT:       true,
	token.LTE:      true,
	token.GTE:      true,
	token.EQ:       true,
	token.NOT_EQ:   true,
	token.AND:      true,
	token.OR:       true,
	token.BIT_AND:  true,
	token.BIT_OR:   true,
}

// parseExpression parses `primary (OP expression)?`. The tree is
// right-recursive with no precedence: emitted code preserves source
// left-to-right textual order.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return left, err
	}
	if !binaryOps[p.buf.Peek().Type] {
		return left, nil
	}
	op, err := p.buf.Shift("")
	if err != nil {
		return left, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return left, err
	}
	return &ast.BinaryExpression{Left: left, Operator: op.Literal, Right: right}, nil
}

// parsePrimary parses one primary expression.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.buf.Peek()
	switch tok.Type {
	case token.INT, token.FLOAT:
		_, err := p.buf.Shift("")
		return &ast.NumberLiteral{Value: tok.Literal}, err
	case token.STRING:
		_, err := p.buf.Shift("")
		return &ast.StringLiteral{Value: tok.Literal}, err
	case token.TRUE, token.FALSE:
		_, err := p.buf.Shift("")
		return &ast.BooleanLiteral{Value: tok.Type == token.TRUE}, err
	case token.NULL:
		_, err := p.buf.Shift("")
		return &ast.NullLiteral{}, err
	case token.LBRACE:
		return p.parseArrayLiteral()
	case token.LPAREN:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return inner, err
		}
		return &ast.GroupedExpression{Inner: inner}, p.expectShift(")")
	case token.PLUS, token.MINUS, token.NOT:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		operand, err := p.parsePrimary()
		if err != nil {
			return operand, err
		}
		return &ast.UnaryExpression{Operator: tok.Literal, Operand: operand}, nil
	case token.NEW:
		return p.parseNew()
	case token.IDENT, token.THIS:
		rootTok, err := p.buf.Shift("")
		if err != nil {
			return nil, err
		}
		chain := &ast.IdentifierChain{Line: rootTok.Line, Parts: []ast.ChainPart{{Kind: ast.PartName, Name: rootTok.Literal}}}
		return chain, p.parseAttributes(chain)
	default:
		if _, err := p.buf.Shift(""); err != nil {
			return nil, err
		}
		return &ast.NullLiteral{}, p.reportAt(tok.Line, "unexpected %s, expected an expression", tok.Literal)
	}
}

// parseArrayLiteral parses `{ expr (, expr)* }`.
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	if _, err := p.buf.Shift(""); err != nil {
		return nil, err
	}
	lit := &ast.ArrayLiteral{}
	if p.buf.Peek().Type == token.RBRACE {
		_, err := p.buf.Shift("")
		return lit, err
	}
	for {
		elem, err := p.parseExpression()
		if err != nil {
			return lit, err
		}
		lit.Elements = append(lit.Elements, elem)
		if p.buf.Peek().Type != token.COMMA {
			break
		}
		if _, err := p.buf.Shift(""); err != nil {
			return lit, err
		}
	}
	return lit, p.expectShift("}")
}

// parseAttributes extends a chain with any interleaving of `.name`,
// `[expr]`, and `(args)` links.
func (p *Parser) parseAttributes(chain *ast.IdentifierChain) error {
	for {
		switch p.buf.Peek().Type {
		case token.DOT:
			if _, err := p.buf.Shift(""); err != nil {
				return err
			}
			nameTok, err := p.buf.Shift("an identifier")
			if err != nil {
				return err
			}
			chain.Parts = append(chain.Parts, ast.ChainPart{Kind: ast.PartName, Name: nameTok.Literal})
		case token.LBRACKET:
			if _, err := p.buf.Shift(""); err != nil {
				return err
			}
			index, err := p.parseExpression()
			if err != nil {
				return err
			}
			if err := p.expectShift("]"); err != nil {
				return err
			}
			chain.Parts = append(chain.Parts, ast.ChainPart{Kind: ast.PartIndex, Index: index})
		case token.LPAREN:
			args, err := p.parseArgs()
			if err != nil {
				return err
			}
			chain.Parts = append(chain.Parts, ast.ChainPart{Kind: ast.PartCall, Args: args})
		default:
			return nil
		}
	}
}

// parseArgs parses a parenthesized argument list.
func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.buf.Shift("("); err != nil {
		return nil, err
	}
	args := []ast.Expression{}
	if p.buf.Peek().Type == token.RPAREN {
		_, err := p.buf.Shift("")
		return args, err
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return args, err
		}
		args = append(args, arg)
		if p.buf.Peek().Type != token.COMMA {
			break
		}
		if _, err := p.buf.Shift(""); err != nil {
			return args, err
		}
	}
	return args, p.expectShift(")")
}

// parseNew parses `new Type`, `new Type(args)`, and `new Type[len]...`.
func (p *Parser) parseNew() (ast.Expression, error) {
	newTok, err := p.buf.Shift("")
	if err != nil {
		return nil, err
	}
	typeName, _, err := p.parseDottedName("a type")
	if err != nil {
		return nil, err
	}
	expr := &ast.NewExpression{Line: newTok.Line, TypeName: typeName}
	switch p.buf.Peek().Type {
	case token.LPAREN:
		expr.Args, err = p.parseArgs()
		return expr, err
	case token.LBRACKET:
		for p.buf.Peek().Type == token.LBRACKET {
			if _, err := p.buf.Shift(""); err != nil {
				return expr, err
			}
			size, err := p.parseExpression()
			if err != nil {
				return expr, err
			}
			if err := p.expectShift("]"); err != nil {
				return expr, err
			}
			expr.Sizes = append(expr.Sizes, size)
		}
		return expr, nil
	default:
		// bare `new Type` is a zero-argument constructor call
		return expr, nil
	}
}
