// Package parser provides syntax analysis for the J2PY translator.
// It consumes tokens from the lexer buffer and builds the intermediate
// class model defined in the ast package.
package parser

import (
	"github.com/j2pylang/j2py/ast"
	"github.com/j2pylang/j2py/diag"
	"github.com/j2pylang/j2py/lexer"
	"github.com/j2pylang/j2py/token"
)

// Parser is a top-down recursive-descent parser over a token buffer.
// It never backtracks beyond one Unshift. All rules consume their full
// syntactic form, including closing delimiters.
type Parser struct {
	buf      *lexer.Buffer
	reporter *diag.Reporter
}

// New creates a parser over the given source text. The reporter
// receives every diagnostic; in fatal mode the first diagnostic halts
// parsing via the returned errors.
func New(input string, reporter *diag.Reporter) *Parser {
	return &Parser{
		buf:      lexer.NewBuffer(input, reporter),
		reporter: reporter,
	}
}

// Parse parses an entire translation unit and returns its classes in
// source order. Duplicate top-level class names are rejected.
func Parse(input string, reporter *diag.Reporter) ([]*ast.Class, error) {
	return New(input, reporter).ParseUnit()
}

// ParseUnit reads classes until the buffer is exhausted.
func (p *Parser) ParseUnit() ([]*ast.Class, error) {
	var classes []*ast.Class
	seen := make(map[string]bool)
	for !p.buf.Empty() {
		mods, err := p.parseModifiers()
		if err != nil {
			return classes, err
		}
		cls, err := p.parseClass(mods)
		if err != nil {
			return classes, err
		}
		if cls == nil {
			continue
		}
		if seen[cls.Name] {
			if err := p.reportAt(cls.Line, "class %s is already defined", cls.Name); err != nil {
				return classes, err
			}
			continue
		}
		seen[cls.Name] = true
		classes = append(classes, cls)
	}
	return classes, nil
}

// reportAt records a diagnostic with the text of the given source line
// as context.
func (p *Parser) reportAt(line int, format string, args ...any) error {
	return p.reporter.Reportf(line, p.buf.LineText(line), format, args...)
}

// expectShift consumes the next token and records a diagnostic when its
// literal does not match. The token is consumed either way so parsing
// keeps making progress in warning mode.
func (p *Parser) expectShift(expected string) error {
	tok, err := p.buf.Shift(expected)
	if err != nil {
		return err
	}
	return p.buf.Expect(expected, tok)
}

// parseModifiers consumes a run of member modifiers. In a class
// position, protection modifiers other than private are accepted and
// ignored; final and abstract always draw a diagnostic.
func (p *Parser) parseModifiers() (ast.Modifiers, error) {
	mods := ast.Modifiers{Public: true}
	for {
		tok := p.buf.Peek()
		switch {
		case tok.Type == token.PUBLIC || tok.Type == token.PROTECTED:
			// protected maps to public
			if _, err := p.buf.Shift(""); err != nil {
				return mods, err
			}
		case tok.Type == token.PRIVATE:
			if _, err := p.buf.Shift(""); err != nil {
				return mods, err
			}
			mods.Public = false
		case tok.Type == token.STATIC:
			if _, err := p.buf.Shift(""); err != nil {
				return mods, err
			}
			mods.Static = true
		case tok.Type == token.RESERVED && (tok.Literal == "final" || tok.Literal == "abstract"):
			if _, err := p.buf.Shift(""); err != nil {
				return mods, err
			}
			if err := p.reportAt(tok.Line, "%s is not supported", tok.Literal); err != nil {
				return mods, err
			}
		default:
			return mods, nil
		}
	}
}

// parseClass parses `class IDENT (extends IDENT)? { member* }` after
// the modifiers have been consumed.
func (p *Parser) parseClass(mods ast.Modifiers) (*ast.Class, error) {
	if err := p.expectShift("class"); err != nil {
		return nil, err
	}
	nameTok, err := p.buf.Shift("a class name")
	if err != nil {
		return nil, err
	}
	if err := p.buf.Validate(nameTok); err != nil {
		return nil, err
	}

	cls := ast.NewClass(nameTok.Literal, "")
	cls.Mods = mods
	cls.Line = nameTok.Line
	if !mods.Public {
		if err := p.reportAt(nameTok.Line, "class %s cannot be private", cls.Name); err != nil {
			return cls, err
		}
	}
	if mods.Static {
		if err := p.reportAt(nameTok.Line, "class %s cannot be static", cls.Name); err != nil {
			return cls, err
		}
	}

	if p.buf.Peek().Type == token.EXTENDS {
		if _, err := p.buf.Shift(""); err != nil {
			return cls, err
		}
		super, _, err := p.parseDottedName("a superclass name")
		if err != nil {
			return cls, err
		}
		cls.Super = super
	}

	if err := p.expectShift("{"); err != nil {
		return cls, err
	}
	for p.buf.Peek().Type != token.RBRACE {
		if p.buf.Empty() {
			_, err := p.buf.Shift("}")
			return cls, err
		}
		if err := p.parseMember(cls); err != nil {
			return cls, err
		}
	}
	if _, err := p.buf.Shift("}"); err != nil {
		return cls, err
	}
	return cls, nil
}

// parseMember parses one declaration inside a class body: a nested
// class, a constructor, a method, or a variable declaration list.
func (p *Parser) parseMember(c *ast.Class) error {
	mods, err := p.parseModifiers()
	if err != nil {
		return err
	}

	if p.buf.Peek().Type == token.CLASS {
		nested, err := p.parseClass(mods)
		if err != nil {
			return err
		}
		if nested != nil {
			if err := c.AddNested(nested); err != nil {
				return p.reportAt(nested.Line, "%s", err.Error())
			}
		}
		return nil
	}

	datatype, brackets, line, err := p.parseDatatype()
	if err != nil {
		return err
	}

	if p.buf.Peek().Type == token.LPAREN {
		// constructor iff the datatype matches the class name and no
		// array brackets were seen
		if brackets > 0 {
			if err := p.reportAt(line, "a constructor cannot be declared with []"); err != nil {
				return err
			}
		}
		if datatype != c.Name {
			if err := p.reportAt(line, "constructor %s does not match class %s", datatype, c.Name); err != nil {
				return err
			}
		}
		params, err := p.parseParams()
		if err != nil {
			return err
		}
		body, err := p.parseBody()
		if err != nil {
			return err
		}
		ctor := &ast.Method{Mods: mods, Params: params, Body: body, Line: line}
		if err := c.AddConstructor(ctor); err != nil {
			return p.reportAt(line, "%s", err.Error())
		}
		return nil
	}

	nameTok, err := p.buf.Shift("a member name")
	if err != nil {
		return err
	}
	if err := p.buf.Validate(nameTok); err != nil {
		return err
	}

	if p.buf.Peek().Type == token.LPAREN {
		params, err := p.parseParams()
		if err != nil {
			return err
		}
		body, err := p.parseBody()
		if err != nil {
			return err
		}
		m := &ast.Method{Mods: mods, Name: nameTok.Literal, Params: params, Body: body, Line: nameTok.Line}
		if err := c.AddMethod(m); err != nil {
			return p.reportAt(nameTok.Line, "%s", err.Error())
		}
		return nil
	}

	// variable declaration list terminated by ;
	name := nameTok.Literal
	nameLine := nameTok.Line
	for {
		var init ast.Expression
		if p.buf.Peek().Type == token.ASSIGN {
			if _, err := p.buf.Shift(""); err != nil {
				return err
			}
			init, err = p.parseExpression()
			if err != nil {
				return err
			}
		}
		v := &ast.Variable{Mods: mods, Name: name, Init: init, Line: nameLine}
		if err := c.AddVariable(v); err != nil {
			if rerr := p.reportAt(nameLine, "%s", err.Error()); rerr != nil {
				return rerr
			}
		}
		if p.buf.Peek().Type != token.COMMA {
			break
		}
		if _, err := p.buf.Shift(""); err != nil {
			return err
		}
		nameTok, err = p.buf.Shift("a variable name")
		if err != nil {
			return err
		}
		if err := p.buf.Validate(nameTok); err != nil {
			return err
		}
		name = nameTok.Literal
		nameLine = nameTok.Line
	}
	return p.expectShift(";")
}

// parseDatatype consumes a type: a dotted identifier chain or a
// primitive datatype keyword, followed by any number of [] pairs. The
// type name is returned only so a constructor declaration can be
// recognized; types are otherwise discarded.
func (p *Parser) parseDatatype() (string, int, int, error) {
	name, line, err := p.parseDottedName("a type")
	if err != nil {
		return "", 0, 0, err
	}
	brackets := 0
	for p.buf.Peek().Type == token.LBRACKET {
		if _, err := p.buf.Shift(""); err != nil {
			return name, brackets, line, err
		}
		if err := p.expectShift("]"); err != nil {
			return name, brackets, line, err
		}
		brackets++
	}
	return name, brackets, line, nil
}

// parseDottedName consumes IDENT ("." IDENT)* and returns it joined
// with dots. Primitive datatype keywords are accepted as the first
// element.
func (p *Parser) parseDottedName(expect string) (string, int, error) {
	tok, err := p.buf.Shift(expect)
	if err != nil {
		return "", 0, err
	}
	if tok.Type != token.IDENT && tok.Type != token.DATATYPE {
		if err := p.reportAt(tok.Line, "unexpected %s, expected %s", tok.Literal, expect); err != nil {
			return tok.Literal, tok.Line, err
		}
	}
	name := tok.Literal
	line := tok.Line
	for p.buf.Peek().Type == token.DOT {
		if _, err := p.buf.Shift(""); err != nil {
			return name, line, err
		}
		part, err := p.buf.Shift("an identifier")
		if err != nil {
			return name, line, err
		}
		name += "." + part.Literal
	}
	return name, line, nil
}

// parseParams parses a parenthesized parameter list. Parameter types
// are discarded; duplicate parameter names draw a diagnostic.
func (p *Parser) parseParams() ([]string, error) {
	if err := p.expectShift("("); err != nil {
		return nil, err
	}
	params := []string{}
	if p.buf.Peek().Type == token.RPAREN {
		_, err := p.buf.Shift("")
		return params, err
	}
	for {
		if _, _, _, err := p.parseDatatype(); err != nil {
			return params, err
		}
		nameTok, err := p.buf.Shift("a parameter name")
		if err != nil {
			return params, err
		}
		if err := p.buf.Validate(nameTok); err != nil {
			return params, err
		}
		for p.buf.Peek().Type == token.LBRACKET {
			if _, err := p.buf.Shift(""); err != nil {
				return params, err
			}
			if err := p.expectShift("]"); err != nil {
				return params, err
			}
		}
		dup := false
		for _, seen := range params {
			if seen == nameTok.Literal {
				dup = true
			}
		}
		if dup {
			if err := p.reportAt(nameTok.Line, "%s is already a parameter", nameTok.Literal); err != nil {
				return params, err
			}
		} else {
			params = append(params, nameTok.Literal)
		}
		if p.buf.Peek().Type != token.COMMA {
			break
		}
		if _, err := p.buf.Shift(""); err != nil {
			return params, err
		}
	}
	if err := p.expectShift(")"); err != nil {
		return params, err
	}
	return params, nil
}

// parseBody parses a brace-delimited statement sequence.
func (p *Parser) parseBody() ([]ast.Statement, error) {
	if err := p.expectShift("{"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.buf.Peek().Type != token.RBRACE {
		if p.buf.Empty() {
			_, err := p.buf.Shift("}")
			return stmts, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return stmts, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.buf.Shift("}"); err != nil {
		return stmts, err
	}
	return stmts, nil
}
