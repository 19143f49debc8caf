package compiler

import (
	"strconv"
	"strings"

	"github.com/j2pylang/j2py/ast"
	"github.com/j2pylang/j2py/token"
)

// expr emits one expression. sub is true when the result lands inside
// an outer expression, in which case a rewritten equals-comparison is
// parenthesized.
func (e *emitter) expr(sc *scope, x ast.Expression, sub bool) string {
	switch v := x.(type) {
	case *ast.NumberLiteral:
		return v.Value
	case *ast.StringLiteral:
		return `"` + v.Value + `"`
	case *ast.BooleanLiteral:
		if v.Value {
			return "True"
		}
		return "False"
	case *ast.NullLiteral:
		return "None"
	case *ast.UnaryExpression:
		if v.Operator == "!" {
			return "not " + e.expr(sc, v.Operand, true)
		}
		return v.Operator + e.expr(sc, v.Operand, true)
	case *ast.BinaryExpression:
		return e.expr(sc, v.Left, true) + " " + e.binOp(v.Operator) + " " + e.expr(sc, v.Right, true)
	case *ast.GroupedExpression:
		return "(" + e.expr(sc, v.Inner, false) + ")"
	case *ast.ArrayLiteral:
		parts := make([]string, len(v.Elements))
		for i, elem := range v.Elements {
			parts[i] = e.expr(sc, elem, false)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.NewExpression:
		if v.IsArray() {
			return e.arrayCtor(sc, v)
		}
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			args[i] = e.expr(sc, arg, false)
		}
		return v.TypeName + "(" + strings.Join(args, ", ") + ")"
	case *ast.IdentifierChain:
		return e.chain(sc, v, sub)
	default:
		return ""
	}
}

// binOp rewrites a source operator into its target spelling.
func (e *emitter) binOp(op string) string {
	switch op {
	case "==":
		if e.plainEquality {
			return "=="
		}
		return "is"
	case "&&":
		return "and"
	case "||":
		return "or"
	default:
		return op
	}
}

// chain emits an identifier chain, applying the identifier rewrites:
// this to self, member resolution against the enclosing class, the
// host-library print call, .length to len(...), and .equals to an
// equality comparison.
func (e *emitter) chain(sc *scope, ch *ast.IdentifierChain, sub bool) string {
	parts := ch.Parts
	if len(parts) == 0 {
		return ""
	}

	var current string
	i := 1
	if len(parts) >= 4 &&
		parts[0].Name == "System" &&
		parts[1].Kind == ast.PartName && parts[1].Name == "out" &&
		parts[2].Kind == ast.PartName && parts[2].Name == "println" &&
		parts[3].Kind == ast.PartCall {
		current = "print(" + e.args(sc, parts[3].Args) + ")"
		i = 4
	} else {
		current = e.resolve(sc, parts[0].Name)
		// field access through this still honors the private prefix
		if parts[0].Name == "this" && len(parts) > 1 && parts[1].Kind == ast.PartName && sc.class != nil {
			if v := sc.class.LookupVariable(parts[1].Name); v != nil {
				current += "." + e.varName(v)
				i = 2
			}
		}
	}

	equality := false
	for i < len(parts) {
		part := parts[i]
		switch part.Kind {
		case ast.PartName:
			if part.Name == "length" && (i+1 >= len(parts) || parts[i+1].Kind != ast.PartCall || len(parts[i+1].Args) == 0) {
				// an optional () after .length is consumed
				if i+1 < len(parts) && parts[i+1].Kind == ast.PartCall {
					i++
				}
				current = "len(" + current + ")"
			} else if part.Name == "equals" && i+1 < len(parts) && parts[i+1].Kind == ast.PartCall && len(parts[i+1].Args) == 1 {
				current = current + " == " + e.expr(sc, parts[i+1].Args[0], true)
				i++
				if i+1 < len(parts) {
					current = "(" + current + ")"
				} else {
					equality = true
				}
			} else {
				current += "." + part.Name
			}
		case ast.PartIndex:
			current += "[" + e.expr(sc, part.Index, false) + "]"
		case ast.PartCall:
			current += "(" + e.args(sc, part.Args) + ")"
		}
		i++
	}

	if equality && sub {
		return "(" + current + ")"
	}
	return current
}

// args emits a comma-separated argument list.
func (e *emitter) args(sc *scope, list []ast.Expression) string {
	parts := make([]string, len(list))
	for i, arg := range list {
		parts[i] = e.expr(sc, arg, false)
	}
	return strings.Join(parts, ", ")
}

// resolve rewrites the leading identifier of a chain. Precedence:
// locals pass through, then instance members gain a self. prefix and
// static members the class name, and unknown names pass through
// unchanged (assumed external or inherited).
func (e *emitter) resolve(sc *scope, name string) string {
	if name == "this" {
		return "self"
	}
	if sc.locals[name] {
		return name
	}
	if sc.class == nil {
		return name
	}
	if v := sc.class.LookupVariable(name); v != nil {
		emitted := e.varName(v)
		if sc.classLevel {
			return emitted
		}
		if v.Mods.Static {
			return sc.class.Name + "." + emitted
		}
		return "self." + emitted
	}
	if ms := sc.class.LookupMethod(name); ms != nil {
		if sc.classLevel {
			return name
		}
		if ms[0].Mods.Static {
			return sc.class.Name + "." + name
		}
		return "self." + name
	}
	return name
}

// arrayCtor synthesizes an array constructor. Integer-literal sizes
// expand to explicit lists; anything else becomes a comprehension over
// range. Dimensions nest outermost first.
func (e *emitter) arrayCtor(sc *scope, v *ast.NewExpression) string {
	elem := defaultElement(v.TypeName)
	for i := len(v.Sizes) - 1; i >= 0; i-- {
		size := v.Sizes[i]
		if num, ok := size.(*ast.NumberLiteral); ok && token.IsInteger(num.Value) {
			n, _ := strconv.Atoi(num.Value)
			parts := make([]string, n)
			for j := range parts {
				parts[j] = elem
			}
			elem = "[" + strings.Join(parts, ", ") + "]"
		} else {
			elem = "[" + elem + " for _ in range(" + e.expr(sc, size, false) + ")]"
		}
	}
	return elem
}

// defaultElement picks the fill value for an array constructor by
// element type: numeric types zero, boolean False, everything else
// None.
func defaultElement(typeName string) string {
	switch typeName {
	case "int", "short", "long", "float", "double":
		return "0"
	case "boolean":
		return "False"
	default:
		return "None"
	}
}
