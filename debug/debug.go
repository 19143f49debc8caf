package debug

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/j2pylang/j2py/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// Dump returns a detailed formatted representation of a class for
// troubleshooting the parser's output.
func Dump(c *ast.Class) string {
	return cfg.Sdump(c)
}

// Print outputs a detailed formatted representation of a class.
func Print(c *ast.Class) {
	cfg.Dump(c)
}
