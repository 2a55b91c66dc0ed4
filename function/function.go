/*
File   : lumen/function/function.go

Package function defines the Function value (spec.md §3.2 Value.Function): a
user-defined closure capturing its parameter list, body, and the environment
in which it was created.

Grounded on the teacher's function/function.go. Function lives in its own
package, not object, for the same reason the teacher keeps it separate:
Function.Body is a *parser.BlockStatement and Function.Env is a
*scope.Environment, and object must stay free of parser/scope imports so
scope can import object without a cycle.
*/
package function

import (
	"strings"

	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/scope"
)

// Function is a closure: its parameter list and body, plus the environment
// active at the point of its definition (spec.md §3.2, §4.3.2 "closures
// capture the defining environment by reference").
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *scope.Environment
}

func (f *Function) Type() object.Type { return object.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	var out strings.Builder
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(inspectBlock(f.Body))
	return out.String()
}

// inspectBlock renders a block statement the way spec.md §4.2 requires for a
// Function's Inspect() form: "{\n  stmt1\n  stmt2\n}", two-space indent, one
// statement per line. This is distinct from BlockStatement.String(), which
// renders the unindented parenthesized source form used by parser tests.
func inspectBlock(block *parser.BlockStatement) string {
	var out strings.Builder
	out.WriteString("{\n")
	for _, stmt := range block.Statements {
		out.WriteString("  ")
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
