/*
File   : lumen/eval/eval.go

Package eval implements Lumen's tree-walking evaluator (spec.md §4.3):
Eval(node, env) recursively walks the AST produced by package parser and
produces an object.Object, propagating Error and ReturnValue as first-class
values rather than host exceptions (spec.md §9).

Grounded on the teacher's eval package (eval/evaluator.go, eval/eval_expressions.go,
eval/eval_statements.go): same type-switch dispatch shape, same short-circuit
discipline. Diverges from the teacher in one respect: the teacher's Evaluator
is a struct carrying the current scope as mutable state (e.Scp), mutated as
evaluation descends; here Eval takes the environment as an explicit parameter,
matching spec.md §4.3's stated entry point signature `eval_program(program,
env) -> Value` and keeping the evaluator itself stateless and safe to invoke
repeatedly from a REPL loop (spec.md §5).
*/
package eval

import (
	"fmt"

	"github.com/adaeze-chen/lumen/builtin"
	"github.com/adaeze-chen/lumen/function"
	"github.com/adaeze-chen/lumen/object"
	"github.com/adaeze-chen/lumen/parser"
	"github.com/adaeze-chen/lumen/scope"
)

var (
	// NULL, TRUE, and FALSE are shared singletons: the evaluator reuses the
	// same *object.Boolean / *object.Null for every boolean and null it
	// produces itself rather than allocating a fresh one each time. The
	// `first`, `last` and `rest` builtins return their own *object.Null.
	NULL  = &object.Null{}
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// Eval dispatches on the dynamic type of node, implementing spec.md §4.3.1
// and §4.3.2 in full.
func Eval(node parser.Node, env *scope.Environment) object.Object {
	switch node := node.(type) {
	case *parser.Program:
		return evalProgram(node, env)
	case *parser.ExpressionStatement:
		return Eval(node.Expression, env)
	case *parser.BlockStatement:
		return evalBlockStatement(node, env)
	case *parser.LetStatement:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return val
	case *parser.ReturnStatement:
		val := Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *parser.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *parser.StringLiteral:
		return &object.String{Value: node.Value}
	case *parser.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *parser.NullLiteral:
		return NULL
	case *parser.Identifier:
		return evalIdentifier(node, env)
	case *parser.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *parser.ArrayLiteral:
		elements := evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}
	case *parser.HashLiteral:
		return evalHashLiteral(node, env)

	case *parser.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *parser.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *parser.IfExpression:
		return evalIfExpression(node, env)
	case *parser.CallExpression:
		fn := Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return applyFunction(fn, args)
	case *parser.IndexExpression:
		return evalIndexExpression(node, env)
	}

	return newError("unknown node type: %T", node)
}

// evalProgram implements spec.md §4.3.1's Program rule: Error short-circuits
// immediately, ReturnValue is unwrapped, and a program with no statements
// evaluates to NULL.
func evalProgram(program *parser.Program, env *scope.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement implements spec.md §4.3.1's Block rule: Error and
// ReturnValue propagate upward WITHOUT unwrapping, so a nested `return`
// escapes every enclosing block until it reaches evalProgram or a function
// call boundary.
func evalBlockStatement(block *parser.BlockStatement, env *scope.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
	return result
}

func nativeBoolToBooleanObject(b bool) *object.Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func newError(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

// evalIdentifier implements spec.md §4.3.2: built-ins are consulted before
// the environment.
func evalIdentifier(node *parser.Identifier, env *scope.Environment) object.Object {
	if builtin, ok := builtin.Builtins[node.Value]; ok {
		return builtin
	}
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError("identifier not found: " + node.Value)
}

// evalExpressions evaluates exprs left-to-right, stopping at the first Error
// (spec.md §4.3.2's call-argument and array-literal short-circuit rule). On
// short-circuit the returned slice holds exactly that one Error.
func evalExpressions(exprs []parser.Expression, env *scope.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))

	for _, e := range exprs {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

// applyFunction dispatches a Call's evaluated callee: native Builtin,
// user-defined Function, or anything else is a "not a function" Error
// (spec.md §4.3.2).
func applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Builtin:
		return fn.Fn(args...)
	case *function.Function:
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)
	default:
		return newError("not a function: %s", fn.Type())
	}
}

// extendFunctionEnv binds parameters to arguments positionally. Per spec.md
// §4.3.2 and §9, a call-site arity mismatch is not rejected: extra arguments
// are ignored and missing parameters are simply left unbound (a later
// reference to one surfaces as "identifier not found", not an arity error).
func extendFunctionEnv(fn *function.Function, args []object.Object) *scope.Environment {
	env := scope.NewEnclosed(fn.Env)

	for i, param := range fn.Parameters {
		if i >= len(args) {
			break
		}
		env.Set(param.Value, args[i])
	}
	return env
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}

// isTruthy implements spec.md §4.3.3: everything is truthy except
// Boolean(false) and Null. Decided by type/value rather than identity
// against the NULL/FALSE singletons, since builtins such as `first`, `last`,
// and `rest` may return freshly-allocated *object.Null values of their own.
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return obj.Value
	default:
		return true
	}
}

func evalIfExpression(ie *parser.IfExpression, env *scope.Environment) object.Object {
	condition := Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}
	return NULL
}
