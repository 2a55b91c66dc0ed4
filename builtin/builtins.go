/*
File   : lumen/builtin/builtins.go

Package builtin implements Lumen's native function registry (spec.md §4.4):
len, first, last, rest, push. Each is a Go closure of type
object.BuiltinFunction, wrapped in an object.Builtin, looked up by name
before the environment during identifier evaluation (spec.md §4.3.2).

Grounded on the teacher's std/builtins.go (a name-to-native-function
registry), trimmed to exactly the five functions spec.md names — the
teacher's std/ also carries http, json, regex, crypto and os builtins that
spec.md's Non-goals exclude (no network, no filesystem).
*/
package builtin

import (
	"fmt"

	"github.com/adaeze-chen/lumen/object"
)

// Builtins is the full native-function registry, keyed by the name used to
// invoke them from Lumen source.
var Builtins = map[string]*object.Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func wrongArity(got, want int) *object.Error {
	return &object.Error{Message: fmt.Sprintf("wrong number of arguments. got=%d, want=%d", got, want)}
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return &object.Error{Message: "argument to `len` not supported, got " + string(arg.Type())}
	}
}

func builtinFirst(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `first` must be ARRAY, got " + string(args[0].Type())}
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[0]
}

func builtinLast(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `last` must be ARRAY, got " + string(args[0].Type())}
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArity(len(args), 1)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `rest` must be ARRAY, got " + string(args[0].Type())}
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	newElements := make([]object.Object, len(arr.Elements)-1)
	copy(newElements, arr.Elements[1:])
	return &object.Array{Elements: newElements}
}

func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArity(len(args), 2)
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return &object.Error{Message: "argument to `push` must be ARRAY, got " + string(args[0].Type())}
	}
	newElements := make([]object.Object, len(arr.Elements), len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements = append(newElements, args[1])
	return &object.Array{Elements: newElements}
}
