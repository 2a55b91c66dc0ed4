/*
File   : lumen/scope/scope.go

Package scope implements Lumen's lexically-scoped Environment (spec.md §3.3):
a mapping from identifier to value, plus an optional outer scope that lookup
walks outward through.

Grounded on the teacher's scope/scope.go (a Scope with Variables map and a
Parent chain), trimmed to the operations spec.md actually calls for: Lumen has
no mutation of existing bindings (spec.md's Non-goals), so the teacher's
Assign/Consts/LetVars/LetTypes machinery has no spec.md operation to serve and
is dropped — only LookUp and Bind (here Get/Set) survive.
*/
package scope

import "github.com/adaeze-chen/lumen/object"

// Environment is a chained lexical scope mapping names to values.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a root Environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a new Environment whose outer scope is outer. Used for
// function-call scopes (outer = the function's captured environment, per
// spec.md §3.3); blocks evaluate in the enclosing Environment and do not
// create one.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), outer: outer}
}

// Get looks up name in this scope, then in each enclosing scope in turn.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return val, ok
}

// Set introduces or replaces a binding in this scope only (spec.md §3.3: "does
// not shadow outer by mutation").
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
