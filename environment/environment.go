/*
File    : mython-interpreter/environment/environment.go
*/

// Package environment implements the name-to-value bindings Mython
// uses for its global scope, per-call stack frames, and per-instance
// field stores. It is deliberately decoupled from the objects package:
// an Environment stores `any`, so objects.Instance can embed one as
// its field table without objects and environment importing each
// other in a cycle. Callers (the eval package) type-assert the stored
// values back to objects.Object.
package environment

// Environment is a lexical scope boundary. It implements a hierarchical
// chain that enables both lexical scoping and closures: every
// environment holds its own bindings and can read from its parent's
// when a name is not bound locally.
//
// The same type serves three distinct roles in this interpreter:
//   - the global environment, with a nil Parent
//   - a method call frame, built with Copy() of the receiving
//     instance's field store and then seeded with "self" and the
//     call's arguments
//   - an instance's field store (objects.Instance.Fields), which has
//     no parent at all — field lookup never falls through to lexical
//     scope
type Environment struct {
	Variables map[string]any
	Parent    *Environment
}

// NewEnvironment creates a new Environment nested inside parent. Pass
// nil to create a root (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]any),
		Parent:    parent,
	}
}

// Get searches for name in this environment and, failing that, in each
// enclosing environment in turn.
func (e *Environment) Get(name string) (any, bool) {
	if v, ok := e.Variables[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this environment only,
// without searching or affecting any parent. The evaluator uses it to
// seed a method call frame with "self" and the parameters, and to bind
// a class under its name; ordinary assignments go through Assign.
func (e *Environment) Bind(name string, value any) {
	e.Variables[name] = value
}

// Assign updates name in the environment where it is already bound,
// searching outward from this environment. If name is not bound
// anywhere in the chain, Assign falls back to binding it here, in the
// innermost environment — this is what makes a bare "x = 1" at global
// scope or inside a fresh method frame behave as a declaration.
func (e *Environment) Assign(name string, value any) {
	if _, ok := e.Variables[name]; ok {
		e.Variables[name] = value
		return
	}
	if e.Parent != nil {
		if _, ok := e.Parent.Get(name); ok {
			e.Parent.Assign(name, value)
			return
		}
	}
	e.Variables[name] = value
}

// Copy returns a shallow copy of this environment: a new Variables map
// with the same entries, sharing the same Parent pointer. Map values
// themselves are shared, not deep-copied. This mirrors the teacher's
// scope-capture discipline for building independent call frames from a
// shared lexical parent.
func (e *Environment) Copy() *Environment {
	cp := &Environment{
		Variables: make(map[string]any, len(e.Variables)),
		Parent:    e.Parent,
	}
	for k, v := range e.Variables {
		cp.Variables[k] = v
	}
	return cp
}
