/*
File: mython-interpreter/objects/class.go
*/
package objects

import (
	"fmt"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/environment"
)

// Method is a class method: its name, formal parameter names, and
// body. Unlike the teacher's function.Function, a Method carries no
// captured defining environment — per spec §4.3, a method's call frame
// is built fresh from the receiving instance's own fields plus its
// arguments, with no lexical fallback to an enclosing scope.
type Method struct {
	Name   string
	Params []string
	Body   ast.Node
}

// Class is a user-defined Mython type: its own methods plus an
// optional Parent for single inheritance. Classes are immutable once
// defined — nothing in this package mutates a Class's Methods map
// after evalClassDefinition builds it.
type Class struct {
	Name    string
	Methods map[string]*Method
	Parent  *Class
}

func (c *Class) GetType() Type    { return CLASS_OBJ }
func (c *Class) ToString() string { return fmt.Sprintf("<class %s>", c.Name) }

// GetMethod searches c's own methods, then walks the Parent chain,
// exactly as spec §4.2's method-resolution rule describes: "C's
// definition if present, else P.get_method(m), transitive across
// chains."
func (c *Class) GetMethod(name string) (*Method, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// Instance is a runtime object of a user-defined Class. Fields is the
// instance's own mutable field environment, independent per instance.
//
// Per spec §9's chosen cycle-avoidance strategy, Fields never contains
// a "self" binding — self is injected directly into each call frame
// from the Instance handle instead of being stored back into the
// instance's own fields, which is what would otherwise create the
// reference cycle a bare reference-counted implementation can never
// collect.
type Instance struct {
	Class  *Class
	Fields *environment.Environment
}

func (i *Instance) GetType() Type    { return INSTANCE_OBJ }
func (i *Instance) ToString() string { return fmt.Sprintf("<%s instance>", i.Class.Name) }

// NewInstance allocates a fresh Instance of class with an empty field
// environment (no lexical parent — field lookup never falls through
// to outer scope).
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: environment.NewEnvironment(nil),
	}
}
