/*
File: mython-interpreter/eval/eval_structs.go
*/
package eval

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/objects"
)

// evalClassDefinition builds an objects.Class from n, resolving its
// optional parent, and binds the class under its own name — spec §4.4
// says a ClassDefinition has "no side effect beyond exposing the class
// handle", which this evaluator achieves directly rather than relying
// on the parser to have wrapped it in a separate Assignment node.
func (e *Evaluator) evalClassDefinition(n *ast.ClassDefinition) objects.Object {
	var parent *objects.Class
	if n.ParentName != "" {
		p, ok := e.Classes[n.ParentName]
		if !ok {
			return objects.NewError("parent class %q is not defined", n.ParentName)
		}
		parent = p
	}

	methods := make(map[string]*objects.Method, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name] = &objects.Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}

	class := &objects.Class{Name: n.Name, Methods: methods, Parent: parent}
	e.Classes[n.Name] = class
	e.Env.Bind(n.Name, class)
	return class
}

// evalNewInstance constructs a fresh Instance of n.ClassName, evaluates
// its constructor args left to right, and — if the class has an
// __init__ whose arity matches the actual argument count — calls it,
// discarding its return value.
//
// Per spec §9's resolved open question, an __init__ arity mismatch is
// not an error: construction simply proceeds with the instance left
// as NewInstance allocated it. This preserves a latent quirk of the
// original rather than silently fixing it.
func (e *Evaluator) evalNewInstance(n *ast.NewInstance) objects.Object {
	class, ok := e.Classes[n.ClassName]
	if !ok {
		return e.CreateError(n.Line, n.Column, "class %q is not defined", n.ClassName)
	}

	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}

	inst := objects.NewInstance(class)

	if init, ok := class.GetMethod("__init__"); ok && len(init.Params) == len(args) {
		result := e.callMethod(inst, init, args)
		if objects.IsError(result) {
			return result
		}
	}

	return inst
}

// evalMethodCall evaluates n.Object to an Instance, resolves n.Method
// against its class (walking the parent chain), checks arity, and
// invokes it.
func (e *Evaluator) evalMethodCall(n *ast.MethodCall) objects.Object {
	objVal := e.Eval(n.Object)
	if objects.IsError(objVal) {
		return objVal
	}
	inst, ok := objVal.(*objects.Instance)
	if !ok {
		return e.CreateError(n.Line, n.Column, "%q is not an instance, has no method %q", objVal.ToString(), n.Method)
	}

	method, ok := inst.Class.GetMethod(n.Method)
	if !ok {
		return e.CreateError(n.Line, n.Column, "instance of %q has no method %q", inst.Class.Name, n.Method)
	}

	args, errObj := e.evalArgs(n.Args)
	if errObj != nil {
		return errObj
	}
	if len(method.Params) != len(args) {
		return e.CreateError(n.Line, n.Column, "method %s/%d has no overload taking %d argument(s)", n.Method, len(method.Params), len(args))
	}

	return e.callMethod(inst, method, args)
}

// evalArgs evaluates a node list left to right, short-circuiting on
// the first error.
func (e *Evaluator) evalArgs(nodes []ast.Node) ([]objects.Object, objects.Object) {
	args := make([]objects.Object, 0, len(nodes))
	for _, a := range nodes {
		v := e.Eval(a)
		if objects.IsError(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}

// callMethod builds a call frame per spec §4.3 — a clone of the
// instance's own fields, overwritten with param→arg bindings — and
// injects self directly into that frame rather than into the
// instance's field store, per spec §9's chosen fix for the self-cycle
// leak. It runs the body and consumes the return flag before handing
// the value back, per spec §4.5.
func (e *Evaluator) callMethod(inst *objects.Instance, method *objects.Method, args []objects.Object) objects.Object {
	frame := inst.Fields.Copy()
	frame.Bind("self", inst)
	for i, paramName := range method.Params {
		frame.Bind(paramName, args[i])
	}

	savedEnv := e.Env
	e.Env = frame
	result := e.Eval(method.Body)
	e.Env = savedEnv

	if objects.IsError(result) {
		return result
	}
	return unwrapReturn(result)
}
