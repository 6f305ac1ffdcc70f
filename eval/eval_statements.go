/*
File: mython-interpreter/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/objects"
)

// evalAssignment binds or rebinds Name in the current environment to
// whatever Rhs evaluates to.
func (e *Evaluator) evalAssignment(n *ast.Assignment) objects.Object {
	val := e.Eval(n.Rhs)
	if objects.IsError(val) {
		return val
	}
	e.Env.Assign(n.Name, val)
	return val
}

// evalFieldAssignment mutates Field on the Instance Target resolves
// to. Target's dotted path is resolved with the same rule
// VariableValue reads use, so `self.a.b.c = ...` walks the full nested
// path per spec §9's chosen design.
func (e *Evaluator) evalFieldAssignment(n *ast.FieldAssignment) objects.Object {
	objVal := e.evalVariableValue(n.Target)
	if objects.IsError(objVal) {
		return objVal
	}
	inst, ok := objVal.(*objects.Instance)
	if !ok {
		return e.CreateError(n.Line, n.Column, "cannot assign field %q on non-instance value %q", n.Field, objVal.ToString())
	}
	val := e.Eval(n.Rhs)
	if objects.IsError(val) {
		return val
	}
	inst.Fields.Assign(n.Field, val)
	return val
}

// evalPrint evaluates each arg left to right and writes them
// space-separated, followed by a newline; zero args writes just the
// newline.
func (e *Evaluator) evalPrint(n *ast.Print) objects.Object {
	for i, arg := range n.Args {
		val := e.Eval(arg)
		if objects.IsError(val) {
			return val
		}
		if i > 0 {
			fmt.Fprint(e.Writer, " ")
		}
		fmt.Fprint(e.Writer, val.ToString())
	}
	fmt.Fprintln(e.Writer)
	return objects.NoneValue
}

// evalCompound executes Stmts in order. The moment a statement yields
// a return-flagged value, execution halts and that value bubbles up
// unchanged — this is the propagation half of spec §4.5; MethodCall is
// where it gets consumed.
func (e *Evaluator) evalCompound(n *ast.Compound) objects.Object {
	var result objects.Object = objects.NoneValue
	for _, stmt := range n.Stmts {
		result = e.Eval(stmt)
		if objects.IsError(result) || isReturning(result) {
			return result
		}
	}
	return result
}

// evalReturn evaluates its inner statement and wraps the result with
// the return flag.
func (e *Evaluator) evalReturn(n *ast.Return) objects.Object {
	val := e.Eval(n.Stmt)
	if objects.IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}
