/*
File: mython-interpreter/eval/eval_conditionals.go
*/
package eval

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/objects"
)

// evalIfElse evaluates Condition, coerces it via spec §4.2's
// truthiness table, and executes Then or Else accordingly. The return
// flag, if either branch sets it, propagates unchanged.
func (e *Evaluator) evalIfElse(n *ast.IfElse) objects.Object {
	cond := e.Eval(n.Condition)
	if objects.IsError(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return objects.NoneValue
}
