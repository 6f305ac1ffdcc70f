/*
File: mython-interpreter/eval/eval_access.go
*/
package eval

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/objects"
)

// evalVariableValue resolves a dotted identifier path: Ids[0] in the
// current environment, then each subsequent id as a field on the
// Instance reached so far, per spec §4.4.
func (e *Evaluator) evalVariableValue(n *ast.VariableValue) objects.Object {
	raw, ok := e.Env.Get(n.Ids[0])
	if !ok {
		return e.CreateError(n.Line, n.Column, "name %q is not defined", n.Ids[0])
	}
	v, ok := raw.(objects.Object)
	if !ok || v == nil {
		v = objects.NoneValue
	}

	for _, field := range n.Ids[1:] {
		inst, ok := v.(*objects.Instance)
		if !ok {
			return e.CreateError(n.Line, n.Column, "%q is not an instance, has no field %q", v.ToString(), field)
		}
		raw, ok := inst.Fields.Get(field)
		if !ok {
			return e.CreateError(n.Line, n.Column, "instance of %q has no field %q", inst.Class.Name, field)
		}
		fv, ok := raw.(objects.Object)
		if !ok || fv == nil {
			fv = objects.NoneValue
		}
		v = fv
	}
	return v
}
