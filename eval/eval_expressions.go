/*
File: mython-interpreter/eval/eval_expressions.go
*/
package eval

import (
	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/objects"
)

// evalUnaryOp applies Stringify or Not per spec §4.2.
func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) objects.Object {
	val := e.Eval(n.Arg)
	if objects.IsError(val) {
		return val
	}

	switch n.Op {
	case ast.UnaryStringify:
		return &objects.String{Value: val.ToString()}
	case ast.UnaryNot:
		if b, ok := val.(*objects.Bool); ok {
			return objects.NativeBool(!b.Value)
		}
		if inst, ok := val.(*objects.Instance); ok {
			if method, ok := inst.Class.GetMethod(objects.DunderNot); ok && len(method.Params) == 0 {
				return e.callMethod(inst, method, nil)
			}
		}
		return e.CreateError(n.Line, n.Column, "'not' requires a Bool or an instance with __not__, got %s", val.GetType())
	default:
		return e.CreateError(n.Line, n.Column, "internal error: unknown unary operator")
	}
}

// evalBinaryOp applies Add/Sub/Mult/Div/And/Or per spec §4.2: both
// operands are always evaluated first (Mython's and/or are
// deliberately not short-circuit — a documented deviation from
// Python), then primitive fast paths are tried before falling back to
// instance dunder dispatch.
func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) objects.Object {
	lhs := e.Eval(n.Lhs)
	if objects.IsError(lhs) {
		return lhs
	}
	rhs := e.Eval(n.Rhs)
	if objects.IsError(rhs) {
		return rhs
	}

	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		lb, lok := lhs.(*objects.Bool)
		rb, rok := rhs.(*objects.Bool)
		if lok && rok {
			if n.Op == ast.OpAnd {
				return objects.NativeBool(lb.Value && rb.Value)
			}
			return objects.NativeBool(lb.Value || rb.Value)
		}
	}

	if n.Op == ast.OpAdd {
		ls, lok := lhs.(*objects.String)
		rs, rok := rhs.(*objects.String)
		if lok && rok {
			return &objects.String{Value: ls.Value + rs.Value}
		}
	}

	ln, lok := lhs.(*objects.Number)
	rn, rok := rhs.(*objects.Number)
	if lok && rok {
		switch n.Op {
		case ast.OpAdd:
			return &objects.Number{Value: ln.Value + rn.Value}
		case ast.OpSub:
			return &objects.Number{Value: ln.Value - rn.Value}
		case ast.OpMult:
			return &objects.Number{Value: ln.Value * rn.Value}
		case ast.OpDiv:
			if rn.Value == 0 {
				return e.CreateError(n.Line, n.Column, "division by zero")
			}
			return &objects.Number{Value: ln.Value / rn.Value}
		}
	}

	if inst, ok := lhs.(*objects.Instance); ok {
		if name, ok := objects.BinaryDunder[n.Op]; ok {
			if method, ok := inst.Class.GetMethod(name); ok && len(method.Params) == 1 {
				return e.callMethod(inst, method, []objects.Object{rhs})
			}
		}
	}

	return e.CreateError(n.Line, n.Column, "unsupported operand types for binary operator: %s and %s", lhs.GetType(), rhs.GetType())
}

// evalComparison implements Equal/Less directly and derives the
// remaining four (!=, <=, >, >=) from them, per spec §4.2.
func (e *Evaluator) evalComparison(n *ast.Comparison) objects.Object {
	lhs := e.Eval(n.Lhs)
	if objects.IsError(lhs) {
		return lhs
	}
	rhs := e.Eval(n.Rhs)
	if objects.IsError(rhs) {
		return rhs
	}

	switch n.Cmp {
	case ast.CmpEqual:
		return e.compareEqual(n, lhs, rhs)
	case ast.CmpNotEqual:
		eq := e.compareEqual(n, lhs, rhs)
		if objects.IsError(eq) {
			return eq
		}
		return objects.NativeBool(!objects.Truthy(eq))
	case ast.CmpLess:
		return e.compareLess(n, lhs, rhs)
	case ast.CmpLessOrEqual:
		less := e.compareLess(n, lhs, rhs)
		if objects.IsError(less) {
			return less
		}
		if objects.Truthy(less) {
			return objects.TRUE
		}
		return e.compareEqual(n, lhs, rhs)
	case ast.CmpGreater:
		return e.compareLess(n, rhs, lhs)
	case ast.CmpGreaterOrEqual:
		less := e.compareLess(n, rhs, lhs)
		if objects.IsError(less) {
			return less
		}
		if objects.Truthy(less) {
			return objects.TRUE
		}
		return e.compareEqual(n, rhs, lhs)
	default:
		return e.CreateError(n.Line, n.Column, "internal error: unknown comparison operator")
	}
}

func (e *Evaluator) compareEqual(n *ast.Comparison, lhs, rhs objects.Object) objects.Object {
	if inst, ok := lhs.(*objects.Instance); ok {
		if method, ok := inst.Class.GetMethod(objects.DunderEq); ok && len(method.Params) == 1 {
			result := e.callMethod(inst, method, []objects.Object{rhs})
			if objects.IsError(result) {
				return result
			}
			return objects.NativeBool(objects.Truthy(result))
		}
	}
	switch l := lhs.(type) {
	case *objects.Number:
		if r, ok := rhs.(*objects.Number); ok {
			return objects.NativeBool(l.Value == r.Value)
		}
	case *objects.String:
		if r, ok := rhs.(*objects.String); ok {
			return objects.NativeBool(l.Value == r.Value)
		}
	case *objects.Bool:
		if r, ok := rhs.(*objects.Bool); ok {
			return objects.NativeBool(l.Value == r.Value)
		}
	}
	return e.CreateError(n.Line, n.Column, "cannot compare %s and %s for equality", lhs.GetType(), rhs.GetType())
}

func (e *Evaluator) compareLess(n *ast.Comparison, lhs, rhs objects.Object) objects.Object {
	if inst, ok := lhs.(*objects.Instance); ok {
		if method, ok := inst.Class.GetMethod(objects.DunderLt); ok && len(method.Params) == 1 {
			result := e.callMethod(inst, method, []objects.Object{rhs})
			if objects.IsError(result) {
				return result
			}
			return objects.NativeBool(objects.Truthy(result))
		}
	}
	switch l := lhs.(type) {
	case *objects.Number:
		if r, ok := rhs.(*objects.Number); ok {
			return objects.NativeBool(l.Value < r.Value)
		}
	case *objects.String:
		if r, ok := rhs.(*objects.String); ok {
			return objects.NativeBool(l.Value < r.Value)
		}
	case *objects.Bool:
		if r, ok := rhs.(*objects.Bool); ok {
			return objects.NativeBool(!l.Value && r.Value)
		}
	}
	return e.CreateError(n.Line, n.Column, "cannot compare %s and %s", lhs.GetType(), rhs.GetType())
}
