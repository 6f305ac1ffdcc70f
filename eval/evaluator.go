/*
File: mython-interpreter/eval/evaluator.go
*/

// Package eval is the tree-walking executor: it threads a mutable name
// environment through the AST, evaluating each node to an
// objects.Object and propagating the out-of-band return flag spec
// §4.5 describes.
package eval

import (
	"io"
	"os"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/rackrossum/mython-interpreter/environment"
	"github.com/rackrossum/mython-interpreter/objects"
)

// Evaluator executes an AST against an Environment, writing Print
// output to Writer. Classes holds every class definition evaluated so
// far, keyed by name, mirroring the teacher's Evaluator{Types
// map[string]*std.GoMixStruct}.
type Evaluator struct {
	Env     *environment.Environment
	Writer  io.Writer
	Classes map[string]*objects.Class
}

// NewEvaluator creates an Evaluator with a fresh global environment and
// os.Stdout as its default print sink.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Env:     environment.NewEnvironment(nil),
		Writer:  os.Stdout,
		Classes: make(map[string]*objects.Class),
	}
}

// SetWriter sets this Evaluator's print sink (each Evaluator has its
// own), grounded on the teacher's Evaluator.SetWriter.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Eval dispatches node to its evaluation rule per spec §4.4. It is the
// single recursive entry point every node-specific eval method calls
// back into for its children.
func (e *Evaluator) Eval(node ast.Node) objects.Object {
	switch n := node.(type) {
	case *ast.NumericConst:
		return &objects.Number{Value: n.Value}
	case *ast.StringConst:
		return &objects.String{Value: n.Value}
	case *ast.BoolConst:
		return objects.NativeBool(n.Value)
	case *ast.NoneConst:
		return objects.NoneValue

	case *ast.VariableValue:
		return e.evalVariableValue(n)
	case *ast.Assignment:
		return e.evalAssignment(n)
	case *ast.FieldAssignment:
		return e.evalFieldAssignment(n)
	case *ast.Print:
		return e.evalPrint(n)

	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.Comparison:
		return e.evalComparison(n)

	case *ast.Compound:
		return e.evalCompound(n)
	case *ast.Return:
		return e.evalReturn(n)
	case *ast.IfElse:
		return e.evalIfElse(n)

	case *ast.ClassDefinition:
		return e.evalClassDefinition(n)
	case *ast.NewInstance:
		return e.evalNewInstance(n)
	case *ast.MethodCall:
		return e.evalMethodCall(n)

	default:
		return objects.NewError("internal error: unhandled AST node %T", node)
	}
}
