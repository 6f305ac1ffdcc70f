/*
File: mython-interpreter/eval/eval_helpers.go
*/
package eval

import "github.com/rackrossum/mython-interpreter/objects"

// CreateError builds a position-aware runtime error, grounded on the
// teacher's Evaluator.CreateError (which reads its position off the
// parser's lexer); here the position is carried directly on the
// failing AST node instead, since this evaluator has no live parser
// handle to consult.
func (e *Evaluator) CreateError(line, column int, format string, a ...interface{}) *objects.Error {
	return objects.NewErrorAt(line, column, format, a...)
}

// unwrapReturn strips a ReturnValue wrapper, returning the plain value
// underneath. Grounded on the teacher's UnwrapReturnValue, called at
// every point spec §4.5 says the return flag must be consumed: method
// invocation.
func unwrapReturn(obj objects.Object) objects.Object {
	if rv, ok := obj.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return obj
}

// isReturning reports whether obj carries spec §4.5's return flag.
func isReturning(obj objects.Object) bool {
	_, ok := obj.(*objects.ReturnValue)
	return ok
}
