/*
File: mython-interpreter/objects/dunder.go
*/
package objects

import "github.com/rackrossum/mython-interpreter/ast"

// Dunder name constants, grounded on the original C++ comparators.cpp
// ("eq" = "__eq__", "less" = "__lt__"), generalized to the full
// operator set spec §4.2 requires.
const (
	DunderAdd  = "__add__"
	DunderSub  = "__sub__"
	DunderMult = "__mult__"
	DunderDiv  = "__div__"
	DunderAnd  = "__and__"
	DunderOr   = "__or__"
	DunderNot  = "__not__"
	DunderEq   = "__eq__"
	DunderLt   = "__lt__"
)

// BinaryDunder maps a BinaryOp's operator to the dunder method name
// dispatch falls back to when the left operand is an Instance.
var BinaryDunder = map[ast.BinaryOpKind]string{
	ast.OpAdd:  DunderAdd,
	ast.OpSub:  DunderSub,
	ast.OpMult: DunderMult,
	ast.OpDiv:  DunderDiv,
	ast.OpAnd:  DunderAnd,
	ast.OpOr:   DunderOr,
}
