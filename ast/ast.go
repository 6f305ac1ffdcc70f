/*
File: mython-interpreter/ast/ast.go
*/

// Package ast defines Mython's abstract syntax tree. Mython unifies
// statement and expression into one node hierarchy — every statement
// can yield a value — so, unlike the teacher's split
// StatementNode/ExpressionNode pair, there is a single Node interface
// here.
package ast

// Node is implemented by every AST node. Literal returns the node's
// kind name (for example "Print") as a debugging aid; neither the
// evaluator nor its error messages call it.
type Node interface {
	Literal() string
}

// NumericConst is an integer literal.
type NumericConst struct {
	Value int64
}

func (n *NumericConst) Literal() string { return "NumericConst" }

// StringConst is a string literal.
type StringConst struct {
	Value string
}

func (n *StringConst) Literal() string { return "StringConst" }

// BoolConst is a True/False literal.
type BoolConst struct {
	Value bool
}

func (n *BoolConst) Literal() string { return "BoolConst" }

// NoneConst is the None literal.
type NoneConst struct{}

func (n *NoneConst) Literal() string { return "NoneConst" }

// VariableValue reads a dotted identifier path: Ids[0] is resolved in
// the current environment, each subsequent id drills into the
// instance field environment reached so far.
type VariableValue struct {
	Ids    []string
	Line   int
	Column int
}

func (n *VariableValue) Literal() string { return "VariableValue" }

// Assignment binds or rebinds Name in the current environment to the
// value Rhs evaluates to.
type Assignment struct {
	Name string
	Rhs  Node
}

func (n *Assignment) Literal() string { return "Assignment" }

// FieldAssignment mutates Field on the instance reached by evaluating
// Target, which must resolve to an Instance.
type FieldAssignment struct {
	Target *VariableValue
	Field  string
	Rhs    Node
	Line   int
	Column int
}

func (n *FieldAssignment) Literal() string { return "FieldAssignment" }

// Print evaluates each of Args left to right and writes them
// space-separated followed by a newline.
type Print struct {
	Args []Node
}

func (n *Print) Literal() string { return "Print" }

// MethodCall invokes Method on the instance Object evaluates to, with
// Args evaluated left to right.
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
	Line   int
	Column int
}

func (n *MethodCall) Literal() string { return "MethodCall" }

// NewInstance constructs a fresh instance of the class named
// ClassName, evaluating Args left to right and passing them to
// __init__ if present with matching arity.
type NewInstance struct {
	ClassName string
	Args      []Node
	Line      int
	Column    int
}

func (n *NewInstance) Literal() string { return "NewInstance" }

// UnaryOpKind distinguishes the two unary operators Mython has.
type UnaryOpKind int

const (
	UnaryStringify UnaryOpKind = iota
	UnaryNot
)

// UnaryOp applies Op to Arg.
type UnaryOp struct {
	Op     UnaryOpKind
	Arg    Node
	Line   int
	Column int
}

func (n *UnaryOp) Literal() string { return "UnaryOp" }

// BinaryOpKind enumerates the binary arithmetic/boolean operators.
type BinaryOpKind int

const (
	OpAdd BinaryOpKind = iota
	OpSub
	OpMult
	OpDiv
	OpAnd
	OpOr
)

// BinaryOp applies Op to Lhs and Rhs.
type BinaryOp struct {
	Op     BinaryOpKind
	Lhs    Node
	Rhs    Node
	Line   int
	Column int
}

func (n *BinaryOp) Literal() string { return "BinaryOp" }

// CompareKind enumerates the six comparison operators. Only Equal and
// Less are dunder-backed; the remaining operators (!=, <=, >, >=) are
// derived from these two at evaluation time per spec §4.2.
type CompareKind int

const (
	CmpEqual CompareKind = iota
	CmpLess
	CmpNotEqual
	CmpLessOrEqual
	CmpGreater
	CmpGreaterOrEqual
)

// Comparison applies Cmp to Lhs and Rhs, yielding a Bool.
type Comparison struct {
	Cmp    CompareKind
	Lhs    Node
	Rhs    Node
	Line   int
	Column int
}

func (n *Comparison) Literal() string { return "Comparison" }

// Compound executes Stmts in order; the first one that produces a
// return-flagged value halts the sequence and the flag bubbles up
// unchanged.
type Compound struct {
	Stmts []Node
}

func (n *Compound) Literal() string { return "Compound" }

// Return wraps the value Stmt evaluates to with the return flag.
type Return struct {
	Stmt Node
}

func (n *Return) Literal() string { return "Return" }

// IfElse executes Then when Condition is truthy, Else otherwise (Else
// may be nil).
type IfElse struct {
	Condition Node
	Then      Node
	Else      Node
}

func (n *IfElse) Literal() string { return "IfElse" }

// MethodDef is one method definition inside a ClassDefinition: its
// name, formal parameter names, and body.
type MethodDef struct {
	Name   string
	Params []string
	Body   Node
}

// ClassDefinition introduces a class: Name, its ParentName (empty if
// none), and its method definitions. Binds Name in the environment to
// the resulting Class value.
type ClassDefinition struct {
	Name       string
	ParentName string
	Methods    []*MethodDef
}

func (n *ClassDefinition) Literal() string { return "ClassDefinition" }
