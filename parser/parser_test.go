/*
File: mython-interpreter/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/rackrossum/mython-interpreter/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_SimplePrint(t *testing.T) {
	p := NewParser("print 57\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound, ok := root.(*ast.Compound)
	require.True(t, ok)
	require.Len(t, compound.Stmts, 1)

	print, ok := compound.Stmts[0].(*ast.Print)
	require.True(t, ok)
	require.Len(t, print.Args, 1)
	num, ok := print.Args[0].(*ast.NumericConst)
	require.True(t, ok)
	assert.Equal(t, int64(57), num.Value)
}

func TestParser_PrintWithNoArgs(t *testing.T) {
	p := NewParser("print\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound := root.(*ast.Compound)
	print := compound.Stmts[0].(*ast.Print)
	assert.Empty(t, print.Args)
}

func TestParser_NegativeNumberLiteral(t *testing.T) {
	p := NewParser("print -8\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	print := root.(*ast.Compound).Stmts[0].(*ast.Print)
	num := print.Args[0].(*ast.NumericConst)
	assert.Equal(t, int64(-8), num.Value)
}

func TestParser_AssignmentAndRebinding(t *testing.T) {
	p := NewParser("x = 57\nx = 'hello'\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound := root.(*ast.Compound)
	require.Len(t, compound.Stmts, 2)

	a1 := compound.Stmts[0].(*ast.Assignment)
	assert.Equal(t, "x", a1.Name)
	assert.IsType(t, &ast.NumericConst{}, a1.Rhs)

	a2 := compound.Stmts[1].(*ast.Assignment)
	assert.IsType(t, &ast.StringConst{}, a2.Rhs)
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	p := NewParser("print 2*5+10/2\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	print := root.(*ast.Compound).Stmts[0].(*ast.Print)
	top := print.Args[0].(*ast.BinaryOp)
	assert.Equal(t, ast.OpAdd, top.Op)
	assert.IsType(t, &ast.BinaryOp{}, top.Lhs) // 2*5
	assert.IsType(t, &ast.BinaryOp{}, top.Rhs) // 10/2
	assert.Equal(t, ast.OpMult, top.Lhs.(*ast.BinaryOp).Op)
	assert.Equal(t, ast.OpDiv, top.Rhs.(*ast.BinaryOp).Op)
}

func TestParser_FieldAssignment(t *testing.T) {
	p := NewParser("self.value = 0\n")
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	fa := root.(*ast.Compound).Stmts[0].(*ast.FieldAssignment)
	assert.Equal(t, []string{"self"}, fa.Target.Ids)
	assert.Equal(t, "value", fa.Field)
}

func TestParser_IfElse(t *testing.T) {
	src := "x = 4\ny = 5\nif x > y:\n  print \"x > y\"\nelse:\n  print \"x <= y\"\n"
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound := root.(*ast.Compound)
	require.Len(t, compound.Stmts, 3)

	ifElse := compound.Stmts[2].(*ast.IfElse)
	cmp := ifElse.Condition.(*ast.Comparison)
	assert.Equal(t, ast.CmpGreater, cmp.Cmp)
	require.NotNil(t, ifElse.Else)
}

func TestParser_ClassDefinitionWithParentAndMethods(t *testing.T) {
	src := "class Animal:\n  def speak(self):\n    print \"...\"\n" +
		"class Dog(Animal):\n  def speak(self):\n    print \"Woof\"\n"
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound := root.(*ast.Compound)
	require.Len(t, compound.Stmts, 2)

	animal := compound.Stmts[0].(*ast.ClassDefinition)
	assert.Equal(t, "Animal", animal.Name)
	assert.Empty(t, animal.ParentName)
	require.Len(t, animal.Methods, 1)
	assert.Equal(t, "speak", animal.Methods[0].Name)
	assert.Empty(t, animal.Methods[0].Params)

	dog := compound.Stmts[1].(*ast.ClassDefinition)
	assert.Equal(t, "Dog", dog.Name)
	assert.Equal(t, "Animal", dog.ParentName)
}

func TestParser_NewInstanceAndMethodCall(t *testing.T) {
	src := "x = Counter()\nx.add()\n"
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	compound := root.(*ast.Compound)
	require.Len(t, compound.Stmts, 2)

	assign := compound.Stmts[0].(*ast.Assignment)
	newInst := assign.Rhs.(*ast.NewInstance)
	assert.Equal(t, "Counter", newInst.ClassName)
	assert.Empty(t, newInst.Args)

	call := compound.Stmts[1].(*ast.MethodCall)
	assert.Equal(t, "add", call.Method)
	obj := call.Object.(*ast.VariableValue)
	assert.Equal(t, []string{"x"}, obj.Ids)
}

func TestParser_StringifyAndConcat(t *testing.T) {
	src := "a = 'foo'\nb = 'bar'\nprint str(a + b)\n"
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	print := root.(*ast.Compound).Stmts[2].(*ast.Print)
	unary := print.Args[0].(*ast.UnaryOp)
	assert.Equal(t, ast.UnaryStringify, unary.Op)
	bin := unary.Arg.(*ast.BinaryOp)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParser_ReturnInsideMethod(t *testing.T) {
	src := "class Box:\n  def get(self):\n    return self.value\n"
	p := NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	class := root.(*ast.Compound).Stmts[0].(*ast.ClassDefinition)
	body := class.Methods[0].Body.(*ast.Compound)
	ret := body.Stmts[0].(*ast.Return)
	assert.IsType(t, &ast.VariableValue{}, ret.Stmt)
}

func TestParser_OddIndentationSurfacesAsLexError(t *testing.T) {
	src := "class Animal:\n   def speak(self):\n      pass\n"
	p := NewParser(src)
	_ = p.Parse()
	assert.Error(t, p.Lex.Err())
}

func TestParser_TwoStatementsOnOneLineIsParseError(t *testing.T) {
	p := NewParser("print 1 print 2\n")
	_ = p.Parse()
	assert.True(t, p.HasErrors())
}
