/*
File: mython-interpreter/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/rackrossum/mython-interpreter/objects"
	"github.com/rackrossum/mython-interpreter/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalSource(t *testing.T, src string) (objects.Object, string) {
	t.Helper()
	p := parser.NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	result := evaluator.Eval(root)
	return result, buf.String()
}

func TestEval_UndefinedNameIsNameError(t *testing.T) {
	result, _ := evalSource(t, "print missing\n")
	require.True(t, objects.IsError(result))
	assert.Contains(t, result.(*objects.Error).Message, "missing")
}

func TestEval_DivisionByZeroIsArithmeticError(t *testing.T) {
	result, _ := evalSource(t, "print 1/0\n")
	require.True(t, objects.IsError(result))
	assert.Contains(t, result.(*objects.Error).Message, "division by zero")
}

func TestEval_MismatchedTypeComparisonIsTypeError(t *testing.T) {
	result, _ := evalSource(t, "print 1 == 'x'\n")
	require.True(t, objects.IsError(result))
}

func TestEval_MethodArityMismatchIsError(t *testing.T) {
	src := "class Box:\n  def get(self, a):\n    return a\nb = Box()\nb.get()\n"
	result, _ := evalSource(t, src)
	require.True(t, objects.IsError(result))
}

func TestEval_InitArityMismatchSilentlySkipped(t *testing.T) {
	src := "class Box:\n  def __init__(self, a):\n    self.value = a\nb = Box()\nprint b\n"
	result, out := evalSource(t, src)
	require.False(t, objects.IsError(result))
	assert.Contains(t, out, "Box instance")
}

func TestEval_FieldAssignmentWalksDottedPath(t *testing.T) {
	src := "class Inner:\n" +
		"  def __init__(self):\n" +
		"    self.value = 1\n" +
		"class Outer:\n" +
		"  def __init__(self):\n" +
		"    self.inner = Inner()\n" +
		"o = Outer()\n" +
		"o.inner.value = 99\n" +
		"print o.inner.value\n"
	_, out := evalSource(t, src)
	assert.Equal(t, "99\n", out)
}

func TestEval_DerivedComparisonOperators(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"1 != 2", "True\n"},
		{"1 <= 1", "True\n"},
		{"2 > 1", "True\n"},
		{"1 >= 2", "False\n"},
	}
	for _, tt := range tests {
		_, out := evalSource(t, "print "+tt.expr+"\n")
		assert.Equal(t, tt.expected, out, tt.expr)
	}
}

func TestEval_TruthinessTable(t *testing.T) {
	tests := []struct {
		expr     string
		expected bool
	}{
		{"0", false},
		{"1", true},
		{"''", false},
		{"'x'", true},
		{"None", false},
		{"True", true},
		{"False", false},
	}
	for _, tt := range tests {
		src := "if " + tt.expr + ":\n  print \"yes\"\nelse:\n  print \"no\"\n"
		_, out := evalSource(t, src)
		if tt.expected {
			assert.Equal(t, "yes\n", out, tt.expr)
		} else {
			assert.Equal(t, "no\n", out, tt.expr)
		}
	}
}

func TestEval_DunderOperatorOverload(t *testing.T) {
	src := "class Vec:\n" +
		"  def __init__(self, v):\n" +
		"    self.v = v\n" +
		"  def __add__(self, other):\n" +
		"    return self.v + other.v\n" +
		"a = Vec(3)\n" +
		"b = Vec(4)\n" +
		"print a + b\n"
	_, out := evalSource(t, src)
	assert.Equal(t, "7\n", out)
}

func TestEval_AssignmentAliasingSharesInstance(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__(self):\n" +
		"    self.value = 0\n" +
		"  def add(self):\n" +
		"    self.value = self.value + 1\n" +
		"x = Counter()\n" +
		"y = x\n" +
		"y.add()\n" +
		"print x.value\n"
	_, out := evalSource(t, src)
	assert.Equal(t, "1\n", out)
}
