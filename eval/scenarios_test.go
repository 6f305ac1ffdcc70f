/*
File: mython-interpreter/eval/scenarios_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/rackrossum/mython-interpreter/objects"
	"github.com/rackrossum/mython-interpreter/parser"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	name     string
	source   string
	expected string
}

func runScenario(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	root := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())
	require.NoError(t, p.Lex.Err())

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	result := evaluator.Eval(root)
	if objects.IsError(result) {
		require.Fail(t, "evaluation error", result.(*objects.Error).ToString())
	}
	return buf.String()
}

// TestScenarios runs spec §8's six end-to-end scenarios: exact
// source in, exact stdout out.
func TestScenarios(t *testing.T) {
	scenarios := []scenario{
		{
			name:     "primitive prints",
			source:   "print 57\nprint 10, 24, -8\nprint 'hello'\nprint \"world\"\nprint True, False\nprint\nprint None\n",
			expected: "57\n10 24 -8\nhello\nworld\nTrue False\n\nNone\n",
		},
		{
			name:     "assignment and rebinding",
			source:   "x = 57\nprint x\nx = 'C++ black belt'\nprint x\ny = False\nx = y\nprint x\nx = None\nprint x, y\n",
			expected: "57\nC++ black belt\nFalse\nNone False\n",
		},
		{
			name:     "arithmetic precedence",
			source:   "print 1+2+3+4+5, 1*2*3*4*5, 1-2-3-4-5, 36/4/3, 2*5+10/2\n",
			expected: "15 120 -13 3 15\n",
		},
		{
			name: "reference aliasing across instances",
			source: "class Counter:\n" +
				"  def __init__(self):\n" +
				"    self.value = 0\n" +
				"  def add(self):\n" +
				"    self.value = self.value + 1\n" +
				"class Dummy:\n" +
				"  def do_add(self, counter):\n" +
				"    counter.add()\n" +
				"x = Counter()\n" +
				"y = x\n" +
				"x.add()\n" +
				"y.add()\n" +
				"print x.value\n" +
				"d = Dummy()\n" +
				"d.do_add(x)\n" +
				"print y.value\n",
			expected: "2\n3\n",
		},
		{
			name:     "nested if/else with indentation",
			source:   "x = 4\ny = 5\nif x > y:\n  print \"x > y\"\nelse:\n  print \"x <= y\"\n",
			expected: "x <= y\n",
		},
		{
			name:     "stringify and string concatenation",
			source:   "a = 'foo'\nb = 'bar'\nprint str(a + b)\n",
			expected: "foobar\n",
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			out := runScenario(t, sc.source)
			require.Equal(t, sc.expected, out)
		})
	}
}

func TestScenario_PrintIdempotence(t *testing.T) {
	out := runScenario(t, "x = 57\nprint x\nprint x\n")
	require.Equal(t, "57\n57\n", out)
}

func TestScenario_ReturnIsolatedToItsOwnMethod(t *testing.T) {
	src := "class Box:\n" +
		"  def __init__(self):\n" +
		"    self.value = 5\n" +
		"  def get(self):\n" +
		"    return self.value\n" +
		"    return 999\n" +
		"b = Box()\n" +
		"print b.get()\n" +
		"print 1\n"
	out := runScenario(t, src)
	require.Equal(t, "5\n1\n", out)
}

func TestScenario_MethodResolutionWalksParentChain(t *testing.T) {
	src := "class Animal:\n" +
		"  def speak(self):\n" +
		"    print \"...\"\n" +
		"class Dog(Animal):\n" +
		"  def bark(self):\n" +
		"    print \"Woof\"\n" +
		"d = Dog()\n" +
		"d.bark()\n" +
		"d.speak()\n"
	out := runScenario(t, src)
	require.Equal(t, "Woof\n...\n", out)
}

func TestScenario_NonShortCircuitBooleanBothSidesEvaluate(t *testing.T) {
	src := "class Loud:\n" +
		"  def shout(self):\n" +
		"    print \"shouted\"\n" +
		"    return True\n" +
		"l = Loud()\n" +
		"print False and l.shout()\n"
	out := runScenario(t, src)
	require.Equal(t, "shouted\nFalse\n", out)
}
