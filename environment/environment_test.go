/*
File    : mython-interpreter/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_BindAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Bind("x", 10)

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_GetFallsThroughToParent(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Bind("x", "outer")
	child := NewEnvironment(parent)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_BindShadowsParentLocally(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Bind("x", "outer")
	child := NewEnvironment(parent)
	child.Bind("x", "inner")

	v, _ := child.Get("x")
	assert.Equal(t, "inner", v)

	v, _ = parent.Get("x")
	assert.Equal(t, "outer", v)
}

func TestEnvironment_AssignUpdatesOuterBinding(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Bind("x", 1)
	child := NewEnvironment(parent)

	child.Assign("x", 2)

	v, _ := parent.Get("x")
	assert.Equal(t, 2, v)
	_, ok := child.Variables["x"]
	assert.False(t, ok)
}

func TestEnvironment_AssignWithNoExistingBindingDeclaresLocally(t *testing.T) {
	env := NewEnvironment(nil)
	env.Assign("x", 5)

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestEnvironment_CopySharesParentButNotMap(t *testing.T) {
	parent := NewEnvironment(nil)
	env := NewEnvironment(parent)
	env.Bind("x", 1)

	cp := env.Copy()
	cp.Bind("y", 2)

	_, ok := env.Get("y")
	assert.False(t, ok)

	v, ok := cp.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Same(t, parent, cp.Parent)
}

func TestEnvironment_InstanceFieldStoreHasNoParent(t *testing.T) {
	fields := NewEnvironment(nil)
	fields.Bind("name", "Rex")

	assert.Nil(t, fields.Parent)
	v, ok := fields.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Rex", v)
}
