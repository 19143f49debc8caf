package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassDefaultSuper(t *testing.T) {
	c := NewClass("Ex", "")
	assert.Equal(t, "object", c.Super)

	c = NewClass("Ex", "Base")
	assert.Equal(t, "Base", c.Super)
}

func TestAddVariable(t *testing.T) {
	c := NewClass("Ex", "")
	require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: true}, Name: "x"}))
	require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: true, Static: true}, Name: "y"}))

	err := c.AddVariable(&Variable{Mods: Modifiers{Public: true}, Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
	assert.Contains(t, err.Error(), "Ex")

	assert.NotNil(t, c.LookupVariable("x"))
	assert.Nil(t, c.LookupVariable("z"))
}

func TestVariableFilters(t *testing.T) {
	c := NewClass("Ex", "")
	require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: true, Static: true}, Name: "s1"}))
	require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: true}, Name: "i1"}))
	require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: false, Static: true}, Name: "s2"}))

	statics := c.StaticVariables()
	require.Len(t, statics, 2)
	assert.Equal(t, "s1", statics[0].Name)
	assert.Equal(t, "s2", statics[1].Name)

	instances := c.InstanceVariables()
	require.Len(t, instances, 1)
	assert.Equal(t, "i1", instances[0].Name)

	privateStatics := c.Variables(
		func(m Modifiers) bool { return m.Static },
		func(m Modifiers) bool { return !m.Public },
	)
	require.Len(t, privateStatics, 1)
	assert.Equal(t, "s2", privateStatics[0].Name)
}

func TestAddMethodOverloads(t *testing.T) {
	c := NewClass("Ex", "")
	require.NoError(t, c.AddMethod(&Method{Name: "foo"}))
	require.NoError(t, c.AddMethod(&Method{Name: "foo", Params: []string{"x"}}))
	require.NoError(t, c.AddMethod(&Method{Name: "bar"}))

	err := c.AddMethod(&Method{Name: "foo", Params: []string{"y"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), "Ex")

	assert.Equal(t, []string{"foo", "bar"}, c.MethodNames())
	assert.Len(t, c.LookupMethod("foo"), 2)
	assert.Nil(t, c.LookupMethod("baz"))

	m := c.MethodByArity("foo", 1)
	require.NotNil(t, m)
	assert.Equal(t, []string{"x"}, m.Params)
	assert.Nil(t, c.MethodByArity("foo", 2))
}

func TestAddConstructor(t *testing.T) {
	c := NewClass("Ex", "")
	require.NoError(t, c.AddConstructor(&Method{}))
	require.NoError(t, c.AddConstructor(&Method{Params: []string{"a", "b"}}))

	err := c.AddConstructor(&Method{Params: []string{"x", "y"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constructor with 2 parameters")

	ctors := c.Constructors()
	require.Len(t, ctors, 2)
	// constructors are stored under the reserved init name
	assert.Equal(t, InitName, ctors[0].Name)
	require.NotNil(t, c.ConstructorByArity(2))
	assert.Nil(t, c.ConstructorByArity(1))
}

func TestAddNested(t *testing.T) {
	c := NewClass("Outer", "")
	require.NoError(t, c.AddNested(NewClass("Inner", "")))

	err := c.AddNested(NewClass("Inner", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inner")
	assert.Contains(t, err.Error(), "Outer")

	assert.NotNil(t, c.LookupNested("Inner"))
	assert.Len(t, c.NestedClasses(), 1)
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := NewClass("Ex", "")
	names := []string{"c", "a", "b"}
	for _, n := range names {
		require.NoError(t, c.AddVariable(&Variable{Mods: Modifiers{Public: true}, Name: n}))
	}
	vars := c.Variables()
	require.Len(t, vars, 3)
	for i, n := range names {
		assert.Equal(t, n, vars[i].Name)
	}
}
