// Package ast defines the intermediate class model built by the parser
// and consumed by the emitter: classes, variables, methods, statements,
// and expressions.
package ast

import "fmt"

// InitName is the reserved method name under which constructors are
// stored in the class model.
const InitName = "__init__"

// RootClassName is the default superclass when no extends clause appears.
const RootClassName = "object"

// Modifiers records the protection and storage modifiers of a member.
// Public is true unless the member was declared private; protected maps
// to public.
type Modifiers struct {
	Public bool
	Static bool
}

// Variable is a class field: its modifiers, name, and optional
// initializer expression (nil for a bare declaration).
type Variable struct {
	Mods Modifiers
	Name string
	Init Expression
	Line int
}

// Method is a method or constructor. Constructors carry InitName as
// their Name. Parameter types are discarded during parsing; only the
// names survive, in source order.
type Method struct {
	Mods   Modifiers
	Name   string
	Params []string
	Body   []Statement
	Line   int
}

// Arity returns the number of parameters.
func (m *Method) Arity() int {
	return len(m.Params)
}

// Class is one translated class: its name, immediate superclass name,
// and its members in insertion order. The model is append-only during
// parsing and read-only during emission.
type Class struct {
	Name  string
	Super string
	Mods  Modifiers
	Line  int

	varNames    []string
	vars        map[string]*Variable
	methodNames []string
	methods     map[string][]*Method
	ctors       []*Method
	nestedNames []string
	nested      map[string]*Class
}

// NewClass creates an empty class. An empty superclass name defaults to
// the target root class.
func NewClass(name, super string) *Class {
	if super == "" {
		super = RootClassName
	}
	return &Class{
		Name:    name,
		Super:   super,
		vars:    make(map[string]*Variable),
		methods: make(map[string][]*Method),
		nested:  make(map[string]*Class),
	}
}

// AddVariable appends a field. Duplicate names within a class are an
// error naming the class and the offending symbol.
func (c *Class) AddVariable(v *Variable) error {
	if _, ok := c.vars[v.Name]; ok {
		return fmt.Errorf("%s is already defined in class %s", v.Name, c.Name)
	}
	c.vars[v.Name] = v
	c.varNames = append(c.varNames, v.Name)
	return nil
}

// AddMethod appends a method overload. Two overloads of one name may
// not share an arity.
func (c *Class) AddMethod(m *Method) error {
	overloads, seen := c.methods[m.Name]
	for _, o := range overloads {
		if o.Arity() == m.Arity() {
			return fmt.Errorf("%s with %d parameters is already defined in class %s",
				m.Name, m.Arity(), c.Name)
		}
	}
	if !seen {
		c.methodNames = append(c.methodNames, m.Name)
	}
	c.methods[m.Name] = append(overloads, m)
	return nil
}

// AddConstructor appends a constructor. Two constructors may not share
// an arity.
func (c *Class) AddConstructor(m *Method) error {
	for _, o := range c.ctors {
		if o.Arity() == m.Arity() {
			return fmt.Errorf("constructor with %d parameters is already defined in class %s",
				m.Arity(), c.Name)
		}
	}
	m.Name = InitName
	c.ctors = append(c.ctors, m)
	return nil
}

// AddNested appends a nested class. Duplicate names are an error.
func (c *Class) AddNested(n *Class) error {
	if _, ok := c.nested[n.Name]; ok {
		return fmt.Errorf("%s is already defined in class %s", n.Name, c.Name)
	}
	c.nested[n.Name] = n
	c.nestedNames = append(c.nestedNames, n.Name)
	return nil
}

// LookupVariable returns the field with the given name, or nil.
func (c *Class) LookupVariable(name string) *Variable {
	return c.vars[name]
}

// LookupMethod returns all overloads of the given method name in
// insertion order, or nil when the name is unknown.
func (c *Class) LookupMethod(name string) []*Method {
	return c.methods[name]
}

// MethodByArity returns the overload of name with exactly n parameters,
// or nil.
func (c *Class) MethodByArity(name string, n int) *Method {
	for _, m := range c.methods[name] {
		if m.Arity() == n {
			return m
		}
	}
	return nil
}

// ConstructorByArity returns the constructor with exactly n parameters,
// or nil.
func (c *Class) ConstructorByArity(n int) *Method {
	for _, m := range c.ctors {
		if m.Arity() == n {
			return m
		}
	}
	return nil
}

// LookupNested returns the nested class with the given name, or nil.
func (c *Class) LookupNested(name string) *Class {
	return c.nested[name]
}

// Variables returns every field in declaration order, optionally
// filtered by modifiers.
func (c *Class) Variables(filter ...func(Modifiers) bool) []*Variable {
	var out []*Variable
	for _, name := range c.varNames {
		v := c.vars[name]
		if matches(v.Mods, filter) {
			out = append(out, v)
		}
	}
	return out
}

// StaticVariables returns the static fields in declaration order.
func (c *Class) StaticVariables() []*Variable {
	return c.Variables(func(m Modifiers) bool { return m.Static })
}

// InstanceVariables returns the non-static fields in declaration order.
func (c *Class) InstanceVariables() []*Variable {
	return c.Variables(func(m Modifiers) bool { return !m.Static })
}

// MethodNames returns the distinct method names in insertion order.
func (c *Class) MethodNames() []string {
	out := make([]string, len(c.methodNames))
	copy(out, c.methodNames)
	return out
}

// Constructors returns the constructors in declaration order.
func (c *Class) Constructors() []*Method {
	out := make([]*Method, len(c.ctors))
	copy(out, c.ctors)
	return out
}

// NestedClasses returns the nested classes in declaration order.
func (c *Class) NestedClasses() []*Class {
	out := make([]*Class, 0, len(c.nestedNames))
	for _, name := range c.nestedNames {
		out = append(out, c.nested[name])
	}
	return out
}

func matches(m Modifiers, filter []func(Modifiers) bool) bool {
	for _, f := range filter {
		if !f(m) {
			return false
		}
	}
	return true
}
