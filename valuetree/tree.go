// Package valuetree holds the named, ordered, attributed tree that the
// generator serializes, and the binary codec that writes it.
package valuetree

import (
	"errors"
	"fmt"
	"strings"
)

// Property is a named value attached to a node.
type Property struct {
	Name  string
	Value Value
}

// Tree is a named node with ordered properties and ordered children.
// Order is significant: it is written to the byte stream as-is.
type Tree struct {
	Name       string
	Properties []Property
	Children   []*Tree
}

// New returns an empty node with the given name.
func New(name string) *Tree {
	return &Tree{Name: name}
}

// SetProperty assigns a property. An existing property of the same name
// keeps its position and has its value replaced; otherwise the property is
// appended.
func (t *Tree) SetProperty(name string, v Value) {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			t.Properties[i].Value = v
			return
		}
	}
	t.Properties = append(t.Properties, Property{Name: name, Value: v})
}

// Property returns the value of the named property.
func (t *Tree) Property(name string) (Value, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// HasProperty reports whether t has a property called name.
func (t *Tree) HasProperty(name string) bool {
	_, ok := t.Property(name)
	return ok
}

// AddChild appends c as the last child of t.
func (t *Tree) AddChild(c *Tree) {
	t.Children = append(t.Children, c)
}

// NumChildren returns the number of direct children of t.
func (t *Tree) NumChildren() int {
	return len(t.Children)
}

// Child returns the i-th child of t. It panics if i is out of range.
func (t *Tree) Child(i int) *Tree {
	return t.Children[i]
}

// Walk visits t and its descendants in pre-order. Returning false from fn
// skips the subtree below the node just visited.
func (t *Tree) Walk(fn func(depth int, n *Tree) bool) {
	t.walk(0, fn)
}

func (t *Tree) walk(depth int, fn func(int, *Tree) bool) {
	if !fn(depth, t) {
		return
	}
	for _, c := range t.Children {
		c.walk(depth+1, fn)
	}
}

// Validate reports every empty node or property name in the tree.
func (t *Tree) Validate() error {
	var errs []error
	t.validate(nil, &errs)
	return errors.Join(errs...)
}

func (t *Tree) validate(path []string, errs *[]error) {
	path = append(path, t.Name)
	if t.Name == "" {
		*errs = append(*errs, fmt.Errorf("empty node name at %s", strings.Join(path, "/")))
	}
	for i, p := range t.Properties {
		if p.Name == "" {
			*errs = append(*errs, fmt.Errorf("empty property name at %s[%d]", strings.Join(path, "/"), i))
		}
		if p.Value == nil {
			*errs = append(*errs, fmt.Errorf("nil value for property %q at %s", p.Name, strings.Join(path, "/")))
		}
	}
	for _, c := range t.Children {
		c.validate(path, errs)
	}
}
