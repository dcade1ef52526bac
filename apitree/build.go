// Package apitree turns a parsed API description into a valuetree.Tree.
//
// The expected input shape is
//
//	{"classes": {"<Class>": {"methods": {"<method>": {<scalar props>}}}}}
//
// Anything that does not fit that shape is left out of the tree rather than
// reported: the upstream filter stage decides what belongs in the blob, and
// the builder copies what it is handed.
package apitree

import (
	"github.com/christoph-hart/hise-api-generator/apijson"
	"github.com/christoph-hart/hise-api-generator/valuetree"
)

const (
	DefaultRootName       = "Api"
	DefaultMethodNodeName = "method"
)

type config struct {
	rootName       string
	methodNodeName string
}

// Option customizes Build.
type Option func(*config)

// WithRootName sets the name of the root node.
func WithRootName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.rootName = name
		}
	}
}

// WithMethodNodeName sets the name given to every method node.
func WithMethodNodeName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.methodNodeName = name
		}
	}
}

// Build maps root onto a tree with one child per class and one grandchild
// per method. Method properties are copied in declaration order, unfiltered.
// Classes and properties with empty names are skipped, since tree names
// must be non-empty.
func Build(root any, opts ...Option) *valuetree.Tree {
	cfg := config{rootName: DefaultRootName, methodNodeName: DefaultMethodNodeName}
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := valuetree.New(cfg.rootName)

	doc, ok := apijson.AsObject(root)
	if !ok {
		return tree
	}
	rawClasses, _ := doc.Get("classes")
	classes, ok := apijson.AsObject(rawClasses)
	if !ok {
		return tree
	}

	for className, rawClass := range classes.All() {
		classData, ok := apijson.AsObject(rawClass)
		if !ok || className == "" {
			continue
		}

		classNode := valuetree.New(className)

		rawMethods, _ := classData.Get("methods")
		methods, ok := apijson.AsObject(rawMethods)
		if !ok {
			// A class without methods is still a class.
			tree.AddChild(classNode)
			continue
		}

		for _, rawMethod := range methods.All() {
			methodData, ok := apijson.AsObject(rawMethod)
			if !ok {
				continue
			}

			methodNode := valuetree.New(cfg.methodNodeName)
			for propName, propValue := range methodData.All() {
				if propName == "" {
					continue
				}
				methodNode.SetProperty(propName, ConvertValue(propValue))
			}
			classNode.AddChild(methodNode)
		}

		tree.AddChild(classNode)
	}

	return tree
}
