// Package apijson reads JSON (and JSONC) documents into a generic value
// model that keeps object keys in declaration order.
//
// A decoded value is one of:
//
//	nil, bool, int64, float64, string, []any, *Object
package apijson

import "iter"

// Object is a JSON object whose entries keep the order they were declared
// in.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set assigns a value. Re-setting an existing key keeps its original
// position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in declaration order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All iterates over the entries in declaration order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// AsObject reports whether v is map-shaped.
func AsObject(v any) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsArray reports whether v is list-shaped.
func AsArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}
