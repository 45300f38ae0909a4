package config

import "strings"

// Kind discriminates the node variants of a config document tree.
type Kind uint8

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns the JSON name of the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Node is one node of a config document. The set of implementations is
// closed: Object, Array, String, Number, Bool, and Null. Callers branch on
// Kind() or type-switch over the concrete types.
type Node interface {
	Kind() Kind
}

// Object is an ordered key→node mapping. Key order is the order keys first
// appeared in the source document and is preserved on encode.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Node
}

// NewObject returns an empty object node.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

func (o *Object) Kind() Kind { return KindObject }

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Key returns the i-th key in document order.
func (o *Object) Key(i int) string { return o.keys[i] }

// At returns the i-th value in document order.
func (o *Object) At(i int) Node { return o.vals[i] }

// Get returns the value for key, and whether the key exists.
func (o *Object) Get(key string) (Node, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Has reports whether key exists.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Set assigns key to v. An existing key keeps its position; a new key is
// appended after all existing keys.
func (o *Object) Set(key string, v Node) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Array is an ordered sequence of nodes. Element order is load-bearing for
// the presets array (it is the device recall index), so reordering is a
// meaningful edit.
type Array struct {
	elems []Node
}

// NewArray returns an empty array node.
func NewArray() *Array { return &Array{} }

func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// At returns the i-th element.
func (a *Array) At(i int) Node { return a.elems[i] }

// SetAt replaces the i-th element. Reports false if i is out of range; the
// array never grows implicitly.
func (a *Array) SetAt(i int, v Node) bool {
	if i < 0 || i >= len(a.elems) {
		return false
	}
	a.elems[i] = v
	return true
}

// Append adds v at the end.
func (a *Array) Append(v Node) { a.elems = append(a.elems, v) }

// Move relocates the element at from to position to, shifting the elements
// in between. Reports false if either index is out of range.
func (a *Array) Move(from, to int) bool {
	n := len(a.elems)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	v := a.elems[from]
	if from < to {
		copy(a.elems[from:to], a.elems[from+1:to+1])
	} else {
		copy(a.elems[to+1:from+1], a.elems[to:from])
	}
	a.elems[to] = v
	return true
}

// String is a string scalar.
type String string

func (String) Kind() Kind { return KindString }

// Value returns the underlying string.
func (s String) Value() string { return string(s) }

// Number is a numeric scalar holding the source JSON literal verbatim, so
// that encoding reproduces the original formatting ("1.50", "2e3").
type Number string

func (Number) Kind() Kind { return KindNumber }

// Literal returns the JSON literal text.
func (n Number) Literal() string { return string(n) }

// IsInt reports whether the literal is an integer (no fraction or exponent).
func (n Number) IsInt() bool {
	return !strings.ContainsAny(string(n), ".eE")
}

// Bool is a boolean scalar.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Value returns the underlying bool.
func (b Bool) Value() bool { return bool(b) }

// Null is the JSON null scalar.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
