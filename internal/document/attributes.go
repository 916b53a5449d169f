package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Attributes is an ordered mapping of attribute names to values. Keys are
// unique and keep the order in which they were first seen. The zero value is
// an empty mapping.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Attr is a single attribute, used when building Attributes by hand.
type Attr struct {
	Name  string
	Value string
}

// NewAttributes builds a mapping from attrs. Later duplicates overwrite the
// value of the first occurrence without moving it.
func NewAttributes(attrs ...Attr) Attributes {
	var a Attributes
	for _, at := range attrs {
		a = a.with(at.Name, at.Value)
	}
	return a
}

// AttributesFromPairs converts an html.Node attribute list into a mapping.
// Duplicate keys collapse to the last value seen, at the position of the
// first. Namespaced attributes are keyed "ns:key".
func AttributesFromPairs(pairs []html.Attribute) Attributes {
	var a Attributes
	for _, p := range pairs {
		key := p.Key
		if p.Namespace != "" {
			key = p.Namespace + ":" + p.Key
		}
		a = a.with(key, p.Val)
	}
	return a
}

// Pairs converts the mapping back into an html.Node attribute list in key order.
func (a Attributes) Pairs() []html.Attribute {
	if len(a.keys) == 0 {
		return nil
	}
	pairs := make([]html.Attribute, 0, len(a.keys))
	for _, k := range a.keys {
		pairs = append(pairs, html.Attribute{Key: k, Val: a.values[k]})
	}
	return pairs
}

// with records key=value, mutating a. Only used while building.
func (a Attributes) with(key, value string) Attributes {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// Get returns the value for key and whether it is present
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of attributes
func (a Attributes) Len() int {
	return len(a.keys)
}

// Keys returns attribute names in order
func (a Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// All returns the attributes in order
func (a Attributes) All() []Attr {
	out := make([]Attr, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, Attr{Name: k, Value: a.values[k]})
	}
	return out
}

func (a Attributes) String() string {
	parts := make([]string, 0, len(a.keys))
	for _, at := range a.All() {
		parts = append(parts, at.Name+`="`+escapeAttr(at.Value)+`"`)
	}
	return strings.Join(parts, " ")
}

var attrEscaper = strings.NewReplacer(`"`, "&quot;")

// escapeAttr escapes double quotes so a value cannot close its own quoting.
func escapeAttr(v string) string {
	return attrEscaper.Replace(v)
}
