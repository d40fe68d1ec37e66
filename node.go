// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package qjson

// A Kind identifies what value a node of a document tree holds.
type Kind byte

// Constants defining the valid Kind values. KindUninit is the zero value; it
// marks a node that has not yet been given a value, and never occurs in a
// finished tree.
const (
	KindUninit Kind = iota // no value assigned
	KindString             // scalar literal text
	KindObject             // key-value members
	KindArray              // ordered elements
)

var kindStr = [...]string{
	KindUninit: "uninitialized",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[KindUninit]
	}
	return kindStr[v]
}

// A node is a single unit of a document tree. Exactly one of its payload
// fields is meaningful, selected by kind. Container payloads are allocated
// lazily, so a nil container is indistinguishable from an empty one.
type node struct {
	kind Kind

	text    string   // kind == KindString: raw literal text
	members []member // kind == KindObject: bindings in parse order
	elems   []*node  // kind == KindArray: elements in parse order
}

// A member is a single key-value binding of an object node.
type member struct {
	key  string
	node *node
}

func newNode(kind Kind) *node { return &node{kind: kind} }

// find returns the index of the first member of n bound to key, or -1.
func (n *node) find(key string) int {
	for i, m := range n.members {
		if m.key == key {
			return i
		}
	}
	return -1
}
