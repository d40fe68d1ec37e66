// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package qjson

import "fmt"

// A Handle is a shared reference to a node of a document tree. Handles are
// comparable: two handles are equal exactly when they reference the
// identical node, never by structural comparison. Copying a handle never
// copies the node.
//
// The zero Handle is the null handle. It is a valid value, but every
// operation on it reports ErrNilHandle.
type Handle struct {
	n *node
}

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool { return h.n == nil }

// Kind reports the kind of the referenced node. The null handle reports
// KindUninit.
func (h Handle) Kind() Kind {
	if h.n == nil {
		return KindUninit
	}
	return h.n.kind
}

// Key returns a handle to the value bound to key. The referenced node must
// be an object containing key.
func (h Handle) Key(key string) (Handle, error) {
	if h.n == nil {
		return Handle{}, fmt.Errorf("%w: key %q", ErrNilHandle, key)
	}
	if h.n.kind != KindObject {
		return Handle{}, fmt.Errorf("%w (%v): key %q", ErrNotAnObject, h.n.kind, key)
	}
	i := h.n.find(key)
	if i < 0 {
		return Handle{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return Handle{h.n.members[i].node}, nil
}

// Index returns a handle to the element at offset i. The referenced node
// must be an array and i must be in [0, len).
func (h Handle) Index(i int) (Handle, error) {
	if h.n == nil {
		return Handle{}, fmt.Errorf("%w: index %d", ErrNilHandle, i)
	}
	if h.n.kind != KindArray {
		return Handle{}, fmt.Errorf("%w (%v): index %d", ErrNotAnArray, h.n.kind, i)
	}
	if i < 0 || i >= len(h.n.elems) {
		return Handle{}, fmt.Errorf("%w: index %d (n=%d)", ErrIndexOutOfRange, i, len(h.n.elems))
	}
	return Handle{h.n.elems[i]}, nil
}

// DeleteKey removes the binding of key from an object node. Handles to the
// removed value remain usable; only the binding is discarded.
func (h Handle) DeleteKey(key string) error {
	if h.n == nil {
		return fmt.Errorf("%w: delete key %q", ErrNilHandle, key)
	}
	if h.n.kind != KindObject {
		return fmt.Errorf("%w (%v): delete key %q", ErrNotAnObject, h.n.kind, key)
	}
	i := h.n.find(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	h.n.members = append(h.n.members[:i], h.n.members[i+1:]...)
	return nil
}

// DeleteIndex removes the element at offset i from an array node, shifting
// the elements after it down by one position.
func (h Handle) DeleteIndex(i int) error {
	if h.n == nil {
		return fmt.Errorf("%w: delete index %d", ErrNilHandle, i)
	}
	if h.n.kind != KindArray {
		return fmt.Errorf("%w (%v): delete index %d", ErrNotAnArray, h.n.kind, i)
	}
	if i < 0 || i >= len(h.n.elems) {
		return fmt.Errorf("%w: index %d (n=%d)", ErrIndexOutOfRange, i, len(h.n.elems))
	}
	h.n.elems = append(h.n.elems[:i], h.n.elems[i+1:]...)
	return nil
}

// Text returns the literal text of a scalar node: the content between the
// quotation marks of a quoted string, or the verbatim token of a number or
// boolean. No escape sequences are decoded; callers needing a numeric or
// boolean value re-parse the text, for example with strconv.
func (h Handle) Text() (string, error) {
	if h.n == nil {
		return "", fmt.Errorf("%w: no text", ErrNilHandle)
	}
	if h.n.kind != KindString {
		return "", fmt.Errorf("%w: %v has no text", ErrNotAScalar, h.n.kind)
	}
	return h.n.text, nil
}

// Len reports the number of members of an object node or elements of an
// array node.
func (h Handle) Len() (int, error) {
	if h.n == nil {
		return 0, fmt.Errorf("%w: no length", ErrNilHandle)
	}
	switch h.n.kind {
	case KindObject:
		return len(h.n.members), nil
	case KindArray:
		return len(h.n.elems), nil
	}
	return 0, fmt.Errorf("%w: %v has no length", ErrInvalidContainer, h.n.kind)
}

// Keys reports the member keys of an object node in the order the members
// were parsed.
func (h Handle) Keys() ([]string, error) {
	if h.n == nil {
		return nil, fmt.Errorf("%w: no keys", ErrNilHandle)
	}
	if h.n.kind != KindObject {
		return nil, fmt.Errorf("%w (%v): no keys", ErrNotAnObject, h.n.kind)
	}
	keys := make([]string, len(h.n.members))
	for i, m := range h.n.members {
		keys[i] = m.key
	}
	return keys, nil
}

// String returns the printable representation of a scalar handle, which is
// its literal text. Only string-kind nodes have a printable representation;
// String panics if h is null or references a container.
func (h Handle) String() string {
	text, err := h.Text()
	if err != nil {
		panic("qjson: " + err.Error())
	}
	return text
}
