// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

// Package cursor implements traversal over a parsed document tree.
package cursor

import (
	"fmt"

	"github.com/mfelder/qjson"
)

// Path traverses a sequential path into the structure under h, where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// the handle it reaches.
func Path(h qjson.Handle, path ...any) (qjson.Handle, error) {
	c := New(h).Down(path...)
	if err := c.Err(); err != nil {
		return qjson.Handle{}, err
	}
	return c.Handle(), nil
}

// A Cursor is a pointer that navigates into the structure of a document
// tree.
type Cursor struct {
	org qjson.Handle
	stk []qjson.Handle
	err error
}

// New constructs a new Cursor to traverse the structure under origin.
func New(origin qjson.Handle) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin handle of c.
func (c *Cursor) Origin() qjson.Handle { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Handle reports the handle at the current location of c.
func (c *Cursor) Handle() qjson.Handle {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of handles from the origin to the
// current location in c.
func (c *Cursor) Path() []qjson.Handle {
	return append([]qjson.Handle{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current handle. If the path cannot be completely consumed, traversal
// stops and an error is recorded; use Err to recover it.
//
// If a path element is a string, the current handle must be an object, and
// the string resolves the member with that key.
//
// If a path element is an int, the current handle must be an array, and the
// int resolves to an offset in it. Negative offsets count backward from the
// end (-1 is last, -2 second last).
//
// If a path element is a function, the function is applied to the current
// handle and its result becomes the next location. The function must have
// the signature
//
//	func(qjson.Handle) (qjson.Handle, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Handle()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			next, err := cur.Key(t)
			if err != nil {
				return c.setErr(err)
			}
			cur = c.push(next)

		case int:
			n, err := cur.Len()
			if err != nil {
				return c.setErr(err)
			}
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, n)
			}
			next, err := cur.Index(i)
			if err != nil {
				return c.setErr(err)
			}
			cur = c.push(next)

		case func(qjson.Handle) (qjson.Handle, error):
			next, err := t(cur)
			if err != nil {
				return c.setErr(err)
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(h qjson.Handle) qjson.Handle { c.stk = append(c.stk, h); return h }

func (c *Cursor) setErr(err error) *Cursor {
	c.err = err
	return c
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	return c.setErr(fmt.Errorf(msg, args...))
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
