// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package cursor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfelder/qjson"
	"github.com/mfelder/qjson/cursor"
)

func parseDoc(t *testing.T, input string) qjson.Handle {
	t.Helper()
	h, err := qjson.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return h
}

func TestPath(t *testing.T) {
	root := parseDoc(t, `{"a": {"b": [10, 20, 30]}, "flag": true}`)

	h, err := cursor.Path(root, "a", "b", 1)
	require.NoError(t, err)
	text, err := h.Text()
	require.NoError(t, err)
	require.Equal(t, "20", text)

	// Negative offsets count backward from the end.
	h, err = cursor.Path(root, "a", "b", -1)
	require.NoError(t, err)
	text, err = h.Text()
	require.NoError(t, err)
	require.Equal(t, "30", text)

	// The empty path reaches the origin itself.
	h, err = cursor.Path(root)
	require.NoError(t, err)
	require.Equal(t, root, h)
}

func TestPathErrors(t *testing.T) {
	root := parseDoc(t, `{"a": {"b": [10, 20, 30]}}`)

	_, err := cursor.Path(root, "missing")
	require.ErrorIs(t, err, qjson.ErrKeyNotFound)

	_, err = cursor.Path(root, "a", 0)
	require.ErrorIs(t, err, qjson.ErrNotAnArray)

	_, err = cursor.Path(root, "a", "b", 3)
	require.Error(t, err)
	_, err = cursor.Path(root, "a", "b", -4)
	require.Error(t, err)

	// Unsupported path element types are rejected.
	_, err = cursor.Path(root, 3.5)
	require.Error(t, err)
}

func TestCursorNavigation(t *testing.T) {
	root := parseDoc(t, `{"a": {"b": [10, 20, 30]}}`)

	c := cursor.New(root)
	require.True(t, c.AtOrigin())
	require.Equal(t, root, c.Origin())
	require.Equal(t, root, c.Handle())

	require.NoError(t, c.Down("a", "b", 2).Err())
	require.False(t, c.AtOrigin())

	// Cursor traversal lands on the identical node as direct access.
	a, err := root.Key("a")
	require.NoError(t, err)
	b, err := a.Key("b")
	require.NoError(t, err)
	want, err := b.Index(2)
	require.NoError(t, err)
	require.Equal(t, want, c.Handle())

	// Path reports origin plus every step taken.
	require.Len(t, c.Path(), 4)

	// Up retraces one step at a time.
	require.Equal(t, b, c.Up().Handle())
	require.Equal(t, a, c.Up().Handle())
	require.Equal(t, root, c.Up().Handle())
	require.True(t, c.AtOrigin())
}

func TestCursorReset(t *testing.T) {
	root := parseDoc(t, `{"a": [1]}`)

	c := cursor.New(root).Down("nope")
	require.Error(t, c.Err())

	c.Reset()
	require.NoError(t, c.Err())
	require.True(t, c.AtOrigin())

	require.NoError(t, c.Down("a", 0).Err())
	text, err := c.Handle().Text()
	require.NoError(t, err)
	require.Equal(t, "1", text)
}

func TestCursorFunc(t *testing.T) {
	root := parseDoc(t, `{"list": ["first", "second"]}`)

	lastElem := func(h qjson.Handle) (qjson.Handle, error) {
		n, err := h.Len()
		if err != nil {
			return qjson.Handle{}, err
		}
		return h.Index(n - 1)
	}

	h, err := cursor.Path(root, "list", lastElem)
	require.NoError(t, err)
	text, err := h.Text()
	require.NoError(t, err)
	require.Equal(t, "second", text)

	failing := func(h qjson.Handle) (qjson.Handle, error) {
		return qjson.Handle{}, errors.New("boom")
	}
	_, err = cursor.Path(root, "list", failing)
	require.EqualError(t, err, "boom")
}
