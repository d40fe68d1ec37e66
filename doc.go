// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

// Package qjson implements an incremental parser for a JSON-like text
// format, and a shared-handle document tree built by that parser.
//
// # Parsing
//
// The Parser type consumes input in chunks of any size and builds the
// document tree as it goes. Scanning state survives chunk boundaries, so a
// token, a quoted string, or a deeply nested structure may be split at any
// byte. Feed delivers input, and Finish checks that the document closed
// cleanly and returns a handle to the root value:
//
//	p := qjson.NewParser()
//	for _, chunk := range chunks {
//	   if err := p.Feed(chunk); err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   }
//	}
//	root, err := p.Finish()
//
// Parse drives the chunk loop over an io.Reader, and ParseFile over a file:
//
//	root, err := qjson.Parse(strings.NewReader(`{"a": [1, true]}`))
//
// Parse errors have concrete type [*SyntaxError], carry the byte offset of
// the failure, and wrap one of the package's sentinel errors for use with
// errors.Is. A failed parse yields no tree, partial results are never
// returned.
//
// # Handles
//
// The tree is navigated through Handle values. A Handle is a shared
// reference to a node: copying it never copies the node, and two handles
// compare equal exactly when they reference the identical node. Key and
// Index descend into objects and arrays, DeleteKey and DeleteIndex remove
// children, and Text extracts the literal text of a scalar. Every operation
// checks the kind of its target and fails fast on a mismatch rather than
// returning a default.
//
// Once Finish returns, the tree is no longer touched by the parser and is
// safe for concurrent readers. Deletions are not synchronized; a caller
// mixing writers must provide its own locking.
//
// # Dialect
//
// The accepted input is JSON-like rather than strict JSON:
//
//   - String escape sequences are not decoded; the bytes between quotation
//     marks are stored verbatim, and an embedded quotation mark always
//     terminates the string.
//   - Numbers and booleans are validated at parse time but stored as their
//     literal text; there is no numeric or boolean node kind, and Text
//     returns the token as written.
//   - There is no null literal.
//
// The write path is out of scope: trees are not serialized back to text.
package qjson
