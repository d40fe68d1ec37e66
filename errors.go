// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package qjson

import (
	"errors"
	"fmt"
)

// Errors reported while parsing a document. Parse errors are fatal: the
// parser stops at the first failure and yields no tree. Each is delivered
// wrapped in a [*SyntaxError] carrying the byte offset of the failure, so
// callers should match them with [errors.Is].
var (
	ErrBracketMismatch    = errors.New("bracket mismatch")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrUnclosedBracket    = errors.New("unclosed bracket")
	ErrMissingKey         = errors.New("no key for value")
	ErrInvalidContainer   = errors.New("not a container")
	ErrTrailingComma      = errors.New("trailing comma")
	ErrMalformedDocument  = errors.New("malformed document")
	ErrInvalidNumber      = errors.New("invalid number literal")
	ErrInvalidBoolean     = errors.New("invalid boolean literal")
)

// Errors reported by handle operations on a finished tree. Each failure
// affects only the operation that reported it; the tree and all other
// handles remain valid.
var (
	ErrNilHandle       = errors.New("nil handle")
	ErrNotAnObject     = errors.New("not an object")
	ErrNotAnArray      = errors.New("not an array")
	ErrNotAScalar      = errors.New("not a scalar")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// SyntaxError is the concrete type of errors reported by the parser.
// Offset is the 0-based byte offset of the input character at which the
// failure was detected.
type SyntaxError struct {
	Offset int
	Err    error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %v", s.Offset, s.Err)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }
