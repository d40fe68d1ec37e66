// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package qjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/mds/stack"
	"go4.org/mem"
)

// chunkSize is the fixed read size used by Parse and ParseFile.
const chunkSize = 4096

// errFinished is reported by Feed once Finish has been called.
var errFinished = errors.New("parse already finished")

// A Parser consumes a document incrementally and builds its tree. Feed the
// input in chunks of any size, then call Finish to obtain a handle to the
// root value. All scanning state survives chunk boundaries, so a literal
// token, a quoted string, or a nested structure may be split at any byte.
//
// The document is parsed as an implicit top-level array; Finish requires
// that array to hold exactly one value and unwraps it.
type Parser struct {
	brackets *stack.Stack[byte]   // open brackets, innermost on top
	keys     *stack.Stack[string] // object keys awaiting their values
	parents  *stack.Stack[Handle] // containers enclosing current
	current  Handle               // container currently accumulating children

	buf      bytes.Buffer // scalar token being accumulated
	inQuotes bool
	inNumber bool
	inBool   bool
	last     byte // last significant character outside quotes
	offset   int  // byte offset of the character being processed

	err  error
	done bool
}

// NewParser constructs a new empty Parser.
func NewParser() *Parser {
	return &Parser{
		brackets: stack.New[byte](),
		keys:     stack.New[string](),
		parents:  stack.New[Handle](),
		current:  Handle{newNode(KindArray)},
	}
}

// Feed processes the next chunk of input. An error is sticky: once Feed
// reports a failure, it and Finish report the same failure thereafter.
func (p *Parser) Feed(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	if p.done {
		// Not sticky: the finished parse and its root stay valid.
		return errFinished
	}
	for _, c := range chunk {
		if c == '"' {
			// A quotation mark toggles quote mode. Opening a string discards
			// any buffered text; closing one leaves the content buffered for
			// the next structural character to attach. The closing mark is
			// recorded as the last significant character so that a comma
			// followed by a completed string is not mistaken for a trailing
			// comma at the next closing bracket.
			if p.inQuotes {
				p.inQuotes = false
				p.last = c
			} else {
				p.buf.Reset()
				p.inQuotes = true
			}
		} else if p.inQuotes {
			p.buf.WriteByte(c) // verbatim, escape sequences are not decoded
		} else if err := p.step(c); err != nil {
			return p.setErr(err)
		}
		p.offset++
	}
	return nil
}

// Finish verifies that the document closed cleanly and returns a handle to
// its root value.
func (p *Parser) Finish() (Handle, error) {
	if p.err != nil {
		return Handle{}, p.err
	}
	p.done = true
	if open, ok := p.brackets.Pop(); ok {
		return Handle{}, p.setErr(p.failf(ErrUnclosedBracket, "%q", open))
	}
	if p.buf.Len() > 0 || p.inNumber || p.inBool {
		return Handle{}, p.setErr(p.failf(ErrMalformedDocument, "unattached literal %q", p.buf.String()))
	}
	root := p.current.n
	if len(root.elems) != 1 {
		return Handle{}, p.setErr(p.failf(ErrMalformedDocument, "%d top-level values, want 1", len(root.elems)))
	}
	return Handle{root.elems[0]}, nil
}

// step applies one character outside quote mode to the parser state.
func (p *Parser) step(c byte) error {
	if isSpace(c) {
		return nil
	}

	if c == ':' {
		// The buffered text is an object key awaiting its value.
		p.keys.Push(p.buf.String())
		p.buf.Reset()
	}

	if isNumberPart(c) && !p.inBool {
		p.inNumber = true
		p.buf.WriteByte(c)
	}
	if isBoolPart(c) && !p.inNumber {
		p.inBool = true
		p.buf.WriteByte(c)
	}

	// A comma after a completed value, or a closing bracket while text is
	// buffered or a bare literal is open, terminates the current scalar.
	if (c == ',' && !isClosingBracket(p.last)) ||
		(isClosingBracket(c) && p.buf.Len() > 0) ||
		((c == ',' || isClosingBracket(c)) && (p.inNumber || p.inBool)) {
		if err := p.endScalar(); err != nil {
			return err
		}
	}

	switch {
	case isOpeningBracket(c):
		p.brackets.Push(c)
		if !p.current.IsNil() {
			p.parents.Push(p.current)
		}
		kind := KindArray
		if c == '{' {
			kind = KindObject
		}
		p.current = Handle{newNode(kind)}

	case isClosingBracket(c):
		if p.last == ',' {
			return p.failf(ErrTrailingComma, "before %q", c)
		}
		open, ok := p.brackets.Pop()
		if !ok {
			return p.failf(ErrUnbalancedBrackets, "unexpected %q", c)
		}
		if !sameBracketFamily(open, c) {
			return p.failf(ErrBracketMismatch, "%q closing %q", c, open)
		}
		parent, ok := p.parents.Pop()
		if !ok {
			return p.failf(ErrUnbalancedBrackets, "%q has no enclosing value", c)
		}
		finished := p.current
		p.current = parent
		if err := p.attach(finished); err != nil {
			return err
		}
	}

	p.last = c
	return nil
}

// endScalar validates the buffered literal and attaches it to the container
// currently being built.
func (p *Parser) endScalar() error {
	text := p.buf.String()
	if p.inNumber && !isValidNumber(text) {
		return p.failf(ErrInvalidNumber, "%q", text)
	}
	if p.inBool && !isValidBool(text) {
		return p.failf(ErrInvalidBoolean, "%q", text)
	}
	p.inNumber = false
	p.inBool = false
	p.buf.Reset()

	n := newNode(KindString)
	n.text = text
	return p.attach(Handle{n})
}

// attach inserts child into the current container: bound to the most recent
// pending key for objects, appended for arrays. A duplicate object key
// leaves the first binding in place.
func (p *Parser) attach(child Handle) error {
	switch p.current.n.kind {
	case KindObject:
		key, ok := p.keys.Pop()
		if !ok {
			return p.fail(ErrMissingKey)
		}
		if p.current.n.find(key) < 0 {
			p.current.n.members = append(p.current.n.members, member{key: key, node: child.n})
		}
	case KindArray:
		p.current.n.elems = append(p.current.n.elems, child.n)
	default:
		return p.failf(ErrInvalidContainer, "cannot attach to %v", p.current.n.kind)
	}
	return nil
}

func (p *Parser) setErr(err error) error {
	p.err = err
	return err
}

func (p *Parser) fail(base error) error {
	return &SyntaxError{Offset: p.offset, Err: base}
}

func (p *Parser) failf(base error, format string, args ...any) error {
	return &SyntaxError{
		Offset: p.offset,
		Err:    fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...)),
	}
}

// Parse reads the whole document from r in fixed-size chunks and returns a
// handle to its root value.
func Parse(r io.Reader) (Handle, error) {
	p := NewParser()
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return Handle{}, ferr
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return Handle{}, err
		}
	}
	return p.Finish()
}

// ParseFile opens the file at path and parses its contents. The file is
// held only for the duration of the parse and closed on every return path.
func ParseFile(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Handle{}, err
	}
	defer f.Close()
	return Parse(f)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isOpeningBracket(c byte) bool { return c == '{' || c == '[' }
func isClosingBracket(c byte) bool { return c == '}' || c == ']' }

// sameBracketFamily reports whether closing matches the family of open,
// square vs curly.
func sameBracketFamily(open, closing byte) bool {
	return (open == '[') == (closing == ']')
}

func isNumberPart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e'
}

// isBoolPart reports whether c is drawn from the alphabet of the true and
// false literals.
func isBoolPart(c byte) bool { return strings.IndexByte("truefals", c) >= 0 }

func isValidNumber(text string) bool {
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}

var litTrue, litFalse = mem.S("true"), mem.S("false")

func isValidBool(text string) bool {
	v := mem.S(text)
	return v.Equal(litTrue) || v.Equal(litFalse)
}
