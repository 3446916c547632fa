package toml

import (
	"errors"
	"fmt"
)

// Every error aborts the whole parse call; there is no token-skipping
// recovery and no multi-error collection.

// ErrUnexpectedEOF reports a token stream that ends where the grammar
// still expects a token.
var ErrUnexpectedEOF = errors.New("toml: unexpected end of input")

// LexError reports a character no lexical pattern matches. Line and
// Column are zero-based; the message reports them one-based.
type LexError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("toml: unexpected character %q at line %d, column %d", e.Char, e.Line+1, e.Column+1)
}

// SyntaxError reports a token that fits no expected grammar alternative.
type SyntaxError struct {
	Tok Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("toml: invalid token %q (%s) at line %d, column %d",
		e.Tok.Text, e.Tok.Kind, e.Tok.Line+1, e.Tok.Column+1)
}

// DecodeError reports a scalar token whose text cannot be converted to a
// typed value, or a token routed to the wrong decoder.
type DecodeError struct {
	Tok Token
	Msg string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("toml: %s in %q at line %d, column %d",
		e.Msg, e.Tok.Text, e.Tok.Line+1, e.Tok.Column+1)
}

// ConflictError reports a table path that collides with an existing node
// of the wrong variant, e.g. [[x]] where x already holds a scalar.
type ConflictError struct {
	Path    string
	Segment string
	Want    string // "table" or "array"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("toml: key %q in %q already defined and is not a %s", e.Segment, e.Path, e.Want)
}
