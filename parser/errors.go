package parser

import (
	"fmt"

	"github.com/siikty/css/token"
)

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	// SyntaxError is reported when a token does not match the grammar.
	SyntaxError ErrorKind = iota

	// SemanticError is reported for well-formed input that is invalid in
	// context, such as an unknown unit.
	SemanticError

	// FatalError is reported when the input cannot be read.
	FatalError
)

var errorKinds = [...]string{
	SyntaxError:   "syntax error",
	SemanticError: "semantic error",
	FatalError:    "fatal error",
}

func (k ErrorKind) String() string {
	if k >= 0 && k < ErrorKind(len(errorKinds)) {
		return errorKinds[k]
	}
	return ""
}

// Error codes below 64 are token kinds and mean "<kind> expected".
const (
	InvalidDirective = 64 + iota
	InvalidQuotedString
	InvalidURI
	InvalidMedium
	InvalidIdentity
	InvalidSimpleSelector
	InvalidAttrib
	InvalidTerm
	InvalidHexValue
	UnterminatedString
	UnrecognizedUnit
	ReadFailure
)

var messages = map[int]string{
	InvalidDirective:      "invalid directive",
	InvalidQuotedString:   "invalid QuotedString",
	InvalidURI:            "invalid URI",
	InvalidMedium:         "invalid medium",
	InvalidIdentity:       "invalid identity",
	InvalidSimpleSelector: "invalid simpleselector",
	InvalidAttrib:         "invalid attrib",
	InvalidTerm:           "invalid term",
	InvalidHexValue:       "invalid HexValue",
	UnterminatedString:    "unterminated string",
}

// Message returns the catalog message for an error code.
func Message(code int) string {
	if code >= 0 && code < token.NumKinds {
		return token.Kind(code).String() + " expected"
	} else if msg, ok := messages[code]; ok {
		return msg
	}
	return fmt.Sprintf("error %d", code)
}

// Error represents a parse error.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
	Pos     token.Pos
	Excerpt string // source line containing Pos
	Err     error  // underlying read error for fatal errors
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return "css: " + e.Message
	}
	return fmt.Sprintf("css: line %d col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Unwrap returns the underlying read error, if any.
func (e *Error) Unwrap() error { return e.Err }

// ErrorList represents a list of errors.
type ErrorList []*Error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}
