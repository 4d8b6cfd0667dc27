/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lexing and parsing.
var (
	// ErrNumberParse indicates an integer literal that overflows int64 or has malformed digits.
	ErrNumberParse = errors.New("invalid number literal")

	// ErrUnrecognized indicates input that does not start any token.
	ErrUnrecognized = errors.New("unrecognized input")

	// ErrInvalidToken indicates a well-formed token that fails a semantic check.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnexpectedEOF indicates the input ended inside a construct.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnexpectedToken indicates a token the grammar does not accept at its position.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrExtraToken indicates input continuing after a complete construct.
	ErrExtraToken = errors.New("extra token")

	// ErrLexical indicates a parse aborted by a lexical error.
	ErrLexical = errors.New("lexical error")
)

// Reason classifies a lexical error.
type Reason int

const (
	// Other is any input no token rule accepts.
	Other Reason = iota

	// NumberParseError is an integer literal that could not be converted.
	NumberParseError
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case NumberParseError:
		return "number parse error"
	default:
		return "unrecognized input"
	}
}

// LexicalError reports the first input a lexer could not tokenize.
type LexicalError struct {
	Reason Reason
	Span   Span
}

// Error implements the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid token at %s: %s", e.Span, e.Reason)
}

// Is matches ErrNumberParse or ErrUnrecognized according to the reason.
func (e *LexicalError) Is(target error) bool {
	switch e.Reason {
	case NumberParseError:
		return target == ErrNumberParse
	default:
		return target == ErrUnrecognized
	}
}

// Kind classifies a parse failure.
type Kind int

const (
	// InvalidToken is a semantic failure located at a token.
	InvalidToken Kind = iota

	// UnexpectedEOF is input ending inside a construct.
	UnexpectedEOF

	// UnexpectedToken is a token not accepted at its position.
	UnexpectedToken

	// ExtraToken is a token following a complete construct.
	ExtraToken

	// Lexical wraps a LexicalError.
	Lexical
)

// ParseError is the only error type returned by the grammars.
// Span always locates the failure in the source; for UnexpectedEOF it is
// empty and sits at the end of the input.
type ParseError struct {
	Kind Kind

	// Span is the location of the failure.
	Span Span

	// Token names the offending token kind for UnexpectedToken and ExtraToken.
	Token string

	// Expected lists the token kinds acceptable at the failure position.
	Expected []string

	// Reason explains an InvalidToken failure.
	Reason string

	// Lexical is set for Lexical failures.
	Lexical *LexicalError
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case InvalidToken:
		fmt.Fprintf(&sb, "invalid token at %s", e.Span)
		if e.Reason != "" {
			sb.WriteString(": ")
			sb.WriteString(e.Reason)
		}
	case UnexpectedEOF:
		fmt.Fprintf(&sb, "unexpected end of input at %d", e.Span.Start)
	case UnexpectedToken:
		fmt.Fprintf(&sb, "unexpected token %s at %s", e.Token, e.Span)
	case ExtraToken:
		fmt.Fprintf(&sb, "extra token %s at %s", e.Token, e.Span)
	case Lexical:
		return e.Lexical.Error()
	}
	if len(e.Expected) > 0 {
		sb.WriteString(" (expected ")
		sb.WriteString(strings.Join(e.Expected, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// Is matches the sentinel corresponding to the failure kind.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case InvalidToken:
		return target == ErrInvalidToken
	case UnexpectedEOF:
		return target == ErrUnexpectedEOF
	case UnexpectedToken:
		return target == ErrUnexpectedToken
	case ExtraToken:
		return target == ErrExtraToken
	case Lexical:
		return target == ErrLexical
	}
	return false
}

// Unwrap exposes the wrapped LexicalError, if any.
func (e *ParseError) Unwrap() error {
	if e.Lexical == nil {
		return nil
	}
	return e.Lexical
}

// FromLexical wraps a lexer error into a Lexical parse failure.
// Errors that are not *LexicalError are reported as Other at span.
func FromLexical(err error, span Span) *ParseError {
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		lexErr = &LexicalError{Reason: Other, Span: span}
	}
	return &ParseError{Kind: Lexical, Span: lexErr.Span, Lexical: lexErr}
}

// Invalid returns an InvalidToken failure at span.
func Invalid(span Span, format string, args ...any) *ParseError {
	return &ParseError{Kind: InvalidToken, Span: span, Reason: fmt.Sprintf(format, args...)}
}

// EOF returns an UnexpectedEOF failure at offset.
func EOF(offset int, expected ...string) *ParseError {
	return &ParseError{Kind: UnexpectedEOF, Span: At(offset), Expected: expected}
}

// Unexpected returns an UnexpectedToken failure for the named token at span.
func Unexpected(name string, span Span, expected ...string) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Span: span, Token: name, Expected: expected}
}

// Extra returns an ExtraToken failure for the named token at span.
func Extra(name string, span Span) *ParseError {
	return &ParseError{Kind: ExtraToken, Span: span, Token: name}
}
