/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package settings

import (
	"iter"

	"bennypowers.dev/teecfg/token"
)

// Kind identifies a settings token.
type Kind int

const (
	EOF Kind = iota
	StringLiteral
	Identifier
	Integer
	Address
	Endline
)

// String returns the token class name.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case StringLiteral:
		return "string literal"
	case Identifier:
		return "identifier"
	case Integer:
		return "integer"
	case Address:
		return "ip address"
	case Endline:
		return "end of line"
	default:
		return "unknown"
	}
}

// Token is a settings token with its source span.
type Token struct {
	Kind Kind
	Span token.Span
	// Text is the identifier, the address, or the string content without quotes.
	Text string
	// Int is the value of an Integer token.
	Int int64
}

// Lexer tokenizes settings source on demand. Line breaks are tokens;
// only spaces, tabs and form feeds are skipped.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token, an EOF token at the end of input, or a
// *token.LexicalError. After an error the lexer does not advance.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\f') {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Span: token.At(len(l.src))}, nil
	}

	start := l.pos
	c := l.src[start]
	switch {
	case c == '\n':
		l.pos++
		return Token{Kind: Endline, Span: token.NewSpan(start, l.pos)}, nil

	case c == '\r' && start+1 < len(l.src) && l.src[start+1] == '\n':
		l.pos += 2
		return Token{Kind: Endline, Span: token.NewSpan(start, l.pos)}, nil

	case token.IsIdentStart(c):
		end := token.ScanIdent(l.src, start)
		l.pos = end
		return Token{Kind: Identifier, Span: token.NewSpan(start, end), Text: l.src[start:end]}, nil

	case c == '"':
		end, ok := token.ScanQuoted(l.src, start)
		if !ok {
			return Token{}, &token.LexicalError{Reason: token.Other, Span: token.NewSpan(start, start+1)}
		}
		l.pos = end
		return Token{Kind: StringLiteral, Span: token.NewSpan(start, end), Text: token.Unquote(l.src[start:end])}, nil

	case token.IsDigit(c) || c == '-':
		if end := scanIP(l.src, start); end > start {
			l.pos = end
			return Token{Kind: Address, Span: token.NewSpan(start, end), Text: l.src[start:end]}, nil
		}
		end := token.ScanNumber(l.src, start)
		if end == start {
			break
		}
		span := token.NewSpan(start, end)
		n, err := token.ParseNumber(l.src[start:end], span)
		if err != nil {
			return Token{}, err
		}
		l.pos = end
		return Token{Kind: Integer, Span: span, Int: n}, nil
	}
	return Token{}, token.Unrecognized(l.src, start)
}

// All yields every token up to, but not including, EOF. It stops after
// yielding the first error.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if tok.Kind == EOF || !yield(tok, nil) {
				return
			}
		}
	}
}

// scanIP matches d{1,3}.d{1,3}.d{1,3}.d{1,3}:d+ at pos and returns its end,
// or pos when there is no match.
func scanIP(src string, pos int) int {
	i := pos
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if i >= len(src) || src[i] != '.' {
				return pos
			}
			i++
		}
		digits := 0
		for i < len(src) && token.IsDigit(src[i]) && digits < 3 {
			i++
			digits++
		}
		if digits == 0 {
			return pos
		}
	}
	if i >= len(src) || src[i] != ':' {
		return pos
	}
	i++
	portStart := i
	for i < len(src) && token.IsDigit(src[i]) {
		i++
	}
	if i == portStart {
		return pos
	}
	return i
}
