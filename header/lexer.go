/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package header

import (
	"iter"
	"strings"

	"bennypowers.dev/teecfg/token"
)

// Lexer tokenizes header source on demand.
// Whitespace, #-lines, // comments and /* */ comments are skipped.
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
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Span: token.At(len(l.src))}, nil
	}

	start := l.pos
	c := l.src[start]
	switch {
	case token.IsIdentStart(c):
		end := token.ScanIdent(l.src, start)
		l.pos = end
		text := l.src[start:end]
		if k, ok := keywords[text]; ok {
			return Token{Kind: k, Span: token.NewSpan(start, end)}, nil
		}
		return Token{Kind: Identifier, Span: token.NewSpan(start, end), Text: text}, nil

	case c == '"':
		end, ok := token.ScanQuoted(l.src, start)
		if !ok {
			return Token{}, &token.LexicalError{Reason: token.Other, Span: token.NewSpan(start, start+1)}
		}
		l.pos = end
		return Token{Kind: StringLiteral, Span: token.NewSpan(start, end), Text: token.Unquote(l.src[start:end])}, nil

	case token.IsDigit(c) || c == '-':
		end := token.ScanNumber(l.src, start)
		if end == start {
			return Token{}, token.Unrecognized(l.src, start)
		}
		span := token.NewSpan(start, end)
		n, err := token.ParseNumber(l.src[start:end], span)
		if err != nil {
			return Token{}, err
		}
		l.pos = end
		return Token{Kind: Integer, Span: span, Int: n}, nil
	}

	if k, ok := punctuation[c]; ok {
		l.pos++
		return Token{Kind: k, Span: token.NewSpan(start, start+1)}, nil
	}
	return Token{}, token.Unrecognized(l.src, start)
}

var punctuation = map[byte]Kind{
	'(': LParen,
	')': RParen,
	',': Comma,
	'|': Pipe,
	';': Semicolon,
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

func (l *Lexer) skipTrivia() error {
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\f' || rest[0] == '\r':
			l.pos++
		case rest[0] == '#' || strings.HasPrefix(rest, "//"):
			l.skipLine()
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return &token.LexicalError{Reason: token.Other, Span: token.NewSpan(l.pos, l.pos+2)}
			}
			l.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipLine() {
	if i := strings.IndexByte(l.src[l.pos:], '\n'); i >= 0 {
		l.pos += i + 1
		return
	}
	l.pos = len(l.src)
}
