/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package header parses configuration variable declarations from engine
// headers such as src/engine/shared/config_variables.h.
//
// Three macros are recognized:
//
//	MACRO_CONFIG_INT(Symbol, name, default, min, max, flags, "description")
//	MACRO_CONFIG_STR(Symbol, name, maxLength, "default", flags, "description")
//	MACRO_CONFIG_COL(Symbol, name, default, flags, "description")
//
// Numeric arguments are integer literals or the engine constants MAX_CLIENTS,
// SERVERINFO_LEVEL_MIN and SERVERINFO_LEVEL_MAX, which are kept symbolic.
package header

import (
	"slices"

	"bennypowers.dev/teecfg/entry"
	"bennypowers.dev/teecfg/internal/logger"
	"bennypowers.dev/teecfg/token"
)

// Options configures header parsing.
type Options struct {
	// RejectSentinels fails the parse when a bound is an engine constant
	// instead of keeping it symbolic.
	RejectSentinels bool
}

var (
	macroKinds = []Kind{MacroInt, MacroStr, MacroColor}
	nameKinds  = []Kind{Identifier, StringLiteral}
	boundKinds = []Kind{Integer, MaxClients, ServerInfoLevelMin, ServerInfoLevelMax}
	flagList   = []Kind{
		FlagSave, FlagClient, FlagServer, FlagInsensitive, FlagNonTeeHistoric,
		FlagMaster, FlagEcon, FlagGame, FlagColAlpha, FlagColLight,
	}
)

// Parse returns the entries declared in src in source order.
// Any error is a *token.ParseError; no entries are returned with it.
func Parse(src string, opts Options) ([]entry.ConfigEntry, error) {
	p := newParser(src, opts)
	entries := []entry.ConfigEntry{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			break
		}
		e, err := p.parseInvocation()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	logger.Debug("parsed %d config variables", len(entries))
	return entries, nil
}

// ParseEntry parses src as exactly one macro invocation.
// Tokens after the invocation are an ExtraToken failure.
func ParseEntry(src string, opts Options) (entry.ConfigEntry, error) {
	p := newParser(src, opts)
	e, err := p.parseInvocation()
	if err != nil {
		return entry.ConfigEntry{}, err
	}
	tok, err := p.peek()
	if err != nil {
		return entry.ConfigEntry{}, err
	}
	if tok.Kind != EOF {
		return entry.ConfigEntry{}, token.Extra(tok.Kind.String(), tok.Span)
	}
	return e, nil
}

// parser is a single-lookahead recursive descent parser over a Lexer.
type parser struct {
	lex    *Lexer
	opts   Options
	tok    Token
	err    error
	peeked bool
}

func newParser(src string, opts Options) *parser {
	return &parser{lex: NewLexer(src), opts: opts}
}

func (p *parser) peek() (Token, error) {
	if !p.peeked {
		p.tok, p.err = p.lex.Next()
		if p.err != nil {
			p.err = token.FromLexical(p.err, token.At(p.lex.pos))
		}
		p.peeked = true
	}
	return p.tok, p.err
}

func (p *parser) next() (Token, error) {
	tok, err := p.peek()
	if err == nil {
		p.peeked = false
	}
	return tok, err
}

// expect consumes the next token if it is one of kinds.
func (p *parser) expect(kinds ...Kind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if !slices.Contains(kinds, tok.Kind) {
		return Token{}, unexpected(tok, kinds)
	}
	return tok, nil
}

func unexpected(tok Token, kinds []Kind) *token.ParseError {
	expected := make([]string, len(kinds))
	for i, k := range kinds {
		expected[i] = k.String()
	}
	if tok.Kind == EOF {
		return token.EOF(tok.Span.Start, expected...)
	}
	return token.Unexpected(tok.Kind.String(), tok.Span, expected...)
}

func (p *parser) parseInvocation() (entry.ConfigEntry, error) {
	var e entry.ConfigEntry

	macro, err := p.expect(macroKinds...)
	if err != nil {
		return e, err
	}
	if _, err := p.expect(LParen); err != nil {
		return e, err
	}

	symbol, err := p.argument(nameKinds...)
	if err != nil {
		return e, err
	}
	name, err := p.argument(nameKinds...)
	if err != nil {
		return e, err
	}
	e.Symbol, e.Name = symbol.Text, name.Text

	switch macro.Kind {
	case MacroInt:
		e.Type, err = p.parseIntArgs()
	case MacroStr:
		e.Type, err = p.parseStrArgs()
	case MacroColor:
		var def entry.Bound
		def, _, err = p.bound()
		e.Type = entry.Color{Default: def}
	}
	if err != nil {
		return e, err
	}

	if e.Flags, err = p.parseFlags(); err != nil {
		return e, err
	}
	if _, err := p.expect(Comma); err != nil {
		return e, err
	}
	desc, err := p.expect(StringLiteral)
	if err != nil {
		return e, err
	}
	e.Description = desc.Text
	if _, err := p.expect(RParen); err != nil {
		return e, err
	}

	// A trailing semicolon is accepted after the invocation.
	if tok, err := p.peek(); err == nil && tok.Kind == Semicolon {
		p.next()
	}
	return e, nil
}

// argument consumes one of kinds followed by a comma.
func (p *parser) argument(kinds ...Kind) (Token, error) {
	tok, err := p.expect(kinds...)
	if err != nil {
		return Token{}, err
	}
	if _, err := p.expect(Comma); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// bound consumes a numeric argument and its trailing comma.
func (p *parser) bound() (entry.Bound, Token, error) {
	tok, err := p.argument(boundKinds...)
	if err != nil {
		return entry.Bound{}, tok, err
	}
	if tok.Kind == Integer {
		return entry.Literal(tok.Int), tok, nil
	}
	if p.opts.RejectSentinels {
		return entry.Bound{}, tok, token.Invalid(tok.Span, "engine constant %s is not allowed", tok.Kind)
	}
	return entry.Symbolic(sentinelKinds[tok.Kind]), tok, nil
}

func (p *parser) parseIntArgs() (entry.EntryType, error) {
	def, defTok, err := p.bound()
	if err != nil {
		return nil, err
	}
	lo, _, err := p.bound()
	if err != nil {
		return nil, err
	}
	hi, _, err := p.bound()
	if err != nil {
		return nil, err
	}

	d, dok := def.Int()
	minV, minOK := lo.Int()
	maxV, maxOK := hi.Int()
	if dok && minOK && maxOK && (d < minV || d > maxV) {
		return nil, token.Invalid(defTok.Span, "default %d is outside [%d, %d]", d, minV, maxV)
	}
	return entry.Int{Max: hi, Min: lo, Default: def}, nil
}

func (p *parser) parseStrArgs() (entry.EntryType, error) {
	maxLen, maxTok, err := p.bound()
	if err != nil {
		return nil, err
	}
	def, err := p.argument(StringLiteral)
	if err != nil {
		return nil, err
	}

	if n, ok := maxLen.Int(); ok {
		if n < 0 {
			return nil, token.Invalid(maxTok.Span, "max length %d is negative", n)
		}
		if int64(len(def.Text)) > n {
			return nil, token.Invalid(def.Span, "default is %d bytes, longer than max length %d", len(def.Text), n)
		}
	}
	return entry.Str{MaxLength: maxLen, Default: def.Text}, nil
}

// parseFlags consumes FLAG { "|" FLAG } and ORs the flags together.
func (p *parser) parseFlags() (entry.Flags, error) {
	tok, err := p.expect(flagList...)
	if err != nil {
		return 0, err
	}
	flags := flagKinds[tok.Kind]
	for {
		next, err := p.peek()
		if err != nil {
			return 0, err
		}
		if next.Kind == Comma {
			return flags, nil
		}
		if next.Kind != Pipe {
			return 0, unexpected(next, []Kind{Pipe, Comma})
		}
		p.next()
		if tok, err = p.expect(flagList...); err != nil {
			return 0, err
		}
		flags |= flagKinds[tok.Kind]
	}
}
