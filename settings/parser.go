/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings parses engine settings files such as settings_ddnet.cfg.
//
// Each non-blank line is a name followed by values:
//
//	sv_name "My Server"
//	sv_port 8303
//	bindaddr 127.0.0.1:8303
//	bind f1 toggle_local_console
package settings

import (
	"bennypowers.dev/teecfg/internal/logger"
	"bennypowers.dev/teecfg/token"
)

var lineStart = []string{Identifier.String(), Endline.String()}

// Parse returns the lines of src in file order. Blank lines are skipped and
// repeated names are kept.
// Any error is a *token.ParseError; no lines are returned with it.
func Parse(src string) ([]ConfigLine, error) {
	p := &parser{lex: NewLexer(src)}
	lines := []ConfigLine{}
	for {
		line, ok, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	logger.Debug("parsed %d settings lines", len(lines))
	return lines, nil
}

// ParseLine parses src as exactly one logical line, optionally surrounded
// by blank lines. A second line is an ExtraToken failure.
func ParseLine(src string) (ConfigLine, error) {
	p := &parser{lex: NewLexer(src)}
	line, ok, err := p.parseLine()
	if err != nil {
		return ConfigLine{}, err
	}
	if !ok {
		return ConfigLine{}, token.EOF(len(src), Identifier.String())
	}
	for {
		tok, err := p.next()
		if err != nil {
			return ConfigLine{}, err
		}
		switch tok.Kind {
		case EOF:
			return line, nil
		case Endline:
			continue
		default:
			return ConfigLine{}, token.Extra(tok.Kind.String(), tok.Span)
		}
	}
}

type parser struct {
	lex *Lexer
}

func (p *parser) next() (Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return Token{}, token.FromLexical(err, token.At(p.lex.pos))
	}
	return tok, nil
}

// parseLine skips blank lines and parses the next line. It reports false
// at the end of input.
func (p *parser) parseLine() (ConfigLine, bool, error) {
	var name Token
	for {
		tok, err := p.next()
		if err != nil {
			return ConfigLine{}, false, err
		}
		if tok.Kind == EOF {
			return ConfigLine{}, false, nil
		}
		if tok.Kind == Endline {
			continue
		}
		if tok.Kind != Identifier {
			return ConfigLine{}, false, token.Unexpected(tok.Kind.String(), tok.Span, lineStart...)
		}
		name = tok
		break
	}

	line := ConfigLine{Name: name.Text, Values: []Value{}}
	for {
		tok, err := p.next()
		if err != nil {
			return ConfigLine{}, false, err
		}
		switch tok.Kind {
		case EOF, Endline:
			return line, true, nil
		case Integer:
			line.Values = append(line.Values, Int(tok.Int))
		case StringLiteral:
			line.Values = append(line.Values, String(tok.Text))
		case Address:
			line.Values = append(line.Values, IP(tok.Text))
		case Identifier:
			line.Values = append(line.Values, Key(tok.Text))
		}
	}
}
