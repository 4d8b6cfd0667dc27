/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/teecfg/token"
)

func TestParseError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *token.ParseError
		sentinel error
	}{
		{name: "invalid", err: token.Invalid(token.NewSpan(1, 2), "bad"), sentinel: token.ErrInvalidToken},
		{name: "eof", err: token.EOF(10, `")"`), sentinel: token.ErrUnexpectedEOF},
		{name: "unexpected", err: token.Unexpected("identifier", token.NewSpan(0, 3), "MACRO_CONFIG_INT"), sentinel: token.ErrUnexpectedToken},
		{name: "extra", err: token.Extra("identifier", token.NewSpan(5, 6)), sentinel: token.ErrExtraToken},
		{
			name:     "lexical",
			err:      token.FromLexical(&token.LexicalError{Reason: token.Other, Span: token.NewSpan(4, 5)}, token.At(4)),
			sentinel: token.ErrLexical,
		},
	}

	all := []error{token.ErrInvalidToken, token.ErrUnexpectedEOF, token.ErrUnexpectedToken, token.ErrExtraToken, token.ErrLexical}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sentinel := range all {
				assert.Equal(t, sentinel == tt.sentinel, errors.Is(tt.err, sentinel), "sentinel %v", sentinel)
			}
		})
	}
}

func TestParseError_UnwrapsLexical(t *testing.T) {
	lexErr := &token.LexicalError{Reason: token.NumberParseError, Span: token.NewSpan(7, 30)}
	err := token.FromLexical(lexErr, token.At(7))

	assert.ErrorIs(t, err, token.ErrNumberParse)
	assert.Equal(t, lexErr.Span, err.Span)

	var got *token.LexicalError
	assert.True(t, errors.As(err, &got))
	assert.Same(t, lexErr, got)
}

func TestParseError_Message(t *testing.T) {
	err := token.EOF(42, `")"`, `","`)
	assert.Equal(t, `unexpected end of input at 42 (expected ")", ",")`, err.Error())

	err = token.Invalid(token.NewSpan(3, 9), "default %d below min %d", -1, 0)
	assert.Equal(t, "invalid token at 3..9: default -1 below min 0", err.Error())

	err = token.Unexpected("identifier", token.NewSpan(0, 4), "MACRO_CONFIG_INT")
	assert.Equal(t, "unexpected token identifier at 0..4 (expected MACRO_CONFIG_INT)", err.Error())
}
