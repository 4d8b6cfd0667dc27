/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the span, lexical error, and parse failure model
// shared by the header and settings dialects, along with the literal scanners
// both lexers use.
package token

import "fmt"

// Span is a half-open [Start, End) byte range into a source string.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// At returns the empty span located at offset.
func At(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the part of src covered by the span, clamped to src.
func (s Span) Slice(src string) string {
	start, end := max(s.Start, 0), min(s.End, len(src))
	if start >= end {
		return ""
	}
	return src[start:end]
}

// String returns the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
