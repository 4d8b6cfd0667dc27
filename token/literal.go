/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsIdentStart reports whether b may start an identifier.
func IsIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentPart reports whether b may continue an identifier.
func IsIdentPart(b byte) bool {
	return IsIdentStart(b) || IsDigit(b)
}

// ScanIdent returns the end of the identifier starting at pos.
// The caller must have checked IsIdentStart(src[pos]).
func ScanIdent(src string, pos int) int {
	end := pos + 1
	for end < len(src) && IsIdentPart(src[end]) {
		end++
	}
	return end
}

// ScanNumber returns the end of the longest integer literal starting at pos,
// or pos if there is none.
//
// Accepted forms are 0x[0-9a-fA-F][_0-9a-fA-F]* and -?[0-9][_0-9]*.
func ScanNumber(src string, pos int) int {
	if strings.HasPrefix(src[pos:], "0x") && pos+2 < len(src) && IsHexDigit(src[pos+2]) {
		end := pos + 3
		for end < len(src) && (IsHexDigit(src[end]) || src[end] == '_') {
			end++
		}
		return end
	}

	start := pos
	if start < len(src) && src[start] == '-' {
		start++
	}
	if start >= len(src) || !IsDigit(src[start]) {
		return pos
	}
	end := start + 1
	for end < len(src) && (IsDigit(src[end]) || src[end] == '_') {
		end++
	}
	return end
}

// ParseNumber converts a literal accepted by ScanNumber. Underscores are
// ignored. Overflow and malformed digits yield a NumberParseError at span.
func ParseNumber(literal string, span Span) (int64, error) {
	digits := strings.ReplaceAll(literal, "_", "")
	base := 10
	if rest, ok := strings.CutPrefix(digits, "0x"); ok {
		digits = rest
		base = 16
	}
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, &LexicalError{Reason: NumberParseError, Span: span}
	}
	return n, nil
}

// ScanQuoted scans the quoted string whose opening quote is at pos and
// returns the offset just past its closing quote. A backslash-escaped quote
// does not close the string. When no closing quote exists the result is
// false.
func ScanQuoted(src string, pos int) (int, bool) {
	for i := pos + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if i+1 < len(src) && src[i+1] == '"' {
				if strings.IndexByte(src[i+2:], '"') < 0 {
					// the escaped quote is the last one, so it closes the string
					return i + 2, true
				}
				i++
			}
		case '"':
			return i + 1, true
		}
	}
	return pos, false
}

// Unquote strips the delimiting quotes from a literal returned by ScanQuoted.
// No escape processing is applied.
func Unquote(literal string) string {
	return literal[1 : len(literal)-1]
}

// Unrecognized returns the Other lexical error covering the rune at pos.
func Unrecognized(src string, pos int) *LexicalError {
	_, size := utf8.DecodeRuneInString(src[pos:])
	return &LexicalError{Reason: Other, Span: NewSpan(pos, pos+size)}
}
