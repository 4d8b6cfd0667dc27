/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"cmp"
	"strconv"
)

// Sentinel names an engine constant used in place of a number in a header.
// Its value depends on the engine build and is resolved by the caller.
type Sentinel int

const (
	// NoSentinel marks a literal Bound.
	NoSentinel Sentinel = iota
	// MaxClients is MAX_CLIENTS.
	MaxClients
	// ServerInfoLevelMin is SERVERINFO_LEVEL_MIN.
	ServerInfoLevelMin
	// ServerInfoLevelMax is SERVERINFO_LEVEL_MAX.
	ServerInfoLevelMax
)

// String returns the sentinel as spelled in headers.
func (s Sentinel) String() string {
	switch s {
	case MaxClients:
		return "MAX_CLIENTS"
	case ServerInfoLevelMin:
		return "SERVERINFO_LEVEL_MIN"
	case ServerInfoLevelMax:
		return "SERVERINFO_LEVEL_MAX"
	default:
		return ""
	}
}

// Bound is a numeric header argument: either a literal integer or a sentinel.
type Bound struct {
	// Sentinel is NoSentinel for literals.
	Sentinel Sentinel
	// Literal holds the value when Sentinel is NoSentinel.
	Literal int64
}

// Literal returns a literal Bound.
func Literal(n int64) Bound {
	return Bound{Literal: n}
}

// Symbolic returns a Bound standing for s.
func Symbolic(s Sentinel) Bound {
	return Bound{Sentinel: s}
}

// IsLiteral reports whether the bound is a literal integer.
func (b Bound) IsLiteral() bool {
	return b.Sentinel == NoSentinel
}

// Int returns the literal value, or false for a sentinel.
func (b Bound) Int() (int64, bool) {
	if !b.IsLiteral() {
		return 0, false
	}
	return b.Literal, true
}

// String returns the literal in decimal or the sentinel name.
func (b Bound) String() string {
	if b.IsLiteral() {
		return strconv.FormatInt(b.Literal, 10)
	}
	return b.Sentinel.String()
}

// Compare orders literals before sentinels, literals by value and
// sentinels by declaration order.
func (b Bound) Compare(other Bound) int {
	if c := cmp.Compare(b.Sentinel, other.Sentinel); c != 0 {
		return c
	}
	return cmp.Compare(b.Literal, other.Literal)
}

// encoded is the JSON/YAML form: a number or the sentinel name.
func (b Bound) encoded() any {
	if b.IsLiteral() {
		return b.Literal
	}
	return b.Sentinel.String()
}
