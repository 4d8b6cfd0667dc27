/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package entry provides the typed configuration records declared in engine
// headers through MACRO_CONFIG_INT, MACRO_CONFIG_STR, and MACRO_CONFIG_COL.
package entry

import (
	"cmp"
	"strings"
)

// ConfigEntry is one declared configuration variable.
type ConfigEntry struct {
	// Description is the help text of the entry.
	Description string

	// Type holds the kind-specific bounds and default.
	Type EntryType

	// Flags are the CFGFLAG_* attributes of the entry.
	Flags Flags

	// Name is the identifier used in settings files (e.g. "sv_port").
	Name string

	// Symbol is the identifier used in engine source (e.g. "SvPort").
	Symbol string
}

// EntryType is one of Str, Int, or Color.
// Consumers switch on the concrete type; the set of implementations is closed.
type EntryType interface {
	// Kind returns "str", "int", or "color".
	Kind() string

	entryType()
}

// Str is a string entry.
type Str struct {
	// MaxLength is the buffer size of the value in bytes.
	MaxLength Bound
	// Default is the value used when settings do not override it.
	Default string
	// Value is the override read from a settings file, nil until merged.
	Value *string
}

// Int is an integer entry bounded by Min and Max.
type Int struct {
	Max     Bound
	Min     Bound
	Default Bound
	// Value is the override read from a settings file, nil until merged.
	Value *int64
}

// Color is a packed HSLA color entry, see DecodeColor.
type Color struct {
	Default Bound
	// Value is the override read from a settings file, nil until merged.
	Value *int64
}

func (Str) Kind() string   { return "str" }
func (Int) Kind() string   { return "int" }
func (Color) Kind() string { return "color" }

func (Str) entryType()   {}
func (Int) entryType()   {}
func (Color) entryType() {}

// kindOrder ranks entry types for Compare.
func kindOrder(t EntryType) int {
	switch t.(type) {
	case Str:
		return 0
	case Int:
		return 1
	case Color:
		return 2
	default:
		return 3
	}
}

// CompareTypes orders entry types: Str before Int before Color, then by
// their fields in declaration order.
func CompareTypes(a, b EntryType) int {
	if c := cmp.Compare(kindOrder(a), kindOrder(b)); c != 0 {
		return c
	}
	switch a := a.(type) {
	case Str:
		b := b.(Str)
		if c := a.MaxLength.Compare(b.MaxLength); c != 0 {
			return c
		}
		if c := strings.Compare(a.Default, b.Default); c != 0 {
			return c
		}
		return compareOptional(a.Value, b.Value)
	case Int:
		b := b.(Int)
		for _, c := range []int{
			a.Max.Compare(b.Max),
			a.Min.Compare(b.Min),
			a.Default.Compare(b.Default),
		} {
			if c != 0 {
				return c
			}
		}
		return compareOptional(a.Value, b.Value)
	case Color:
		b := b.(Color)
		if c := a.Default.Compare(b.Default); c != 0 {
			return c
		}
		return compareOptional(a.Value, b.Value)
	}
	return 0
}

// compareOptional orders unset before set values.
func compareOptional[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}
