/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package settings

import (
	"strconv"
	"strings"
)

// ConfigLine is one logical settings line: a name and its values.
type ConfigLine struct {
	Name   string
	Values []Value
}

// String renders the line back into settings syntax.
func (c ConfigLine) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, v := range c.Values {
		sb.WriteByte(' ')
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Value is one of Int, String, IP, or Key.
// The set of implementations is closed.
type Value interface {
	// String renders the value in settings syntax.
	String() string

	value()
}

// Int is an integer value, written in decimal or 0x hex.
type Int int64

// String is a quoted string value, without its quotes.
type String string

// IP is an address with port, such as "127.0.0.1:8303".
type IP string

// Key is a bare identifier used as a value, such as a key or command name.
type Key string

func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string { return `"` + string(v) + `"` }
func (v IP) String() string     { return string(v) }
func (v Key) String() string    { return string(v) }

func (Int) value()    {}
func (String) value() {}
func (IP) value()     {}
func (Key) value()    {}
