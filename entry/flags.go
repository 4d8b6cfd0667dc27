/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"cmp"
	"strings"
)

// Flags is a combination of CFGFLAG_* attributes.
// Combine flags with |; the zero value has no flags set.
type Flags uint16

const (
	// Save marks entries written back to the settings file.
	Save Flags = 1 << iota
	// Client marks client-side entries.
	Client
	// Server marks server-side entries.
	Server
	// Insensitive marks entries matched case-insensitively.
	Insensitive
	// NonTeeHistoric marks entries hidden from teehistorian.
	NonTeeHistoric
	// Master marks entries sent to the master server.
	Master
	// Econ marks entries reachable from the remote console.
	Econ
	// Game marks entries scoped to the game state.
	Game
	// ColAlpha marks color entries that carry an alpha channel.
	ColAlpha
	// ColLight marks color entries whose lightness is mapped above DarkestLightness.
	ColLight
)

// AllFlags is every defined flag, in bit order.
var AllFlags = []Flags{Save, Client, Server, Insensitive, NonTeeHistoric, Master, Econ, Game, ColAlpha, ColLight}

var flagNames = map[Flags]string{
	Save:           "CFGFLAG_SAVE",
	Client:         "CFGFLAG_CLIENT",
	Server:         "CFGFLAG_SERVER",
	Insensitive:    "CFGFLAG_INSENSITIVE",
	NonTeeHistoric: "CFGFLAG_NONTEEHISTORIC",
	Master:         "CFGFLAG_MASTER",
	Econ:           "CFGFLAG_ECON",
	Game:           "CFGFLAG_GAME",
	ColAlpha:       "CFGFLAG_COLALPHA",
	ColLight:       "CFGFLAG_COLLIGHT",
}

// FlagByName returns the single flag spelled name (e.g. "CFGFLAG_SAVE").
func FlagByName(name string) (Flags, bool) {
	for _, f := range AllFlags {
		if flagNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

// Has reports whether every flag in other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Names returns the names of the set flags in bit order.
func (f Flags) Names() []string {
	names := []string{}
	for _, flag := range AllFlags {
		if f.Has(flag) {
			names = append(names, flagNames[flag])
		}
	}
	return names
}

// String renders the flags the way a header declares them, e.g.
// "CFGFLAG_SAVE|CFGFLAG_CLIENT".
func (f Flags) String() string {
	return strings.Join(f.Names(), "|")
}

// Compare orders flag sets by their bit pattern.
func (f Flags) Compare(other Flags) int {
	return cmp.Compare(f, other)
}
