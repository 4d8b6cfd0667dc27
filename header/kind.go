/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package header

import (
	"bennypowers.dev/teecfg/entry"
	"bennypowers.dev/teecfg/token"
)

// Kind identifies a header token.
type Kind int

const (
	EOF Kind = iota

	MacroInt
	MacroStr
	MacroColor

	FlagSave
	FlagClient
	FlagServer
	FlagInsensitive
	FlagNonTeeHistoric
	FlagMaster
	FlagEcon
	FlagGame
	FlagColAlpha
	FlagColLight

	LParen
	RParen
	Comma
	Pipe
	Semicolon

	MaxClients
	ServerInfoLevelMin
	ServerInfoLevelMax

	Identifier
	StringLiteral
	Integer
)

var kindNames = [...]string{
	EOF:                "end of input",
	MacroInt:           "MACRO_CONFIG_INT",
	MacroStr:           "MACRO_CONFIG_STR",
	MacroColor:         "MACRO_CONFIG_COL",
	FlagSave:           "CFGFLAG_SAVE",
	FlagClient:         "CFGFLAG_CLIENT",
	FlagServer:         "CFGFLAG_SERVER",
	FlagInsensitive:    "CFGFLAG_INSENSITIVE",
	FlagNonTeeHistoric: "CFGFLAG_NONTEEHISTORIC",
	FlagMaster:         "CFGFLAG_MASTER",
	FlagEcon:           "CFGFLAG_ECON",
	FlagGame:           "CFGFLAG_GAME",
	FlagColAlpha:       "CFGFLAG_COLALPHA",
	FlagColLight:       "CFGFLAG_COLLIGHT",
	LParen:             `"("`,
	RParen:             `")"`,
	Comma:              `","`,
	Pipe:               `"|"`,
	Semicolon:          `";"`,
	MaxClients:         "MAX_CLIENTS",
	ServerInfoLevelMin: "SERVERINFO_LEVEL_MIN",
	ServerInfoLevelMax: "SERVERINFO_LEVEL_MAX",
	Identifier:         "identifier",
	StringLiteral:      "string literal",
	Integer:            "integer",
}

// String returns the keyword spelling, the quoted punctuation, or the
// literal class name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// keywords maps whole identifiers to their keyword kinds.
var keywords = map[string]Kind{}

func init() {
	for k := MacroInt; k <= ServerInfoLevelMax; k++ {
		if k < LParen || k > Semicolon {
			keywords[kindNames[k]] = k
		}
	}
}

var flagKinds = map[Kind]entry.Flags{
	FlagSave:           entry.Save,
	FlagClient:         entry.Client,
	FlagServer:         entry.Server,
	FlagInsensitive:    entry.Insensitive,
	FlagNonTeeHistoric: entry.NonTeeHistoric,
	FlagMaster:         entry.Master,
	FlagEcon:           entry.Econ,
	FlagGame:           entry.Game,
	FlagColAlpha:       entry.ColAlpha,
	FlagColLight:       entry.ColLight,
}

var sentinelKinds = map[Kind]entry.Sentinel{
	MaxClients:         entry.MaxClients,
	ServerInfoLevelMin: entry.ServerInfoLevelMin,
	ServerInfoLevelMax: entry.ServerInfoLevelMax,
}

// Token is a header token with its source span.
type Token struct {
	Kind Kind
	Span token.Span
	// Text is the identifier, or the string literal content without quotes.
	Text string
	// Int is the value of an Integer token.
	Int int64
}
