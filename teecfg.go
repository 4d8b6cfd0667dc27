/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package teecfg extracts typed configuration metadata from DDNet and
// Teeworlds sources: variable declarations in config_variables.h and the
// name/value lines of settings files such as settings_ddnet.cfg.
//
// Parsing is pure. Callers read files themselves and may pass the bytes
// through DecodeSource first; spans in errors refer to the decoded string.
package teecfg

import (
	"bennypowers.dev/teecfg/config"
	"bennypowers.dev/teecfg/entry"
	"bennypowers.dev/teecfg/header"
	"bennypowers.dev/teecfg/internal/logger"
	"bennypowers.dev/teecfg/settings"
)

// Parser parses both dialects with a fixed configuration.
// A Parser is safe for concurrent use.
type Parser struct {
	cfg config.Config
}

var defaultParser = &Parser{cfg: *config.Default()}

// New returns a Parser for cfg. A nil cfg means config.Default().
// cfg.Debug only affects the debug messages of the returned Parser.
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Parser{cfg: *cfg}
}

// ParseConfigVariables parses MACRO_CONFIG_* declarations in source order.
func ParseConfigVariables(src string) ([]entry.ConfigEntry, error) {
	return defaultParser.ParseConfigVariables(src)
}

// ParseConfig parses settings file lines in file order.
func ParseConfig(src string) ([]settings.ConfigLine, error) {
	return defaultParser.ParseConfig(src)
}

// MapWithNames indexes entries by name; a later duplicate replaces an
// earlier one.
func MapWithNames(entries []entry.ConfigEntry) map[string]entry.ConfigEntry {
	return entry.MapWithNames(entries)
}

// ParseConfigVariables parses MACRO_CONFIG_* declarations. Entries are in
// source order unless the config asks for sorting.
func (p *Parser) ParseConfigVariables(src string) ([]entry.ConfigEntry, error) {
	entries, err := header.Parse(src, p.cfg.HeaderOptions())
	if err != nil {
		return nil, err
	}
	if p.cfg.Sort {
		entry.Sort(entries)
	}
	logger.DebugIf(p.cfg.Debug, "returning %d config variables (sorted: %t)", len(entries), p.cfg.Sort)
	return entries, nil
}

// ParseConfig parses settings file lines in file order.
func (p *Parser) ParseConfig(src string) ([]settings.ConfigLine, error) {
	lines, err := settings.Parse(src)
	if err != nil {
		return nil, err
	}
	logger.DebugIf(p.cfg.Debug, "returning %d settings lines", len(lines))
	return lines, nil
}
