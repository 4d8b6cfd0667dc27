/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides parse options for the header and settings parsers.
package config

import (
	"bennypowers.dev/teecfg/header"
)

// Config represents the parser configuration.
type Config struct {
	// Sort orders parsed header entries with entry.Sort instead of
	// keeping source order.
	Sort bool `yaml:"sort" json:"sort"`

	// RejectSentinels fails header parsing on MAX_CLIENTS and the
	// SERVERINFO_LEVEL_* bounds.
	RejectSentinels bool `yaml:"rejectSentinels" json:"rejectSentinels"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" json:"debug"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Sort:            false,
		RejectSentinels: false,
		Debug:           false,
	}
}

// HeaderOptions returns header.Options with configuration applied.
func (c *Config) HeaderOptions() header.Options {
	return header.Options{RejectSentinels: c.RejectSentinels}
}
