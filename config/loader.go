/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/teecfg/internal/logger"
)

// Parse decodes configuration from YAML or JSON data. JSON may carry
// comments and trailing commas. Fields missing from data keep their
// Default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if isLikelyJSON(data) {
		data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
		logger.Info("loaded JSON config")
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	logger.Info("loaded YAML config")
	return cfg, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON starts with '{' (optionally preceded by whitespace, a BOM, or a comment).
func isLikelyJSON(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '/':
			// only JSONC has // or /* comments; YAML uses #
			return i+1 < len(data) && (data[i+1] == '/' || data[i+1] == '*')
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
