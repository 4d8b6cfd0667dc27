/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/teecfg/config"
	"bennypowers.dev/teecfg/header"
	"bennypowers.dev/teecfg/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected *config.Config
	}{
		{
			name:     "yaml fixture",
			data:     testutil.LoadFixture(t, "teecfg.yaml"),
			expected: &config.Config{Sort: true, RejectSentinels: true},
		},
		{
			name:     "jsonc fixture",
			data:     testutil.LoadFixture(t, "teecfg.jsonc"),
			expected: &config.Config{Debug: true},
		},
		{
			name:     "plain json",
			data:     `{"rejectSentinels": true}`,
			expected: &config.Config{RejectSentinels: true},
		},
		{
			name:     "json with BOM",
			data:     "\xEF\xBB\xBF{\"sort\": true}",
			expected: &config.Config{Sort: true},
		},
		{
			name:     "empty",
			data:     " \n",
			expected: config.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{name: "json", data: `{"sort": "yes"}`, message: "failed to parse JSON config"},
		{name: "yaml", data: "sort: [true", message: "failed to parse YAML config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.data))
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestConfig_HeaderOptions(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, header.Options{}, cfg.HeaderOptions())

	cfg.RejectSentinels = true
	assert.Equal(t, header.Options{RejectSentinels: true}, cfg.HeaderOptions())
}
