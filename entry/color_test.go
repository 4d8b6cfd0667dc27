/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/teecfg/entry"
)

func TestDecodeColor(t *testing.T) {
	tests := []struct {
		name      string
		packed    int64
		flags     entry.Flags
		wantHex   string
		wantAlpha float64
	}{
		{name: "black", packed: 0, wantHex: "#000000", wantAlpha: 1},
		{name: "white", packed: 0x0000FF, wantHex: "#ffffff", wantAlpha: 1},
		{name: "lightness mapped above darkest", packed: 0, flags: entry.ColLight, wantHex: "#808080", wantAlpha: 1},
		{name: "red with mapped lightness", packed: 0x00FF00, flags: entry.ColLight, wantHex: "#ff0000", wantAlpha: 1},
		{name: "alpha ignored without flag", packed: 0x000000FF, wantHex: "#ffffff", wantAlpha: 1},
		{name: "alpha read with flag", packed: 0x000000FF, flags: entry.ColAlpha, wantHex: "#ffffff", wantAlpha: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb, alpha := entry.DecodeColor(tt.packed, tt.flags)
			assert.Equal(t, tt.wantHex, rgb.Clamped().Hex())
			assert.InDelta(t, tt.wantAlpha, alpha, 1e-9)
		})
	}
}

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name  string
		css   string
		flags entry.Flags
		want  int64
	}{
		{name: "white", css: "white", want: 0x0000FF},
		{name: "black", css: "#000000", want: 0},
		{name: "red with mapped lightness", css: "red", flags: entry.ColLight, want: 0x00FF00},
		{name: "alpha", css: "rgba(255, 0, 0, 0.5)", flags: entry.ColAlpha | entry.ColLight, want: 0x8000FF00},
		{name: "dark colors clamp to zero lightness", css: "#000000", flags: entry.ColLight, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.EncodeColor(tt.css, tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeColor_Invalid(t *testing.T) {
	_, err := entry.EncodeColor("not-a-color", 0)
	assert.ErrorContains(t, err, "not-a-color")
}

func TestColor_DefaultHex(t *testing.T) {
	hex, ok := entry.Color{Default: entry.Literal(0x00FF00)}.DefaultHex(entry.ColLight)
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", hex)

	_, ok = entry.Color{Default: entry.Symbolic(entry.MaxClients)}.DefaultHex(0)
	assert.False(t, ok)
}
