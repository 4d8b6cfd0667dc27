/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// DarkestLightness is the lowest lightness a ColLight color can take.
const DarkestLightness = 0.5

// DecodeColor unpacks a 0xAAHHSSLL color value into RGB and alpha.
// Alpha is only read when flags has ColAlpha and is 1 otherwise.
// With ColLight the stored lightness is mapped onto [DarkestLightness, 1].
func DecodeColor(packed int64, flags Flags) (colorful.Color, float64) {
	h := unit(packed >> 16)
	s := unit(packed >> 8)
	l := unit(packed)
	alpha := 1.0
	if flags.Has(ColAlpha) {
		alpha = unit(packed >> 24)
	}
	if flags.Has(ColLight) {
		l = DarkestLightness + l*(1-DarkestLightness)
	}
	return colorful.Hsl(h*360, s, l), alpha
}

// EncodeColor packs any CSS color string into the 0xAAHHSSLL form used by
// color entries with the given flags.
func EncodeColor(css string, flags Flags) (int64, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return 0, fmt.Errorf("failed to parse color %q: %w", css, err)
	}

	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	if flags.Has(ColLight) {
		l = (l - DarkestLightness) / (1 - DarkestLightness)
	}

	packed := int64(channel(h/360))<<16 | int64(channel(s))<<8 | int64(channel(l))
	if flags.Has(ColAlpha) {
		packed |= int64(channel(c.A)) << 24
	}
	return packed, nil
}

// DefaultHex renders a literal default as "#rrggbb".
// It reports false when the default is a sentinel.
func (c Color) DefaultHex(flags Flags) (string, bool) {
	packed, ok := c.Default.Int()
	if !ok {
		return "", false
	}
	rgb, _ := DecodeColor(packed, flags)
	return rgb.Clamped().Hex(), true
}

func unit(b int64) float64 {
	return float64(b&0xff) / 255
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
