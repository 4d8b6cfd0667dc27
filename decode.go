/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package teecfg

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeSource converts file bytes to a string for parsing. A UTF-8 byte
// order mark is dropped and BOM-led UTF-16 in either byte order is
// converted to UTF-8. Input without a BOM must be valid UTF-8.
func DecodeSource(data []byte) (string, error) {
	decoder := transform.Chain(
		unicode.BOMOverride(encoding.Nop.NewDecoder()),
		encoding.UTF8Validator,
	)
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode source: %w", err)
	}
	return string(out), nil
}
