/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"slices"
	"strings"

	"bennypowers.dev/teecfg/internal/logger"
)

// MapWithNames indexes entries by Name. When names repeat, the entry that
// appears later in entries wins.
func MapWithNames(entries []ConfigEntry) map[string]ConfigEntry {
	result := make(map[string]ConfigEntry, len(entries))
	for _, e := range entries {
		if prev, ok := result[e.Name]; ok {
			logger.Warn("config name %q declared by %s is redeclared by %s", e.Name, prev.Symbol, e.Symbol)
		}
		result[e.Name] = e
	}
	return result
}

// Compare is a total order over entries, comparing Description, Type,
// Flags, Name, and Symbol in that order.
func Compare(a, b ConfigEntry) int {
	if c := strings.Compare(a.Description, b.Description); c != 0 {
		return c
	}
	if c := CompareTypes(a.Type, b.Type); c != 0 {
		return c
	}
	if c := a.Flags.Compare(b.Flags); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Symbol, b.Symbol)
}

// Sort sorts entries in place by Compare.
func Sort(entries []ConfigEntry) {
	slices.SortStableFunc(entries, Compare)
}
