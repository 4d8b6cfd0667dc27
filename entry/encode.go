/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package entry

import (
	"encoding/json"
)

// entryDoc is the serialized form of a ConfigEntry.
type entryDoc struct {
	Name        string   `json:"name" yaml:"name"`
	Symbol      string   `json:"symbol" yaml:"symbol"`
	Description string   `json:"description" yaml:"description"`
	Flags       []string `json:"flags" yaml:"flags"`
	Type        typeDoc  `json:"type" yaml:"type"`
}

// typeDoc is the serialized form of an EntryType.
// Bounds are numbers, or sentinel names such as "MAX_CLIENTS".
type typeDoc struct {
	Kind      string `json:"kind" yaml:"kind"`
	MaxLength any    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       any    `json:"min,omitempty" yaml:"min,omitempty"`
	Max       any    `json:"max,omitempty" yaml:"max,omitempty"`
	Default   any    `json:"default" yaml:"default"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
}

func (e ConfigEntry) doc() entryDoc {
	d := entryDoc{
		Name:        e.Name,
		Symbol:      e.Symbol,
		Description: e.Description,
		Flags:       e.Flags.Names(),
	}

	switch t := e.Type.(type) {
	case Str:
		d.Type = typeDoc{Kind: t.Kind(), MaxLength: t.MaxLength.encoded(), Default: t.Default}
		if t.Value != nil {
			d.Type.Value = *t.Value
		}
	case Int:
		d.Type = typeDoc{Kind: t.Kind(), Min: t.Min.encoded(), Max: t.Max.encoded(), Default: t.Default.encoded()}
		if t.Value != nil {
			d.Type.Value = *t.Value
		}
	case Color:
		d.Type = typeDoc{Kind: t.Kind(), Default: t.Default.encoded()}
		if t.Value != nil {
			d.Type.Value = *t.Value
		}
	}
	return d
}

// MarshalJSON encodes the entry with a "type" object discriminated by "kind".
func (e ConfigEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

// MarshalYAML encodes the entry in the same shape as MarshalJSON.
func (e ConfigEntry) MarshalYAML() (any, error) {
	return e.doc(), nil
}
