// Package formats provides pluggable level file format parsers.
// Each format registers a codec for its extensions with the registry.
package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-chips/internal/registry"
)

// Level is the on-disk structure shared by every level format.
type Level struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Hint        string       `yaml:"hint,omitempty" json:"hint,omitempty"`
	Password    string       `yaml:"password,omitempty" json:"password,omitempty"`
	Seed        int64        `yaml:"seed,omitempty" json:"seed,omitempty"`
	Time        int          `yaml:"time,omitempty" json:"time,omitempty"` // seconds, 0 = unlimited
	Chips       int          `yaml:"chips,omitempty" json:"chips,omitempty"`
	Map         Map          `yaml:"map" json:"map"`
	Entities    []Entity     `yaml:"entities,omitempty" json:"entities,omitempty"`
	Connections []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
}

// Map describes the terrain either as legend indices (Data + Legend) or as
// glyph rows (Rows, with optional Glyphs overrides). Neither means all floor.
type Map struct {
	Width  int               `yaml:"width,omitempty" json:"width,omitempty"`
	Height int               `yaml:"height,omitempty" json:"height,omitempty"`
	Data   []int             `yaml:"data,omitempty,flow" json:"data,omitempty"`
	Legend []string          `yaml:"legend,omitempty,flow" json:"legend,omitempty"`
	Rows   []string          `yaml:"rows,omitempty" json:"rows,omitempty"`
	Glyphs map[string]string `yaml:"glyphs,omitempty" json:"glyphs,omitempty"`
}

// Entity places one entity.
type Entity struct {
	Kind string `yaml:"kind" json:"kind"`
	Pos  [2]int `yaml:"pos,flow" json:"pos"`
	Face string `yaml:"face,omitempty" json:"face,omitempty"`
}

// Connection links two tiles (teleports, clone machines, bear traps).
type Connection struct {
	Src  [2]int `yaml:"src,flow" json:"src"`
	Dest [2]int `yaml:"dest,flow" json:"dest"`
}

// Parse decodes a level file by extension.
func Parse(data []byte, ext string) (Level, error) {
	c, err := registry.Lookup(ext)
	if err != nil {
		return Level{}, err
	}

	var l Level
	if err := c.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("%s unmarshal: %w", c.Name, err)
	}
	return l, nil
}

// Encode writes a level in the format registered for ext.
func Encode(l Level, ext string) ([]byte, error) {
	c, err := registry.Lookup(ext)
	if err != nil {
		return nil, err
	}

	data, err := c.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("%s marshal: %w", c.Name, err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	infos := registry.List()
	exts := make([]string, len(infos))
	for i, info := range infos {
		exts[i] = info.Ext
	}
	return exts
}
