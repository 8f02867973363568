package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"journalplot/pkg/journal"
)

// StyleConfig mirrors journal.Style with file-friendly types. Zero values
// mean "unspecified" and keep the library defaults.
type StyleConfig struct {
	BaseFontSize float64  `json:"base_font_size" yaml:"base_font_size" toml:"base_font_size"`
	LineWidth    float64  `json:"line_width" yaml:"line_width" toml:"line_width"`
	TickLength   float64  `json:"tick_length" yaml:"tick_length" toml:"tick_length"`
	MarkerSize   float64  `json:"marker_size" yaml:"marker_size" toml:"marker_size"`
	Color        string   `json:"color" yaml:"color" toml:"color"`
	FontVariant  string   `json:"font_variant" yaml:"font_variant" toml:"font_variant"`
	Palette      []string `json:"palette" yaml:"palette" toml:"palette"`
}

// Config holds runtime parameters for the CLI and the preview server.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr   string      `json:"addr" yaml:"addr" toml:"addr"`
	OutDir string      `json:"out_dir" yaml:"out_dir" toml:"out_dir"`
	Format string      `json:"format" yaml:"format" toml:"format"`
	DPI    float64     `json:"dpi" yaml:"dpi" toml:"dpi"`
	Style  StyleConfig `json:"style" yaml:"style" toml:"style"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// JournalStyle converts the style section to a journal.Style. Unspecified
// fields stay zero so the library applies its own defaults.
func (c Config) JournalStyle() (journal.Style, error) {
	s := journal.Style{
		BaseFontSize: c.Style.BaseFontSize,
		LineWidth:    c.Style.LineWidth,
		TickLength:   c.Style.TickLength,
		MarkerSize:   c.Style.MarkerSize,
		Variant:      c.Style.FontVariant,
	}
	if c.Style.Color != "" {
		col, err := journal.ParseHexColor(c.Style.Color)
		if err != nil {
			return s, fmt.Errorf("style color: %w", err)
		}
		s.Color = col
	}
	for i, h := range c.Style.Palette {
		col, err := journal.ParseHexColor(h)
		if err != nil {
			return s, fmt.Errorf("style palette[%d]: %w", i, err)
		}
		s.Palette = append(s.Palette, col)
	}
	return s, nil
}
